/* Copyright (c) 2017 Jeffrey Massung
 *
 * This software is provided 'as-is', without any express or implied
 * warranty.  In no event will the authors be held liable for any damages
 * arising from the use of this software.
 *
 * Permission is granted to anyone to use this software for any purpose,
 * including commercial applications, and to alter it and redistribute it
 * freely, subject to the following restrictions:
 *
 * 1. The origin of this software must not be misrepresented; you must not
 *    claim that you wrote the original software. If you use this software
 *    in a product, an acknowledgment in the product documentation would be
 *    appreciated but is not required.
 *
 * 2. Altered source versions must be plainly marked as such, and must not be
 *    misrepresented as being the original software.
 *
 * 3. This notice may not be removed or altered from any source distribution.
 */

package chip8

import "fmt"

const (
	/// MemorySize is the number of addressable bytes.
	///
	MemorySize = 0x1000

	/// ProgramStart is where programs are loaded and execution begins.
	///
	ProgramStart = 0x200

	/// MaxProgramSize is the largest program that fits above ProgramStart.
	///
	MaxProgramSize = MemorySize - ProgramStart

	/// GlyphSize is the number of bytes (rows) in each font sprite.
	///
	GlyphSize = 5
)

/// Font is the built-in hex digit sprite table. Glyph d begins at
/// address d*GlyphSize.
///
var Font = [16 * GlyphSize]byte{
	0xF0, 0x90, 0x90, 0x90, 0xF0, // 0
	0x20, 0x60, 0x20, 0x20, 0x70, // 1
	0xF0, 0x10, 0xF0, 0x80, 0xF0, // 2
	0xF0, 0x10, 0xF0, 0x10, 0xF0, // 3
	0x90, 0x90, 0xF0, 0x10, 0x10, // 4
	0xF0, 0x80, 0xF0, 0x10, 0xF0, // 5
	0xF0, 0x80, 0xF0, 0x90, 0xF0, // 6
	0xF0, 0x10, 0x20, 0x40, 0x40, // 7
	0xF0, 0x90, 0xF0, 0x90, 0xF0, // 8
	0xF0, 0x90, 0xF0, 0x10, 0xF0, // 9
	0xF0, 0x90, 0xF0, 0x90, 0x90, // A
	0xE0, 0x90, 0xE0, 0x90, 0xE0, // B
	0xF0, 0x80, 0x80, 0x80, 0xF0, // C
	0xE0, 0x90, 0x90, 0x90, 0xE0, // D
	0xF0, 0x80, 0xF0, 0x80, 0xF0, // E
	0xF0, 0x80, 0xF0, 0x80, 0x80, // F
}

/// Memory is the flat 4KB address space. Every access is bounds checked;
/// nothing wraps around.
///
type Memory [MemorySize]byte

/// Read returns the byte at address.
///
func (m *Memory) Read(address uint16) (byte, error) {
	if int(address) >= len(m) {
		return 0, outOfBounds(address)
	}
	return m[address], nil
}

/// write stores b at address.
///
func (m *Memory) write(address uint16, b byte) error {
	if int(address) >= len(m) {
		return outOfBounds(address)
	}
	m[address] = b
	return nil
}

/// Word reads the big-endian 16-bit value at address.
///
func (m *Memory) Word(address uint16) (uint16, error) {
	if int(address)+1 >= len(m) {
		return 0, outOfBounds(address + 1)
	}
	return uint16(m[address])<<8 | uint16(m[address+1]), nil
}

/// Slice returns the n bytes starting at address. The slice aliases memory.
///
func (m *Memory) Slice(address uint16, n int) ([]byte, error) {
	if int(address)+n > len(m) {
		return nil, outOfBounds(uint16(int(address) + n - 1))
	}
	return m[address : int(address)+n], nil
}

/// loadFont copies the font table to address 0.
///
func (m *Memory) loadFont() {
	copy(m[:], Font[:])
}

func outOfBounds(address uint16) error {
	return fmt.Errorf("%w: %04X", ErrMemoryOutOfBounds, address)
}
