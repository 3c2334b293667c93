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

import (
	"errors"
	"fmt"
)

var (
	/// ErrMemoryOutOfBounds is returned when an address falls outside 0x000-0xFFF.
	///
	ErrMemoryOutOfBounds = errors.New("memory address out of bounds")

	/// ErrStackOverflow is returned by CALL when the stack is full.
	///
	ErrStackOverflow = errors.New("stack overflow")

	/// ErrStackUnderflow is returned by RET when the stack is empty.
	///
	ErrStackUnderflow = errors.New("stack underflow")

	/// ErrUnknownOpcode is reported for instruction words with no operation.
	///
	ErrUnknownOpcode = errors.New("unknown opcode")

	/// ErrProgramTooLarge is returned when a program does not fit at 0x200.
	///
	ErrProgramTooLarge = errors.New("program too large")

	/// ErrInvalidKey is returned for keypad codes above 0xF.
	///
	ErrInvalidKey = errors.New("invalid key")
)

/// OpcodeError reports an instruction word that did not decode to any
/// operation. It is not fatal: the CPU has already advanced past it.
///
type OpcodeError struct {
	Address uint16
	Word    uint16
}

func (e *OpcodeError) Error() string {
	return fmt.Sprintf("%s %04X at %04X", ErrUnknownOpcode, e.Word, e.Address)
}

func (e *OpcodeError) Unwrap() error {
	return ErrUnknownOpcode
}

/// IsFatal reports whether err should stop the driver. Unknown opcodes are
/// reported for diagnostics only; every other error leaves the current
/// cycle incomplete.
///
func IsFatal(err error) bool {
	if err == nil {
		return false
	}
	return !errors.Is(err, ErrUnknownOpcode)
}
