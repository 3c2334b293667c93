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

package main

import (
	"fmt"
	"strings"

	"github.com/massung/chip8-vm/chip8"
	"github.com/veandco/go-sdl2/sdl"
)

const (
	/// Instructions shown in the disassembly panel.
	///
	assemblyLines = 16

	/// Lines shown in the log panel.
	///
	logLines = 15

	/// Vertical distance between lines of text.
	///
	lineHeight = 10
)

var (
	/// First address of the disassembly window.
	///
	Address uint16
)

/// Show the HELP text in the log.
///
func DebugHelp() {
	Console.Logln("Virtual keys:")
	Console.Log("  1-2-3-4")
	Console.Log("  Q-W-E-R")
	Console.Log("  A-S-D-F")
	Console.Log("  Z-X-C-V")
	Console.Log("")
	Console.Log("Emulation keys:")
	Console.Log("  ESC      - Unload ROM")
	Console.Log("  BS       - Reset, CTRL to reset paused")
	Console.Log("  F2       - Reload ROM")
	Console.Log("  F3       - Open ROM")
	Console.Log("  [ ]      - Slower/faster")
	Console.Log("  SPACE/F5 - Pause")
	Console.Log("  F6/F10   - Step")
	Console.Log("  F8       - Memory at I")
	Console.Log("  PG UP/DN - Scroll log")
	Console.Log("  H        - Help")
}

/// DebugAssembly renders the disassembled instructions around
/// the CHIP-8 program counter.
///
func DebugAssembly(snap chip8.Snapshot, x, y int32) {
	pc := snap.PC

	// keep the program counter inside the window, one line from the edges
	last := Address + (assemblyLines-1)*2
	if pc <= Address || pc >= last || (Address^pc)&1 == 1 {
		Address = pc - min(pc, 2)
	}

	for i := range uint16(assemblyLines) {
		addr := Address + i*2
		line := y + int32(i)*lineHeight

		if addr == pc {
			switch {
			case Clock.Paused:
				_ = Renderer.SetDrawColor(176, 32, 57, 255)
			case snap.State == chip8.WaitingForKey:
				_ = Renderer.SetDrawColor(176, 140, 32, 255)
			default:
				_ = Renderer.SetDrawColor(57, 102, 176, 255)
			}

			// highlight the current instruction
			_ = Renderer.FillRect(&sdl.Rect{X: x, Y: line - 1, W: assemblyWidth - 8, H: lineHeight})
		}

		DrawText(VM.Disassemble(addr), x, line)
	}
}

/// Show the current value of all the CHIP-8 registers.
///
func DebugRegisters(snap chip8.Snapshot, x, y int32) {
	for i, v := range snap.V {
		DrawText(fmt.Sprintf("  V%X - #%02X", i, v), x, y+int32(i)*lineHeight)
	}

	// shift over for the other registers
	x += 98

	DrawText(fmt.Sprintf("PC - #%04X", snap.PC), x, y)
	DrawText(fmt.Sprintf("SP - #%02X", len(snap.Stack)), x, y+lineHeight)
	DrawText(fmt.Sprintf("I  - #%04X", snap.I), x, y+3*lineHeight)
	DrawText(fmt.Sprintf("DT - #%02X", snap.DT), x, y+5*lineHeight)
	DrawText(fmt.Sprintf("ST - #%02X", snap.ST), x, y+6*lineHeight)

	// run state and speed
	switch {
	case Clock.Paused:
		DrawText("PAUSED", x, y+8*lineHeight)
	case snap.State == chip8.WaitingForKey:
		DrawText(fmt.Sprintf("KEY->V%X", snap.WaitRegister), x, y+8*lineHeight)
	default:
		DrawText("RUNNING", x, y+8*lineHeight)
	}

	DrawText(fmt.Sprintf("%d HZ", Clock.Speed()), x, y+10*lineHeight)
	DrawText(fmt.Sprintf("%d", snap.Cycles), x, y+11*lineHeight)
}

/// Show the current log text.
///
func DebugLog(x, y, w int32) {
	cols := TextWidth(w)

	for _, line := range Console.Window(logLines) {
		DrawText(clip(strings.ToUpper(line), cols), x, y)

		// advance to the next line
		y += lineHeight
	}
}

/// DebugMemory logs a hex dump of the memory at I.
///
func DebugMemory() {
	snap := VM.Snapshot()

	Console.Logln(fmt.Sprintf("Memory at I (#%04X):", snap.I))

	for row := range uint16(8) {
		if int(snap.I)+int(row)*8 >= chip8.MemorySize {
			break
		}

		addr := snap.I + row*8
		bytes := make([]string, 0, 8)

		for i := range uint16(8) {
			b, err := VM.Memory.Read(addr + i)
			if err != nil {
				break
			}
			bytes = append(bytes, fmt.Sprintf("%02X", b))
		}

		Console.Logf("%04X - %s", addr, strings.Join(bytes, " "))
	}
}

/// clip shortens s to n columns, marking the cut.
///
func clip(s string, n int) string {
	if len(s) <= n || n < 3 {
		return s
	}
	return s[:n-3] + "..."
}
