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

/// Snapshot is an immutable copy of the CPU state, taken after a cycle, for
/// debuggers and inspectors to pull from.
///
type Snapshot struct {
	PC uint16
	I  uint16
	V  [16]byte

	DT uint8
	ST uint8

	/// Stack is a copy of the return addresses, bottom first.
	///
	Stack []uint16

	/// Instruction is the last decoded instruction, Opcode its raw word.
	///
	Instruction Instruction
	Opcode      uint16

	State RunState

	/// WaitRegister is the register LD Vx, K will write, valid while
	/// State is WaitingForKey.
	///
	WaitRegister uint8

	Cycles uint64
	Redraw bool
}

/// Snapshot returns a copy of the current CPU state.
///
func (cpu *CPU) Snapshot() Snapshot {
	target, waiting := cpu.Keys.Waiting()

	s := Snapshot{
		PC:          cpu.PC,
		I:           cpu.I,
		V:           cpu.V,
		DT:          cpu.Timers.Delay,
		ST:          cpu.Timers.Sound,
		Stack:       cpu.Stack.Entries(),
		Instruction: cpu.last,
		Opcode:      cpu.last.Word,
		Cycles:      cpu.Cycles,
		Redraw:      cpu.Display.Redraw(),
	}

	if waiting {
		s.State = WaitingForKey
		s.WaitRegister = target
	}

	return s
}
