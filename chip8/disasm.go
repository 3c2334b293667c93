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

/// String returns the assembly text for the instruction.
///
func (i Instruction) String() string {
	m := i.Op.Mnemonic()

	switch i.Op {
	case OpCLS, OpRET, OpUnknown:
		return m
	case OpJP, OpCALL:
		return fmt.Sprintf("%-6s #%04X", m, i.NNN)
	case OpSEByte, OpSNEByte, OpLDByte, OpADDByte, OpRND:
		return fmt.Sprintf("%-6s V%X, #%02X", m, i.X, i.NN)
	case OpSEReg, OpSNEReg, OpLDReg, OpOR, OpAND, OpXOR, OpADDReg, OpSUB, OpSUBN:
		return fmt.Sprintf("%-6s V%X, V%X", m, i.X, i.Y)
	case OpSHR, OpSHL, OpSKP, OpSKNP:
		return fmt.Sprintf("%-6s V%X", m, i.X)
	case OpLDI:
		return fmt.Sprintf("%-6s I, #%04X", m, i.NNN)
	case OpJPV0:
		return fmt.Sprintf("%-6s V0, #%04X", m, i.NNN)
	case OpDRW:
		return fmt.Sprintf("%-6s V%X, V%X, %d", m, i.X, i.Y, i.N)
	case OpLDVxDT:
		return fmt.Sprintf("%-6s V%X, DT", m, i.X)
	case OpLDVxK:
		return fmt.Sprintf("%-6s V%X, K", m, i.X)
	case OpLDDTVx:
		return fmt.Sprintf("%-6s DT, V%X", m, i.X)
	case OpLDSTVx:
		return fmt.Sprintf("%-6s ST, V%X", m, i.X)
	case OpADDI:
		return fmt.Sprintf("%-6s I, V%X", m, i.X)
	case OpLDF:
		return fmt.Sprintf("%-6s F, V%X", m, i.X)
	case OpLDB:
		return fmt.Sprintf("%-6s B, V%X", m, i.X)
	case OpStore:
		return fmt.Sprintf("%-6s [I], V%X", m, i.X)
	case OpLoad:
		return fmt.Sprintf("%-6s V%X, [I]", m, i.X)
	}

	return m
}

/// Disassemble the instruction at address, prefixed with the address.
///
func (cpu *CPU) Disassemble(address uint16) string {
	word, err := cpu.Memory.Word(address)
	if err != nil {
		return ""
	}

	// end of program memory?
	if word == 0 {
		return fmt.Sprintf("%04X -", address)
	}

	return fmt.Sprintf("%04X - %s", address, Decode(word))
}
