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

/// Op identifies one of the CHIP-8 operations.
///
type Op uint8

/// All operations understood by the CPU. OpUnknown is what any word that
/// doesn't match an operation decodes to.
///
const (
	OpUnknown Op = iota
	OpCLS        // 00E0
	OpRET        // 00EE
	OpJP         // 1nnn
	OpCALL       // 2nnn
	OpSEByte     // 3xnn
	OpSNEByte    // 4xnn
	OpSEReg      // 5xy0
	OpLDByte     // 6xnn
	OpADDByte    // 7xnn
	OpLDReg      // 8xy0
	OpOR         // 8xy1
	OpAND        // 8xy2
	OpXOR        // 8xy3
	OpADDReg     // 8xy4
	OpSUB        // 8xy5
	OpSHR        // 8xy6
	OpSUBN       // 8xy7
	OpSHL        // 8xyE
	OpSNEReg     // 9xy0
	OpLDI        // Annn
	OpJPV0       // Bnnn
	OpRND        // Cxnn
	OpDRW        // Dxyn
	OpSKP        // Ex9E
	OpSKNP       // ExA1
	OpLDVxDT     // Fx07
	OpLDVxK      // Fx0A
	OpLDDTVx     // Fx15
	OpLDSTVx     // Fx18
	OpADDI       // Fx1E
	OpLDF        // Fx29
	OpLDB        // Fx33
	OpStore      // Fx55
	OpLoad       // Fx65

	opCount
)

var mnemonics = [opCount]string{
	OpUnknown: "??",
	OpCLS:     "CLS",
	OpRET:     "RET",
	OpJP:      "JP",
	OpCALL:    "CALL",
	OpSEByte:  "SE",
	OpSNEByte: "SNE",
	OpSEReg:   "SE",
	OpLDByte:  "LD",
	OpADDByte: "ADD",
	OpLDReg:   "LD",
	OpOR:      "OR",
	OpAND:     "AND",
	OpXOR:     "XOR",
	OpADDReg:  "ADD",
	OpSUB:     "SUB",
	OpSHR:     "SHR",
	OpSUBN:    "SUBN",
	OpSHL:     "SHL",
	OpSNEReg:  "SNE",
	OpLDI:     "LD",
	OpJPV0:    "JP",
	OpRND:     "RND",
	OpDRW:     "DRW",
	OpSKP:     "SKP",
	OpSKNP:    "SKNP",
	OpLDVxDT:  "LD",
	OpLDVxK:   "LD",
	OpLDDTVx:  "LD",
	OpLDSTVx:  "LD",
	OpADDI:    "ADD",
	OpLDF:     "LD",
	OpLDB:     "LD",
	OpStore:   "LD",
	OpLoad:    "LD",
}

/// Mnemonic returns the assembler mnemonic for the operation.
///
func (op Op) Mnemonic() string {
	if op >= opCount {
		return mnemonics[OpUnknown]
	}
	return mnemonics[op]
}

/// Instruction is a decoded 16-bit instruction word. The operand fields
/// are always extracted with the same masks regardless of which ones the
/// operation actually uses.
///
type Instruction struct {
	Op   Op
	Word uint16

	X   uint8  // (word & 0x0F00) >> 8
	Y   uint8  // (word & 0x00F0) >> 4
	N   uint8  // word & 0x000F
	NN  uint8  // word & 0x00FF
	NNN uint16 // word & 0x0FFF
}

/// Decode an instruction word. The top nibble selects the group; groups
/// 0, 8 and E are further split on the low nibble and group F on the low
/// byte.
///
func Decode(word uint16) Instruction {
	return Instruction{
		Op:   decodeOp(word),
		Word: word,
		X:    uint8((word & 0x0F00) >> 8),
		Y:    uint8((word & 0x00F0) >> 4),
		N:    uint8(word & 0x000F),
		NN:   uint8(word & 0x00FF),
		NNN:  word & 0x0FFF,
	}
}

func decodeOp(word uint16) Op {
	switch word & 0xF000 {
	case 0x0000:
		switch word {
		case 0x00E0:
			return OpCLS
		case 0x00EE:
			return OpRET
		}
	case 0x1000:
		return OpJP
	case 0x2000:
		return OpCALL
	case 0x3000:
		return OpSEByte
	case 0x4000:
		return OpSNEByte
	case 0x5000:
		if word&0x000F == 0 {
			return OpSEReg
		}
	case 0x6000:
		return OpLDByte
	case 0x7000:
		return OpADDByte
	case 0x8000:
		return decodeALU(word)
	case 0x9000:
		if word&0x000F == 0 {
			return OpSNEReg
		}
	case 0xA000:
		return OpLDI
	case 0xB000:
		return OpJPV0
	case 0xC000:
		return OpRND
	case 0xD000:
		return OpDRW
	case 0xE000:
		switch word & 0x00FF {
		case 0x9E:
			return OpSKP
		case 0xA1:
			return OpSKNP
		}
	case 0xF000:
		return decodeMisc(word)
	}
	return OpUnknown
}

/// 8xy_
///
func decodeALU(word uint16) Op {
	switch word & 0x000F {
	case 0x0:
		return OpLDReg
	case 0x1:
		return OpOR
	case 0x2:
		return OpAND
	case 0x3:
		return OpXOR
	case 0x4:
		return OpADDReg
	case 0x5:
		return OpSUB
	case 0x6:
		return OpSHR
	case 0x7:
		return OpSUBN
	case 0xE:
		return OpSHL
	}
	return OpUnknown
}

/// Fx__
///
func decodeMisc(word uint16) Op {
	switch word & 0x00FF {
	case 0x07:
		return OpLDVxDT
	case 0x0A:
		return OpLDVxK
	case 0x15:
		return OpLDDTVx
	case 0x18:
		return OpLDSTVx
	case 0x1E:
		return OpADDI
	case 0x29:
		return OpLDF
	case 0x33:
		return OpLDB
	case 0x55:
		return OpStore
	case 0x65:
		return OpLoad
	}
	return OpUnknown
}
