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

/// Execute a decoded instruction. PC has already been advanced past it;
/// address is where it was fetched from.
///
func (cpu *CPU) execute(address uint16, i Instruction) error {
	switch i.Op {
	case OpCLS:
		cpu.cls()
	case OpRET:
		return cpu.ret()
	case OpJP:
		cpu.jump(i.NNN)
	case OpCALL:
		return cpu.call(i.NNN)
	case OpSEByte:
		cpu.skipIf(i.X, i.NN)
	case OpSNEByte:
		cpu.skipIfNot(i.X, i.NN)
	case OpSEReg:
		cpu.skipIfXY(i.X, i.Y)
	case OpLDByte:
		cpu.loadX(i.X, i.NN)
	case OpADDByte:
		cpu.addX(i.X, i.NN)
	case OpLDReg:
		cpu.loadXY(i.X, i.Y)
	case OpOR:
		cpu.or(i.X, i.Y)
	case OpAND:
		cpu.and(i.X, i.Y)
	case OpXOR:
		cpu.xor(i.X, i.Y)
	case OpADDReg:
		cpu.addXY(i.X, i.Y)
	case OpSUB:
		cpu.subXY(i.X, i.Y)
	case OpSHR:
		cpu.shr(i.X)
	case OpSUBN:
		cpu.subYX(i.X, i.Y)
	case OpSHL:
		cpu.shl(i.X)
	case OpSNEReg:
		cpu.skipIfNotXY(i.X, i.Y)
	case OpLDI:
		cpu.loadI(i.NNN)
	case OpJPV0:
		cpu.jumpV0(i.NNN)
	case OpRND:
		cpu.rnd(i.X, i.NN)
	case OpDRW:
		return cpu.drw(i.X, i.Y, i.N)
	case OpSKP:
		cpu.skipIfPressed(i.X)
	case OpSKNP:
		cpu.skipIfNotPressed(i.X)
	case OpLDVxDT:
		cpu.loadXDT(i.X)
	case OpLDVxK:
		cpu.loadXK(i.X)
	case OpLDDTVx:
		cpu.loadDTX(i.X)
	case OpLDSTVx:
		cpu.loadSTX(i.X)
	case OpADDI:
		cpu.addIX(i.X)
	case OpLDF:
		cpu.loadF(i.X)
	case OpLDB:
		return cpu.loadB(i.X)
	case OpStore:
		return cpu.saveRegs(i.X)
	case OpLoad:
		return cpu.loadRegs(i.X)
	default:
		return &OpcodeError{Address: address, Word: i.Word}
	}

	return nil
}

/// Clear the video display memory.
///
func (cpu *CPU) cls() {
	cpu.Display.Clear()
}

/// call a subroutine at address. The address of the CALL itself is pushed.
///
func (cpu *CPU) call(address uint16) error {
	if err := cpu.Stack.Push(cpu.PC - 2); err != nil {
		return err
	}

	cpu.PC = address
	return nil
}

/// return from subroutine, to the instruction after the CALL.
///
func (cpu *CPU) ret() error {
	address, err := cpu.Stack.Pop()
	if err != nil {
		return err
	}

	cpu.PC = address + 2
	return nil
}

/// jump to address.
///
func (cpu *CPU) jump(address uint16) {
	cpu.PC = address
}

/// jump to address + v0.
///
func (cpu *CPU) jumpV0(address uint16) {
	cpu.PC = address + uint16(cpu.V[0])
}

/// skip next instruction if vx == n.
///
func (cpu *CPU) skipIf(x, b uint8) {
	if cpu.V[x] == b {
		cpu.PC += 2
	}
}

/// skip next instruction if vx != n.
///
func (cpu *CPU) skipIfNot(x, b uint8) {
	if cpu.V[x] != b {
		cpu.PC += 2
	}
}

/// skip next instruction if vx == vy.
///
func (cpu *CPU) skipIfXY(x, y uint8) {
	if cpu.V[x] == cpu.V[y] {
		cpu.PC += 2
	}
}

/// skip next instruction if vx != vy.
///
func (cpu *CPU) skipIfNotXY(x, y uint8) {
	if cpu.V[x] != cpu.V[y] {
		cpu.PC += 2
	}
}

/// skip next instruction if key(vx) is pressed.
///
func (cpu *CPU) skipIfPressed(x uint8) {
	if cpu.Keys.Pressed(cpu.V[x]) {
		cpu.PC += 2
	}
}

/// skip next instruction if key(vx) is not pressed.
///
func (cpu *CPU) skipIfNotPressed(x uint8) {
	if !cpu.Keys.Pressed(cpu.V[x]) {
		cpu.PC += 2
	}
}

/// load n into vx.
///
func (cpu *CPU) loadX(x, b uint8) {
	cpu.V[x] = b
}

/// load vy into vx.
///
func (cpu *CPU) loadXY(x, y uint8) {
	cpu.V[x] = cpu.V[y]
}

/// load delay timer into vx.
///
func (cpu *CPU) loadXDT(x uint8) {
	cpu.V[x] = cpu.Timers.Delay
}

/// load vx into delay timer.
///
func (cpu *CPU) loadDTX(x uint8) {
	cpu.Timers.Delay = cpu.V[x]
}

/// load vx into sound timer.
///
func (cpu *CPU) loadSTX(x uint8) {
	cpu.Timers.Sound = cpu.V[x]
}

/// load vx with the next key released. The CPU stops executing until then.
///
func (cpu *CPU) loadXK(x uint8) {
	cpu.Keys.Await(x)
}

/// load address register.
///
func (cpu *CPU) loadI(address uint16) {
	cpu.I = address
}

/// load address with BCD of vx.
///
func (cpu *CPU) loadB(x uint8) error {
	n := cpu.V[x]

	digits, err := cpu.Memory.Slice(cpu.I, 3)
	if err != nil {
		return err
	}

	digits[0] = n / 100
	digits[1] = n / 10 % 10
	digits[2] = n % 10

	return nil
}

/// load font sprite for vx into I.
///
func (cpu *CPU) loadF(x uint8) {
	cpu.I = uint16(cpu.V[x]) * GlyphSize
	cpu.Display.redraw = true
}

/// or vx with vy into vx.
///
func (cpu *CPU) or(x, y uint8) {
	cpu.V[x] |= cpu.V[y]
}

/// and vx with vy into vx.
///
func (cpu *CPU) and(x, y uint8) {
	cpu.V[x] &= cpu.V[y]
}

/// xor vx with vy into vx.
///
func (cpu *CPU) xor(x, y uint8) {
	cpu.V[x] ^= cpu.V[y]
}

/// shl vx 1 bit, set carry to MSB of vx before shift.
///
func (cpu *CPU) shl(x uint8) {
	carry := cpu.V[x] >> 7
	cpu.V[x] <<= 1
	cpu.V[0xF] = carry
}

/// shr vx 1 bit, set carry to LSB of vx before shift.
///
func (cpu *CPU) shr(x uint8) {
	carry := cpu.V[x] & 1
	cpu.V[x] >>= 1
	cpu.V[0xF] = carry
}

/// add n to vx, no carry.
///
func (cpu *CPU) addX(x, b uint8) {
	cpu.V[x] += b
}

/// add vy to vx and set carry.
///
func (cpu *CPU) addXY(x, y uint8) {
	sum := uint16(cpu.V[x]) + uint16(cpu.V[y])

	cpu.V[x] = byte(sum)
	cpu.V[0xF] = flag(sum > 0xFF)
}

/// add vx to i.
///
func (cpu *CPU) addIX(x uint8) {
	cpu.I += uint16(cpu.V[x])
}

/// subtract vy from vx, set carry if no borrow.
///
func (cpu *CPU) subXY(x, y uint8) {
	vx, vy := cpu.V[x], cpu.V[y]

	cpu.V[x] = vx - vy
	cpu.V[0xF] = flag(vx >= vy)
}

/// subtract vx from vy and store in vx, set carry if no borrow.
///
func (cpu *CPU) subYX(x, y uint8) {
	vx, vy := cpu.V[x], cpu.V[y]

	cpu.V[x] = vy - vx
	cpu.V[0xF] = flag(vy >= vx)
}

/// load a random number & n into vx.
///
func (cpu *CPU) rnd(x, b uint8) {
	cpu.V[x] = cpu.rand() & b
}

/// draw an n byte sprite at I to the display at vx, vy.
///
func (cpu *CPU) drw(x, y, n uint8) error {
	sprite, err := cpu.Memory.Slice(cpu.I, int(n))
	if err != nil {
		return err
	}

	collision := cpu.Display.DrawSprite(cpu.V[x], cpu.V[y], sprite)
	cpu.V[0xF] = flag(collision)

	return nil
}

/// save registers v0..vx to I.
///
func (cpu *CPU) saveRegs(x uint8) error {
	mem, err := cpu.Memory.Slice(cpu.I, int(x)+1)
	if err != nil {
		return err
	}

	copy(mem, cpu.V[:int(x)+1])
	return nil
}

/// load registers v0..vx from I.
///
func (cpu *CPU) loadRegs(x uint8) error {
	mem, err := cpu.Memory.Slice(cpu.I, int(x)+1)
	if err != nil {
		return err
	}

	copy(cpu.V[:int(x)+1], mem)
	return nil
}

func flag(b bool) byte {
	if b {
		return 1
	}
	return 0
}
