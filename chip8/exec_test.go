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
	"testing"

	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func TestCLS(t *testing.T) {
	cpu := newTestCPU(t, 0x00E0)
	cpu.Display.cells[0] = 1
	cpu.Display.cells[Width*Height-1] = 1
	cpu.Display.ClearRedraw()

	step(t, cpu)

	for _, p := range cpu.Pixels() {
		assert.Equal(t, byte(0), p)
	}
	assert.True(t, cpu.Redraw())
}

func TestJP(t *testing.T) {
	cpu := newTestCPU(t, 0x1ABC)
	snap := step(t, cpu)
	assert.Equal(t, uint16(0xABC), snap.PC)
}

func TestJPV0(t *testing.T) {
	cpu := newTestCPU(t, 0x6010, 0xB300)
	step(t, cpu)
	snap := step(t, cpu)
	assert.Equal(t, uint16(0x310), snap.PC)
}

func TestCallReturn(t *testing.T) {
	// 0x200: CALL 0x206
	// 0x202: LD V0, 1
	// 0x204: JP 0x204
	// 0x206: RET
	cpu := newTestCPU(t, 0x2206, 0x6001, 0x1204, 0x00EE)

	snap := step(t, cpu)
	assert.Equal(t, uint16(0x206), snap.PC)
	assert.Len(t, snap.Stack, 1)
	assert.Equal(t, uint16(0x200), snap.Stack[0])

	snap = step(t, cpu)
	assert.Equal(t, uint16(0x202), snap.PC)
	assert.Len(t, snap.Stack, 0)
}

func TestCallReturn_AnyAddress(t *testing.T) {
	for _, pc := range []uint16{0x200, 0x2FE, 0x456, 0xE00} {
		cpu := newTestCPU(t)
		cpu.PC = pc
		assert.NoError(t, cpu.Memory.write(pc, 0x2A))
		assert.NoError(t, cpu.Memory.write(pc+1, 0x00))
		assert.NoError(t, cpu.Memory.write(0xA00, 0x00))
		assert.NoError(t, cpu.Memory.write(0xA01, 0xEE))

		step(t, cpu)
		assert.Equal(t, uint16(0xA00), cpu.PC)

		step(t, cpu)
		assert.Equal(t, pc+2, cpu.PC)
	}
}

func TestCall_StackOverflow(t *testing.T) {
	cpu := New(Config{StackDepth: 2, Logger: log.NewTestLogger(t)})
	assert.NoError(t, cpu.LoadROM(program(0x2200))) // calls itself forever

	step(t, cpu)
	step(t, cpu)

	_, err := cpu.Cycle()
	assert.True(t, errors.Is(err, ErrStackOverflow))
	assert.True(t, IsFatal(err))
	assert.Equal(t, 2, cpu.Stack.Len())
}

func TestRet_StackUnderflow(t *testing.T) {
	cpu := newTestCPU(t, 0x00EE)

	_, err := cpu.Cycle()
	assert.True(t, errors.Is(err, ErrStackUnderflow))
	assert.True(t, IsFatal(err))
}

func TestSkips(t *testing.T) {
	tests := []struct {
		name  string
		setup func(cpu *CPU)
		word  uint16
		skip  bool
	}{
		{"SE byte equal", func(cpu *CPU) { cpu.V[5] = 0x11 }, 0x3511, true},
		{"SE byte not equal", func(cpu *CPU) { cpu.V[5] = 0x12 }, 0x3511, false},
		{"SNE byte not equal", func(cpu *CPU) { cpu.V[5] = 0x12 }, 0x4511, true},
		{"SNE byte equal", func(cpu *CPU) { cpu.V[5] = 0x11 }, 0x4511, false},
		{"SE reg equal", func(cpu *CPU) { cpu.V[5], cpu.V[4] = 7, 7 }, 0x5540, true},
		{"SE reg not equal", func(cpu *CPU) { cpu.V[5], cpu.V[4] = 7, 8 }, 0x5540, false},
		{"SNE reg not equal", func(cpu *CPU) { cpu.V[5], cpu.V[4] = 7, 8 }, 0x9540, true},
		{"SNE reg equal", func(cpu *CPU) { cpu.V[5], cpu.V[4] = 7, 7 }, 0x9540, false},
		{"SKP pressed", func(cpu *CPU) { cpu.V[2] = 0xA; _ = cpu.PressKey(0xA) }, 0xE29E, true},
		{"SKP not pressed", func(cpu *CPU) { cpu.V[2] = 0xA }, 0xE29E, false},
		{"SKNP not pressed", func(cpu *CPU) { cpu.V[2] = 0xA }, 0xE2A1, true},
		{"SKNP pressed", func(cpu *CPU) { cpu.V[2] = 0xA; _ = cpu.PressKey(0xA) }, 0xE2A1, false},
		{"SKP key out of range", func(cpu *CPU) { cpu.V[2] = 0x42 }, 0xE29E, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cpu := newTestCPU(t, tt.word)
			tt.setup(cpu)

			snap := step(t, cpu)

			want := uint16(0x202)
			if tt.skip {
				want = 0x204
			}
			assert.Equal(t, want, snap.PC)
		})
	}
}

func TestLoadAndAddByte(t *testing.T) {
	cpu := newTestCPU(t, 0x6AFF, 0x7A02, 0x8BA0)
	cpu.V[0xF] = 0x55

	step(t, cpu)
	assert.Equal(t, byte(0xFF), cpu.V[0xA])

	step(t, cpu)
	assert.Equal(t, byte(0x01), cpu.V[0xA])
	assert.Equal(t, byte(0x55), cpu.V[0xF]) // ADD Vx, byte leaves VF alone

	step(t, cpu)
	assert.Equal(t, byte(0x01), cpu.V[0xB])
}

func TestALU(t *testing.T) {
	tests := []struct {
		name   string
		word   uint16
		vx, vy byte
		want   byte
		vf     byte
	}{
		{"OR", 0x8121, 0xF0, 0x0F, 0xFF, 0xEE},
		{"AND", 0x8122, 0xF3, 0x3F, 0x33, 0xEE},
		{"XOR", 0x8123, 0xFF, 0x0F, 0xF0, 0xEE},
		{"ADD no carry", 0x8124, 0x10, 0x20, 0x30, 0},
		{"ADD carry", 0x8124, 0xFF, 0x02, 0x01, 1},
		{"ADD exactly 256", 0x8124, 0x80, 0x80, 0x00, 1},
		{"SUB no borrow", 0x8125, 0x10, 0x05, 0x0B, 1},
		{"SUB borrow", 0x8125, 0x05, 0x10, 0xF5, 0},
		{"SUB equal", 0x8125, 0x33, 0x33, 0x00, 1},
		{"SHR odd", 0x8126, 0x03, 0x00, 0x01, 1},
		{"SHR even", 0x8126, 0x04, 0x00, 0x02, 0},
		{"SUBN no borrow", 0x8127, 0x05, 0x10, 0x0B, 1},
		{"SUBN borrow", 0x8127, 0x10, 0x05, 0xF5, 0},
		{"SUBN equal", 0x8127, 0x33, 0x33, 0x00, 1},
		{"SHL high bit", 0x812E, 0x81, 0x00, 0x02, 1},
		{"SHL low bits", 0x812E, 0x41, 0x00, 0x82, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cpu := newTestCPU(t, tt.word)
			cpu.V[1] = tt.vx
			cpu.V[2] = tt.vy
			cpu.V[0xF] = 0xEE

			step(t, cpu)

			assert.Equal(t, tt.want, cpu.V[1])
			assert.Equal(t, tt.vf, cpu.V[0xF])
		})
	}
}

func TestALU_FlagRegisterAsOperand(t *testing.T) {
	// ADD VF, V1: the flag overwrites the sum
	cpu := newTestCPU(t, 0x8F14, 0x8F15)
	cpu.V[0xF] = 0x10
	cpu.V[1] = 0x02

	step(t, cpu)
	assert.Equal(t, byte(0), cpu.V[0xF])

	// SUB VF, V1: no borrow
	cpu.V[0xF] = 0x10
	step(t, cpu)
	assert.Equal(t, byte(1), cpu.V[0xF])
}

func TestLDI_ADDI_LDF(t *testing.T) {
	cpu := newTestCPU(t, 0xA123, 0x6510, 0xF51E, 0x640B, 0xF429)

	step(t, cpu)
	assert.Equal(t, uint16(0x123), cpu.I)

	step(t, cpu)
	step(t, cpu)
	assert.Equal(t, uint16(0x133), cpu.I)

	cpu.Display.ClearRedraw()
	step(t, cpu)
	step(t, cpu)
	assert.Equal(t, uint16(0xB*GlyphSize), cpu.I)
	assert.True(t, cpu.Redraw())
}

func TestRND(t *testing.T) {
	values := []byte{0xAB, 0xFF}
	cpu := New(Config{
		Logger: log.NewTestLogger(t),
		Rand: func() byte {
			v := values[0]
			values = values[1:]
			return v
		},
	})
	assert.NoError(t, cpu.LoadROM(program(0xC30F, 0xC4FF)))

	step(t, cpu)
	step(t, cpu)

	assert.Equal(t, byte(0x0B), cpu.V[3])
	assert.Equal(t, byte(0xFF), cpu.V[4])
}

func TestTimerRegisters(t *testing.T) {
	cpu := newTestCPU(t, 0x6A20, 0xFA15, 0xFA18, 0xFB07)

	step(t, cpu)
	step(t, cpu)
	step(t, cpu)
	assert.Equal(t, uint8(0x20), cpu.Timers.Delay)
	assert.Equal(t, uint8(0x20), cpu.Timers.Sound)

	cpu.UpdateTimers()
	step(t, cpu)
	assert.Equal(t, byte(0x1F), cpu.V[0xB])
}

func TestBCD(t *testing.T) {
	tests := []struct {
		value  byte
		digits [3]byte
	}{
		{157, [3]byte{1, 5, 7}},
		{0, [3]byte{0, 0, 0}},
		{9, [3]byte{0, 0, 9}},
		{40, [3]byte{0, 4, 0}},
		{255, [3]byte{2, 5, 5}},
	}

	for _, tt := range tests {
		cpu := newTestCPU(t, 0xA300, 0xF733)
		cpu.V[7] = tt.value

		step(t, cpu)
		step(t, cpu)

		assert.Equal(t, tt.digits, [3]byte(cpu.Memory[0x300:0x303]))
	}
}

func TestBCD_OutOfBounds(t *testing.T) {
	cpu := newTestCPU(t, 0xAFFE, 0xF033)
	step(t, cpu)

	_, err := cpu.Cycle()
	assert.True(t, errors.Is(err, ErrMemoryOutOfBounds))
	assert.Equal(t, byte(0), cpu.Memory[0xFFE])
}

func TestStoreLoad_RoundTrip(t *testing.T) {
	for x := uint16(0); x < 16; x++ {
		cpu := newTestCPU(t,
			0xA400,
			0xF055|x<<8, // LD [I], Vx
			0xF065|x<<8, // LD Vx, [I]
		)
		for i := range cpu.V {
			cpu.V[i] = byte(0x10 + i)
		}
		regs := cpu.V

		step(t, cpu)
		step(t, cpu)

		for i := uint16(0); i <= x; i++ {
			assert.Equal(t, regs[i], cpu.Memory[0x400+i])
		}
		assert.Equal(t, byte(0), cpu.Memory[0x400+x+1])

		// scramble and reload
		for i := range cpu.V {
			cpu.V[i] = 0
		}
		step(t, cpu)

		for i := uint16(0); i < 16; i++ {
			if i <= x {
				assert.Equal(t, regs[i], cpu.V[i])
			} else {
				assert.Equal(t, byte(0), cpu.V[i])
			}
		}
	}
}

func TestStore_OutOfBounds(t *testing.T) {
	cpu := newTestCPU(t, 0xAFFC, 0xFF55)
	step(t, cpu)

	_, err := cpu.Cycle()
	assert.True(t, errors.Is(err, ErrMemoryOutOfBounds))
	assert.True(t, IsFatal(err))
}

func TestDRW_Collision(t *testing.T) {
	// draw the "0" glyph twice at <10,5>
	cpu := newTestCPU(t, 0x600A, 0x6105, 0xA000, 0xD015, 0xD015)
	step(t, cpu)
	step(t, cpu)
	step(t, cpu)

	cpu.V[0xF] = 0xEE
	step(t, cpu)
	assert.Equal(t, byte(0), cpu.V[0xF])
	assert.True(t, cpu.Redraw())

	// top row of "0" is 0xF0
	for x := 10; x < 14; x++ {
		assert.Equal(t, byte(1), cpu.Display.pixel(x, 5))
	}
	assert.Equal(t, byte(0), cpu.Display.pixel(14, 5))

	step(t, cpu)
	assert.Equal(t, byte(1), cpu.V[0xF])
	for _, p := range cpu.Pixels() {
		assert.Equal(t, byte(0), p)
	}
}

func TestDRW_Wrap(t *testing.T) {
	// sprite at <62,31> with coordinates given far outside the screen
	cpu := newTestCPU(t, 0xA300, 0xD012)
	cpu.Memory[0x300] = 0xF0
	cpu.Memory[0x301] = 0x80
	cpu.V[0] = 62 + 64*2
	cpu.V[1] = 31 + 32*3

	step(t, cpu)
	step(t, cpu)

	assert.Equal(t, byte(0), cpu.V[0xF])
	assert.Equal(t, byte(1), cpu.Display.pixel(62, 31))
	assert.Equal(t, byte(1), cpu.Display.pixel(63, 31))
	assert.Equal(t, byte(1), cpu.Display.pixel(0, 31))
	assert.Equal(t, byte(1), cpu.Display.pixel(1, 31))
	assert.Equal(t, byte(0), cpu.Display.pixel(2, 31))
	assert.Equal(t, byte(1), cpu.Display.pixel(62, 0))
	assert.Equal(t, byte(0), cpu.Display.pixel(63, 0))
}

func TestDRW_SpriteOutOfBounds(t *testing.T) {
	cpu := newTestCPU(t, 0xAFFE, 0xD003)
	step(t, cpu)

	_, err := cpu.Cycle()
	assert.True(t, errors.Is(err, ErrMemoryOutOfBounds))
}

func TestExecute_EveryOperationHandled(t *testing.T) {
	for _, tt := range opcodeSamples {
		cpu := newTestCPU(t)
		cpu.I = 0x300
		_ = cpu.Stack.Push(0x200)

		err := cpu.execute(ProgramStart, Decode(tt.word))
		assert.False(t, errors.Is(err, ErrUnknownOpcode), tt.op.Mnemonic())
	}
}
