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
	"fmt"
	"math/rand/v2"

	"github.com/retroenv/retrogolib/log"
)

/// RunState is whether the CPU executes instructions or is blocked on
/// LD Vx, K until a key is released.
///
type RunState uint8

const (
	Running RunState = iota
	WaitingForKey
)

func (s RunState) String() string {
	if s == WaitingForKey {
		return "waiting for key"
	}
	return "running"
}

/// Config holds the construction options of a CPU. The zero value of each
/// field selects its default.
///
type Config struct {
	/// StackDepth bounds the number of nested subroutine calls.
	///
	StackDepth int

	/// Rand supplies the bytes used by RND. Tests replace it to get a
	/// deterministic sequence.
	///
	Rand func() byte

	/// Logger receives diagnostics, such as unknown opcodes.
	///
	Logger *log.Logger
}

/// DefaultConfig returns a configuration with a 16 entry stack, a
/// pseudo-random byte source and a default logger.
///
func DefaultConfig() Config {
	return Config{
		StackDepth: DefaultStackDepth,
		Rand:       randomByte,
		Logger:     log.NewWithConfig(log.DefaultConfig()),
	}
}

func randomByte() byte {
	return byte(rand.UintN(256))
}

/// CPU is the CHIP-8 virtual machine. It exclusively owns its memory,
/// registers, stack, timers, display and keypad. A CPU is not safe for
/// concurrent use, except that PressKey and ReleaseKey may be called from
/// another goroutine than the one calling Cycle.
///
type CPU struct {
	/// Memory addressable by CHIP-8. The first 80 bytes hold the font
	/// sprites, programs begin at 0x200.
	///
	Memory Memory

	/// V are the 16 virtual registers. VF doubles as the carry, borrow
	/// and collision flag.
	///
	V [16]byte

	/// I is the address register.
	///
	I uint16

	/// PC is the program counter. All programs begin at 0x200.
	///
	PC uint16

	/// Stack of return addresses. Each entry is the address of the CALL
	/// instruction itself.
	///
	Stack *Stack

	/// Timers are the delay and sound counters, decremented by UpdateTimers.
	///
	Timers Timers

	/// Display is the 64x32 pixel buffer.
	///
	Display PixelBuffer

	/// Keys hold the current state of the 16-key pad.
	///
	Keys Keypad

	/// Cycles is how many instructions have been executed since reset.
	///
	Cycles uint64

	/// program is the last loaded program, copied back on Reset.
	///
	program []byte

	/// last is the most recently decoded instruction.
	///
	last Instruction

	rand   func() byte
	logger *log.Logger
}

/// New creates a CPU in its reset state with no program loaded.
///
func New(cfg Config) *CPU {
	def := DefaultConfig()
	if cfg.StackDepth <= 0 {
		cfg.StackDepth = def.StackDepth
	}
	if cfg.Rand == nil {
		cfg.Rand = def.Rand
	}
	if cfg.Logger == nil {
		cfg.Logger = def.Logger
	}

	cpu := &CPU{
		Stack:  NewStack(cfg.StackDepth),
		rand:   cfg.Rand,
		logger: cfg.Logger,
	}
	cpu.Reset()

	return cpu
}

/// LoadROM copies program into memory at 0x200 and resets the CPU. The
/// program stays loaded across later resets.
///
func (cpu *CPU) LoadROM(program []byte) error {
	if len(program) > MaxProgramSize {
		return fmt.Errorf("%w: %d bytes, at most %d fit", ErrProgramTooLarge, len(program), MaxProgramSize)
	}

	cpu.program = append(cpu.program[:0], program...)
	cpu.Reset()

	cpu.logger.Debug("Program loaded", log.Int("size", len(program)))
	return nil
}

/// Reset reinitializes all state: memory holds only the font and the
/// loaded program, registers and timers are zero, the stack is empty, the
/// display is clear, no keys are held and PC is 0x200.
///
func (cpu *CPU) Reset() {
	cpu.Memory = Memory{}
	cpu.Memory.loadFont()
	copy(cpu.Memory[ProgramStart:], cpu.program)

	cpu.V = [16]byte{}
	cpu.I = 0
	cpu.PC = ProgramStart

	cpu.Stack.Reset()
	cpu.Timers = Timers{}
	cpu.Display.reset()
	cpu.Keys.Reset()

	cpu.Cycles = 0
	cpu.last = Instruction{}
}

/// State returns whether the CPU is running or waiting for a key.
///
func (cpu *CPU) State() RunState {
	if _, waiting := cpu.Keys.Waiting(); waiting {
		return WaitingForKey
	}
	return Running
}

/// Cycle fetches, decodes and executes a single instruction and returns
/// the resulting snapshot. While waiting for a key it does nothing. A key
/// released since the last cycle is first stored in the waiting register.
///
/// Errors wrapping ErrUnknownOpcode are reported but the CPU has skipped
/// the instruction and may keep running; use IsFatal to tell them apart
/// from memory and stack errors.
///
func (cpu *CPU) Cycle() (Snapshot, error) {
	cpu.resume()

	if cpu.State() == WaitingForKey {
		return cpu.Snapshot(), nil
	}

	address := cpu.PC

	inst, err := cpu.fetch()
	if err != nil {
		return cpu.Snapshot(), fmt.Errorf("fetching instruction at %04X: %w", address, err)
	}

	cpu.last = inst
	cpu.Cycles++

	if err := cpu.execute(address, inst); err != nil {
		if !IsFatal(err) {
			cpu.logger.Warn("Skipping unknown opcode",
				log.Hex("address", address),
				log.Hex("opcode", inst.Word))
		}
		return cpu.Snapshot(), err
	}

	return cpu.Snapshot(), nil
}

/// UpdateTimers counts the delay and sound timers down by one. Call it at
/// TimerFrequency, independently of Cycle.
///
func (cpu *CPU) UpdateTimers() {
	cpu.Timers.Tick()
}

/// PressKey emulates a CHIP-8 key being pressed.
///
func (cpu *CPU) PressKey(key uint8) error {
	return cpu.Keys.Press(key)
}

/// ReleaseKey emulates a CHIP-8 key being released. If the CPU is waiting
/// for a key, the wait is resolved: State reports Running at once and the
/// next Cycle stores the key in the waiting register before executing.
/// ReleaseKey never touches the registers, so it may be called from another
/// goroutine than Cycle.
///
func (cpu *CPU) ReleaseKey(key uint8) error {
	_, _, err := cpu.Keys.Release(key)
	return err
}

/// resume stores a key released during LD Vx, K in its register.
///
func (cpu *CPU) resume() {
	target, key, ok := cpu.Keys.Resume()
	if !ok {
		return
	}

	cpu.V[target] = key
	cpu.logger.Debug("Key wait resolved",
		log.Uint8("register", target),
		log.Uint8("key", key))
}

/// Pixels returns a copy of the display cells (0 or 1), row-major.
///
func (cpu *CPU) Pixels() []byte {
	return cpu.Display.Pixels()
}

/// Redraw is true when the display changed since ClearRedraw was called.
///
func (cpu *CPU) Redraw() bool {
	return cpu.Display.Redraw()
}

/// ClearRedraw must be called by the renderer after presenting the display.
///
func (cpu *CPU) ClearRedraw() {
	cpu.Display.ClearRedraw()
}

/// Fetch the next instruction and advance the program counter.
///
func (cpu *CPU) fetch() (Instruction, error) {
	word, err := cpu.Memory.Word(cpu.PC)
	if err != nil {
		return Instruction{}, err
	}

	// advance the program counter
	cpu.PC += 2

	return Decode(word), nil
}
