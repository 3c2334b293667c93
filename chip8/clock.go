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

import "time"

const (
	/// DefaultSpeed is the instruction rate in Hz. The RCA 1802 interpreter
	/// managed roughly 500 CHIP-8 instructions per second.
	///
	DefaultSpeed = 500

	/// MinSpeed and MaxSpeed bound the instruction rate.
	///
	MinSpeed = 100
	MaxSpeed = 5000

	speedStep = 100
)

/// Clock drives a CPU in real time: Advance runs every instruction and timer
/// tick that is due for the wall time elapsed since Start.
///
type Clock struct {
	cpu   *CPU
	speed int64

	/// start is when counting began at the current speed.
	///
	start time.Time

	/// cycles and ticks are how many were processed since start.
	///
	cycles int64
	ticks  int64

	/// Paused stops instruction execution; timers keep counting down.
	///
	Paused bool
}

/// NewClock returns a clock running cpu at speed instructions per second.
///
func NewClock(cpu *CPU, speed int) *Clock {
	c := &Clock{cpu: cpu}
	c.SetSpeed(speed)
	return c
}

/// Start (re)starts counting from now.
///
func (c *Clock) Start(now time.Time) {
	c.start = now
	c.cycles = 0
	c.ticks = 0
}

/// Speed returns the instruction rate in Hz.
///
func (c *Clock) Speed() int {
	return int(c.speed)
}

/// SetSpeed changes the instruction rate, clamped to MinSpeed..MaxSpeed.
/// Counting restarts so the new rate doesn't produce a burst of cycles.
///
func (c *Clock) SetSpeed(speed int) {
	if speed <= 0 {
		speed = DefaultSpeed
	}
	speed = min(max(speed, MinSpeed), MaxSpeed)

	c.speed = int64(speed)
	c.Start(time.Now())
}

/// IncSpeed raises the instruction rate by one step.
///
func (c *Clock) IncSpeed() {
	c.SetSpeed(int(c.speed) + speedStep)
}

/// DecSpeed lowers the instruction rate by one step.
///
func (c *Clock) DecSpeed() {
	c.SetSpeed(max(int(c.speed)-speedStep, MinSpeed))
}

/// Advance catches the CPU up to now. Unknown opcodes are skipped; the
/// first fatal error stops processing and is returned.
///
func (c *Clock) Advance(now time.Time) error {
	elapsed := now.Sub(c.start)

	// calculate how many timer ticks and cycles should have happened
	ticks := due(elapsed, TimerFrequency)
	count := due(elapsed, c.speed)

	for ; c.ticks < ticks; c.ticks++ {
		c.cpu.UpdateTimers()
	}

	// if paused, count cycles without stepping
	if c.Paused {
		c.cycles = count
		return nil
	}

	for c.cycles < count {
		c.cycles++

		if _, err := c.cpu.Cycle(); IsFatal(err) {
			return err
		}

		// if waiting for a key, catch up
		if c.cpu.State() == WaitingForKey {
			c.cycles = count
		}
	}

	return nil
}

/// Step executes a single instruction regardless of the pause state.
///
func (c *Clock) Step() (Snapshot, error) {
	return c.cpu.Cycle()
}

/// due returns how many events at rate Hz fit in elapsed. Whole seconds
/// and the remainder are scaled apart so long runs don't overflow.
///
func due(elapsed time.Duration, rate int64) int64 {
	if elapsed <= 0 {
		return 0
	}

	secs := int64(elapsed / time.Second)
	rem := int64(elapsed % time.Second)

	return secs*rate + rem*rate/int64(time.Second)
}
