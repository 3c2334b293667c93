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
	"time"

	"github.com/retroenv/retrogolib/assert"
)

func TestClock_Advance(t *testing.T) {
	// 0x200: ADD V0, 1
	// 0x202: JP 0x200
	cpu := newTestCPU(t, 0x7001, 0x1200)
	cpu.Timers.Delay = 100

	clock := NewClock(cpu, 500)
	start := time.Unix(0, 0)
	clock.Start(start)

	assert.NoError(t, clock.Advance(start.Add(100*time.Millisecond)))

	// 50 instructions, half of them ADD
	assert.Equal(t, uint64(50), cpu.Cycles)
	assert.Equal(t, byte(25), cpu.V[0])

	// 6 timer ticks in 100ms at 60Hz
	assert.Equal(t, uint8(94), cpu.Timers.Delay)

	// advancing to the same time does nothing
	assert.NoError(t, clock.Advance(start.Add(100*time.Millisecond)))
	assert.Equal(t, uint64(50), cpu.Cycles)
}

func TestClock_Paused(t *testing.T) {
	cpu := newTestCPU(t, 0x7001, 0x1200)
	cpu.Timers.Delay = 100

	clock := NewClock(cpu, 500)
	start := time.Unix(0, 0)
	clock.Start(start)
	clock.Paused = true

	assert.NoError(t, clock.Advance(start.Add(time.Second)))
	assert.Equal(t, uint64(0), cpu.Cycles)
	assert.Equal(t, uint8(40), cpu.Timers.Delay)

	// unpausing doesn't replay the skipped cycles
	clock.Paused = false
	assert.NoError(t, clock.Advance(start.Add(time.Second+10*time.Millisecond)))
	assert.Equal(t, uint64(5), cpu.Cycles)

	snap, err := clock.Step()
	assert.NoError(t, err)
	assert.Equal(t, uint64(6), snap.Cycles)
}

func TestClock_WaitingForKeyCatchesUp(t *testing.T) {
	cpu := newTestCPU(t, 0xF00A, 0x7001, 0x1202)

	clock := NewClock(cpu, 500)
	start := time.Unix(0, 0)
	clock.Start(start)

	assert.NoError(t, clock.Advance(start.Add(time.Second)))
	assert.Equal(t, uint64(1), cpu.Cycles)
	assert.Equal(t, WaitingForKey, cpu.State())

	assert.NoError(t, cpu.ReleaseKey(0x3))

	// the wait didn't bank a second worth of cycles
	assert.NoError(t, clock.Advance(start.Add(time.Second+20*time.Millisecond)))
	assert.Equal(t, uint64(11), cpu.Cycles)
	assert.Equal(t, byte(0x3+5), cpu.V[0])
}

func TestClock_UnknownOpcodeContinues(t *testing.T) {
	cpu := newTestCPU(t, 0xFFFF, 0x6042)

	clock := NewClock(cpu, 500)
	start := time.Unix(0, 0)
	clock.Start(start)

	assert.NoError(t, clock.Advance(start.Add(4*time.Millisecond)))
	assert.Equal(t, byte(0x42), cpu.V[0])
}

func TestClock_FatalErrorStops(t *testing.T) {
	cpu := newTestCPU(t, 0x00EE, 0x6042)

	clock := NewClock(cpu, 500)
	start := time.Unix(0, 0)
	clock.Start(start)

	err := clock.Advance(start.Add(time.Second))
	assert.True(t, errors.Is(err, ErrStackUnderflow))
	assert.Equal(t, byte(0), cpu.V[0])
}

func TestClock_Speed(t *testing.T) {
	clock := NewClock(newTestCPU(t), 0)
	assert.Equal(t, DefaultSpeed, clock.Speed())

	clock.IncSpeed()
	assert.Equal(t, DefaultSpeed+100, clock.Speed())

	clock.SetSpeed(MinSpeed)
	clock.DecSpeed()
	assert.Equal(t, MinSpeed, clock.Speed())

	clock.SetSpeed(MaxSpeed * 2)
	assert.Equal(t, MaxSpeed, clock.Speed())
}

func TestDue(t *testing.T) {
	assert.Equal(t, int64(50), due(100*time.Millisecond, 500))
	assert.Equal(t, int64(6), due(100*time.Millisecond, TimerFrequency))
	assert.Equal(t, int64(0), due(-time.Second, MaxSpeed))

	// a month at the top speed
	month := 30 * 24 * time.Hour
	assert.Equal(t, int64(30*24*3600*MaxSpeed), due(month, MaxSpeed))
	assert.Equal(t, int64(30*24*3600*TimerFrequency+1), due(month+20*time.Millisecond, TimerFrequency))
}

func TestClock_AdvanceAfterLongRun(t *testing.T) {
	cpu := newTestCPU(t, 0x1200)

	clock := NewClock(cpu, MaxSpeed)
	start := time.Unix(0, 0)
	clock.Start(start)
	clock.Paused = true

	// counting while paused must not overflow after weeks of uptime
	now := start.Add(30 * 24 * time.Hour)
	assert.NoError(t, clock.Advance(now))

	clock.Paused = false
	assert.NoError(t, clock.Advance(now.Add(10*time.Millisecond)))
	assert.Equal(t, uint64(50), cpu.Cycles)
}
