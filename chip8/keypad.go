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
	"sync"
)

// The original COSMAC VIP hex keypad layout:
//
//	+---+---+---+---+
//	| 1 | 2 | 3 | C |
//	+---+---+---+---+
//	| 4 | 5 | 6 | D |
//	+---+---+---+---+
//	| 7 | 8 | 9 | E |
//	+---+---+---+---+
//	| A | 0 | B | F |
//	+---+---+---+---+

/// KeyCount is the number of keys on the pad.
///
const KeyCount = 16

/// Keypad holds the pressed state of the 16 keys and an optional one-shot
/// registration waiting for the next key release. Key events may arrive from
/// a different goroutine than the one driving the CPU, so a release only
/// records the key; the CPU goroutine stores it with Resume.
///
type Keypad struct {
	mu      sync.Mutex
	keys    [KeyCount]bool
	waiting bool
	target  uint8

	/// released is set once a release resolved the wait, key is that key.
	///
	released bool
	key      uint8
}

/// Press marks key as held down.
///
func (k *Keypad) Press(key uint8) error {
	if key >= KeyCount {
		return fmt.Errorf("%w: %X", ErrInvalidKey, key)
	}

	k.mu.Lock()
	k.keys[key] = true
	k.mu.Unlock()
	return nil
}

/// Release marks key as up. The first release after Await resolves the
/// registration and returns its target register with ok set; later
/// releases leave it alone until Resume consumes it.
///
func (k *Keypad) Release(key uint8) (target uint8, ok bool, err error) {
	if key >= KeyCount {
		return 0, false, fmt.Errorf("%w: %X", ErrInvalidKey, key)
	}

	k.mu.Lock()
	defer k.mu.Unlock()

	k.keys[key] = false

	if !k.waiting || k.released {
		return 0, false, nil
	}
	k.released = true
	k.key = key
	return k.target, true, nil
}

/// Resume consumes a resolved registration, returning the target register
/// and the released key. ok is false while nothing was released.
///
func (k *Keypad) Resume() (target, key uint8, ok bool) {
	k.mu.Lock()
	defer k.mu.Unlock()

	if !k.released {
		return 0, 0, false
	}
	k.waiting = false
	k.released = false
	return k.target, k.key, true
}

/// Pressed reports whether key is held down. Codes above 0xF are never pressed.
///
func (k *Keypad) Pressed(key uint8) bool {
	if key >= KeyCount {
		return false
	}

	k.mu.Lock()
	defer k.mu.Unlock()
	return k.keys[key]
}

/// Await registers target to receive the next released key.
///
func (k *Keypad) Await(target uint8) {
	k.mu.Lock()
	k.waiting = true
	k.released = false
	k.target = target
	k.mu.Unlock()
}

/// Waiting returns the target register while no key has been released
/// for the pending registration.
///
func (k *Keypad) Waiting() (uint8, bool) {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.target, k.waiting && !k.released
}

/// Reset releases every key and drops any pending registration.
///
func (k *Keypad) Reset() {
	k.mu.Lock()
	k.keys = [KeyCount]bool{}
	k.waiting = false
	k.released = false
	k.target = 0
	k.key = 0
	k.mu.Unlock()
}
