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

/// DefaultStackDepth is the number of return addresses the stack holds
/// unless configured otherwise.
///
const DefaultStackDepth = 16

/// Stack is a bounded LIFO of subroutine return addresses.
///
type Stack struct {
	entries []uint16
	depth   int
}

/// NewStack returns an empty stack holding at most depth addresses.
///
func NewStack(depth int) *Stack {
	if depth <= 0 {
		depth = DefaultStackDepth
	}
	return &Stack{
		entries: make([]uint16, 0, depth),
		depth:   depth,
	}
}

/// Push adds address on top of the stack.
///
func (s *Stack) Push(address uint16) error {
	if len(s.entries) == s.depth {
		return fmt.Errorf("%w: depth %d", ErrStackOverflow, s.depth)
	}
	s.entries = append(s.entries, address)
	return nil
}

/// Pop removes and returns the top address.
///
func (s *Stack) Pop() (uint16, error) {
	if len(s.entries) == 0 {
		return 0, ErrStackUnderflow
	}
	top := s.entries[len(s.entries)-1]
	s.entries = s.entries[:len(s.entries)-1]
	return top, nil
}

/// Len returns the number of addresses on the stack.
///
func (s *Stack) Len() int {
	return len(s.entries)
}

/// Depth returns the capacity of the stack.
///
func (s *Stack) Depth() int {
	return s.depth
}

/// Entries returns a copy of the stack, bottom first.
///
func (s *Stack) Entries() []uint16 {
	out := make([]uint16, len(s.entries))
	copy(out, s.entries)
	return out
}

/// Reset empties the stack.
///
func (s *Stack) Reset() {
	s.entries = s.entries[:0]
}
