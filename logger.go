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

package main

import (
	"fmt"
	"strings"
)

// maxLogLines bounds the on-screen log; older lines are dropped.
const maxLogLines = 500

// Console is the scrollable log shown in the debug panel.
var Console = NewLogBuffer(maxLogLines)

// LogBuffer is an output log that can be viewed and scrolled.
type LogBuffer struct {
	// buf contains each line of logged text.
	buf []string

	// pos is the line just past the bottom of the visible window.
	pos int

	// limit is the maximum number of lines kept.
	limit int
}

// NewLogBuffer creates a LogBuffer keeping at most limit lines.
func NewLogBuffer(limit int) *LogBuffer {
	return &LogBuffer{
		buf:   make([]string, 0, 100),
		limit: max(limit, 1),
	}
}

// Log outputs a new line to the log.
func (l *LogBuffer) Log(s ...string) {
	l.append(strings.Join(s, " "))
}

// Logln outputs a new line to the log, with an empty line prefixed.
func (l *LogBuffer) Logln(s ...string) {
	l.append("", strings.Join(s, " "))
}

// Logf outputs a formatted line to the log.
func (l *LogBuffer) Logf(format string, args ...any) {
	l.append(fmt.Sprintf(format, args...))
}

func (l *LogBuffer) append(lines ...string) {
	follow := l.pos == len(l.buf)

	l.buf = append(l.buf, lines...)

	// drop the oldest lines over the limit
	if over := len(l.buf) - l.limit; over > 0 {
		l.buf = append(l.buf[:0], l.buf[over:]...)
		l.pos = max(l.pos-over, 0)
	}

	if follow {
		l.pos = len(l.buf)
	}
}

// Len returns the number of lines in the log.
func (l *LogBuffer) Len() int {
	return len(l.buf)
}

// Window returns the n lines ending at the current position.
func (l *LogBuffer) Window(n int) []string {
	end := max(l.pos, min(n, len(l.buf)))
	start := max(end-n, 0)

	return l.buf[start:end]
}

// Home scrolls the log to the beginning.
func (l *LogBuffer) Home() {
	l.pos = 0
}

// End scrolls the log to the end.
func (l *LogBuffer) End() {
	l.pos = len(l.buf)
}

// ScrollUp scrolls the log back one line.
func (l *LogBuffer) ScrollUp() {
	l.pos = max(l.pos-1, 0)
}

// ScrollDown scrolls the log forward one line. The first window is
// always full, so scrolling down from the top jumps past it.
func (l *LogBuffer) ScrollDown(windowSize int) {
	l.pos = min(max(l.pos+1, windowSize+1), len(l.buf))
}
