// File: buf/cursor.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Cursor state machine: capacity fixed at construction, position and
// limit moved by the operations below, mark restorable via reset.
// Invariant at all times: 0 <= mark <= position <= limit <= capacity
// (mark -1 means unset and is exempt). The cursor knows nothing about
// storage; Buffer composes it with a backing region.

package buf

import "fmt"

const markUnset = -1

type cursor struct {
	cap int
	pos int
	lim int
	mrk int
}

func newCursor(capacity int) cursor {
	return cursor{cap: capacity, lim: capacity, mrk: markUnset}
}

// setPosition moves the position to p. A mark beyond p is discarded.
func (c *cursor) setPosition(p int) error {
	if p < 0 || p > c.lim {
		return fmt.Errorf("%w: position %d outside [0, %d]", ErrInvalid, p, c.lim)
	}
	c.pos = p
	if c.mrk > p {
		c.mrk = markUnset
	}
	return nil
}

// setLimit moves the limit to l, clamping position down to l and
// discarding a mark beyond l.
func (c *cursor) setLimit(l int) error {
	if l < 0 || l > c.cap {
		return fmt.Errorf("%w: limit %d outside [0, %d]", ErrInvalid, l, c.cap)
	}
	c.lim = l
	if c.pos > l {
		c.pos = l
	}
	if c.mrk > l {
		c.mrk = markUnset
	}
	return nil
}

// mark saves the current position for a later reset.
func (c *cursor) mark() {
	c.mrk = c.pos
}

// reset moves the position back to the saved mark.
func (c *cursor) reset() error {
	if c.mrk < 0 {
		return fmt.Errorf("%w: mark not set", ErrInvalid)
	}
	c.pos = c.mrk
	return nil
}

// clear prepares the cursor for a fresh sequence of writes. The bytes
// themselves are untouched.
func (c *cursor) clear() {
	c.pos = 0
	c.lim = c.cap
	c.mrk = markUnset
}

// flip switches from write mode to read mode: what was written becomes
// the readable window.
func (c *cursor) flip() {
	c.lim = c.pos
	c.pos = 0
	c.mrk = markUnset
}

// rewind rereads from the start within the current limit.
func (c *cursor) rewind() {
	c.pos = 0
	c.mrk = markUnset
}

func (c *cursor) remaining() int {
	return c.lim - c.pos
}

func (c *cursor) hasRemaining() bool {
	return c.pos < c.lim
}
