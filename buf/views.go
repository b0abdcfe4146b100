// File: buf/views.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Aliasing view operations. Slice, Duplicate and AsReadOnly derive a
// new Buffer over the same storage in O(1): mutation through one alias
// is visible through all of them at the same absolute offset, each
// alias moves its own cursor. Views never own native memory; only the
// buffer returned by AllocDirect may release it. Compact rearranges
// this buffer's bytes in place, which the other aliases also observe.

package buf

import (
	"encoding/binary"
	"fmt"
)

// Slice returns a buffer over the remaining window [position, limit).
// The slice's capacity and limit equal the caller's remaining count,
// its position is 0 and its mark unset. Byte order resets to
// BigEndian; read-only is inherited.
func (b *Buffer) Slice() *Buffer {
	rem := b.remaining()
	return &Buffer{
		cursor:   newCursor(rem),
		store:    b.store.window(b.pos),
		order:    binary.BigEndian,
		readOnly: b.readOnly,
	}
}

// SliceRange returns a buffer over the window [index, index+length) of
// the caller's addressable range.
func (b *Buffer) SliceRange(index, length int) (*Buffer, error) {
	if index < 0 || length < 0 || index > b.lim || index+length > b.lim {
		return nil, fmt.Errorf("%w: slice [%d, %d+%d) outside [0, %d]",
			ErrInvalid, index, index, length, b.lim)
	}
	return &Buffer{
		cursor:   newCursor(length),
		store:    b.store.window(index),
		order:    binary.BigEndian,
		readOnly: b.readOnly,
	}, nil
}

// Duplicate returns a buffer with the caller's exact position, limit,
// mark and capacity over the same storage. Cursor moves on either side
// do not cross-affect. Byte order resets to BigEndian.
func (b *Buffer) Duplicate() *Buffer {
	return &Buffer{
		cursor:   b.cursor,
		store:    b.store,
		order:    binary.BigEndian,
		readOnly: b.readOnly,
	}
}

// AsReadOnly behaves as Duplicate with the read-only flag forced on.
// On an already read-only buffer it is exactly Duplicate.
func (b *Buffer) AsReadOnly() *Buffer {
	d := b.Duplicate()
	d.readOnly = true
	return d
}

// Compact moves the unread window [position, limit) to the front of
// the buffer and opens the rest for writing: position becomes
// limit-position, limit becomes capacity, the mark is dropped. The
// copy runs left to right, so overlapping source and destination are
// handled.
func (b *Buffer) Compact() error {
	if b.readOnly {
		return ErrReadOnly
	}
	w := b.store.region(b.cap)
	copy(w, w[b.pos:b.lim])
	b.pos = b.lim - b.pos
	b.lim = b.cap
	b.mrk = markUnset
	return nil
}
