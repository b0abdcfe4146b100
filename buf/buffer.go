// File: buf/buffer.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Buffer composes a cursor with a storage backing, a byte order and a
// read-only flag. Relative operations move the position; absolute
// operations do not. Bulk operations validate the whole transfer
// before touching a single byte, so a failed call leaves no partial
// mutation behind.

package buf

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Buffer is a fixed-capacity byte buffer. The zero value is not
// usable; construct through Alloc, Wrap, WrapAt, AllocDirect or
// WrapRegion, or derive one through a view operation.
type Buffer struct {
	cursor
	store    storage
	order    binary.ByteOrder
	readOnly bool
	owner    bool
}

// Alloc creates a heap-backed buffer over a fresh zero-initialized
// array. Position is 0, limit equals capacity.
func Alloc(capacity int) (*Buffer, error) {
	if capacity < 0 {
		return nil, fmt.Errorf("%w: negative capacity %d", ErrInvalid, capacity)
	}
	return &Buffer{
		cursor: newCursor(capacity),
		store:  heapStorage(make([]byte, capacity), 0),
		order:  binary.BigEndian,
	}, nil
}

// Wrap creates a heap-backed buffer borrowing p. The buffer and the
// caller alias the same bytes; the slice's true lifetime belongs to
// the longest-lived holder.
func Wrap(p []byte) *Buffer {
	return &Buffer{
		cursor: newCursor(len(p)),
		store:  heapStorage(p, 0),
		order:  binary.BigEndian,
	}
}

// WrapAt wraps p with capacity len(p), position off and limit
// off+length.
func WrapAt(p []byte, off, length int) (*Buffer, error) {
	if off < 0 || length < 0 || off+length > len(p) {
		return nil, fmt.Errorf("%w: window [%d, %d+%d) outside array of %d bytes",
			ErrInvalid, off, off, length, len(p))
	}
	b := Wrap(p)
	b.lim = off + length
	b.pos = off
	return b, nil
}

// Capacity reports the fixed maximum byte count.
func (b *Buffer) Capacity() int { return b.cap }

// Position reports the index the next relative operation uses.
func (b *Buffer) Position() int { return b.pos }

// Limit reports the first index that must not be read or written.
func (b *Buffer) Limit() int { return b.lim }

// Remaining reports limit minus position.
func (b *Buffer) Remaining() int { return b.remaining() }

// HasRemaining reports whether any byte remains between position and
// limit.
func (b *Buffer) HasRemaining() bool { return b.hasRemaining() }

// SetPosition moves the position; a mark beyond it is discarded.
func (b *Buffer) SetPosition(p int) error { return b.setPosition(p) }

// SetLimit moves the limit, clamping position and mark as needed.
func (b *Buffer) SetLimit(l int) error { return b.setLimit(l) }

// Mark saves the current position for Reset.
func (b *Buffer) Mark() *Buffer {
	b.mark()
	return b
}

// Reset restores the position saved by Mark.
func (b *Buffer) Reset() error { return b.reset() }

// Clear resets the cursor for writing: position 0, limit capacity,
// mark dropped.
func (b *Buffer) Clear() *Buffer {
	b.clear()
	return b
}

// Flip switches from writing to reading: limit moves to position,
// position to 0.
func (b *Buffer) Flip() *Buffer {
	b.flip()
	return b
}

// Rewind moves the position back to 0 within the current limit.
func (b *Buffer) Rewind() *Buffer {
	b.rewind()
	return b
}

// Order returns the byte order applied by the typed accessors.
func (b *Buffer) Order() binary.ByteOrder { return b.order }

// SetOrder changes the byte order applied by the typed accessors.
func (b *Buffer) SetOrder(bo binary.ByteOrder) *Buffer {
	b.order = bo
	return b
}

// IsReadOnly reports whether mutation through this instance is
// rejected. Read-only is a property of the instance, not the storage.
func (b *Buffer) IsReadOnly() bool { return b.readOnly }

// IsDirect reports whether the backing is a native memory region.
func (b *Buffer) IsDirect() bool { return b.store.direct() }

// Get reads the byte at the position and advances by one.
func (b *Buffer) Get() (byte, error) {
	if !b.hasRemaining() {
		return 0, ErrUnderflow
	}
	v := b.store.region(b.cap)[b.pos]
	b.pos++
	return v, nil
}

// Put writes v at the position and advances by one.
func (b *Buffer) Put(v byte) error {
	if b.readOnly {
		return ErrReadOnly
	}
	if !b.hasRemaining() {
		return ErrOverflow
	}
	b.store.region(b.cap)[b.pos] = v
	b.pos++
	return nil
}

// GetAt reads the byte at absolute index i without moving the cursor.
func (b *Buffer) GetAt(i int) (byte, error) {
	if i < 0 || i >= b.lim {
		return 0, fmt.Errorf("%w: index %d outside [0, %d)", ErrOutOfRange, i, b.lim)
	}
	return b.store.region(b.cap)[i], nil
}

// PutAt writes v at absolute index i without moving the cursor.
func (b *Buffer) PutAt(i int, v byte) error {
	if b.readOnly {
		return ErrReadOnly
	}
	if i < 0 || i >= b.lim {
		return fmt.Errorf("%w: index %d outside [0, %d)", ErrOutOfRange, i, b.lim)
	}
	b.store.region(b.cap)[i] = v
	return nil
}

// GetBytes fills dst from the position and advances by len(dst).
// Fails with ErrUnderflow before any byte moves if dst is longer than
// the remaining window.
func (b *Buffer) GetBytes(dst []byte) error {
	if len(dst) > b.remaining() {
		return fmt.Errorf("%w: need %d bytes, %d remaining", ErrUnderflow, len(dst), b.remaining())
	}
	copy(dst, b.store.region(b.cap)[b.pos:])
	b.pos += len(dst)
	return nil
}

// PutBytes copies src to the position and advances by len(src).
// Fails with ErrOverflow before any byte moves if src is longer than
// the remaining window.
func (b *Buffer) PutBytes(src []byte) error {
	if b.readOnly {
		return ErrReadOnly
	}
	if len(src) > b.remaining() {
		return fmt.Errorf("%w: need %d bytes, %d remaining", ErrOverflow, len(src), b.remaining())
	}
	copy(b.store.region(b.cap)[b.pos:], src)
	b.pos += len(src)
	return nil
}

// Read drains up to len(p) remaining bytes into p, advancing the
// position. Returns io.EOF once nothing remains. Implements io.Reader
// so a buffer can be handed straight to decoding layers.
func (b *Buffer) Read(p []byte) (int, error) {
	if !b.hasRemaining() {
		return 0, io.EOF
	}
	n := copy(p, b.store.region(b.cap)[b.pos:b.lim])
	b.pos += n
	return n, nil
}

// Write copies as much of p as fits before the limit, advancing the
// position. A short write reports ErrOverflow per the io.Writer
// contract.
func (b *Buffer) Write(p []byte) (int, error) {
	if b.readOnly {
		return 0, ErrReadOnly
	}
	n := copy(b.store.region(b.cap)[b.pos:b.lim], p)
	b.pos += n
	if n < len(p) {
		return n, ErrOverflow
	}
	return n, nil
}

// HasArray reports whether Array can expose the backing array:
// writable heap backing only.
func (b *Buffer) HasArray() bool {
	return !b.store.direct() && !b.readOnly
}

// Array returns the full backing array shared with every alias.
// Mutations through it are visible to all of them.
func (b *Buffer) Array() ([]byte, error) {
	if !b.HasArray() {
		return nil, ErrNoArray
	}
	return b.store.data, nil
}

// ArrayOffset returns the offset of this buffer's first byte within
// the array returned by Array.
func (b *Buffer) ArrayOffset() (int, error) {
	if !b.HasArray() {
		return 0, ErrNoArray
	}
	return b.store.off, nil
}

var (
	_ io.Reader = (*Buffer)(nil)
	_ io.Writer = (*Buffer)(nil)
)
