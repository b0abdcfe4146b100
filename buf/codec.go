// File: buf/codec.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Endian-aware typed accessors. Every multi-byte value travels through
// encoding/binary in the buffer's current order over a span validated
// up front: a relative form consumes exactly its width or fails whole,
// an absolute form never moves the cursor. Floats are the bit
// reinterpretation of the matching integer width (IEEE-754 binary32/
// binary64), never a value conversion.

package buf

import (
	"fmt"
	"math"
)

// span validates and claims n bytes at the position for reading,
// advancing past them.
func (b *Buffer) span(n int) ([]byte, error) {
	if b.remaining() < n {
		return nil, fmt.Errorf("%w: need %d bytes, %d remaining", ErrUnderflow, n, b.remaining())
	}
	p := b.pos
	b.pos += n
	return b.store.region(b.cap)[p : p+n], nil
}

// wspan validates and claims n bytes at the position for writing,
// advancing past them.
func (b *Buffer) wspan(n int) ([]byte, error) {
	if b.readOnly {
		return nil, ErrReadOnly
	}
	if b.remaining() < n {
		return nil, fmt.Errorf("%w: need %d bytes, %d remaining", ErrOverflow, n, b.remaining())
	}
	p := b.pos
	b.pos += n
	return b.store.region(b.cap)[p : p+n], nil
}

// spanAt validates n bytes at absolute index i for reading. Absolute
// access is bounded by the limit, same as the single-byte form.
func (b *Buffer) spanAt(i, n int) ([]byte, error) {
	if i < 0 || i+n > b.lim {
		return nil, fmt.Errorf("%w: %d bytes at index %d outside [0, %d)", ErrOutOfRange, n, i, b.lim)
	}
	return b.store.region(b.cap)[i : i+n], nil
}

// wspanAt validates n bytes at absolute index i for writing.
func (b *Buffer) wspanAt(i, n int) ([]byte, error) {
	if b.readOnly {
		return nil, ErrReadOnly
	}
	return b.spanAt(i, n)
}

// GetUint16 reads a 16-bit unsigned value (the 2-byte char width) and
// advances by 2.
func (b *Buffer) GetUint16() (uint16, error) {
	s, err := b.span(2)
	if err != nil {
		return 0, err
	}
	return b.order.Uint16(s), nil
}

// PutUint16 writes a 16-bit unsigned value and advances by 2.
func (b *Buffer) PutUint16(v uint16) error {
	s, err := b.wspan(2)
	if err != nil {
		return err
	}
	b.order.PutUint16(s, v)
	return nil
}

// GetUint16At reads a 16-bit unsigned value at absolute index i.
func (b *Buffer) GetUint16At(i int) (uint16, error) {
	s, err := b.spanAt(i, 2)
	if err != nil {
		return 0, err
	}
	return b.order.Uint16(s), nil
}

// PutUint16At writes a 16-bit unsigned value at absolute index i.
func (b *Buffer) PutUint16At(i int, v uint16) error {
	s, err := b.wspanAt(i, 2)
	if err != nil {
		return err
	}
	b.order.PutUint16(s, v)
	return nil
}

// GetInt16 reads a 16-bit signed value and advances by 2.
func (b *Buffer) GetInt16() (int16, error) {
	v, err := b.GetUint16()
	return int16(v), err
}

// PutInt16 writes a 16-bit signed value and advances by 2.
func (b *Buffer) PutInt16(v int16) error {
	return b.PutUint16(uint16(v))
}

// GetInt16At reads a 16-bit signed value at absolute index i.
func (b *Buffer) GetInt16At(i int) (int16, error) {
	v, err := b.GetUint16At(i)
	return int16(v), err
}

// PutInt16At writes a 16-bit signed value at absolute index i.
func (b *Buffer) PutInt16At(i int, v int16) error {
	return b.PutUint16At(i, uint16(v))
}

// GetUint32 reads a 32-bit unsigned value and advances by 4.
func (b *Buffer) GetUint32() (uint32, error) {
	s, err := b.span(4)
	if err != nil {
		return 0, err
	}
	return b.order.Uint32(s), nil
}

// PutUint32 writes a 32-bit unsigned value and advances by 4.
func (b *Buffer) PutUint32(v uint32) error {
	s, err := b.wspan(4)
	if err != nil {
		return err
	}
	b.order.PutUint32(s, v)
	return nil
}

// GetUint32At reads a 32-bit unsigned value at absolute index i.
func (b *Buffer) GetUint32At(i int) (uint32, error) {
	s, err := b.spanAt(i, 4)
	if err != nil {
		return 0, err
	}
	return b.order.Uint32(s), nil
}

// PutUint32At writes a 32-bit unsigned value at absolute index i.
func (b *Buffer) PutUint32At(i int, v uint32) error {
	s, err := b.wspanAt(i, 4)
	if err != nil {
		return err
	}
	b.order.PutUint32(s, v)
	return nil
}

// GetInt32 reads a 32-bit signed value and advances by 4.
func (b *Buffer) GetInt32() (int32, error) {
	v, err := b.GetUint32()
	return int32(v), err
}

// PutInt32 writes a 32-bit signed value and advances by 4.
func (b *Buffer) PutInt32(v int32) error {
	return b.PutUint32(uint32(v))
}

// GetInt32At reads a 32-bit signed value at absolute index i.
func (b *Buffer) GetInt32At(i int) (int32, error) {
	v, err := b.GetUint32At(i)
	return int32(v), err
}

// PutInt32At writes a 32-bit signed value at absolute index i.
func (b *Buffer) PutInt32At(i int, v int32) error {
	return b.PutUint32At(i, uint32(v))
}

// GetUint64 reads a 64-bit unsigned value and advances by 8.
func (b *Buffer) GetUint64() (uint64, error) {
	s, err := b.span(8)
	if err != nil {
		return 0, err
	}
	return b.order.Uint64(s), nil
}

// PutUint64 writes a 64-bit unsigned value and advances by 8.
func (b *Buffer) PutUint64(v uint64) error {
	s, err := b.wspan(8)
	if err != nil {
		return err
	}
	b.order.PutUint64(s, v)
	return nil
}

// GetUint64At reads a 64-bit unsigned value at absolute index i.
func (b *Buffer) GetUint64At(i int) (uint64, error) {
	s, err := b.spanAt(i, 8)
	if err != nil {
		return 0, err
	}
	return b.order.Uint64(s), nil
}

// PutUint64At writes a 64-bit unsigned value at absolute index i.
func (b *Buffer) PutUint64At(i int, v uint64) error {
	s, err := b.wspanAt(i, 8)
	if err != nil {
		return err
	}
	b.order.PutUint64(s, v)
	return nil
}

// GetInt64 reads a 64-bit signed value and advances by 8.
func (b *Buffer) GetInt64() (int64, error) {
	v, err := b.GetUint64()
	return int64(v), err
}

// PutInt64 writes a 64-bit signed value and advances by 8.
func (b *Buffer) PutInt64(v int64) error {
	return b.PutUint64(uint64(v))
}

// GetInt64At reads a 64-bit signed value at absolute index i.
func (b *Buffer) GetInt64At(i int) (int64, error) {
	v, err := b.GetUint64At(i)
	return int64(v), err
}

// PutInt64At writes a 64-bit signed value at absolute index i.
func (b *Buffer) PutInt64At(i int, v int64) error {
	return b.PutUint64At(i, uint64(v))
}

// GetFloat32 reads an IEEE-754 binary32 value and advances by 4.
func (b *Buffer) GetFloat32() (float32, error) {
	v, err := b.GetUint32()
	return math.Float32frombits(v), err
}

// PutFloat32 writes an IEEE-754 binary32 value and advances by 4.
func (b *Buffer) PutFloat32(v float32) error {
	return b.PutUint32(math.Float32bits(v))
}

// GetFloat32At reads an IEEE-754 binary32 value at absolute index i.
func (b *Buffer) GetFloat32At(i int) (float32, error) {
	v, err := b.GetUint32At(i)
	return math.Float32frombits(v), err
}

// PutFloat32At writes an IEEE-754 binary32 value at absolute index i.
func (b *Buffer) PutFloat32At(i int, v float32) error {
	return b.PutUint32At(i, math.Float32bits(v))
}

// GetFloat64 reads an IEEE-754 binary64 value and advances by 8.
func (b *Buffer) GetFloat64() (float64, error) {
	v, err := b.GetUint64()
	return math.Float64frombits(v), err
}

// PutFloat64 writes an IEEE-754 binary64 value and advances by 8.
func (b *Buffer) PutFloat64(v float64) error {
	return b.PutUint64(math.Float64bits(v))
}

// GetFloat64At reads an IEEE-754 binary64 value at absolute index i.
func (b *Buffer) GetFloat64At(i int) (float64, error) {
	v, err := b.GetUint64At(i)
	return math.Float64frombits(v), err
}

// PutFloat64At writes an IEEE-754 binary64 value at absolute index i.
func (b *Buffer) PutFloat64At(i int, v float64) error {
	return b.PutUint64At(i, math.Float64bits(v))
}
