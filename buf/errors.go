// File: buf/errors.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Recoverable error taxonomy for buffer operations. Every violated
// precondition is reported synchronously at the offending call and
// wraps exactly one of these sentinels, so callers dispatch with
// errors.Is. Lifecycle misuse of native memory (released-region
// access, double release) is a programming error and panics instead.

package buf

import "errors"

var (
	// ErrUnderflow reports a relative read that needs more bytes than
	// remain between position and limit.
	ErrUnderflow = errors.New("buf: buffer underflow")

	// ErrOverflow reports a relative write that needs more space than
	// remains between position and limit.
	ErrOverflow = errors.New("buf: buffer overflow")

	// ErrOutOfRange reports an absolute index outside [0, limit).
	ErrOutOfRange = errors.New("buf: index out of range")

	// ErrInvalid reports a cursor or constructor argument that would
	// break the invariant 0 <= mark <= position <= limit <= capacity.
	ErrInvalid = errors.New("buf: invalid argument")

	// ErrReadOnly reports any mutation attempted through a read-only
	// buffer.
	ErrReadOnly = errors.New("buf: read-only buffer")

	// ErrNoArray reports Array/ArrayOffset on a buffer whose backing
	// array is not accessible (direct backing, or read-only view).
	ErrNoArray = errors.New("buf: backing array not accessible")
)
