// File: buf/compare.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Identity over the remaining region. Two buffers are equal when the
// bytes between their positions and limits match, regardless of
// capacity, backing kind or byte order; the hash honors the same
// region so equal buffers hash alike.

package buf

import (
	"bytes"
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Equal reports whether o's remaining content matches b's.
func (b *Buffer) Equal(o *Buffer) bool {
	if o == nil {
		return false
	}
	return bytes.Equal(
		b.store.region(b.cap)[b.pos:b.lim],
		o.store.region(o.cap)[o.pos:o.lim],
	)
}

// Hash returns the xxHash64 digest of the remaining region.
func (b *Buffer) Hash() uint64 {
	return xxhash.Sum64(b.store.region(b.cap)[b.pos:b.lim])
}

// String summarizes cursor state and backing kind for logs and test
// failures; it never dumps content.
func (b *Buffer) String() string {
	kind := "heap"
	if b.store.direct() {
		kind = "direct"
	}
	ro := ""
	if b.readOnly {
		ro = " ro"
	}
	return fmt.Sprintf("buf.Buffer[pos=%d lim=%d cap=%d %s%s]", b.pos, b.lim, b.cap, kind, ro)
}
