// File: buf/direct.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Direct (native-memory) buffers. AllocDirect maps a zeroed region
// from the OS and returns the one buffer allowed to release it;
// WrapRegion borrows caller-owned memory that the engine must never
// free. Release is one-shot: it flips the allocation's shared token,
// after which any access through this buffer or any alias panics
// instead of touching freed memory. Release misuse (double release,
// releasing a view or a wrapped region) is a programming error and
// panics as well.

package buf

import (
	"encoding/binary"
	"fmt"
	"unsafe"
)

// AllocDirect creates a buffer over a fresh zero-initialized native
// region. The returned buffer owns the region and must be released
// exactly once when no alias needs it anymore.
func AllocDirect(capacity int) (*Buffer, error) {
	if capacity < 0 {
		return nil, fmt.Errorf("%w: negative capacity %d", ErrInvalid, capacity)
	}
	data, unmap, err := mapRegion(capacity)
	if err != nil {
		return nil, fmt.Errorf("buf: native allocation of %d bytes: %w", capacity, err)
	}
	return &Buffer{
		cursor: newCursor(capacity),
		store:  directStorage(data, &regionToken{unmap: unmap}),
		order:  binary.BigEndian,
		owner:  true,
	}, nil
}

// WrapRegion creates a non-owning buffer over n bytes of raw memory
// starting at ptr. The caller keeps responsibility for the region's
// lifetime, which must outlive every buffer built from it.
func WrapRegion(ptr unsafe.Pointer, n int) (*Buffer, error) {
	if ptr == nil || n < 0 {
		return nil, fmt.Errorf("%w: nil region or negative length %d", ErrInvalid, n)
	}
	return &Buffer{
		cursor: newCursor(n),
		store:  directStorage(unsafe.Slice((*byte)(ptr), n), &regionToken{}),
		order:  binary.BigEndian,
	}, nil
}

// Release returns the native region to the OS. Defined only on the
// buffer AllocDirect returned; views, duplicates and wrapped regions
// never own memory. After Release every alias of the region is dead.
func (b *Buffer) Release() {
	if !b.store.direct() || !b.owner {
		panic("buf: release of non-owning buffer")
	}
	if b.store.token.released.Swap(true) {
		panic("buf: double release")
	}
	if err := b.store.token.unmap(b.store.data); err != nil {
		panic(fmt.Sprintf("buf: native release failed: %v", err))
	}
}
