// File: buf/storage.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Storage backing shared by heap and direct buffers. Both variants
// address a []byte window; what differs is who owns the bytes and how
// they die. Direct regions carry a per-allocation token shared by
// every alias: one released flag, checked on every access path, never
// duplicated into views.

package buf

import "sync/atomic"

// regionToken is the ownership token of one native allocation. Views
// and duplicates share the parent's token; only the buffer created by
// AllocDirect may flip it.
type regionToken struct {
	released atomic.Bool
	unmap    func([]byte) error
}

// storage is a closed two-variant union: heap (token == nil) or
// direct (token != nil). data is the full backing region; a buffer
// addresses the window data[off : off+capacity].
type storage struct {
	data  []byte
	off   int
	token *regionToken
}

func heapStorage(data []byte, off int) storage {
	return storage{data: data, off: off}
}

func directStorage(data []byte, tok *regionToken) storage {
	return storage{data: data, token: tok}
}

func (s *storage) direct() bool {
	return s.token != nil
}

// region returns the addressable window. Access to a released native
// region is a fatal programming error, not a recoverable one: the
// memory is gone and any read would be use-after-free.
func (s *storage) region(capacity int) []byte {
	if s.token != nil && s.token.released.Load() {
		panic("buf: access to released buffer")
	}
	return s.data[s.off : s.off+capacity]
}

// window derives the storage of a view starting delta bytes into this
// window. The token is shared, never copied.
func (s *storage) window(delta int) storage {
	return storage{data: s.data, off: s.off + delta, token: s.token}
}
