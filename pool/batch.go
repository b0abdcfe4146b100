// File: pool/batch.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Batch accumulates staged buffers for hand-off to an IO layer in one
// go. Designed for single-goroutine use; no locks. Batch headers
// recycle through a SyncPool, buffer payloads through the Manager
// that produced them.

package pool

import "github.com/momentics/hioload-buf/buf"

// Batch holds a slice of staged buffers.
type Batch struct {
	buffers []*buf.Buffer
}

var batchHeaders = NewSyncPool(func() *Batch {
	return &Batch{buffers: make([]*buf.Buffer, 0, 16)}
})

// NewBatch takes a cleared batch header from the header pool.
func NewBatch() *Batch {
	return batchHeaders.Get()
}

// Append adds b to the batch.
func (bb *Batch) Append(b *buf.Buffer) {
	bb.buffers = append(bb.buffers, b)
}

// Len reports current batch size.
func (bb *Batch) Len() int {
	return len(bb.buffers)
}

// At returns the i-th buffer.
func (bb *Batch) At(i int) *buf.Buffer {
	return bb.buffers[i]
}

// Underlying returns the raw slice for the consuming layer.
func (bb *Batch) Underlying() []*buf.Buffer {
	return bb.buffers
}

// Reset clears the batch but retains capacity. The buffers themselves
// are untouched.
func (bb *Batch) Reset() {
	bb.buffers = bb.buffers[:0]
}

// Release returns every buffer to m, then recycles the header. The
// batch must not be used afterwards.
func (bb *Batch) Release(m *Manager) {
	for _, b := range bb.buffers {
		m.Put(b)
	}
	bb.Reset()
	batchHeaders.Put(bb)
}
