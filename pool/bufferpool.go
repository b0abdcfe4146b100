// File: pool/bufferpool.go
// Package pool implements size-classed buffer pooling over buf.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package pool

import (
	"sync"
	"sync/atomic"

	"github.com/eapache/queue"

	"github.com/momentics/hioload-buf/api"
	"github.com/momentics/hioload-buf/buf"
)

// Predefined (power-of-two) buffer size classes (bytes).
// This table can be tuned for deployment needs.
var sizeClasses = [...]int{
	2 * 1024,        // 2K
	4 * 1024,        // 4K
	8 * 1024,        // 8K
	16 * 1024,       // 16K
	32 * 1024,       // 32K
	64 * 1024,       // 64K
	128 * 1024,      // 128K
	256 * 1024,      // 256K
	512 * 1024,      // 512K
	1 * 1024 * 1024, // 1M
}

// defaultPoolCapacity bounds each per-class free list; beyond it,
// returned buffers are dropped for the GC to reclaim.
const defaultPoolCapacity = 4096

// classUpperBound returns the smallest class >= requested size.
func classUpperBound(size int) int {
	for _, c := range sizeClasses {
		if size <= c {
			return c
		}
	}
	return sizeClasses[len(sizeClasses)-1] // fallback: biggest class
}

// classPool recycles heap buffers of one fixed capacity. The free
// list is a FIFO queue guarded by a mutex (the queue itself is not
// thread-safe).
type classPool struct {
	size int

	mu   sync.Mutex
	free *queue.Queue // of *buf.Buffer

	totalAlloc atomic.Int64
	totalFree  atomic.Int64
}

func newClassPool(size int) *classPool {
	return &classPool{size: size, free: queue.New()}
}

// Get returns a cleared buffer with capacity p.size and limit set to
// the requested size.
func (p *classPool) Get(size int) *buf.Buffer {
	if size > p.size {
		size = p.size
	}
	p.mu.Lock()
	var b *buf.Buffer
	if p.free.Length() > 0 {
		b = p.free.Remove().(*buf.Buffer)
	}
	p.mu.Unlock()

	if b == nil {
		b, _ = buf.Alloc(p.size)
		p.totalAlloc.Add(1)
	}
	b.Clear()
	b.SetLimit(size) // size <= capacity, cannot fail
	return b
}

// Put returns b to the free list; b must not be used afterwards.
// Buffers beyond the list capacity are dropped.
func (p *classPool) Put(b *buf.Buffer) {
	if b == nil || b.Capacity() != p.size || !b.HasArray() {
		return
	}
	b.Clear()
	p.mu.Lock()
	if p.free.Length() < defaultPoolCapacity {
		p.free.Add(b)
		p.mu.Unlock()
		p.totalFree.Add(1)
		return
	}
	p.mu.Unlock()
}

func (p *classPool) Stats() api.PoolStats {
	alloc := p.totalAlloc.Load()
	freed := p.totalFree.Load()
	return api.PoolStats{
		TotalAlloc: alloc,
		TotalFree:  freed,
		InUse:      alloc - freed,
	}
}

var _ api.BufferPool[*buf.Buffer] = (*classPool)(nil)

// Manager routes requests to per-class pools, lazily creating each
// class on first use.
type Manager struct {
	mu    sync.RWMutex
	class map[int]*classPool
}

// NewManager creates an empty pool manager.
func NewManager() *Manager {
	return &Manager{class: make(map[int]*classPool)}
}

// getOrCreatePool returns the subpool for a class, lazily allocating
// on first use.
func (m *Manager) getOrCreatePool(class int) *classPool {
	m.mu.RLock()
	p, ok := m.class[class]
	m.mu.RUnlock()
	if ok {
		return p
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if p, ok = m.class[class]; ok {
		return p
	}
	p = newClassPool(class)
	m.class[class] = p
	return p
}

// Get returns a pooled buffer with capacity of at least size bytes.
func (m *Manager) Get(size int) *buf.Buffer {
	return m.getOrCreatePool(classUpperBound(size)).Get(size)
}

// Put routes b back to its class pool by capacity.
func (m *Manager) Put(b *buf.Buffer) {
	if b == nil {
		return
	}
	m.getOrCreatePool(b.Capacity()).Put(b)
}

// Stats aggregates counters across classes; PerClass maps class size
// to buffers currently in use.
func (m *Manager) Stats() api.PoolStats {
	out := api.PoolStats{PerClass: make(map[int]int64)}
	m.mu.RLock()
	defer m.mu.RUnlock()
	for size, p := range m.class {
		s := p.Stats()
		out.TotalAlloc += s.TotalAlloc
		out.TotalFree += s.TotalFree
		out.InUse += s.InUse
		out.PerClass[size] = s.InUse
	}
	return out
}

var _ api.BufferPool[*buf.Buffer] = (*Manager)(nil)
