// File: api/pool.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Abstract pooling APIs: reuse of staging buffers and of transient
// objects. Generic over the pooled type so implementations hand out
// concrete buffers without interface indirection on the hot path.

package api

// BufferPool manages reusable staging buffers of a concrete type B.
type BufferPool[B any] interface {
	// Get returns a buffer with capacity of at least size bytes.
	Get(size int) B

	// Put returns a buffer to the pool; the buffer must not be used
	// afterwards.
	Put(b B)

	// Stats exposes allocation accounting for observability.
	Stats() PoolStats
}

// ObjectPool provides pooling of transiently allocated objects.
type ObjectPool[T any] interface {
	// Get returns an available instance from the pool.
	Get() T

	// Put returns an instance for reuse.
	Put(obj T)
}

// PoolStats aggregates allocation and reuse counters.
type PoolStats struct {
	TotalAlloc int64
	TotalFree  int64
	InUse      int64
	PerClass   map[int]int64
}
