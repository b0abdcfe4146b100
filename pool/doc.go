// Package pool
// Author: momentics <momentics@gmail.com>
//
// Size-classed pooling of heap-backed staging buffers from hioload-buf.
// A Manager routes each request to a per-class free list, so fixed
// capacities recycle instead of pressuring the GC, and exposes
// allocation accounting via Stats. See bufferpool.go, batch.go for
// implementation details.
package pool
