// Package buf
// Author: momentics <momentics@gmail.com>
//
// Fixed-capacity byte-buffer engine for staging binary data between
// producers and IO layers: a position/limit/mark cursor over a heap or
// native (mmap/VirtualAlloc) region, endian-aware typed accessors, and
// O(1) aliasing views (slice, duplicate, read-only, compact).
//
// Buffers never grow. A single Buffer is not safe for concurrent
// mutation; aliased views sharing one region must be synchronized by
// the caller. See cursor.go, codec.go, views.go, direct_linux.go for
// implementation details.
package buf
