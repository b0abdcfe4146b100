//go:build !linux && !windows
// +build !linux,!windows

// File: buf/direct_stub.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Fallback allocator for platforms without a wired native path. The
// region comes from the Go heap and release is a no-op; lifecycle
// semantics (ownership token, tombstone) stay identical.

package buf

// mapRegion allocates n zeroed bytes from the Go heap.
func mapRegion(n int) ([]byte, func([]byte) error, error) {
	return make([]byte, n), func([]byte) error { return nil }, nil
}
