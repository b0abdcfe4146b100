//go:build linux
// +build linux

// File: buf/direct_linux.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Linux native allocator: anonymous private mmap, zero-filled by the
// kernel, returned with munmap.

package buf

import "golang.org/x/sys/unix"

// mapRegion maps n zeroed bytes and returns the region together with
// its release function.
func mapRegion(n int) ([]byte, func([]byte) error, error) {
	if n == 0 {
		return nil, func([]byte) error { return nil }, nil
	}
	data, err := unix.Mmap(-1, 0, n,
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, nil, err
	}
	return data, unix.Munmap, nil
}
