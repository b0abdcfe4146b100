//go:build windows
// +build windows

// File: buf/direct_windows.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Windows native allocator: VirtualAlloc commit (zero-filled by the
// OS), released with VirtualFree(MEM_RELEASE).

package buf

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

// mapRegion commits n zeroed bytes and returns the region together
// with its release function.
func mapRegion(n int) ([]byte, func([]byte) error, error) {
	if n == 0 {
		return nil, func([]byte) error { return nil }, nil
	}
	addr, err := windows.VirtualAlloc(0, uintptr(n),
		windows.MEM_COMMIT|windows.MEM_RESERVE,
		windows.PAGE_READWRITE)
	if err != nil {
		return nil, nil, err
	}
	data := unsafe.Slice((*byte)(unsafe.Pointer(addr)), n)
	free := func(p []byte) error {
		return windows.VirtualFree(uintptr(unsafe.Pointer(&p[0])), 0, windows.MEM_RELEASE)
	}
	return data, free, nil
}
