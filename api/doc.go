// Package api
// Author: momentics <momentics@gmail.com>
//
// Shared contracts of hioload-buf: pooling interfaces and their
// statistics types. The buffer engine itself lives in buf; pool
// implements these contracts over it.
package api
