// Copyright 2025 The Logcrunch Authors. All rights reserved.
// Use of this source code is governed by a MIT license
// that can be found in the LICENSE file.

// Package alloc defines the allocation capability consumed by zero-terminated
// strings and a few implementations of it.
package alloc

import (
	"errors"
	"unsafe"
)

var (
	ErrOutOfMemory     = errors.New("out of memory")
	ErrInjectedFailure = errors.New("injected allocation failure")
	ErrInvalidSize     = errors.New("invalid allocation size")
)

// Allocator hands out byte buffers and takes them back.
//
// Alloc returns a buffer whose length and capacity are both n. Free must be
// called at most once per allocation, with a slice that starts at the first
// byte of the allocation and keeps its capacity; its length may be shorter.
type Allocator interface {
	Alloc(n int) ([]byte, error)
	Free(buf []byte)
}

// Heap delegates to the Go runtime. Free is a no-op and the garbage collector
// reclaims the memory.
type Heap struct{}

func (Heap) Alloc(n int) ([]byte, error) {
	if n < 0 {
		return nil, ErrInvalidSize
	}
	return make([]byte, n), nil
}

func (Heap) Free([]byte) {}

// Default is the allocator used when callers have no preference.
var Default Allocator = Heap{}

// identity returns the address of the first byte of buf, or 0 for a buffer
// with no backing array.
func identity(buf []byte) uintptr {
	if cap(buf) == 0 {
		return 0
	}
	return uintptr(unsafe.Pointer(unsafe.SliceData(buf)))
}
