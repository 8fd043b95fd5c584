// Copyright 2025 The Logcrunch Authors. All rights reserved.
// Use of this source code is governed by a MIT license
// that can be found in the LICENSE file.

package alloc

import "sync"

// Fixed is a bump allocator over a caller provided region. Allocations never
// move and are never individually reclaimed, except that freeing the most
// recent allocation gives its bytes back.
type Fixed struct {
	mu    sync.Mutex
	arena []byte
	end   int
}

func NewFixed(arena []byte) *Fixed {
	return &Fixed{arena: arena}
}

// NewFixedSize allocates a region of size bytes from the Go heap.
func NewFixedSize(size int) *Fixed {
	return NewFixed(make([]byte, size))
}

func (f *Fixed) Alloc(n int) ([]byte, error) {
	if n < 0 {
		return nil, ErrInvalidSize
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if n > len(f.arena)-f.end {
		return nil, ErrOutOfMemory
	}

	start := f.end
	f.end += n
	buf := f.arena[start:f.end:f.end]
	clear(buf)
	return buf, nil
}

func (f *Fixed) Free(buf []byte) {
	if cap(buf) == 0 || len(f.arena) == 0 {
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	base := identity(f.arena)
	p := identity(buf)
	if p < base || p >= base+uintptr(len(f.arena)) {
		return // not ours
	}

	start := int(p - base)
	if start+cap(buf) == f.end {
		f.end = start
	}
}

// Reset releases every allocation at once. Buffers handed out before Reset
// must not be used afterwards.
func (f *Fixed) Reset() {
	f.mu.Lock()
	f.end = 0
	f.mu.Unlock()
}

func (f *Fixed) Used() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.end
}

func (f *Fixed) Cap() int {
	return len(f.arena)
}
