// Copyright 2025 The Logcrunch Authors. All rights reserved.
// Use of this source code is governed by a MIT license
// that can be found in the LICENSE file.

package alloc

import "sync"

// Failing wraps another allocator and starts failing once a given number of
// allocations has succeeded. It is meant for exercising error paths.
type Failing struct {
	mu        sync.Mutex
	parent    Allocator
	failIndex int

	allocs int
	frees  int
}

// NewFailing returns an allocator whose allocation number failIndex
// (zero based) and every one after it fail with ErrInjectedFailure.
func NewFailing(parent Allocator, failIndex int) *Failing {
	return &Failing{parent: parent, failIndex: failIndex}
}

func (f *Failing) Alloc(n int) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.allocs >= f.failIndex {
		return nil, ErrInjectedFailure
	}

	buf, err := f.parent.Alloc(n)
	if err != nil {
		return nil, err
	}
	f.allocs++
	return buf, nil
}

func (f *Failing) Free(buf []byte) {
	f.mu.Lock()
	f.frees++
	f.mu.Unlock()

	f.parent.Free(buf)
}

// Allocs returns the number of successful allocations.
func (f *Failing) Allocs() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.allocs
}

func (f *Failing) Frees() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.frees
}
