// Copyright 2025 The Logcrunch Authors. All rights reserved.
// Use of this source code is governed by a MIT license
// that can be found in the LICENSE file.

package zstr

import (
	"unsafe"

	"github.com/KirilStrezikozin/zstring/pkg/alloc"
)

// Buffer accumulates bytes into storage reserved up front from an allocator.
// The storage always has room for the terminator, so Finish never allocates.
type Buffer struct {
	buf   []byte
	n     int
	owner alloc.Allocator
}

// NewBuffer reserves size content bytes plus one for the terminator.
func NewBuffer(a alloc.Allocator, size int) (*Buffer, error) {
	if a == nil {
		return nil, &Error{Op: "buffer", Err: ErrNoAllocator}
	}
	if size < 0 {
		return nil, &Error{Op: "buffer", Err: ErrInvalidInput}
	}

	buf, err := a.Alloc(size + 1)
	if err != nil {
		return nil, allocFailure("buffer", err)
	}

	return &Buffer{buf: buf, owner: a}, nil
}

func (b *Buffer) Len() int {
	return b.n
}

// Available returns how many more bytes fit before the terminator.
func (b *Buffer) Available() int {
	if b.buf == nil {
		return 0
	}
	return len(b.buf) - 1 - b.n
}

// Write appends p. Writing past the reserved size copies nothing and fails
// with ErrBufferFull.
func (b *Buffer) Write(p []byte) (int, error) {
	if len(p) > b.Available() {
		return 0, &Error{Op: "write", Err: ErrBufferFull}
	}
	b.n += copy(b.buf[b.n:], p)
	return len(p), nil
}

func (b *Buffer) WriteString(s string) (int, error) {
	return b.Write(unsafe.Slice(unsafe.StringData(s), len(s)))
}

func (b *Buffer) WriteByte(c byte) error {
	if b.Available() < 1 {
		return &Error{Op: "write", Err: ErrBufferFull}
	}
	b.buf[b.n] = c
	b.n++
	return nil
}

// String returns the bytes written so far.
// Like [strings.Builder.String], it does not allocate a new string.
func (b *Buffer) String() string {
	return unsafe.String(unsafe.SliceData(b.buf), b.n)
}

// Finish terminates the written bytes and hands the storage to a new owned
// String. Unused reserved bytes stay in the capacity of the String's buffer,
// so releasing it frees the whole allocation. The Buffer is empty afterwards.
func (b *Buffer) Finish() *String {
	if b.buf == nil {
		return &String{}
	}

	b.buf[b.n] = 0
	s := &String{buf: b.buf[:b.n+1], owner: b.owner}
	b.buf, b.n, b.owner = nil, 0, nil
	return s
}

// Discard frees the reserved storage without producing a String.
func (b *Buffer) Discard() {
	if b.buf != nil && b.owner != nil {
		b.owner.Free(b.buf)
	}
	b.buf, b.n, b.owner = nil, 0, nil
}
