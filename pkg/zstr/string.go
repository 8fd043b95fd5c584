// Copyright 2025 The Logcrunch Authors. All rights reserved.
// Use of this source code is governed by a MIT license
// that can be found in the LICENSE file.

// Package zstr implements zero-terminated byte strings with explicit
// ownership.
//
// A String either borrows its buffer (literals, foreign memory, caller owned
// slices) or owns it, in which case the buffer was obtained from an
// [alloc.Allocator] and is returned to it exactly once by [String.Release].
// Every live String keeps a zero byte after its content, so [String.Ptr] can
// be passed to APIs expecting C strings.
//
// Operations never modify their operands. Results are new owned Strings that
// the caller must release.
package zstr

import (
	"runtime"
	"unsafe"

	"github.com/KirilStrezikozin/zstring/pkg/alloc"
)

// nul backs the pointer of empty Strings. It must never be written.
var nul byte

// String is a zero-terminated byte string. The zero value is the empty,
// borrowed String, which is also the state every String is left in after
// Release or TakeBuffer.
//
// XXX: String is not thread-safe.
type String struct {
	buf   []byte // content followed by a single zero byte, or nil
	owner alloc.Allocator

	cleanup runtime.Cleanup
	managed bool
}

func validate(op string, p []byte) error {
	if len(p) == 0 || p[len(p)-1] != 0 {
		return &Error{Op: op, Err: ErrInvalidInput}
	}
	return nil
}

// Borrow wraps p, which must end in a zero byte, without copying it. The
// caller keeps responsibility for p and must not modify it while the String
// is in use.
func Borrow(p []byte) (*String, error) {
	if err := validate("borrow", p); err != nil {
		return nil, err
	}
	return &String{buf: p}, nil
}

// Literal wraps a zero-terminated Go string, such as "hello\x00", without
// copying it. The resulting buffer must be treated as read-only.
func Literal(s string) (*String, error) {
	if len(s) == 0 || s[len(s)-1] != 0 {
		return nil, &Error{Op: "literal", Err: ErrInvalidInput}
	}
	return &String{buf: unsafe.Slice(unsafe.StringData(s), len(s))}, nil
}

// FromPointer wraps a foreign zero-terminated byte sequence by scanning for
// its terminator. The memory stays owned by whoever provided p.
func FromPointer(p *byte) (*String, error) {
	if p == nil {
		return nil, &Error{Op: "from pointer", Err: ErrInvalidInput}
	}

	n := 0
	for *(*byte)(unsafe.Add(unsafe.Pointer(p), n)) != 0 {
		n++
	}
	if n == 0 {
		return nil, &Error{Op: "from pointer", Err: ErrInvalidInput}
	}

	return &String{buf: unsafe.Slice(p, n+1)}, nil
}

// Adopt takes ownership of p, which must end in a zero byte and must have
// been allocated by a. Releasing the String frees p through a.
func Adopt(a alloc.Allocator, p []byte) (*String, error) {
	if a == nil {
		return nil, &Error{Op: "adopt", Err: ErrNoAllocator}
	}
	if err := validate("adopt", p); err != nil {
		return nil, err
	}
	return &String{buf: p, owner: a}, nil
}

// CopyBytes copies p into storage allocated from a and terminates it. A
// terminator already present at the end of p is not duplicated.
func CopyBytes(a alloc.Allocator, p []byte) (*String, error) {
	if len(p) == 0 {
		return nil, &Error{Op: "copy", Err: ErrEmptyInput}
	}
	if p[len(p)-1] == 0 {
		p = p[:len(p)-1]
	}
	return copyContent("copy", a, p)
}

func CopyString(a alloc.Allocator, s string) (*String, error) {
	return CopyBytes(a, unsafe.Slice(unsafe.StringData(s), len(s)))
}

// Copy copies the content of other into storage allocated from a.
func Copy(a alloc.Allocator, other *String) (*String, error) {
	return CopyBytes(a, other.Bytes())
}

func copyContent(op string, a alloc.Allocator, content []byte) (*String, error) {
	if a == nil {
		return nil, &Error{Op: op, Err: ErrNoAllocator}
	}

	b, err := NewBuffer(a, len(content))
	if err != nil {
		return nil, retag(op, err)
	}
	b.Write(content)
	return b.Finish(), nil
}

// retag renames the operation of an *Error produced by a helper.
func retag(op string, err error) error {
	if e, ok := err.(*Error); ok {
		return &Error{Op: op, Err: e.Err}
	}
	return &Error{Op: op, Err: err}
}

// Release frees the buffer through its owner, if any, and resets s to the
// empty borrowed String. Releasing an already released String does nothing.
func (s *String) Release() {
	s.stopCleanup()
	if s.owner != nil && s.buf != nil {
		s.owner.Free(s.buf)
	}
	*s = String{}
}

// TakeBuffer hands the terminated buffer to the caller, who becomes
// responsible for it, and resets s without freeing anything. For a borrowed
// String the result is the borrowed memory itself. When s came from Literal
// that memory is immutable string data, and writing to it crashes the
// program.
func (s *String) TakeBuffer() []byte {
	s.stopCleanup()
	buf := s.buf
	*s = String{}
	if buf == nil {
		return []byte{0}
	}
	return buf
}

type ownedBuffer struct {
	buf   []byte
	owner alloc.Allocator
}

func freeBuffer(b ownedBuffer) {
	b.owner.Free(b.buf)
}

// Managed arranges for the buffer to be freed if s becomes unreachable while
// still owning it. Release and TakeBuffer cancel the arrangement, and remain
// the expected way to end a String's life. The owner must tolerate Free being
// called from another goroutine.
func (s *String) Managed() *String {
	if s.owner == nil || s.buf == nil || s.managed {
		return s
	}
	s.cleanup = runtime.AddCleanup(s, freeBuffer, ownedBuffer{buf: s.buf, owner: s.owner})
	s.managed = true
	return s
}

func (s *String) stopCleanup() {
	if s.managed {
		s.cleanup.Stop()
		s.managed = false
	}
}

// Len returns the number of content bytes, not counting the terminator.
func (s *String) Len() int {
	if s.buf == nil {
		return 0
	}
	return len(s.buf) - 1
}

// Bytes returns the content without the terminator. The slice aliases the
// String's buffer and must not be modified or retained past Release.
func (s *String) Bytes() []byte {
	if s.buf == nil {
		return nil
	}
	n := len(s.buf) - 1
	return s.buf[:n:n]
}

// Terminated returns the content followed by the terminator.
func (s *String) Terminated() []byte {
	if s.buf == nil {
		return []byte{0}
	}
	return s.buf[:len(s.buf):len(s.buf)]
}

// String returns a copy of the content.
func (s *String) String() string {
	return string(s.Bytes())
}

// Ptr returns a pointer to the first byte of the terminated buffer, for
// passing to consumers of C strings. It is valid until s is released or its
// buffer is taken.
func (s *String) Ptr() *byte {
	if s.buf == nil {
		return &nul
	}
	return unsafe.SliceData(s.buf)
}

// Owner returns the allocator responsible for the buffer, or nil when the
// String is borrowed.
func (s *String) Owner() alloc.Allocator {
	return s.owner
}

func (s *String) Borrowed() bool {
	return s.owner == nil
}
