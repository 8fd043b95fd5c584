// Copyright 2025 The Logcrunch Authors. All rights reserved.
// Use of this source code is governed by a MIT license
// that can be found in the LICENSE file.

package zstr

import "github.com/KirilStrezikozin/zstring/pkg/alloc"

// Duplicate copies s using the allocator that owns it. Borrowed Strings have
// no allocator to copy with and fail with ErrNoAllocator.
func (s *String) Duplicate() (*String, error) {
	if s.owner == nil {
		return nil, &Error{Op: "duplicate", Err: ErrNoAllocator}
	}
	return s.DuplicateWith(s.owner)
}

// DuplicateWith copies s using a. The content is copied verbatim, including a
// zero byte at its end, which CopyBytes would take for a terminator.
func (s *String) DuplicateWith(a alloc.Allocator) (*String, error) {
	if s.Len() == 0 {
		return nil, &Error{Op: "duplicate", Err: ErrEmptyInput}
	}
	return copyContent("duplicate", a, s.Bytes())
}

// Concat returns a new String holding s followed by other, allocated by s's
// owner.
func (s *String) Concat(other *String) (*String, error) {
	return s.ConcatBytes(other.Bytes())
}

func (s *String) ConcatBytes(p []byte) (*String, error) {
	if s.owner == nil {
		return nil, &Error{Op: "concat", Err: ErrNoAllocator}
	}
	return s.ConcatWith(p, s.owner)
}

// ConcatWith is like ConcatBytes but allocates from a, so s may be borrowed.
func (s *String) ConcatWith(p []byte, a alloc.Allocator) (*String, error) {
	b, err := NewBuffer(a, s.Len()+len(p))
	if err != nil {
		return nil, retag("concat", err)
	}
	b.Write(s.Bytes())
	b.Write(p)
	return b.Finish(), nil
}
