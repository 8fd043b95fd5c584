// Copyright 2025 The Logcrunch Authors. All rights reserved.
// Use of this source code is governed by a MIT license
// that can be found in the LICENSE file.

package zstr

import (
	"bytes"

	"github.com/KirilStrezikozin/zstring/pkg/alloc"
)

var space = []byte{' '}

// Split splits s around single spaces.
func (s *String) Split() (*List, error) {
	return s.SplitAt(space)
}

// SplitAt splits s around every occurrence of delim, copying each segment
// into a new String allocated by s's owner. Empty segments are dropped, so
// leading, trailing and repeated delimiters produce no empty elements.
func (s *String) SplitAt(delim []byte) (*List, error) {
	if len(delim) == 0 {
		return nil, &Error{Op: "split", Err: ErrEmptyInput}
	}
	if s.owner == nil {
		return nil, &Error{Op: "split", Err: ErrNoAllocator}
	}
	return s.SplitWith(delim, s.owner)
}

// SplitWith is like SplitAt but allocates from a, so s may be borrowed.
// On failure no element is left allocated.
func (s *String) SplitWith(delim []byte, a alloc.Allocator) (*List, error) {
	if len(delim) == 0 {
		return nil, &Error{Op: "split", Err: ErrEmptyInput}
	}
	if a == nil {
		return nil, &Error{Op: "split", Err: ErrNoAllocator}
	}

	rest := s.Bytes()
	if !bytes.Contains(rest, delim) {
		return nil, &Error{Op: "split", Err: ErrDelimiterNotFound}
	}

	l := NewList(a)
	for len(rest) > 0 {
		segment := rest
		if i := bytes.Index(rest, delim); i >= 0 {
			segment, rest = rest[:i], rest[i+len(delim):]
		} else {
			rest = nil
		}

		if len(segment) == 0 {
			continue
		}

		item, err := copyContent("split", a, segment)
		if err != nil {
			l.Release()
			return nil, err
		}
		l.Append(item)
	}

	return l, nil
}
