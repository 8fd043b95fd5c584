// Copyright 2025 The Logcrunch Authors. All rights reserved.
// Use of this source code is governed by a MIT license
// that can be found in the LICENSE file.

package zstr

import "github.com/KirilStrezikozin/zstring/pkg/alloc"

// Join concatenates the elements of l with delim between adjacent elements,
// allocating the result from the list's allocator.
func Join(l *List, delim []byte) (*String, error) {
	if l.allocator == nil {
		return nil, &Error{Op: "join", Err: ErrNoAllocator}
	}
	return JoinWith(l.allocator, l.items, delim)
}

// JoinWith concatenates items with delim between adjacent elements. Joining
// no items gives an owned empty String. The items are left untouched.
func JoinWith(a alloc.Allocator, items []*String, delim []byte) (*String, error) {
	total := 0
	for _, s := range items {
		total += s.Len()
	}
	if len(items) > 1 {
		total += len(delim) * (len(items) - 1)
	}

	b, err := NewBuffer(a, total)
	if err != nil {
		return nil, retag("join", err)
	}

	for i, s := range items {
		if i > 0 {
			b.Write(delim)
		}
		b.Write(s.Bytes())
	}
	return b.Finish(), nil
}
