// Copyright 2025 The Logcrunch Authors. All rights reserved.
// Use of this source code is governed by a MIT license
// that can be found in the LICENSE file.

package zstr

import "github.com/KirilStrezikozin/zstring/pkg/alloc"

// List is an ordered sequence of Strings, as produced by SplitAt and
// consumed by Join. It remembers the allocator its elements came from.
type List struct {
	items     []*String
	allocator alloc.Allocator
}

func NewList(a alloc.Allocator) *List {
	return &List{allocator: a}
}

// Append adds s to the end of the list. The list does not take ownership of
// s unless the caller later relies on List.Release to free it.
func (l *List) Append(s *String) {
	l.items = append(l.items, s)
}

func (l *List) Len() int {
	return len(l.items)
}

func (l *List) At(i int) *String {
	return l.items[i]
}

// Items returns the elements in order. The slice aliases the list.
func (l *List) Items() []*String {
	return l.items
}

// Strings returns copies of every element's content.
func (l *List) Strings() []string {
	res := make([]string, len(l.items))
	for i, s := range l.items {
		res[i] = s.String()
	}
	return res
}

func (l *List) Allocator() alloc.Allocator {
	return l.allocator
}

// Release releases every element, then empties the list.
func (l *List) Release() {
	for _, s := range l.items {
		s.Release()
	}
	l.items = nil
}
