// Copyright 2025 The Logcrunch Authors. All rights reserved.
// Use of this source code is governed by a MIT license
// that can be found in the LICENSE file.

package zstr

import "bytes"

// Find returns the offset of the first occurrence of other's content in s.
func (s *String) Find(other *String) (int, bool) {
	return s.FindBytes(other.Bytes())
}

// FindBytes returns the offset of the first occurrence of p in s, searching
// left to right. The terminator is part of the searched bytes, so a needle
// ending in a zero byte matches only at the end of the content. An empty
// needle is found at offset 0.
func (s *String) FindBytes(p []byte) (int, bool) {
	i := bytes.Index(s.Terminated(), p)
	if i < 0 {
		return 0, false
	}
	return i, true
}
