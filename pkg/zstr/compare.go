// Copyright 2025 The Logcrunch Authors. All rights reserved.
// Use of this source code is governed by a MIT license
// that can be found in the LICENSE file.

package zstr

import "bytes"

// trimTerminator drops a single trailing zero byte from p.
func trimTerminator(p []byte) []byte {
	if len(p) > 0 && p[len(p)-1] == 0 {
		return p[:len(p)-1]
	}
	return p
}

// Compare orders s and other lexicographically by bytes and returns -1, 0
// or 1.
func (s *String) Compare(other *String) int {
	return bytes.Compare(s.Bytes(), other.Bytes())
}

// CompareBytes is like Compare. A terminator at the end of p is not part of
// the comparison.
func (s *String) CompareBytes(p []byte) int {
	return bytes.Compare(s.Bytes(), trimTerminator(p))
}

func (s *String) Equal(other *String) bool {
	return s.Compare(other) == 0
}

func (s *String) EqualBytes(p []byte) bool {
	return s.CompareBytes(p) == 0
}
