// Copyright 2025 The Logcrunch Authors. All rights reserved.
// Use of this source code is governed by a MIT license
// that can be found in the LICENSE file.

package zstr

import (
	"errors"
	"fmt"
)

var ErrEmptyInput = errors.New("empty input")
var ErrInvalidInput = errors.New("invalid input")
var ErrNoAllocator = errors.New("no allocator")
var ErrAllocationFailure = errors.New("allocation failure")
var ErrDelimiterNotFound = errors.New("delimiter not found")
var ErrBufferFull = errors.New("buffer full")

type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("zstr %s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// allocFailure keeps both the allocator's error and ErrAllocationFailure
// visible to errors.Is.
func allocFailure(op string, err error) error {
	return &Error{Op: op, Err: fmt.Errorf("%w: %w", ErrAllocationFailure, err)}
}
