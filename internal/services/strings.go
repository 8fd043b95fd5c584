// Copyright 2025 The Logcrunch Authors. All rights reserved.
// Use of this source code is governed by a MIT license
// that can be found in the LICENSE file.

package services

import (
	"fmt"

	"github.com/KirilStrezikozin/zstring/internal"
	"github.com/KirilStrezikozin/zstring/pkg/alloc"
	"github.com/KirilStrezikozin/zstring/pkg/zstr"
	"github.com/rs/zerolog"
)

type IStringService interface {
	Split(text string, delim []byte) (internal.Result, error)
	Join(items []string, delim []byte) (internal.Result, error)
	Find(text, needle string) (internal.Result, error)
	Compare(a, b string) (internal.Result, error)
	Concat(parts []string) (internal.Result, error)
	Close() error
}

// StringService runs zstr operations on plain Go strings. Every String it
// creates is released before the operation returns.
type StringService struct {
	allocator alloc.Allocator
	tracker   *alloc.Tracking
	logger    zerolog.Logger
}

// NewStringService allocates through a. When tracker is not nil, Close
// reports buffers that were never freed.
func NewStringService(
	a alloc.Allocator,
	tracker *alloc.Tracking,
	parentLogger zerolog.Logger,
) *StringService {
	logger := parentLogger.
		With().
		Str("service", "strings").
		Logger()

	return &StringService{
		allocator: a,
		tracker:   tracker,
		logger:    logger,
	}
}

// borrow wraps a Go string without allocating from the service allocator.
func borrow(s string) (*zstr.String, error) {
	buf := make([]byte, len(s)+1)
	copy(buf, s)
	return zstr.Borrow(buf)
}

func (s *StringService) Split(text string, delim []byte) (internal.Result, error) {
	src, err := zstr.CopyString(s.allocator, text)
	if err != nil {
		return internal.Result{}, err
	}
	defer src.Release()

	l, err := src.SplitAt(delim)
	if err != nil {
		return internal.Result{}, err
	}
	defer l.Release()

	s.logger.Debug().Int("items", l.Len()).Bytes("delimiter", delim).Msg("split")

	d := string(delim)
	return internal.Result{
		Op:        internal.OpSplit,
		Inputs:    []string{text},
		Delimiter: &d,
		Items:     l.Strings(),
	}, nil
}

func (s *StringService) Join(items []string, delim []byte) (internal.Result, error) {
	l := zstr.NewList(s.allocator)
	defer l.Release()

	for _, item := range items {
		b, err := borrow(item)
		if err != nil {
			return internal.Result{}, err
		}
		l.Append(b)
	}

	joined, err := zstr.Join(l, delim)
	if err != nil {
		return internal.Result{}, err
	}
	defer joined.Release()

	s.logger.Debug().Int("items", l.Len()).Int("length", joined.Len()).Msg("join")

	d, v := string(delim), joined.String()
	return internal.Result{
		Op:        internal.OpJoin,
		Inputs:    items,
		Delimiter: &d,
		Value:     &v,
	}, nil
}

func (s *StringService) Find(text, needle string) (internal.Result, error) {
	haystack, err := borrow(text)
	if err != nil {
		return internal.Result{}, err
	}

	n, err := borrow(needle)
	if err != nil {
		return internal.Result{}, err
	}

	res := internal.Result{
		Op:     internal.OpFind,
		Inputs: []string{text, needle},
	}

	index, found := haystack.Find(n)
	res.Found = &found
	if found {
		res.Index = &index
	}

	s.logger.Debug().Bool("found", found).Int("index", index).Msg("find")
	return res, nil
}

func (s *StringService) Compare(a, b string) (internal.Result, error) {
	left, err := borrow(a)
	if err != nil {
		return internal.Result{}, err
	}

	right, err := borrow(b)
	if err != nil {
		return internal.Result{}, err
	}

	order := left.Compare(right)
	return internal.Result{
		Op:     internal.OpCompare,
		Inputs: []string{a, b},
		Order:  &order,
	}, nil
}

func (s *StringService) Concat(parts []string) (internal.Result, error) {
	if len(parts) == 0 {
		return internal.Result{}, fmt.Errorf("concat: %w", internal.ErrMissingArgument)
	}

	// acc starts out borrowed, so the first ConcatWith allocates from the
	// service and Release is a no-op until then.
	acc, err := borrow(parts[0])
	if err != nil {
		return internal.Result{}, err
	}

	for _, part := range parts[1:] {
		next, err := acc.ConcatWith([]byte(part), s.allocator)
		acc.Release()
		if err != nil {
			return internal.Result{}, err
		}
		acc = next
	}
	defer acc.Release()

	v := acc.String()
	return internal.Result{
		Op:     internal.OpConcat,
		Inputs: parts,
		Value:  &v,
	}, nil
}

// Close checks the tracking allocator, if any, for buffers that were never
// freed.
func (s *StringService) Close() error {
	if s.tracker == nil {
		return nil
	}

	stats := s.tracker.Stats()
	s.logger.Debug().
		Int("allocs", stats.Allocs).
		Int("frees", stats.Frees).
		Int("peak_bytes", stats.PeakBytes).
		Msg("allocator stats")

	if err := s.tracker.Check(); err != nil {
		return fmt.Errorf("%w: %w", internal.ErrLeakDetected, err)
	}
	return nil
}
