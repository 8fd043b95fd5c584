// Copyright 2025 The Logcrunch Authors. All rights reserved.
// Use of this source code is governed by a MIT license
// that can be found in the LICENSE file.

package internal

import (
	"fmt"

	"github.com/KirilStrezikozin/zstring/internal/config"
	"github.com/KirilStrezikozin/zstring/internal/types"
	"github.com/KirilStrezikozin/zstring/pkg/alloc"
	"github.com/rs/zerolog"
)

// NewAllocator builds the allocator described by cfg. When allocation
// tracking is enabled the returned allocator is the tracker itself, also
// returned separately so callers can check it for leaks.
func NewAllocator(cfg config.Config, logger zerolog.Logger) (alloc.Allocator, *alloc.Tracking, error) {
	var base alloc.Allocator
	switch cfg.Allocator {
	case types.AllocatorHeap:
		base = alloc.Heap{}
	case types.AllocatorFixed:
		base = alloc.NewFixedSize(cfg.ArenaSize)
	default:
		return nil, nil, fmt.Errorf("%w: allocator %q", config.ErrInvalidValue, cfg.Allocator)
	}

	if !cfg.TrackAllocations {
		return base, nil, nil
	}

	tracker := alloc.NewTracking(base, logger)
	return tracker, tracker, nil
}
