// Copyright 2025 The Logcrunch Authors. All rights reserved.
// Use of this source code is governed by a MIT license
// that can be found in the LICENSE file.

package alloc

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog"
)

type TrackingError struct {
	Live         int
	LiveBytes    int
	InvalidFrees int
}

func (e *TrackingError) Error() string {
	return fmt.Sprintf("allocator check failed: %d live buffers (%d bytes), %d invalid frees",
		e.Live, e.LiveBytes, e.InvalidFrees)
}

type Stats struct {
	Allocs       int
	Frees        int
	Failures     int
	InvalidFrees int
	BytesInUse   int
	PeakBytes    int
}

// Tracking wraps another allocator and records every buffer it hands out, so
// that leaks and double frees can be detected. It is safe for concurrent use.
type Tracking struct {
	mu     sync.Mutex
	parent Allocator
	live   map[uintptr]int
	stats  Stats

	logger zerolog.Logger
}

func NewTracking(parent Allocator, parentLogger zerolog.Logger) *Tracking {
	logger := parentLogger.
		With().
		Str("component", "tracking_allocator").
		Logger()

	return &Tracking{
		parent: parent,
		live:   make(map[uintptr]int),
		logger: logger,
	}
}

func (t *Tracking) Alloc(n int) ([]byte, error) {
	buf, err := t.parent.Alloc(n)

	t.mu.Lock()
	defer t.mu.Unlock()

	if err != nil {
		t.stats.Failures++
		t.logger.Debug().Err(err).Int("size", n).Msg("allocation failed")
		return nil, err
	}

	t.stats.Allocs++
	if id := identity(buf); id != 0 {
		t.live[id] = len(buf)
		t.stats.BytesInUse += len(buf)
		t.stats.PeakBytes = max(t.stats.PeakBytes, t.stats.BytesInUse)
	}

	t.logger.Debug().Int("size", n).Msg("allocated")
	return buf, nil
}

func (t *Tracking) Free(buf []byte) {
	id := identity(buf)

	t.mu.Lock()
	size, ok := t.live[id]
	if id != 0 && (!ok || size != cap(buf)) {
		t.stats.InvalidFrees++
		t.mu.Unlock()
		t.logger.Error().Int("size", cap(buf)).Msg("free of unknown or already freed buffer")
		return
	}

	delete(t.live, id)
	t.stats.Frees++
	t.stats.BytesInUse -= size
	t.mu.Unlock()

	t.logger.Debug().Int("size", size).Msg("freed")
	t.parent.Free(buf)
}

// Live returns the number of buffers allocated and not yet freed.
func (t *Tracking) Live() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.live)
}

func (t *Tracking) Stats() Stats {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.stats
}

// Check reports a *TrackingError if any buffer is still live or any free did
// not match an outstanding allocation.
func (t *Tracking) Check() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if len(t.live) == 0 && t.stats.InvalidFrees == 0 {
		return nil
	}

	t.logger.Warn().
		Int("live", len(t.live)).
		Int("bytes", t.stats.BytesInUse).
		Int("invalid_frees", t.stats.InvalidFrees).
		Msg("allocator check failed")

	return &TrackingError{
		Live:         len(t.live),
		LiveBytes:    t.stats.BytesInUse,
		InvalidFrees: t.stats.InvalidFrees,
	}
}
