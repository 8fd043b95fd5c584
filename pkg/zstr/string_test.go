// Copyright 2025 The Logcrunch Authors. All rights reserved.
// Use of this source code is governed by a MIT license
// that can be found in the LICENSE file.

package zstr

import (
	"runtime"
	"testing"
	"time"
	"unsafe"

	"github.com/KirilStrezikozin/zstring/pkg/alloc"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTracking returns an allocator that fails the test if anything it handed
// out is still live, or was freed twice, when the test ends.
func newTracking(t *testing.T) *alloc.Tracking {
	t.Helper()
	a := alloc.NewTracking(alloc.Heap{}, zerolog.Nop())
	t.Cleanup(func() {
		assert.NoError(t, a.Check())
	})
	return a
}

func mustCopy(t *testing.T, a alloc.Allocator, s string) *String {
	t.Helper()
	res, err := CopyString(a, s)
	require.NoError(t, err)
	return res
}

func assertTerminated(t *testing.T, s *String) {
	t.Helper()
	raw := s.Terminated()
	require.Len(t, raw, s.Len()+1)
	assert.Equal(t, byte(0), raw[s.Len()])
}

func TestBorrow(t *testing.T) {
	tests := []struct {
		name    string
		input   []byte
		wantLen int
		wantErr error
	}{
		{"terminated", []byte("abc\x00"), 3, nil},
		{"terminator only", []byte{0}, 0, nil},
		{"embedded zero", []byte("a\x00b\x00"), 3, nil},
		{"empty", []byte{}, 0, ErrInvalidInput},
		{"nil", nil, 0, ErrInvalidInput},
		{"not terminated", []byte("abc"), 0, ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Borrow(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, s)
				return
			}
			require.NoError(t, err)
			before := append([]byte(nil), tt.input...)
			assert.Equal(t, len(tt.input)-1, s.Len())
			assert.Equal(t, tt.wantLen, s.Len())
			assert.True(t, s.Borrowed())
			assert.Nil(t, s.Owner())
			assert.Same(t, &tt.input[0], s.Ptr())
			assertTerminated(t, s)

			s.Release()
			assert.Equal(t, before, tt.input)
		})
	}
}

func TestLiteral(t *testing.T) {
	s, err := Literal("Hello\x00")
	require.NoError(t, err)
	assert.Equal(t, "Hello", s.String())
	assert.True(t, s.Borrowed())
	assertTerminated(t, s)

	_, err = Literal("Hello")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = Literal("")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestFromPointer(t *testing.T) {
	foreign := []byte("foreign\x00trailing garbage")

	s, err := FromPointer(&foreign[0])
	require.NoError(t, err)
	assert.Equal(t, 7, s.Len())
	assert.Equal(t, "foreign", s.String())
	assert.True(t, s.Borrowed())
	assertTerminated(t, s)

	t.Run("zero length", func(t *testing.T) {
		empty := []byte{0}
		_, err := FromPointer(&empty[0])
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("nil", func(t *testing.T) {
		_, err := FromPointer(nil)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("round trip through Ptr", func(t *testing.T) {
		a := newTracking(t)
		owned := mustCopy(t, a, "interop")
		defer owned.Release()

		view, err := FromPointer(owned.Ptr())
		require.NoError(t, err)
		assert.True(t, view.Equal(owned))
	})
}

func TestAdopt(t *testing.T) {
	a := newTracking(t)

	buf, err := a.Alloc(4)
	require.NoError(t, err)
	copy(buf, "abc\x00")

	s, err := Adopt(a, buf)
	require.NoError(t, err)
	assert.False(t, s.Borrowed())
	assert.Same(t, a, s.Owner())
	assert.Equal(t, "abc", s.String())

	s.Release()
	assert.Equal(t, 0, a.Live())

	t.Run("invalid", func(t *testing.T) {
		_, err := Adopt(a, []byte("abc"))
		assert.ErrorIs(t, err, ErrInvalidInput)

		_, err = Adopt(a, nil)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("nil allocator", func(t *testing.T) {
		_, err := Adopt(nil, []byte("abc\x00"))
		assert.ErrorIs(t, err, ErrNoAllocator)
	})
}

func TestCopyBytes(t *testing.T) {
	tests := []struct {
		name      string
		input     []byte
		want      string
		allocated int
	}{
		{"plain", []byte("abc"), "abc", 4},
		{"already terminated", []byte("abc\x00"), "abc", 4},
		{"only terminator", []byte{0}, "", 1},
		{"embedded zero kept", []byte("a\x00b"), "a\x00b", 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newTracking(t)

			s, err := CopyBytes(a, tt.input)
			require.NoError(t, err)
			defer s.Release()

			assert.Equal(t, tt.want, s.String())
			assert.Equal(t, len(tt.want), s.Len())
			assert.Equal(t, tt.allocated, a.Stats().BytesInUse)
			assertTerminated(t, s)
			assert.NotSame(t, unsafe.SliceData(tt.input), s.Ptr())
		})
	}

	t.Run("empty", func(t *testing.T) {
		_, err := CopyBytes(alloc.Heap{}, nil)
		assert.ErrorIs(t, err, ErrEmptyInput)
	})

	t.Run("nil allocator", func(t *testing.T) {
		_, err := CopyBytes(nil, []byte("abc"))
		assert.ErrorIs(t, err, ErrNoAllocator)
	})

	t.Run("allocation failure", func(t *testing.T) {
		a := alloc.NewFailing(alloc.Heap{}, 0)
		_, err := CopyBytes(a, []byte("abc"))
		assert.ErrorIs(t, err, ErrAllocationFailure)
		assert.ErrorIs(t, err, alloc.ErrInjectedFailure)

		var zerr *Error
		require.ErrorAs(t, err, &zerr)
		assert.Equal(t, "copy", zerr.Op)
	})

	t.Run("arena exhausted", func(t *testing.T) {
		_, err := CopyBytes(alloc.NewFixedSize(3), []byte("abc"))
		assert.ErrorIs(t, err, ErrAllocationFailure)
		assert.ErrorIs(t, err, alloc.ErrOutOfMemory)
	})
}

func TestCopy(t *testing.T) {
	a := newTracking(t)

	src, err := Literal("source\x00")
	require.NoError(t, err)

	dup, err := Copy(a, src)
	require.NoError(t, err)
	defer dup.Release()

	assert.True(t, dup.Equal(src))
	assert.False(t, dup.Borrowed())
	assert.NotSame(t, src.Ptr(), dup.Ptr())
}

func TestString_Release(t *testing.T) {
	a := newTracking(t)
	s := mustCopy(t, a, "release me")

	s.Release()
	assert.Equal(t, 0, a.Live())
	assert.Equal(t, 0, s.Len())
	assert.True(t, s.Borrowed())
	assertTerminated(t, s)

	s.Release()
	stats := a.Stats()
	assert.Equal(t, 1, stats.Frees)
	assert.Equal(t, 0, stats.InvalidFrees)
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, byte(0), *s.Ptr())
}

func TestString_TakeBuffer(t *testing.T) {
	a := newTracking(t)
	s := mustCopy(t, a, "handoff")

	buf := s.TakeBuffer()
	assert.Equal(t, []byte("handoff\x00"), buf)
	assert.Equal(t, 1, a.Live())
	assert.Equal(t, 0, s.Len())

	s.Release() // quiescent, must not free the taken buffer
	assert.Equal(t, 1, a.Live())

	back, err := Adopt(a, buf)
	require.NoError(t, err)
	assert.Equal(t, "handoff", back.String())

	back.Release()
	assert.Equal(t, 0, a.Live())

	t.Run("quiescent", func(t *testing.T) {
		var empty String
		assert.Equal(t, []byte{0}, empty.TakeBuffer())
	})

	t.Run("borrowed", func(t *testing.T) {
		mem := []byte("shared\x00")
		b, err := Borrow(mem)
		require.NoError(t, err)

		buf := b.TakeBuffer()
		assert.Equal(t, unsafe.SliceData(mem), unsafe.SliceData(buf))

		lit, err := Literal("literal\x00")
		require.NoError(t, err)
		assert.Equal(t, []byte("literal\x00"), lit.TakeBuffer())
	})
}

func TestString_Managed(t *testing.T) {
	a := newTracking(t)

	s := mustCopy(t, a, "managed").Managed()
	assert.Same(t, s, s.Managed())

	s.Release()
	s.Release()
	assert.Equal(t, 1, a.Stats().Frees)
	assert.Equal(t, 0, a.Stats().InvalidFrees)

	borrowed, err := Literal("borrowed\x00")
	require.NoError(t, err)
	borrowed.Managed().Release()
}

// collectUntil runs the garbage collector until done reports true or the
// deadline passes. Cleanups run on their own goroutine after a cycle, so
// each round also yields briefly.
func collectUntil(done func() bool, timeout time.Duration) bool {
	deadline := time.Now().Add(timeout)
	for !done() {
		if time.Now().After(deadline) {
			return false
		}
		runtime.GC()
		time.Sleep(time.Millisecond)
	}
	return true
}

//go:noinline
func dropManaged(t *testing.T, a alloc.Allocator, content string) {
	s := mustCopy(t, a, content).Managed()
	require.Equal(t, content, s.String())
}

//go:noinline
func takeManaged(t *testing.T, a alloc.Allocator, content string) []byte {
	s := mustCopy(t, a, content).Managed()
	return s.TakeBuffer()
}

func TestString_ManagedCleanup(t *testing.T) {
	t.Run("unreachable", func(t *testing.T) {
		a := newTracking(t)

		dropManaged(t, a, "collected")
		assert.Equal(t, 1, a.Live())

		require.True(t, collectUntil(func() bool { return a.Live() == 0 }, 5*time.Second))
		assert.Equal(t, 1, a.Stats().Frees)
		assert.Equal(t, 0, a.Stats().InvalidFrees)
	})

	t.Run("taken buffer", func(t *testing.T) {
		a := newTracking(t)

		buf := takeManaged(t, a, "kept")
		collectUntil(func() bool { return false }, 50*time.Millisecond)
		assert.Equal(t, 1, a.Live())
		assert.Equal(t, 0, a.Stats().Frees)

		back, err := Adopt(a, buf)
		require.NoError(t, err)
		assert.Equal(t, "kept", back.String())

		back.Release()
		assert.Equal(t, 1, a.Stats().Frees)
		assert.Equal(t, 0, a.Stats().InvalidFrees)
	})
}

func TestString_ZeroValue(t *testing.T) {
	var s String
	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.Bytes())
	assert.Equal(t, "", s.String())
	assert.Equal(t, []byte{0}, s.Terminated())
	assert.Equal(t, byte(0), *s.Ptr())
	assert.True(t, s.Borrowed())
}
