// Copyright 2025 The Logcrunch Authors. All rights reserved.
// Use of this source code is governed by a MIT license
// that can be found in the LICENSE file.

package types

type AllocatorKind string

const (
	AllocatorHeap  AllocatorKind = "heap"
	AllocatorFixed AllocatorKind = "fixed"
)

type OutputFormat string

const (
	OutputText OutputFormat = "text"
	OutputJSON OutputFormat = "json"
)

const (
	DefaultConfigFilePath = "zstr.toml"
	DefaultArenaSize      = 1 << 16 // 64KB
	DefaultLogLevel       = "info"
)

var defaultDelimiter = []byte(" ")

func GetDefaultDelimiter() []byte {
	return defaultDelimiter
}
