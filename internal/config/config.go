// Copyright 2025 The Logcrunch Authors. All rights reserved.
// Use of this source code is governed by a MIT license
// that can be found in the LICENSE file.

// Package config loads the zstr command configuration from TOML or YAML.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/KirilStrezikozin/zstring/internal/types"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

var ErrUnknownFormat = errors.New("unknown config format")
var ErrInvalidValue = errors.New("invalid config value")

type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("config %s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

type Format int

const (
	FormatTOML Format = iota
	FormatYAML
)

func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// DetectFormat picks the format from the file extension. Anything that is
// not YAML is read as TOML.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

type Config struct {
	Allocator        types.AllocatorKind `toml:"allocator" yaml:"allocator"`
	ArenaSize        int                 `toml:"arena_size" yaml:"arena_size"`
	TrackAllocations bool                `toml:"track_allocations" yaml:"track_allocations"`
	LogLevel         string              `toml:"log_level" yaml:"log_level"`
	Delimiter        string              `toml:"delimiter" yaml:"delimiter"`
	Output           types.OutputFormat  `toml:"output" yaml:"output"`
}

func Default() Config {
	return Config{
		Allocator:        types.AllocatorHeap,
		ArenaSize:        types.DefaultArenaSize,
		TrackAllocations: true,
		LogLevel:         types.DefaultLogLevel,
		Delimiter:        string(types.GetDefaultDelimiter()),
		Output:           types.OutputText,
	}
}

// Resolve returns path, or the default config file path when path is empty
// and that file exists. An empty result means built-in defaults.
func Resolve(path string) string {
	if path != "" {
		return path
	}
	if _, err := os.Stat(types.DefaultConfigFilePath); err == nil {
		return types.DefaultConfigFilePath
	}
	return ""
}

// Load reads the file at path. Keys missing from the file keep their default
// values. An empty path yields the defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, &Error{Op: "load", Err: err}
	}

	cfg, err := Parse(data, DetectFormat(path))
	if err != nil {
		return Config{}, fmt.Errorf("error loading %s: %w", path, err)
	}
	return cfg, nil
}

func Parse(data []byte, format Format) (Config, error) {
	cfg := Default()

	switch format {
	case FormatTOML:
		if _, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&cfg); err != nil {
			return Config{}, &Error{Op: "parse toml", Err: err}
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, &Error{Op: "parse yaml", Err: err}
		}
	default:
		return Config{}, &Error{Op: "parse", Err: ErrUnknownFormat}
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.Allocator {
	case types.AllocatorHeap, types.AllocatorFixed:
	default:
		return &Error{Op: "validate", Err: fmt.Errorf("%w: allocator %q", ErrInvalidValue, c.Allocator)}
	}

	if c.Allocator == types.AllocatorFixed && c.ArenaSize <= 0 {
		return &Error{Op: "validate", Err: fmt.Errorf("%w: arena_size %d", ErrInvalidValue, c.ArenaSize)}
	}

	switch c.Output {
	case types.OutputText, types.OutputJSON:
	default:
		return &Error{Op: "validate", Err: fmt.Errorf("%w: output %q", ErrInvalidValue, c.Output)}
	}

	if _, err := c.Level(); err != nil {
		return &Error{Op: "validate", Err: fmt.Errorf("%w: log_level: %w", ErrInvalidValue, err)}
	}
	return nil
}

func (c Config) Level() (zerolog.Level, error) {
	return zerolog.ParseLevel(c.LogLevel)
}
