// SPDX-License-Identifier: MIT

// Package vecfile: functional configuration for Load/Store.
// This file defines:
//   - documented defaults (constants),
//   - Option / Options (functional options with internal state),
//   - WithX constructors with validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Zero options reproduce the plain-text contract: 6 fractional digits,
//     lenient error policy, local file system, no logging.

package vecfile

import (
	"log/slog"

	"github.com/katalvlaran/vecmat/internal/fs"
	"github.com/katalvlaran/vecmat/internal/logx"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultPrecision is the number of fractional digits Store writes ("%.6f").
	DefaultPrecision = 6

	// ShortestPrecision asks Store for the shortest fixed-notation text that
	// parses back to the identical float64.
	ShortestPrecision = -1

	// DefaultStrict keeps the lenient contract: malformed tokens and read
	// failures end a load, write failures never fail a store.
	DefaultStrict = false

	// DefaultCodec picks the codec from the file extension.
	DefaultCodec = CodecAuto
)

// File and FileSystem name the file system seam accepted by WithFS.
type (
	File       = fs.File
	FileSystem = fs.FileSystem
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicPrecisionInvalid = "vecfile: WithPrecision: digits must be >= -1"
	panicCodecInvalid     = "vecfile: WithCodec: unknown codec"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly; the last setter wins.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	strict    bool
	precision int
	codec     Codec
	fsys      fs.FileSystem
	logger    *logx.Logger
}

// WithStrict surfaces failures the lenient contract hides:
//   - Load: ErrMalformed on the first unparsable token, ErrRead on stream failure.
//   - Store: ErrWrite on the first write, flush or close failure.
//
// Complexity: O(1).
func WithStrict() Option {
	return func(o *Options) { o.strict = true }
}

// WithPrecision sets the number of fractional digits Store writes.
// ShortestPrecision (-1) selects the shortest round-trip representation.
//
// Panics when digits < -1 (programmer error).
func WithPrecision(digits int) Option {
	if digits < ShortestPrecision {
		panic(panicPrecisionInvalid)
	}

	return func(o *Options) { o.precision = digits }
}

// WithCodec selects the on-disk framing. CodecAuto (default) picks by extension.
//
// Panics on an unknown Codec value (programmer error).
func WithCodec(c Codec) Option {
	if !c.valid() {
		panic(panicCodecInvalid)
	}

	return func(o *Options) { o.codec = c }
}

// WithLogger routes structured logs to l. A nil l disables logging.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) { o.logger = logx.New(l) }
}

// WithFS replaces the local file system, e.g. with a fault-injecting one in tests.
// A nil fsys restores the default.
func WithFS(fsys FileSystem) Option {
	if fsys == nil {
		fsys = fs.Default
	}

	return func(o *Options) { o.fsys = fsys }
}

// defaultOptions returns the zero-option configuration.
func defaultOptions() Options {
	return Options{
		strict:    DefaultStrict,
		precision: DefaultPrecision,
		codec:     DefaultCodec,
		fsys:      fs.Default,
		logger:    logx.Noop(),
	}
}

// gatherOptions applies setters in order over the defaults.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
