// SPDX-License-Identifier: MIT

// Package vecfile persists float64 vectors as plain text.
//
// File format:
//
//	Values are decimal tokens separated by any whitespace. Store writes one
//	value per line in fixed notation with six fractional digits:
//
//	    1.500000
//	    2.250000
//
//	Load accepts any whitespace layout. Files ending in ".zst" or ".lz4" carry
//	the same text inside a zstd or lz4 frame (see WithCodec).
//
// Error policy:
//
//	Only a failed open is reported by default (ErrIO). Reaching end of input
//	before the requested capacity is a normal short read. A malformed token
//	stops a load and write failures never fail a store; both are logged.
//	WithStrict turns those silent outcomes into ErrMalformed, ErrRead and
//	ErrWrite.
//
// Resources:
//
//	Each call opens, uses and closes its own handle. There is no locking and no
//	atomic replace: concurrent calls on the same path race.
package vecfile
