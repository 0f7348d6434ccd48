// SPDX-License-Identifier: MIT

package vecfile

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Codec selects how the text stream is framed on disk.
type Codec int

const (
	// CodecAuto picks CodecZstd for ".zst", CodecLZ4 for ".lz4", else CodecPlain.
	CodecAuto Codec = iota
	// CodecPlain stores the text as is.
	CodecPlain
	// CodecZstd wraps the text in a zstd frame.
	CodecZstd
	// CodecLZ4 wraps the text in an lz4 frame.
	CodecLZ4
)

// Extensions recognized by CodecAuto (case-insensitive).
const (
	ExtZstd = ".zst"
	ExtLZ4  = ".lz4"
)

// String returns the codec name.
func (c Codec) String() string {
	switch c {
	case CodecAuto:
		return "auto"
	case CodecPlain:
		return "plain"
	case CodecZstd:
		return "zstd"
	case CodecLZ4:
		return "lz4"
	default:
		return "unknown"
	}
}

func (c Codec) valid() bool { return c >= CodecAuto && c <= CodecLZ4 }

// resolve turns CodecAuto into a concrete codec for path.
func (c Codec) resolve(path string) Codec {
	if c != CodecAuto {
		return c
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ExtZstd:
		return CodecZstd
	case ExtLZ4:
		return CodecLZ4
	default:
		return CodecPlain
	}
}

// reader wraps r with the decompressor for c. release frees decoder state and
// never closes r.
func (c Codec) reader(r io.Reader) (dec io.Reader, release func(), err error) {
	switch c {
	case CodecZstd:
		zr, err := zstd.NewReader(r)
		if err != nil {
			return nil, nil, err
		}
		return zr, zr.Close, nil
	case CodecLZ4:
		return lz4.NewReader(r), func() {}, nil
	default:
		return r, func() {}, nil
	}
}

// writer wraps w with the compressor for c. Closing the result finishes the
// frame but never closes w.
func (c Codec) writer(w io.Writer) (io.WriteCloser, error) {
	switch c {
	case CodecZstd:
		zw, err := zstd.NewWriter(w)
		if err != nil {
			return nil, err
		}
		return zw, nil
	case CodecLZ4:
		return lz4.NewWriter(w), nil
	default:
		return nopWriteCloser{w}, nil
	}
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }
