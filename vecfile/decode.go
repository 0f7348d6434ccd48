// SPDX-License-Identifier: MIT

package vecfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
)

const (
	// maxPrealloc caps the initial result capacity so a huge declared capacity
	// over a short file does not allocate up front.
	maxPrealloc = 1 << 16

	// maxTokenSize bounds a single whitespace-separated token.
	maxTokenSize = 1 << 20
)

// Decode reads up to capacity whitespace-separated float64 tokens from r, in order.
//
// End of input before capacity is a normal short read. When strict is false the
// first malformed token or read failure also ends the read with a nil error;
// when strict is true they are reported as ErrMalformed / ErrRead together with
// the values decoded before the failure.
//
// Tokens out of float64 range decode to ±Inf (or ±0 on underflow), as a C
// "%lf" conversion would.
func Decode(r io.Reader, capacity int, strict bool) ([]float64, error) {
	if capacity < 0 {
		return nil, fmt.Errorf("Decode: %w", ErrInvalidCapacity)
	}
	values, stop := decode(r, capacity)
	if stop != nil && strict {
		return values, fmt.Errorf("Decode: %w", stop)
	}

	return values, nil
}

// decode is the shared scanner loop. stop is nil on end of input or a full
// result, otherwise it wraps ErrMalformed or ErrRead.
func decode(r io.Reader, capacity int) (values []float64, stop error) {
	values = make([]float64, 0, min(capacity, maxPrealloc))
	if capacity == 0 {
		return values, nil
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxTokenSize)
	sc.Split(bufio.ScanWords)

	var (
		tok string
		v   float64
		err error
	)
	for len(values) < capacity && sc.Scan() {
		tok = sc.Text()
		if v, err = parseToken(tok); err != nil {
			return values, fmt.Errorf("token %d %q: %w: %w", len(values), tok, ErrMalformed, err)
		}
		values = append(values, v)
	}
	if err = sc.Err(); err != nil {
		return values, fmt.Errorf("after %d values: %w: %w", len(values), ErrRead, err)
	}

	return values, nil
}

// parseToken parses one token; range overflow is not an error.
func parseToken(tok string) (float64, error) {
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil && errors.Is(err, strconv.ErrRange) {
		return v, nil
	}

	return v, err
}
