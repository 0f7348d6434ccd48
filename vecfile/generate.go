// SPDX-License-Identifier: MIT

package vecfile

import (
	"fmt"
	"math"
	"math/rand"
)

const opGenerate = "GenerateFile"

// Uniform returns n values drawn uniformly from [lo, hi) as lo + (hi-lo)*U.
// A sum that rounds up to hi is pulled back to the largest float below hi.
// A nil rng uses a fixed seed of 1 so results stay reproducible.
//
// Errors: ErrInvalidCount (n < 0), ErrInvalidRange (non-finite bound,
// lo >= hi, or hi-lo overflowing to +Inf).
func Uniform(rng *rand.Rand, n int, lo, hi float64) ([]float64, error) {
	if n < 0 {
		return nil, fmt.Errorf("Uniform: %w", ErrInvalidCount)
	}
	if math.IsNaN(lo) || math.IsNaN(hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) || lo >= hi {
		return nil, fmt.Errorf("Uniform: [%g, %g): %w", lo, hi, ErrInvalidRange)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	span := hi - lo
	if math.IsInf(span, 0) {
		return nil, fmt.Errorf("Uniform: [%g, %g) span overflows: %w", lo, hi, ErrInvalidRange)
	}
	top := math.Nextafter(hi, lo)
	out := make([]float64, n)
	for i := range out {
		if out[i] = lo + span*rng.Float64(); out[i] > top {
			out[i] = top
		}
	}

	return out, nil
}

// GenerateFile writes n uniform values from [lo, hi), seeded by seed, to path.
// Values are written in shortest round-trip notation unless opts override the
// precision, so Load returns them bit-exact.
func GenerateFile(path string, n int, lo, hi float64, seed int64, opts ...Option) error {
	values, err := Uniform(rand.New(rand.NewSource(seed)), n, lo, hi)
	if err != nil {
		return fmt.Errorf("%s %s: %w", opGenerate, path, err)
	}

	return Store(path, values, append([]Option{WithPrecision(ShortestPrecision)}, opts...)...)
}
