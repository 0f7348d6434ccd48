// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide thin entry points for building operands and checking results.
//   - Avoid logic duplication: each facade delegates to the canonical implementation.
//
// AI-Hints:
//   - Use NewIdentity/NewZeros to build matrices with explicit shape and neutral elements.
//   - Use AllClose to compare products computed along different summation orders.

package matrix

import "math"

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// It is a thin alias of NewDense with an intention-revealing name.
// Complexity: O(r*c).
func NewZeros(rows, cols int) (*Dense, error) {
	return NewDense(rows, cols)
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Complexity: O(n^2) zeroing (constructor) + O(n) writes on the diagonal.
//
// AI-Hints: Use as a neutral element when checking A·I = A.
func NewIdentity(n int) (*Dense, error) {
	I, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		I.data[i*n+i] = 1.0
	}

	return I, nil
}

// Product is an alias for Mul: matrix product a × b.
// Complexity: O(r*n*c).
func Product(a, b Matrix) (Matrix, error) { return Mul(a, b) }

// AllClose reports whether a and b have equal length and every pair satisfies
// |a-b| ≤ atol + rtol*|b|.
// NaN != anything; +Inf equals +Inf; -Inf equals -Inf.
// rtol, atol are treated as |rtol|, |atol|.
// Time: O(n). Space: O(1). Deterministic.
//
// AI-Hints:
//   - rtol=1e-9, atol=0 suits well-conditioned double-precision products.
func AllClose(a, b []float64, rtol, atol float64) bool {
	if len(a) != len(b) {
		return false
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)
	var x, y float64
	for i := range a {
		x, y = a[i], b[i]
		if math.IsNaN(x) || math.IsNaN(y) {
			return false
		}
		if math.IsInf(x, 0) || math.IsInf(y, 0) {
			if x != y {
				return false
			}
			continue
		}
		if math.Abs(x-y) > atol+rtol*math.Abs(y) {
			return false
		}
	}

	return true
}
