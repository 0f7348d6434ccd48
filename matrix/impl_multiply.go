// SPDX-License-Identifier: MIT
// Package matrix provides the dense matrix product C = A·B over row-major storage.
//
// Purpose:
//   - Flat-buffer kernel (MultiplyInto/Multiply) for callers holding plain []float64.
//   - Sized entry points (Mul/MulInto) where the shape travels with the value.
//
// Numeric policy (shared by every path):
//   - One float64 accumulator per output cell, reset to ZeroSum.
//   - k strictly ascending: C[i,j] = ((0 + A[i,0]B[0,j]) + A[i,1]B[1,j]) + ...
//   - No compensated summation, no zero-skipping (0·Inf must still yield NaN).
//     Every path therefore produces bit-identical results for the same inputs.
//
// Notes:
//   - No blocking, no SIMD, no goroutines; the loop nest is the textbook i→j→k.

package matrix

import "fmt"

// ZeroSum is the initial value of every per-cell accumulator.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opMultiplyInto = "MultiplyInto"
	opMultiply     = "Multiply"
	opMul          = "Mul"
	opMulInto      = "MulInto"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
// Complexity: Time O(1), Space O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// MultiplyInto computes C = A·B for row-major flat buffers, writing into c.
// MAIN DESCRIPTION:
//   - A is m×n (a[i*n+k]), B is n×p (b[k*p+j]), C is m×p (c[i*p+j]).
//   - The caller owns all three buffers; the kernel never allocates.
//
// Implementation:
//   - Stage 1: ValidateMulBuffers (dims positive, every buffer long enough).
//   - Stage 2: mulFlat: for i, for j, sum over k ascending, store once.
//
// Behavior highlights:
//   - Only c[0:m*p] is written; a longer c keeps its tail untouched.
//   - c must not alias a or b; aliasing yields partially updated operands.
//
// Errors:
//   - ErrInvalidDimensions (m, n or p ≤ 0).
//   - ErrBufferTooSmall (len(a) < m*n, len(b) < n*p or len(c) < m*p).
//
// Determinism:
//   - Fixed i→j→k order; bit-identical to Mul on the same data.
//
// Complexity:
//   - Time O(m*n*p), Space O(1).
//
// AI-Hints:
//   - Reuse c across calls of the same shape to keep the hot loop allocation-free.
func MultiplyInto(c, a, b []float64, m, n, p int) error {
	if err := ValidateMulBuffers(c, a, b, m, n, p); err != nil {
		return matrixErrorf(opMultiplyInto, err)
	}
	mulFlat(c, a, b, m, n, p)

	return nil
}

// Multiply is MultiplyInto with a freshly allocated result of length m*p.
// Each call returns an independent slice; nothing is shared between calls.
//
// Errors: same as MultiplyInto.
// Complexity: Time O(m*n*p), Space O(m*p).
func Multiply(a, b []float64, m, n, p int) ([]float64, error) {
	if err := ValidateDims(m, n, p); err != nil {
		return nil, matrixErrorf(opMultiply, err)
	}
	if err := ValidateCells(m, p); err != nil {
		return nil, matrixErrorf(opMultiply, err)
	}
	c := make([]float64, m*p)
	if err := MultiplyInto(c, a, b, m, n, p); err != nil {
		return nil, matrixErrorf(opMultiply, err)
	}

	return c, nil
}

// Mul performs standard matrix multiplication C = A × B (no aliasing).
// Implementation:
//   - Stage 1: ValidateMulCompatible (not nil, A.Cols == B.Rows).
//   - Stage 2: allocate Dense(A.Rows, B.Cols).
//   - Stage 3: both *Dense → mulFlat on the raw slices; otherwise mulGeneric via At/Set.
//
// Inputs:
//   - a: left matrix (r × n); b: right matrix (n × c).
//
// Returns:
//   - Matrix: new *Dense with shape (r × c).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, accessor errors from non-Dense operands.
//
// Determinism:
//   - Same per-cell accumulation order on both paths.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	res, err := NewDense(a.Rows(), b.Cols())
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err = mulInto(res, a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	return res, nil
}

// MulInto writes A × B into dst, which must already be shaped A.Rows × B.Cols.
// dst must not be one of the operands.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: Time O(r*n*c), Space O(1).
func MulInto(dst *Dense, a, b Matrix) error {
	if err := ValidateNotNil(dst); err != nil {
		return matrixErrorf(opMulInto, err)
	}
	if err := ValidateMulCompatible(a, b); err != nil {
		return matrixErrorf(opMulInto, err)
	}
	if err := ValidateMulDestination(dst, a, b); err != nil {
		return matrixErrorf(opMulInto, err)
	}
	if err := mulInto(dst, a, b); err != nil {
		return matrixErrorf(opMulInto, err)
	}

	return nil
}

// mulInto dispatches between the flat kernel and the accessor fallback.
// Preconditions (shapes, non-nil) are checked by the callers.
func mulInto(dst *Dense, a, b Matrix) error {
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			mulFlat(dst.data, da.data, db.data, da.r, da.c, db.c)
			return nil
		}
	}

	return mulGeneric(dst, a, b)
}

// mulFlat is the shared row-major kernel. Lengths are validated by the callers.
// The float64 conversion forces each product to round before it is added, so
// the compiler cannot fuse the step into an FMA on arm64, ppc64le, s390x or riscv64.
func mulFlat(c, a, b []float64, m, n, p int) {
	var (
		i, j, k    int
		rowA, rowC int
		sum        float64
	)
	for i = 0; i < m; i++ {
		rowA = i * n
		rowC = i * p
		for j = 0; j < p; j++ {
			sum = ZeroSum
			for k = 0; k < n; k++ {
				sum += float64(a[rowA+k] * b[k*p+j])
			}
			c[rowC+j] = sum
		}
	}
}

// mulGeneric is the interface fallback (i→j→k) with identical accumulation order.
func mulGeneric(dst *Dense, a, b Matrix) error {
	var (
		i, j, k int
		av, bv  float64
		sum     float64
		err     error
	)
	rows, inner, cols := a.Rows(), a.Cols(), b.Cols()
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			sum = ZeroSum
			for k = 0; k < inner; k++ {
				if av, err = a.At(i, k); err != nil {
					return fmt.Errorf("A.At(%d,%d): %w", i, k, err)
				}
				if bv, err = b.At(k, j); err != nil {
					return fmt.Errorf("B.At(%d,%d): %w", k, j, err)
				}
				sum += float64(av * bv)
			}
			dst.data[i*cols+j] = sum
		}
	}

	return nil
}
