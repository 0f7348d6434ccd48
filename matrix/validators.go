// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for shape and buffer checks.
//  - Keep kernels minimal by delegating nil/shape/length checks here.
//  - Return sentinel errors tagged with the validator name so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic, O(1) and allocate nothing on success.
//
// Note:
//  - Each composite validator follows a fixed sequence (Dims → Buffers, NotNil → Shape).

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
// Used internally to maintain consistent labeling of sentinel violations.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateDims ensures every dimension of a product triple (or a shape pair) is positive.
//
// Errors: ErrInvalidDimensions.
// Complexity: O(1).
func ValidateDims(dims ...int) error {
	for _, d := range dims {
		if d <= 0 {
			return validatorErrorf("ValidateDims", ErrInvalidDimensions)
		}
	}

	return nil
}

// ValidateCells ensures rows*cols is representable as an int.
// Assumes rows, cols already validated positive.
//
// Errors: ErrInvalidDimensions (rows*cols overflows).
// Complexity: O(1).
func ValidateCells(rows, cols int) error {
	if rows > math.MaxInt/cols {
		return fmt.Errorf("ValidateCells: %d×%d overflows int: %w", rows, cols, ErrInvalidDimensions)
	}

	return nil
}

// ValidateBufLen ensures a flat row-major buffer can hold a rows×cols matrix.
// Longer buffers are accepted; only the leading rows*cols cells are addressed.
//
// Implementation: Assumes rows, cols already validated positive.
// Errors: ErrInvalidDimensions (rows*cols overflows), ErrBufferTooSmall
// (message carries the name, got and want lengths).
// Complexity: O(1).
func ValidateBufLen(name string, buf []float64, rows, cols int) error {
	if err := ValidateCells(rows, cols); err != nil {
		return err
	}
	if want := rows * cols; len(buf) < want {
		return fmt.Errorf("ValidateBufLen: %s has len %d, want >= %d: %w", name, len(buf), want, ErrBufferTooSmall)
	}

	return nil
}

// ValidateMulBuffers – full precondition check for MultiplyInto.
//
// Sequence: ValidateDims(m, n, p) → cell counts m*n, n*p, m*p fit an int →
// a ≥ m*n → b ≥ n*p → c ≥ m*p.
// Errors: ErrInvalidDimensions, ErrBufferTooSmall.
// Complexity: O(1).
func ValidateMulBuffers(c, a, b []float64, m, n, p int) error {
	if err := ValidateDims(m, n, p); err != nil {
		return validatorErrorf("ValidateMulBuffers", err)
	}
	for _, rc := range [3][2]int{{m, n}, {n, p}, {m, p}} {
		if err := ValidateCells(rc[0], rc[1]); err != nil {
			return validatorErrorf("ValidateMulBuffers", err)
		}
	}
	if err := ValidateBufLen("A", a, m, n); err != nil {
		return validatorErrorf("ValidateMulBuffers", err)
	}
	if err := ValidateBufLen("B", b, n, p); err != nil {
		return validatorErrorf("ValidateMulBuffers", err)
	}
	if err := ValidateBufLen("C", c, m, p); err != nil {
		return validatorErrorf("ValidateMulBuffers", err)
	}

	return nil
}

// ValidateNotNil – Ensures the matrix reference is non-nil.
//
// Returns ErrNilMatrix if m == nil, including a typed nil *Dense.
// Complexity: O(1).
// AI-Hints: Use as the first step in composite validations.
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateMulCompatible – Ensures a.Cols == b.Rows, inputs non-nil.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateMulCompatible(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// ValidateMulDestination ensures dst is non-nil and shaped a.Rows × b.Cols.
// Assumes ValidateMulCompatible(a, b) already passed.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateMulDestination(dst, a, b Matrix) error {
	if err := ValidateNotNil(dst); err != nil {
		return validatorErrorf("ValidateMulDestination", err)
	}
	if dst.Rows() != a.Rows() || dst.Cols() != b.Cols() {
		return validatorErrorf("ValidateMulDestination", ErrDimensionMismatch)
	}

	return nil
}
