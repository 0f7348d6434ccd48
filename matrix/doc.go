// SPDX-License-Identifier: MIT

// Package matrix computes dense matrix products over row-major storage.
//
// What & Why:
//
//	A matrix is a rectangular grid of float64 values flattened row by row,
//	so cell (i,j) of an r×c matrix sits at buf[i*c+j]. Two surfaces share
//	one kernel:
//
//	  - MultiplyInto / Multiply work on plain []float64 buffers plus the
//	    dimension triple (m, n, p): A is m×n, B is n×p, C is m×p.
//	  - Mul / MulInto work on the Matrix interface; *Dense carries its
//	    shape, so inner-dimension mismatches are caught before any work.
//
//	Both surfaces validate their contract and return sentinel errors
//	(ErrInvalidDimensions, ErrBufferTooSmall, ErrDimensionMismatch) instead
//	of reading past a buffer.
//
// Numeric policy:
//
//	Every output cell is a plain float64 dot product accumulated with k
//	ascending from zero. Results are bit-identical across the flat and
//	accessor paths and against any reference that sums in the same order.
//
// Complexity:
//
//	Time O(m·n·p); MultiplyInto and MulInto use O(1) extra space.
package matrix
