// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and utilities for kernel tests.
//   • Provide an independent product oracle (gonum) for property tests.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/vecmat/matrix"
	"gonum.org/v1/gonum/mat"
)

// hide WRAPS any Matrix to hide its concrete type from type assertions.
// Use hide{X} to force the accessor (non-*Dense) path in Mul.
type hide struct{ matrix.Matrix }

// MustDense ALLOCATES an r×c *Dense or fails the test (fatal on error).
func MustDense(t testing.TB, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// MustFrom BUILDS r×c *Dense from a row-major flat slice or fails the test.
func MustFrom(t testing.TB, r, c int, vals []float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(r, c, vals)
	if err != nil {
		t.Fatalf("NewDenseFrom(%d,%d): %v", r, c, err)
	}

	return m
}

// MustAt READS m[i,j] or fails the test.
func MustAt(t testing.TB, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// RandSlice RETURNS n deterministic U(-1,1) values for a given seed.
// Keeps values finite and well-conditioned for tolerance-based comparisons.
func RandSlice(n int, seed int64) []float64 {
	rng := rand.New(rand.NewSource(seed))
	out := make([]float64, n)
	for i := range out {
		out[i] = rng.Float64()*2 - 1 // 0*2-1=-1 || 1*2-1=1
	}

	return out
}

// NaiveProduct is an independent i→j→k reference written against the
// textbook formula, used to assert bit-identical results.
func NaiveProduct(a, b []float64, m, n, p int) []float64 {
	c := make([]float64, m*p)
	for i := 0; i < m; i++ {
		for j := 0; j < p; j++ {
			var s float64
			for k := 0; k < n; k++ {
				s += float64(a[i*n+k] * b[k*p+j]) // round the product, never fuse
			}
			c[i*p+j] = s
		}
	}

	return c
}

// GonumProduct computes A·B with gonum's BLAS-backed Dense.Mul and returns it row-major.
// Summation order may differ from ours, so compare with a tolerance.
func GonumProduct(a, b []float64, m, n, p int) []float64 {
	ga := mat.NewDense(m, n, append([]float64(nil), a[:m*n]...))
	gb := mat.NewDense(n, p, append([]float64(nil), b[:n*p]...))
	var gc mat.Dense
	gc.Mul(ga, gb)

	out := make([]float64, 0, m*p)
	for i := 0; i < m; i++ {
		out = append(out, mat.Row(nil, i, &gc)...)
	}

	return out
}
