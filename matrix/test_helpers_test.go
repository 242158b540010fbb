// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures for the kernels.
//   • Keep all data finite and well-formed.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/thermofit/matrix"
)

// hide WRAPS any Matrix to hide its concrete type from type assertions.
// Use hide{X} in tests to force the non-*Dense (fallback) paths.
type hide struct{ matrix.Matrix }

// MustDense ALLOCATES an r×c *Dense or fails the test (fatal on error).
func MustDense(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// MustAt READS m(i,j) or fails the test.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// MustSet WRITES m(i,j)=v or fails the test.
func MustSet(t *testing.T, m matrix.Matrix, i, j int, v float64) {
	t.Helper()
	if err := m.Set(i, j, v); err != nil {
		t.Fatalf("Set(%d,%d): %v", i, j, err)
	}
}

// NewFilledDense BUILDS r×c *Dense from a row-major flat slice.
func NewFilledDense(t *testing.T, r, c int, vals []float64) *matrix.Dense {
	t.Helper()
	if len(vals) != r*c {
		t.Fatalf("NewFilledDense: want %d values, got %d", r*c, len(vals))
	}
	d := MustDense(t, r, c)
	var i, j int // loop iterators
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			MustSet(t, d, i, j, vals[i*c+j])
		}
	}

	return d
}

// Flatten READS every cell of m in row-major order.
func Flatten(t *testing.T, m matrix.Matrix) []float64 {
	t.Helper()
	out := make([]float64, 0, m.Rows()*m.Cols())
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			out = append(out, MustAt(t, m, i, j))
		}
	}

	return out
}
