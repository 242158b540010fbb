// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation:
// transpose, matrix multiplication, matrix-vector multiplication and the
// closed-form 2×2 inverse. All functions perform strict fail-fast validation
// and return clear errors on dimension mismatches.
//
// Notes:
//   - Every kernel has a *Dense fast-path and a generic At/Set fallback.
//     Both paths use the same accumulation order and produce identical bits.
//   - All kernels use central validators and wrap failures via matrixErrorf.

package matrix

import (
	"fmt"
	"math"
)

// ZeroSum is the initial value for every dot-product accumulator.
const ZeroSum = 0.0

// ZeroDeterminant is the exact determinant value treated as singular.
const ZeroDeterminant = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opMul        = "Mul"
	opTranspose  = "Transpose"
	opMatVec     = "MatVec"
	opInverse2x2 = "Inverse2x2"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul performs standard matrix multiplication C = A × B (no aliasing).
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: If A and B are *Dense, use i→k→j with row-major strides;
//     otherwise use i→j→k. Both orders add the k-terms of C[i,j] for
//     k = 0..n-1, left to right.
//
// Inputs:
//   - A: left matrix with shape (r × n).
//   - B: right matrix with shape (n × c).
//
// Returns:
//   - Matrix: new Dense C with shape (r × c).
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Determinism:
//   - Fixed summation order over k; repeated calls are bit-identical.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var (
		i, j, k         int // loop iterators
		av, bv, current float64
	)
	// Fast-path for two Dense matrices
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			// da.data layout: i*aCols + k
			// db.data layout: k*bCols + j
			var rowOffsetA, rowOffsetB, rowOffsetR int
			for i = 0; i < aRows; i++ {
				rowOffsetA = i * aCols
				rowOffsetR = i * bCols
				for k = 0; k < aCols; k++ {
					av = da.data[rowOffsetA+k]
					rowOffsetB = k * bCols
					for j = 0; j < bCols; j++ {
						res.data[rowOffsetR+j] += av * db.data[rowOffsetB+j]
					}
				}
			}

			return res, nil
		}
	}

	// Fallback: generic interface triple-loop (i-j-k)
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			current = ZeroSum
			for k = 0; k < aCols; k++ {
				av, err = a.At(i, k)
				if err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", i, k, err))
				}
				bv, err = b.At(k, j)
				if err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", k, j, err))
				}
				current += av * bv
			}
			if err = res.Set(i, j, current); err != nil {
				return nil, matrixErrorf(opMul, fmt.Errorf("Set(%d,%d): %w", i, j, err))
			}
		}
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// Input is validated non-nil; the original matrix is never mutated.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Transpose(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(cols, rows) // dims flipped
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	var i, j int // loop iterators
	if dm, ok := m.(*Dense); ok {
		// data[i*cols + j] → res.data[j*rows + i]
		var baseSrc int
		for i = 0; i < rows; i++ {
			baseSrc = i * cols
			for j = 0; j < cols; j++ {
				res.data[j*rows+i] = dm.data[baseSrc+j]
			}
		}

		return res, nil
	}

	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, err = m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opTranspose, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if err = res.Set(j, i, v); err != nil {
				return nil, matrixErrorf(opTranspose, fmt.Errorf("Set(%d,%d): %w", j, i, err))
			}
		}
	}

	return res, nil
}

// MatVec computes y = m·x for an r×c matrix and a length-c vector.
//
// Errors:
//   - ErrNilMatrix (nil m or nil x), ErrDimensionMismatch (len(x) != Cols).
//
// Determinism:
//   - y[i] accumulates m[i,j]*x[j] for j = 0..c-1, left to right.
//
// Complexity:
//   - Time O(r*c), Space O(r).
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	rows, cols := m.Rows(), m.Cols()
	y := make([]float64, rows)

	// Fast-path: *Dense allows flat, row-major dot-products.
	if d, ok := m.(*Dense); ok {
		var i, j, base int
		var acc float64
		for i = 0; i < d.r; i++ {
			acc = ZeroSum
			base = i * d.c
			for j = 0; j < d.c; j++ {
				acc += d.data[base+j] * x[j]
			}
			y[i] = acc
		}

		return y, nil
	}

	var i, j int
	var mv float64
	var err error
	for i = 0; i < rows; i++ {
		y[i] = ZeroSum
		for j = 0; j < cols; j++ {
			mv, err = m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opMatVec, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			y[i] += mv * x[j]
		}
	}

	return y, nil
}

// Inverse2x2 returns the inverse of a 2×2 matrix using the closed form
//
//	[a b]⁻¹ = 1/det · [ d -b]   det = a·d − b·c
//	[c d]             [-c  a]
//
// The kernel is specialised: any other shape is rejected rather than handed
// to a general routine.
//
// Errors:
//   - ErrNilMatrix (nil input).
//   - ErrBadShape (input is not exactly 2×2).
//   - ErrSingular (det == 0 exactly, or det not finite: an overflowed
//     product makes det ±Inf or NaN and the inverse meaningless).
//
// Complexity:
//   - Time O(1), Space O(1).
func Inverse2x2(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opInverse2x2, err)
	}
	if err := ValidateShape(m, 2, 2); err != nil {
		return nil, matrixErrorf(opInverse2x2, err)
	}

	var cells [4]float64
	var err error
	for idx := range cells {
		if cells[idx], err = m.At(idx/2, idx%2); err != nil {
			return nil, matrixErrorf(opInverse2x2, err)
		}
	}
	a, b, c, d := cells[0], cells[1], cells[2], cells[3]

	det := a*d - b*c
	if det == ZeroDeterminant || math.IsNaN(det) || math.IsInf(det, 0) {
		return nil, matrixErrorf(opInverse2x2, ErrSingular)
	}

	inv := &Dense{r: 2, c: 2, data: []float64{
		d / det, -b / det,
		-c / det, a / det,
	}}

	return inv, nil
}
