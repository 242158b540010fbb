// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating shape/nil checks here.
//  - Return sentinel errors tagged with the validator name so call sites can
//    wrap uniformly with the operation tag.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing on success.
//
// Note:
//  - Each composite validator follows a fixed sequence (e.g. NotNil → Shape).

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil – Ensures the matrix reference is non-nil.
//
// Returns ErrNilMatrix if m == nil, including a typed nil *Dense.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateShape – Ensures m is exactly rows×cols. Assumes m is not nil.
//
// Errors: ErrBadShape.
// Complexity: O(1).
func ValidateShape(m Matrix, rows, cols int) error {
	if m.Rows() != rows || m.Cols() != cols {
		return validatorErrorf("ValidateShape",
			fmt.Errorf("got %dx%d, want %dx%d: %w", m.Rows(), m.Cols(), rows, cols, ErrBadShape))
	}

	return nil
}

// ValidateVecLen ensures the vector length matches the required size n.
// Time: O(1). Space: O(1).
func ValidateVecLen(x []float64, n int) error {
	// Disallow nil vectors to avoid subtle bugs in MatVec-like routines.
	if x == nil {
		return validatorErrorf("ValidateVecLen", ErrNilMatrix)
	}
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
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
