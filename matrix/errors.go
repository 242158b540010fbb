// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels MUST return these sentinels (possibly wrapped with an
// operation tag) and tests MUST check them via errors.Is. No kernel panics on
// user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency. Kernels wrap
// these sentinels as "<Op>: <sentinel>" so callers still match with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> shape -> dimension mismatch -> numeric (singular).

var (
	// ErrBadShape is returned when an operand has a shape the kernel cannot
	// handle (e.g., Inverse2x2 applied to anything but 2×2).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Mul where a.Cols != b.Rows, or a ragged row set.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrSingular is returned when the determinant of a matrix is exactly zero.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")
)
