// Package lsq fits a single best-fit line y = slope·x + intercept to a
// sample sequence by ordinary least squares.
//
// The solver uses the explicit normal-equations form
//
//	β = (XᵗX)⁻¹ Xᵗy,   X = [x_i 1] (n×2)
//
// built from the matrix package kernels: Transpose, Mul, MatVec and the
// closed-form Inverse2x2. β[0] is the slope and β[1] the intercept.
//
// Errors:
//   - ErrInvalidInput: mismatched lengths, fewer than two samples, NaN.
//   - ErrSingularMatrix: XᵗX has a zero determinant (e.g. every x equal).
//     It also matches matrix.ErrSingular under errors.Is.
//
// x does not need to be sorted; the result does not depend on sample order
// beyond floating-point summation order, which is fixed (left to right).
package lsq
