// Package matrix provides the small dense linear-algebra kernels used by the
// least-squares solver.
//
// The matrix package provides:
//
//   - Matrix, a minimal interface over two-dimensional float64 storage.
//   - Dense, a row-major implementation with bounds-checked At/Set.
//   - Transpose, Mul and MatVec over arbitrary rectangular shapes.
//   - Inverse2x2, a closed-form inverse specialised (and guarded) for 2×2 input.
//
// Every kernel allocates a fresh result, never mutates its operands and
// accumulates sums in a fixed left-to-right order, so repeated calls on the
// same input are bit-identical.
//
// Matrices here are transient computational structures: they are built,
// multiplied and dropped within a single solver call.
package matrix
