package lsq

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/thermofit/curve"
	"github.com/katalvlaran/thermofit/matrix"
)

var (
	// ErrInvalidInput is curve.ErrInvalidInput, re-exported for callers that only import lsq.
	ErrInvalidInput = curve.ErrInvalidInput

	// ErrSingularMatrix reports a degenerate design matrix: XᵗX cannot be inverted.
	ErrSingularMatrix = errors.New("lsq: singular design matrix")
)

// designCols is the width of the design matrix: one column for x, one for the constant term.
const designCols = 2

// FitLine returns the line minimising the sum of squared vertical residuals.
//
// Stages:
//  1. Validate samples (lengths, count, NaN).
//  2. Build X with rows [x_i, 1].
//  3. XᵗX = Xᵗ·X, Xᵗy = Xᵗ·y.
//  4. Invert XᵗX in closed form; det == 0 or non-finite → ErrSingularMatrix.
//  5. β = (XᵗX)⁻¹·Xᵗy; a non-finite β (overflow in Xᵗy) → ErrSingularMatrix.
//
// Complexity: O(n) time, O(n) memory for X and Xᵗ.
func FitLine(x, y []float64) (curve.Line, error) {
	if err := curve.ValidateSamples(x, y, false); err != nil {
		// One sample gives a rank-1 XᵗX: it is both too short and singular.
		if len(x) == 1 && len(y) == 1 {
			return curve.Line{}, fmt.Errorf("%w: %w", ErrSingularMatrix, err)
		}
		return curve.Line{}, fmt.Errorf("lsq: %w", err)
	}

	design, err := designMatrix(x)
	if err != nil {
		return curve.Line{}, fmt.Errorf("lsq: design matrix: %w", err)
	}
	xt, err := matrix.Transpose(design)
	if err != nil {
		return curve.Line{}, fmt.Errorf("lsq: %w", err)
	}
	xtx, err := matrix.Mul(xt, design)
	if err != nil {
		return curve.Line{}, fmt.Errorf("lsq: %w", err)
	}
	xty, err := matrix.MatVec(xt, y)
	if err != nil {
		return curve.Line{}, fmt.Errorf("lsq: %w", err)
	}
	inv, err := matrix.Inverse2x2(xtx)
	if err != nil {
		if errors.Is(err, matrix.ErrSingular) {
			return curve.Line{}, fmt.Errorf("%w: %w", ErrSingularMatrix, err)
		}
		return curve.Line{}, fmt.Errorf("lsq: %w", err)
	}
	beta, err := matrix.MatVec(inv, xty)
	if err != nil {
		return curve.Line{}, fmt.Errorf("lsq: %w", err)
	}

	if !isFinite(beta[0]) || !isFinite(beta[1]) {
		return curve.Line{}, fmt.Errorf("%w: coefficients (%g, %g) not finite", ErrSingularMatrix, beta[0], beta[1])
	}

	return curve.Line{Slope: beta[0], Intercept: beta[1]}, nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// designMatrix builds the n×2 matrix with rows [x_i, 1].
func designMatrix(x []float64) (*matrix.Dense, error) {
	m, err := matrix.NewDense(len(x), designCols)
	if err != nil {
		return nil, err
	}
	for i, xi := range x {
		if err = m.Set(i, 0, xi); err != nil {
			return nil, err
		}
		if err = m.Set(i, 1, 1); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// Residuals returns y_i - l.At(x_i) for every sample.
func Residuals(x, y []float64, l curve.Line) ([]float64, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("lsq: len(x)=%d, len(y)=%d: %w", len(x), len(y), ErrInvalidInput)
	}
	r := make([]float64, len(x))
	for i := range x {
		r[i] = y[i] - l.At(x[i])
	}

	return r, nil
}

// SumSquares returns Σ r_i², accumulated left to right.
func SumSquares(r []float64) float64 {
	sum := matrix.ZeroSum
	for _, v := range r {
		sum += v * v
	}

	return sum
}
