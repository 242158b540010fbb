package curve

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// MinSamples is the smallest sample count that defines a line.
const MinSamples = 2

// ErrInvalidInput reports a sample sequence that violates a caller contract:
// mismatched lengths, fewer than MinSamples samples, NaN or ±Inf values or, when
// checked, x values that are not strictly increasing.
var ErrInvalidInput = errors.New("curve: invalid input")

// ValidateSamples checks the preconditions shared by every consumer of a
// sample sequence. When strict is set, x must also be strictly increasing.
// Complexity: O(n).
func ValidateSamples(x, y []float64, strict bool) error {
	if len(x) != len(y) {
		return fmt.Errorf("len(x)=%d, len(y)=%d: %w", len(x), len(y), ErrInvalidInput)
	}
	if len(x) < MinSamples {
		return fmt.Errorf("%d samples, need at least %d: %w", len(x), MinSamples, ErrInvalidInput)
	}
	if floats.HasNaN(x) || floats.HasNaN(y) {
		return fmt.Errorf("NaN sample: %w", ErrInvalidInput)
	}
	if !allFinite(x) || !allFinite(y) {
		return fmt.Errorf("infinite sample: %w", ErrInvalidInput)
	}
	if !strict {
		return nil
	}
	for i := 1; i < len(x); i++ {
		if x[i] <= x[i-1] {
			return fmt.Errorf("x[%d]=%g does not exceed x[%d]=%g: %w", i, x[i], i-1, x[i-1], ErrInvalidInput)
		}
	}

	return nil
}

func allFinite(s []float64) bool {
	for _, v := range s {
		if math.IsInf(v, 0) {
			return false
		}
	}

	return true
}
