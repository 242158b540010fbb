package interp

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/thermofit/curve"
)

// ErrInvalidInput is curve.ErrInvalidInput, re-exported for callers that only
// import interp.
var ErrInvalidInput = curve.ErrInvalidInput

// Result is the output of Interpolate.
type Result struct {
	// X and Y hold the densified curve.
	X, Y []float64
	// Segments holds one equation per consecutive sample pair.
	Segments []curve.Segment
}

// Interpolate performs piecewise-linear interpolation over the samples (x, y).
//
// Preconditions: len(x) == len(y) >= 2, no NaN, x strictly increasing (the
// last one is skipped under WithoutOrderCheck).
//
// Algorithm:
//  1. For each i in 0..n-2 derive slope and intercept of segment i.
//  2. Generate density x-values x_i + k·step, step = (x_{i+1}-x_i)/(density-1),
//     with the k = density-1 value pinned to x_{i+1}.
//  3. Evaluate the segment's line at each generated x.
//  4. Append all but the last generated point.
//  5. After the loop append (x_{n-1}, y_{n-1}) once.
//
// Errors:
//   - ErrInvalidInput: wrapped with "interp: ..." context.
func Interpolate(x, y []float64, opts ...Option) (Result, error) {
	o := gatherOptions(opts)
	if err := curve.ValidateSamples(x, y, o.CheckOrder); err != nil {
		return Result{}, fmt.Errorf("interp: %w", err)
	}

	n := len(x)
	perSegment := o.Density - 1
	total := (n-1)*perSegment + 1
	res := Result{
		X:        make([]float64, 0, total),
		Y:        make([]float64, 0, total),
		Segments: make([]curve.Segment, 0, n-1),
	}

	var (
		i, k      int
		x0, x1    float64
		step, xk  float64
		t         float64
		wide      bool
		line      curve.Line
		divisions = float64(perSegment)
	)
	for i = 0; i < n-1; i++ {
		x0, x1 = x[i], x[i+1]
		line = segmentLine(x0, y[i], x1, y[i+1])
		res.Segments = append(res.Segments, curve.Segment{
			Lo:     x0,
			Hi:     x1,
			Line:   line,
			Closed: i == n-2,
		})

		// k == perSegment would be x1 itself, the next segment's first point.
		step = (x1 - x0) / divisions
		wide = math.IsInf(step, 0)
		res.X = append(res.X, x0)
		res.Y = append(res.Y, line.At(x0))
		for k = 1; k < perSegment; k++ {
			if wide {
				// x1 - x0 overflowed; blend the endpoints instead.
				t = float64(k) / divisions
				xk = x0*(1-t) + x1*t
			} else {
				xk = x0 + float64(k)*step
			}
			res.X = append(res.X, xk)
			res.Y = append(res.Y, line.At(xk))
		}
	}
	res.X = append(res.X, x[n-1])
	res.Y = append(res.Y, y[n-1])

	return res, nil
}

// segmentLine derives the line through (x0, y0) and (x1, y1).
// x0 == x1 is a caller error; the result is then ±Inf/NaN.
func segmentLine(x0, y0, x1, y1 float64) curve.Line {
	slope := (y1 - y0) / (x1 - x0)

	return curve.Line{Slope: slope, Intercept: y0 - slope*x0}
}

// Equations returns the (slope, intercept) pair of every segment, in order.
func (r Result) Equations() []curve.Line {
	out := make([]curve.Line, len(r.Segments))
	for i, s := range r.Segments {
		out[i] = s.Line
	}

	return out
}

// Eval evaluates the piecewise curve at x using the segment whose domain
// contains it. It returns false when x lies outside [x_0, x_{n-1}].
// Complexity: O(log n).
func (r Result) Eval(x float64) (float64, bool) {
	if len(r.Segments) == 0 {
		return 0, false
	}
	// First segment whose upper bound exceeds x; the closed final segment
	// also owns x == Hi.
	idx := sort.Search(len(r.Segments), func(i int) bool { return r.Segments[i].Hi > x })
	if idx == len(r.Segments) {
		idx--
	}
	seg := r.Segments[idx]
	if !seg.Contains(x) {
		return 0, false
	}

	return seg.At(x), true
}
