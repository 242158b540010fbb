// Package interp reconstructs a continuous approximation of a sampled channel
// by piecewise-linear interpolation.
//
// 🚀 What it does:
//
//	For every pair of consecutive samples (x_i, y_i), (x_{i+1}, y_{i+1}) the
//	interpolator derives the segment's own line
//
//	  slope     = (y_{i+1} - y_i) / (x_{i+1} - x_i)
//	  intercept = y_i - slope·x_i
//
//	and samples it at `density` evenly spaced x-values spanning the segment.
//	The last generated point of each segment is dropped (it is the first
//	point of the next one) and the final sample is appended exactly once.
//
// ⚙️ Usage:
//
//	res, err := interp.Interpolate(times, temps, interp.WithDensity(50))
//	if err != nil {
//	  // errors.Is(err, interp.ErrInvalidInput)
//	}
//	for _, seg := range res.Segments {
//	  fmt.Println(seg.Lo, seg.Hi, seg.Slope, seg.Intercept)
//	}
//
// Guarantees:
//
//   - len(res.X) == len(res.Y) == (len(x)-1)·(density-1) + 1
//   - len(res.Segments) == len(x) - 1
//   - res.X[0] == x[0] and res.X[len-1] == x[len(x)-1] exactly
//   - pure and deterministic: identical input gives bit-identical output
//
// Complexity: O(n·density) time and memory.
package interp
