// Package curve holds the value types shared by the interpolator and the
// least-squares solver, plus the sample-sequence validation both rely on.
//
// ⚙️ Types:
//
//	Line: y = Slope·x + Intercept
//	Segment: a Line restricted to [Lo, Hi) (or [Lo, Hi] for the final one)
//
// A sample sequence is a pair of parallel slices x, y. ValidateSamples
// enforces the shared preconditions (equal lengths, at least two samples,
// no NaN) and, on request, a strictly increasing x.
package curve
