package curve

// Line is the equation y = Slope·x + Intercept.
type Line struct {
	Slope     float64
	Intercept float64
}

// At evaluates the line at x.
func (l Line) At(x float64) float64 {
	return l.Slope*x + l.Intercept
}

// Segment is a Line valid on [Lo, Hi), or on the closed [Lo, Hi] when Closed
// is set. Only the final segment of a piecewise curve is closed.
type Segment struct {
	Lo, Hi float64
	Line
	Closed bool
}

// Contains reports whether x lies inside the segment's domain.
func (s Segment) Contains(x float64) bool {
	if x < s.Lo {
		return false
	}
	if s.Closed {
		return x <= s.Hi
	}

	return x < s.Hi
}
