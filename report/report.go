// Package report renders per-channel equation reports.
//
// Every line has the shape
//
//	<x_lo> <= x <= <x_hi> ; y = <intercept> + <slope> x ; <label>
//
// with bounds right-aligned to 10 characters and coefficients printed as
// %10.4f. Interpolation segments come first, in order, followed by the single
// least-squares line whose domain is reported as [0, max(x)].
package report

import (
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xaionaro-go/datacounter"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/thermofit/curve"
	"github.com/katalvlaran/thermofit/readings"
)

// Labels of the two equation kinds.
const (
	LabelInterpolation = "interpolation"
	LabelLeastSquares  = "least-squares"
)

// FitDomainStart is the reported lower bound of the least-squares line.
const FitDomainStart = 0.0

// Line formats a single equation line (without trailing newline).
func Line(lo, hi float64, l curve.Line, label string) string {
	return fmt.Sprintf("%10s <= x <= %10s ; y = %10.4f + %10.4f x ; %s",
		formatBound(lo), formatBound(hi), l.Intercept, l.Slope, label)
}

// WriteChannel writes the report of one channel to w and returns the number
// of bytes written. x is the channel's original sample axis; it must be
// non-empty.
func WriteChannel(w io.Writer, x []float64, segs []curve.Segment, fit curve.Line) (int64, error) {
	if len(x) == 0 {
		return 0, fmt.Errorf("report: %w", curve.ErrInvalidInput)
	}
	wc := datacounter.NewWriterCounter(w)
	for _, s := range segs {
		if _, err := io.WriteString(wc, Line(s.Lo, s.Hi, s.Line, LabelInterpolation)+"\n"); err != nil {
			return int64(wc.Count()), fmt.Errorf("report: %w", err)
		}
	}
	if _, err := io.WriteString(wc, Line(FitDomainStart, floats.Max(x), fit, LabelLeastSquares)+"\n"); err != nil {
		return int64(wc.Count()), fmt.Errorf("report: %w", err)
	}

	return int64(wc.Count()), nil
}

// FileName returns the report path for channel i of input:
// "<input without extension>-core-NN.txt".
func FileName(input string, channel int) string {
	base := strings.TrimSuffix(input, filepath.Ext(input))

	return base + "-" + readings.ChannelName(channel) + ".txt"
}

// formatBound prints x with the fewest digits that round-trip (30, 12.5).
func formatBound(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}
