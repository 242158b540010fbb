package curve_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/thermofit/curve"
)

func TestLine_At(t *testing.T) {
	l := curve.Line{Slope: 2, Intercept: 3}
	assert.Equal(t, 3.0, l.At(0))
	assert.Equal(t, 9.0, l.At(3))
}

func TestSegment_Contains(t *testing.T) {
	open := curve.Segment{Lo: 0, Hi: 30}
	assert.True(t, open.Contains(0))
	assert.True(t, open.Contains(29.9))
	assert.False(t, open.Contains(30), "non-final segments are half-open")
	assert.False(t, open.Contains(-1))

	closed := curve.Segment{Lo: 30, Hi: 60, Closed: true}
	assert.True(t, closed.Contains(60))
	assert.False(t, closed.Contains(60.1))
}

func TestValidateSamples(t *testing.T) {
	cases := []struct {
		name   string
		x, y   []float64
		strict bool
		ok     bool
	}{
		{name: "valid", x: []float64{0, 1}, y: []float64{1, 2}, strict: true, ok: true},
		{name: "empty", x: nil, y: nil},
		{name: "single", x: []float64{1}, y: []float64{1}},
		{name: "mismatch", x: []float64{0, 1, 2}, y: []float64{1, 2}},
		{name: "nan-x", x: []float64{0, math.NaN()}, y: []float64{1, 2}},
		{name: "nan-y", x: []float64{0, 1}, y: []float64{math.NaN(), 2}},
		{name: "inf-x", x: []float64{0, math.Inf(1)}, y: []float64{1, 2}},
		{name: "inf-y", x: []float64{0, 1}, y: []float64{1, math.Inf(-1)}},
		{name: "equal-x-strict", x: []float64{5, 5, 5}, y: []float64{1, 2, 3}, strict: true},
		{name: "equal-x-lenient", x: []float64{5, 5, 5}, y: []float64{1, 2, 3}, ok: true},
		{name: "decreasing-strict", x: []float64{0, 2, 1}, y: []float64{1, 2, 3}, strict: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := curve.ValidateSamples(tc.x, tc.y, tc.strict)
			if tc.ok {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, curve.ErrInvalidInput)
		})
	}
}
