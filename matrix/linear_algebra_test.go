// Package matrix_test contains unit tests for the linear algebra kernels.
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/thermofit/matrix"
)

func TestTranspose(t *testing.T) {
	m := NewFilledDense(t, 2, 3, []float64{
		1, 2, 3,
		4, 5, 6,
	})

	for name, in := range map[string]matrix.Matrix{"dense": m, "fallback": hide{m}} {
		t.Run(name, func(t *testing.T) {
			tr, err := matrix.Transpose(in)
			require.NoError(t, err)
			assert.Equal(t, 3, tr.Rows())
			assert.Equal(t, 2, tr.Cols())
			assert.Equal(t, []float64{1, 4, 2, 5, 3, 6}, Flatten(t, tr))
		})
	}
	assert.Equal(t, 1.0, MustAt(t, m, 0, 0), "operand must not be mutated")
}

func TestMul(t *testing.T) {
	a := NewFilledDense(t, 2, 3, []float64{
		1, 2, 3,
		4, 5, 6,
	})
	b := NewFilledDense(t, 3, 2, []float64{
		7, 8,
		9, 10,
		11, 12,
	})
	want := []float64{58, 64, 139, 154}

	cases := map[string][2]matrix.Matrix{
		"dense":          {a, b},
		"fallback-left":  {hide{a}, b},
		"fallback-right": {a, hide{b}},
	}
	for name, ops := range cases {
		t.Run(name, func(t *testing.T) {
			c, err := matrix.Mul(ops[0], ops[1])
			require.NoError(t, err)
			assert.Equal(t, 2, c.Rows())
			assert.Equal(t, 2, c.Cols())
			assert.Equal(t, want, Flatten(t, c))
		})
	}
}

func TestMul_Errors(t *testing.T) {
	a := MustDense(t, 2, 3)
	_, err := matrix.Mul(a, MustDense(t, 2, 3))
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.Mul(nil, a)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)

	var nilDense *matrix.Dense
	_, err = matrix.Mul(a, nilDense)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix, "typed nil *Dense must be rejected")
}

func TestMatVec(t *testing.T) {
	m := NewFilledDense(t, 2, 3, []float64{
		1, 0, 2,
		-1, 3, 1,
	})
	x := []float64{3, 2, 1}

	for name, in := range map[string]matrix.Matrix{"dense": m, "fallback": hide{m}} {
		t.Run(name, func(t *testing.T) {
			y, err := matrix.MatVec(in, x)
			require.NoError(t, err)
			assert.Equal(t, []float64{5, 4}, y)
		})
	}

	_, err := matrix.MatVec(m, []float64{1, 2})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.MatVec(m, nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestInverse2x2(t *testing.T) {
	m := NewFilledDense(t, 2, 2, []float64{
		4, 7,
		2, 6,
	})
	inv, err := matrix.Inverse2x2(m)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0.6, -0.7, -0.2, 0.4}, Flatten(t, inv), 1e-12)

	// A·A⁻¹ = I
	id, err := matrix.Mul(m, inv)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1, 0, 0, 1}, Flatten(t, id), 1e-12)

	viaFallback, err := matrix.Inverse2x2(hide{m})
	require.NoError(t, err)
	assert.Equal(t, Flatten(t, inv), Flatten(t, viaFallback))
}

func TestInverse2x2_Singular(t *testing.T) {
	m := NewFilledDense(t, 2, 2, []float64{
		75, 15,
		15, 3,
	})
	_, err := matrix.Inverse2x2(m)
	assert.ErrorIs(t, err, matrix.ErrSingular)
}

func TestInverse2x2_NonFiniteDeterminant(t *testing.T) {
	inf := math.Inf(1)
	for name, cells := range map[string][]float64{
		"inf":     {inf, 6, 6, 3}, // Inf·3 − 36 = Inf
		"nan-det": {inf, inf, inf, 3},
		"nan":     {math.NaN(), 1, 1, 1},
	} {
		_, err := matrix.Inverse2x2(NewFilledDense(t, 2, 2, cells))
		assert.ErrorIs(t, err, matrix.ErrSingular, name)
	}
}

func TestInverse2x2_RejectsOtherShapes(t *testing.T) {
	for _, shape := range [][2]int{{3, 3}, {1, 1}, {2, 3}, {3, 2}} {
		_, err := matrix.Inverse2x2(MustDense(t, shape[0], shape[1]))
		assert.ErrorIs(t, err, matrix.ErrBadShape, "%dx%d", shape[0], shape[1])
	}
	_, err := matrix.Inverse2x2(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestKernels_Deterministic runs the normal-equation pipeline twice and
// demands bit-identical output.
func TestKernels_Deterministic(t *testing.T) {
	x, err := matrix.NewDenseFromRows([][]float64{{0.1, 1}, {0.7, 1}, {1.3, 1}, {2.9, 1}})
	require.NoError(t, err)
	y := []float64{0.3, 1.1, 2.2, 5.9}

	run := func() []float64 {
		xt, err := matrix.Transpose(x)
		require.NoError(t, err)
		xtx, err := matrix.Mul(xt, x)
		require.NoError(t, err)
		xty, err := matrix.MatVec(xt, y)
		require.NoError(t, err)
		inv, err := matrix.Inverse2x2(xtx)
		require.NoError(t, err)
		beta, err := matrix.MatVec(inv, xty)
		require.NoError(t, err)

		return beta
	}
	assert.Equal(t, run(), run())
}
