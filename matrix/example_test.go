package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/thermofit/matrix"
)

// ExampleInverse2x2 inverts a small symmetric matrix.
func ExampleInverse2x2() {
	m, _ := matrix.NewDenseFromRows([][]float64{
		{2, 1},
		{1, 1},
	})
	inv, err := matrix.Inverse2x2(m)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Print(inv)

	// Output:
	// [1, -1]
	// [-1, 2]
}

// ExampleMul multiplies a 2×2 by a 2×1 matrix.
func ExampleMul() {
	a, _ := matrix.NewDenseFromRows([][]float64{{1, 2}, {3, 4}})
	b, _ := matrix.NewDenseFromRows([][]float64{{5}, {6}})
	c, _ := matrix.Mul(a, b)
	fmt.Print(c)

	// Output:
	// [17]
	// [39]
}
