// Package matrix provides core linear algebra primitives for array-based computations.
// Dense is a concrete, row-major implementation of the Matrix interface,
// storing elements in a flat slice for performance and cache friendliness.
package matrix

import (
	"fmt"
	"strings"
)

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of float64 values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
type Dense struct {
	r, c int       // number of rows and columns
	data []float64 // flat backing storage, length == r*c
}

var _ Matrix = (*Dense)(nil)

// NewDense creates an r×c Dense matrix initialized to zeros.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate flat backing slice.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	// Validate dimensions
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// NewDenseFromRows copies a slice of equal-length rows into a new Dense.
// Stage 1 (Validate): at least one non-empty row; every row has the same length.
// Stage 2 (Execute): copy rows in order into the flat backing slice.
// Errors: ErrInvalidDimensions (no rows / empty first row), ErrDimensionMismatch (ragged).
// Complexity: O(r*c).
func NewDenseFromRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	cols := len(rows[0])
	m, err := NewDense(len(rows), cols)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("NewDenseFromRows: row %d has %d columns, want %d: %w",
				i, len(row), cols, ErrDimensionMismatch)
		}
		copy(m.data[i*cols:(i+1)*cols], row)
	}

	return m, nil
}

// Rows returns the number of rows in the matrix.
func (m *Dense) Rows() int {
	return m.r
}

// Cols returns the number of columns in the matrix.
func (m *Dense) Cols() int {
	return m.c
}

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Clone returns a deep copy of the Dense matrix.
// Complexity: O(r*c) time and memory for copy.
func (m *Dense) Clone() Matrix {
	copyData := make([]float64, len(m.data))
	copy(copyData, m.data)

	return &Dense{r: m.r, c: m.c, data: copyData}
}

// String implements fmt.Stringer for easy debugging.
// Complexity: O(r*c) for string construction.
func (m *Dense) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ {
		sb.WriteByte('[')
		for j = 0; j < m.c; j++ {
			fmt.Fprintf(&sb, "%g", m.data[i*m.c+j])
			if j < m.c-1 {
				sb.WriteString(", ")
			}
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
