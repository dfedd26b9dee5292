package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Gonum returns a copy of m as a gonum *mat.Dense.
//
// gonum does not represent empty matrices, so Gonum panics with ErrBadShape
// when m has zero rows or columns.
func (m *Matrix) Gonum() *mat.Dense {
	if m.rows == 0 || m.cols == 0 {
		panic(fmt.Errorf("%w: Gonum %dx%d", ErrBadShape, m.rows, m.cols))
	}
	return mat.NewDense(m.rows, m.cols, m.Data())
}

// FromGonum copies any gonum matrix into a new Matrix.
func FromGonum(a mat.Matrix) *Matrix {
	rows, cols := a.Dims()
	data := make([]float64, 0, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			data = append(data, a.At(r, c))
		}
	}
	return &Matrix{rows: rows, cols: cols, data: data}
}
