// Package matrix implements a small dense, row-major float64 matrix.
//
// Matrices are immutable values: every operation returns a new matrix and
// no method writes into its receiver or arguments. Constructors copy caller
// buffers, and Data returns a copy, so two matrices never share storage.
//
// Shape violations (mismatched operands, wrong buffer length, ragged row
// literals) are programmer errors and panic with an error wrapping one of
// the package sentinels.
package matrix

import (
	"fmt"
	"math/rand"
)

// Matrix is a rows×cols matrix stored in row-major order.
// Element (r, c) lives at data[r*cols+c].
type Matrix struct {
	rows, cols int
	data       []float64 // len(data) == rows*cols
}

// Zeros returns a rows×cols matrix with every element set to 0.
func Zeros(rows, cols int) *Matrix {
	validShape("Zeros", rows, cols)
	return &Matrix{rows: rows, cols: cols, data: make([]float64, rows*cols)}
}

// Ones returns a rows×cols matrix with every element set to 1.
func Ones(rows, cols int) *Matrix {
	m := Zeros(rows, cols)
	for i := range m.data {
		m.data[i] = 1
	}
	return m
}

// Random returns a rows×cols matrix with elements drawn independently and
// uniformly from [0, 1) using the global math/rand source.
func Random(rows, cols int) *Matrix {
	validShape("Random", rows, cols)
	m := &Matrix{rows: rows, cols: cols, data: make([]float64, rows*cols)}
	for i := range m.data {
		//nolint:gosec // weight initialisation, not security-critical
		m.data[i] = rand.Float64()
	}
	return m
}

// RandomFrom is Random drawing from rng instead of the global source.
func RandomFrom(rng *rand.Rand, rows, cols int) *Matrix {
	validShape("RandomFrom", rows, cols)
	m := &Matrix{rows: rows, cols: cols, data: make([]float64, rows*cols)}
	for i := range m.data {
		m.data[i] = rng.Float64()
	}
	return m
}

// FromBuffer returns a rows×cols matrix holding a copy of data, which must be
// in row-major order. It panics with ErrBufferSize if len(data) != rows*cols.
func FromBuffer(rows, cols int, data []float64) *Matrix {
	validShape("FromBuffer", rows, cols)
	if len(data) != rows*cols {
		panic(fmt.Errorf("%w: FromBuffer %dx%d needs %d values, got %d",
			ErrBufferSize, rows, cols, rows*cols, len(data)))
	}
	buf := make([]float64, len(data))
	copy(buf, data)
	return &Matrix{rows: rows, cols: cols, data: buf}
}

// FromVector returns a single-column matrix holding values in order.
func FromVector(values []float64) *Matrix {
	return FromBuffer(len(values), 1, values)
}

// FromRows builds a matrix from row literals:
//
//	m := matrix.FromRows([][]float64{
//	    {1, 2, 3},
//	    {4, 5, 6},
//	})
//
// All rows must have the same length; otherwise it panics with ErrRaggedRows.
func FromRows(rows [][]float64) *Matrix {
	if len(rows) == 0 {
		return Zeros(0, 0)
	}
	cols := len(rows[0])
	data := make([]float64, 0, len(rows)*cols)
	for i, row := range rows {
		if len(row) != cols {
			panic(fmt.Errorf("%w: row %d has %d elements, want %d", ErrRaggedRows, i, len(row), cols))
		}
		data = append(data, row...)
	}
	return &Matrix{rows: len(rows), cols: cols, data: data}
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int {
	return m.rows
}

// Cols returns the number of columns.
func (m *Matrix) Cols() int {
	return m.cols
}

// At returns the element at (row, col). It panics with ErrOutOfRange for
// indices outside the matrix.
func (m *Matrix) At(row, col int) float64 {
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		panic(fmt.Errorf("%w: At(%d,%d) on %dx%d", ErrOutOfRange, row, col, m.rows, m.cols))
	}
	return m.data[row*m.cols+col]
}

// Data returns a copy of the row-major backing values.
func (m *Matrix) Data() []float64 {
	out := make([]float64, len(m.data))
	copy(out, m.data)
	return out
}

// Column returns a copy of column col.
func (m *Matrix) Column(col int) []float64 {
	if col < 0 || col >= m.cols {
		panic(fmt.Errorf("%w: Column(%d) on %dx%d", ErrOutOfRange, col, m.rows, m.cols))
	}
	out := make([]float64, m.rows)
	for r := 0; r < m.rows; r++ {
		out[r] = m.data[r*m.cols+col]
	}
	return out
}
