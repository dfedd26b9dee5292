package matrix

import (
	"errors"
	"fmt"
)

// Sentinel errors carried by the panics of this package.
//
// Shape problems are programmer errors, so operations panic instead of
// returning them. The panic value is always an error wrapping one of these
// sentinels; tests recover it and match with errors.Is.
var (
	// ErrDimensionMismatch indicates incompatible operand shapes, e.g.
	// Add of different shapes or DotMultiply where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrBufferSize indicates a backing buffer whose length is not rows*cols.
	ErrBufferSize = errors.New("matrix: buffer length does not match shape")

	// ErrBadShape indicates a negative row or column count.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrRaggedRows indicates a row literal whose rows differ in length.
	ErrRaggedRows = errors.New("matrix: inconsistent number of elements in rows")

	// ErrOutOfRange indicates a row or column index outside the matrix.
	ErrOutOfRange = errors.New("matrix: index out of range")
)

// mismatch panics with ErrDimensionMismatch naming op and both shapes.
func mismatch(op string, a, b *Matrix) {
	panic(fmt.Errorf("%w: %s %dx%d vs %dx%d", ErrDimensionMismatch, op, a.rows, a.cols, b.rows, b.cols))
}

// sameShape panics unless a and b have identical shapes.
func sameShape(op string, a, b *Matrix) {
	if a.rows != b.rows || a.cols != b.cols {
		mismatch(op, a, b)
	}
}

func validShape(op string, rows, cols int) {
	if rows < 0 || cols < 0 {
		panic(fmt.Errorf("%w: %s %dx%d", ErrBadShape, op, rows, cols))
	}
}
