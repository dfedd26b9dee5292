// Copyright 2025 Neuron Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package matrix provides the public API of the dense matrix engine.
//
// Matrices are immutable, row-major float64 values. Every operation returns
// a new matrix; shape violations panic with an error wrapping one of the
// exported sentinels (ErrDimensionMismatch, ErrBufferSize, ...).
//
// Example:
//
//	a := matrix.FromRows([][]float64{{1, 2, 3}, {4, 5, 6}})
//	b := matrix.FromRows([][]float64{{7, 8}, {9, 10}, {11, 12}})
//	c := a.DotMultiply(b) // [[58 64] [139 154]]
package matrix

import (
	"math/rand"

	"gonum.org/v1/gonum/mat"

	"github.com/neuron-go/neuron/internal/matrix"
)

// Matrix is a dense rows×cols matrix stored in row-major order.
type Matrix = matrix.Matrix

// Sentinel errors carried by matrix panics.
var (
	ErrDimensionMismatch = matrix.ErrDimensionMismatch
	ErrBufferSize        = matrix.ErrBufferSize
	ErrBadShape          = matrix.ErrBadShape
	ErrRaggedRows        = matrix.ErrRaggedRows
	ErrOutOfRange        = matrix.ErrOutOfRange
)

// Zeros returns a rows×cols matrix of zeros.
func Zeros(rows, cols int) *Matrix {
	return matrix.Zeros(rows, cols)
}

// Ones returns a rows×cols matrix of ones.
func Ones(rows, cols int) *Matrix {
	return matrix.Ones(rows, cols)
}

// Random returns a rows×cols matrix with elements uniform in [0, 1).
func Random(rows, cols int) *Matrix {
	return matrix.Random(rows, cols)
}

// RandomFrom is Random drawing from rng.
func RandomFrom(rng *rand.Rand, rows, cols int) *Matrix {
	return matrix.RandomFrom(rng, rows, cols)
}

// FromBuffer copies data (row-major, len rows*cols) into a new matrix.
func FromBuffer(rows, cols int, data []float64) *Matrix {
	return matrix.FromBuffer(rows, cols, data)
}

// FromVector returns a single-column matrix holding values.
func FromVector(values []float64) *Matrix {
	return matrix.FromVector(values)
}

// FromRows builds a matrix from equally long row literals.
func FromRows(rows [][]float64) *Matrix {
	return matrix.FromRows(rows)
}

// FromGonum copies a gonum matrix.
func FromGonum(a mat.Matrix) *Matrix {
	return matrix.FromGonum(a)
}
