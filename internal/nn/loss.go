package nn

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/neuron-go/neuron/internal/matrix"
)

// MeanSquaredError returns mean((predicted - target)²).
//
// Panics with ErrTargetShape if the shapes differ. An empty pair has zero
// error.
func MeanSquaredError(predicted, target *matrix.Matrix) float64 {
	if predicted.Rows() != target.Rows() || predicted.Cols() != target.Cols() {
		panic(fmt.Errorf("%w: MeanSquaredError: %dx%d vs %dx%d",
			ErrTargetShape, predicted.Rows(), predicted.Cols(), target.Rows(), target.Cols()))
	}
	diff := predicted.Subtract(target)
	squared := diff.ElementwiseMultiply(diff).Data()
	if len(squared) == 0 {
		return 0
	}
	return floats.Sum(squared) / float64(len(squared))
}

// Evaluate returns the mean over examples of MeanSquaredError between the
// prediction for inputs[j] and targets[j]. It only runs forward passes and
// leaves the network unchanged.
//
// Panics with ErrDatasetMismatch when len(inputs) != len(targets).
func (n *Network) Evaluate(inputs, targets [][]float64) float64 {
	if len(inputs) != len(targets) {
		panic(fmt.Errorf("%w: Network.Evaluate: %d inputs, %d targets",
			ErrDatasetMismatch, len(inputs), len(targets)))
	}
	if len(inputs) == 0 {
		return 0
	}
	losses := make([]float64, len(inputs))
	for j := range inputs {
		predicted := n.Predict(matrix.FromVector(inputs[j]))
		losses[j] = MeanSquaredError(predicted, matrix.FromVector(targets[j]))
	}
	return floats.Sum(losses) / float64(len(losses))
}
