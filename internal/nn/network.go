// Package nn implements a fully connected feed-forward network trained by
// single-example backpropagation on top of the matrix package.
//
// The package provides:
//   - Activation: function/derivative pair (Sigmoid, Tanh, ReLU)
//   - Network: topology, weights, biases, forward and backward passes
//   - Trace: per-layer activations of one forward pass, consumed by the
//     backward pass
//   - Train: the epoch loop driving forward/backward over a dataset
//   - MeanSquaredError / Evaluate: loss reporting
//
// The forward and backward passes are composed from matrix operations and
// never index raw buffers.
package nn

import (
	"fmt"
	"math/rand"

	"github.com/neuron-go/neuron/internal/matrix"
)

// Network is a fully connected feed-forward network.
//
// For a topology [n0, n1, ..., nL] it holds L weight matrices, weights[i]
// of shape [n(i+1), n(i)], and L bias columns, biases[i] of shape
// [n(i+1), 1]. The same activation is applied after every layer.
//
// A Network is not safe for concurrent use. FeedForward followed by
// BackPropagate must be performed by a single caller before anyone else
// touches the instance; independent models need independent instances.
//
// Example:
//
//	net := nn.New([]int{2, 3, 1}, nn.Sigmoid{}, 0.5)
//	trace := net.FeedForward(matrix.FromVector([]float64{0, 1}))
//	net.BackPropagate(trace, matrix.FromVector([]float64{1}))
type Network struct {
	layers       []int
	weights      []*matrix.Matrix // weights[i]: [layers[i+1], layers[i]]
	biases       []*matrix.Matrix // biases[i]: [layers[i+1], 1]
	activation   Activation
	learningRate float64
}

// New creates a network with the given layer widths, activation and
// learning rate. Weights and biases are drawn uniformly from [0, 1) using
// the global math/rand source.
//
// Parameters:
//   - layers: neuron count per layer, input first, output last (len >= 2)
//   - activation: applied uniformly after every layer
//   - learningRate: stored as given; 0 is honoured and freezes training
//
// Panics with ErrInvalidTopology for fewer than two layers, a
// non-positive width or a nil activation.
func New(layers []int, activation Activation, learningRate float64) *Network {
	return newNetwork(layers, activation, learningRate, matrix.Random)
}

// NewWithRand is New drawing the initial weights and biases from rng, which
// makes initialisation reproducible.
func NewWithRand(layers []int, activation Activation, learningRate float64, rng *rand.Rand) *Network {
	return newNetwork(layers, activation, learningRate, func(rows, cols int) *matrix.Matrix {
		return matrix.RandomFrom(rng, rows, cols)
	})
}

func newNetwork(layers []int, activation Activation, learningRate float64, random func(rows, cols int) *matrix.Matrix) *Network {
	if len(layers) < 2 {
		panic(fmt.Errorf("%w: need at least 2 layers, got %d", ErrInvalidTopology, len(layers)))
	}
	for i, n := range layers {
		if n <= 0 {
			panic(fmt.Errorf("%w: layer %d has %d neurons", ErrInvalidTopology, i, n))
		}
	}
	if activation == nil {
		panic(fmt.Errorf("%w: nil activation", ErrInvalidTopology))
	}

	weights := make([]*matrix.Matrix, 0, len(layers)-1)
	biases := make([]*matrix.Matrix, 0, len(layers)-1)
	for i := 0; i < len(layers)-1; i++ {
		weights = append(weights, random(layers[i+1], layers[i]))
		biases = append(biases, random(layers[i+1], 1))
	}

	topology := make([]int, len(layers))
	copy(topology, layers)

	return &Network{
		layers:       topology,
		weights:      weights,
		biases:       biases,
		activation:   activation,
		learningRate: learningRate,
	}
}

// FeedForward runs a forward pass and returns its trace. The prediction is
// trace.Output().
//
// The input must be a single column with Layers()[0] rows; anything else
// panics with ErrInputShape.
func (n *Network) FeedForward(input *matrix.Matrix) *Trace {
	if input.Cols() != 1 || input.Rows() != n.layers[0] {
		panic(fmt.Errorf("%w: Network.FeedForward: expected %dx1 input, got %dx%d",
			ErrInputShape, n.layers[0], input.Rows(), input.Cols()))
	}

	current := input
	activations := make([]*matrix.Matrix, 0, len(n.layers))
	activations = append(activations, current)
	for i := range n.weights {
		current = n.biases[i].Add(n.weights[i].DotMultiply(current)).Map(n.activation.Apply)
		activations = append(activations, current)
	}

	return &Trace{net: n, activations: activations}
}

// Predict returns the network's output for input without keeping the trace.
func (n *Network) Predict(input *matrix.Matrix) *matrix.Matrix {
	return n.FeedForward(input).Output()
}

// BackPropagate updates weights and biases from one forward trace and its
// target, moving from the output layer towards the input:
//
//	errors    = target - prediction
//	gradients = f'(prediction)
//	for i = L-1 .. 0:
//	    gradients  = (gradients ∘ errors) * learningRate
//	    weights[i] = weights[i] + gradients · activations[i]ᵀ
//	    biases[i]  = biases[i] + gradients
//	    errors     = weights[i]ᵀ · errors
//	    gradients  = f'(activations[i])
//
// Error propagation uses the freshly updated weights[i]. Each weight and
// bias matrix is replaced by a new value; nothing is mutated in place.
//
// Panics with ErrForeignTrace if trace is nil or came from another network,
// and with ErrTargetShape if target's shape differs from the prediction's.
func (n *Network) BackPropagate(trace *Trace, target *matrix.Matrix) {
	if trace == nil || trace.net != n {
		panic(fmt.Errorf("%w: Network.BackPropagate", ErrForeignTrace))
	}
	predicted := trace.Output()
	if target.Rows() != predicted.Rows() || target.Cols() != predicted.Cols() {
		panic(fmt.Errorf("%w: Network.BackPropagate: expected %dx%d target, got %dx%d",
			ErrTargetShape, predicted.Rows(), predicted.Cols(), target.Rows(), target.Cols()))
	}

	scale := func(x float64) float64 { return x * n.learningRate }

	errors := target.Subtract(predicted)
	gradients := predicted.Map(n.activation.Derivative)
	for i := len(n.weights) - 1; i >= 0; i-- {
		gradients = gradients.ElementwiseMultiply(errors).Map(scale)
		n.weights[i] = n.weights[i].Add(gradients.DotMultiply(trace.activations[i].Transpose()))
		n.biases[i] = n.biases[i].Add(gradients)
		errors = n.weights[i].Transpose().DotMultiply(errors)
		gradients = trace.activations[i].Map(n.activation.Derivative)
	}
}

// Layers returns a copy of the topology.
func (n *Network) Layers() []int {
	out := make([]int, len(n.layers))
	copy(out, n.layers)
	return out
}

// LearningRate returns the learning rate given at construction.
func (n *Network) LearningRate() float64 {
	return n.learningRate
}

// Activation returns the activation applied after every layer.
func (n *Network) Activation() Activation {
	return n.activation
}

// Weight returns the weight matrix between layer i and layer i+1.
//
// Matrices are immutable, so the returned value is a snapshot: later
// training replaces the network's matrix rather than changing this one.
// Panics if i is out of range.
func (n *Network) Weight(i int) *matrix.Matrix {
	if i < 0 || i >= len(n.weights) {
		panic(fmt.Errorf("%w: Network.Weight: index %d not in [0, %d)", ErrOutOfRange, i, len(n.weights)))
	}
	return n.weights[i]
}

// Bias returns the bias column of layer i+1. See Weight.
func (n *Network) Bias(i int) *matrix.Matrix {
	if i < 0 || i >= len(n.biases) {
		panic(fmt.Errorf("%w: Network.Bias: index %d not in [0, %d)", ErrOutOfRange, i, len(n.biases)))
	}
	return n.biases[i]
}
