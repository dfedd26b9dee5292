// Copyright 2025 Neuron Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides a fully connected feed-forward network trained by
// backpropagation.
//
// # Overview
//
// This package contains:
//   - Network: layer topology, weights and biases, forward and backward passes
//   - Trace: the per-layer activations of one forward pass
//   - Activations: Sigmoid, Tanh, ReLU
//   - Loss: MeanSquaredError and Network.Evaluate
//
// # Basic Usage
//
//	import (
//	    "github.com/neuron-go/neuron/matrix"
//	    "github.com/neuron-go/neuron/nn"
//	)
//
//	func main() {
//	    net := nn.New([]int{2, 3, 1}, nn.Sigmoid{}, 0.5)
//
//	    inputs := [][]float64{{0, 0}, {0, 1}, {1, 0}, {1, 1}}
//	    targets := [][]float64{{0}, {1}, {0}, {1}}
//	    net.Train(inputs, targets, 100000)
//
//	    prediction := net.Predict(matrix.FromVector([]float64{0, 1}))
//	}
//
// # Forward and Backward Passes
//
// FeedForward returns a Trace holding every layer's output. BackPropagate
// consumes that trace together with the target, so a backward pass always
// refers to a matching forward pass:
//
//	trace := net.FeedForward(input)
//	net.BackPropagate(trace, target)
//
// Training is single-example stochastic gradient descent: examples are
// visited in order, one update per example, no batching or shuffling.
//
// # Activations
//
// An Activation supplies Apply(x) and Derivative(y), where the derivative
// is written in terms of the activated output y = Apply(x):
//
//	sigmoid: Derivative(y) = y * (1 - y)
//	tanh:    Derivative(y) = 1 - y*y
//	relu:    Derivative(y) = 1 if y > 0 else 0
//
// # Concurrency
//
// A Network is not safe for concurrent use. Train separate models with
// separate instances.
package nn
