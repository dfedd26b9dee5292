// Copyright 2025 Neuron Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"math/rand"

	"github.com/neuron-go/neuron/internal/matrix"
	"github.com/neuron-go/neuron/internal/nn"
)

// Network is a fully connected feed-forward network.
type Network = nn.Network

// Trace holds the per-layer activations of one forward pass.
type Trace = nn.Trace

// EpochObserver is called after each training epoch.
type EpochObserver = nn.EpochObserver

// New creates a network with uniform [0, 1) initial weights and biases.
//
// Example:
//
//	net := nn.New([]int{2, 3, 1}, nn.Sigmoid{}, 0.5)
func New(layers []int, activation Activation, learningRate float64) *Network {
	return nn.New(layers, activation, learningRate)
}

// NewWithRand creates a network whose initial weights are drawn from rng.
func NewWithRand(layers []int, activation Activation, learningRate float64, rng *rand.Rand) *Network {
	return nn.NewWithRand(layers, activation, learningRate, rng)
}

// Activations

// Activation is a function/derivative pair; the derivative takes the
// activated output.
type Activation = nn.Activation

// Sigmoid is the logistic activation.
type Sigmoid = nn.Sigmoid

// Tanh is the hyperbolic tangent activation.
type Tanh = nn.Tanh

// ReLU is the rectified linear activation.
type ReLU = nn.ReLU

// ActivationByName resolves "sigmoid", "tanh" or "relu".
func ActivationByName(name string) (Activation, error) {
	return nn.ActivationByName(name)
}

// Loss

// MeanSquaredError returns mean((predicted - target)²).
func MeanSquaredError(predicted, target *matrix.Matrix) float64 {
	return nn.MeanSquaredError(predicted, target)
}

// Errors carried by contract-violation panics.
var (
	ErrInvalidTopology = nn.ErrInvalidTopology
	ErrInputShape      = nn.ErrInputShape
	ErrTargetShape     = nn.ErrTargetShape
	ErrForeignTrace    = nn.ErrForeignTrace
	ErrDatasetMismatch = nn.ErrDatasetMismatch
	ErrOutOfRange      = nn.ErrOutOfRange
)
