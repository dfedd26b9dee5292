package nn

import (
	"fmt"
	"math"
	"strings"
)

// Activation is a scalar nonlinearity applied elementwise after every
// layer's linear combination, together with its derivative.
//
// Derivative is expressed in terms of the ACTIVATED output, not the
// pre-activation sum: given y = Apply(x), Derivative(y) must return
// dApply/dx at x. The backward pass feeds cached layer outputs into
// Derivative, so an activation whose derivative cannot be written as a
// function of its own output does not fit this interface.
//
// Example:
//
//	net := nn.New([]int{2, 3, 1}, nn.Sigmoid{}, 0.5)
type Activation interface {
	// Apply computes y = f(x).
	Apply(x float64) float64

	// Derivative computes f'(x) from y = f(x).
	Derivative(y float64) float64
}

// Sigmoid is the logistic function σ(x) = 1 / (1 + exp(-x)).
//
// Its derivative in output terms is σ'(x) = y * (1 - y).
type Sigmoid struct{}

// Apply returns 1 / (1 + e^-x).
func (Sigmoid) Apply(x float64) float64 {
	return 1.0 / (1.0 + math.Exp(-x))
}

// Derivative returns y * (1 - y).
func (Sigmoid) Derivative(y float64) float64 {
	return y * (1.0 - y)
}

// Tanh is the hyperbolic tangent. Its derivative in output terms is 1 - y².
type Tanh struct{}

// Apply returns tanh(x).
func (Tanh) Apply(x float64) float64 {
	return math.Tanh(x)
}

// Derivative returns 1 - y².
func (Tanh) Derivative(y float64) float64 {
	return 1.0 - y*y
}

// ReLU is max(0, x). Since y > 0 exactly when x > 0, its derivative is
// recoverable from the output: 1 for y > 0, otherwise 0.
type ReLU struct{}

// Apply returns max(0, x).
func (ReLU) Apply(x float64) float64 {
	if x > 0 {
		return x
	}
	return 0
}

// Derivative returns 1 for y > 0 and 0 otherwise.
func (ReLU) Derivative(y float64) float64 {
	if y > 0 {
		return 1
	}
	return 0
}

// ActivationByName resolves "sigmoid", "tanh" or "relu" (case-insensitive).
func ActivationByName(name string) (Activation, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "sigmoid":
		return Sigmoid{}, nil
	case "tanh":
		return Tanh{}, nil
	case "relu":
		return ReLU{}, nil
	default:
		return nil, fmt.Errorf("unknown activation %q (want sigmoid, tanh or relu)", name)
	}
}
