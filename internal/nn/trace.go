package nn

import (
	"fmt"

	"github.com/neuron-go/neuron/internal/matrix"
)

// Trace records the per-layer activations of one forward pass.
//
// Activation(0) is the input, Activation(Len()-1) the prediction. A trace
// belongs to the network that produced it and is the only way to feed a
// forward pass into BackPropagate, so the backward pass can never read
// activations left over from an unrelated input.
type Trace struct {
	net         *Network
	activations []*matrix.Matrix // len == len(net.layers)
}

// Output returns the prediction.
func (t *Trace) Output() *matrix.Matrix {
	return t.activations[len(t.activations)-1]
}

// Input returns the matrix the forward pass started from.
func (t *Trace) Input() *matrix.Matrix {
	return t.activations[0]
}

// Len returns the number of recorded activations (one per layer).
func (t *Trace) Len() int {
	return len(t.activations)
}

// Activation returns the output of layer i.
func (t *Trace) Activation(i int) *matrix.Matrix {
	if i < 0 || i >= len(t.activations) {
		panic(fmt.Errorf("%w: Trace.Activation: index %d not in [0, %d)", ErrOutOfRange, i, len(t.activations)))
	}
	return t.activations[i]
}
