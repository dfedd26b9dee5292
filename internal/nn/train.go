package nn

import (
	"fmt"

	"github.com/neuron-go/neuron/internal/matrix"
)

// EpochObserver is called after every completed epoch with the 1-based
// epoch number and the total epoch count. Progress bars and loss loggers
// attach here; observers must not touch the network concurrently.
type EpochObserver func(epoch, epochs int)

// Train runs epochs passes over the dataset. In every epoch each example is
// visited in order: FeedForward on inputs[j], then BackPropagate against
// targets[j]. There is no shuffling, batching or early stopping, so for a
// fixed initialisation training is deterministic.
//
// Panics with ErrDatasetMismatch when len(inputs) != len(targets); vector
// widths are checked by FeedForward and BackPropagate.
func (n *Network) Train(inputs, targets [][]float64, epochs int, observers ...EpochObserver) {
	if len(inputs) != len(targets) {
		panic(fmt.Errorf("%w: Network.Train: %d inputs, %d targets",
			ErrDatasetMismatch, len(inputs), len(targets)))
	}

	in := make([]*matrix.Matrix, len(inputs))
	want := make([]*matrix.Matrix, len(targets))
	for j := range inputs {
		in[j] = matrix.FromVector(inputs[j])
		want[j] = matrix.FromVector(targets[j])
	}

	for epoch := 1; epoch <= epochs; epoch++ {
		for j := range in {
			trace := n.FeedForward(in[j])
			n.BackPropagate(trace, want[j])
		}
		for _, observe := range observers {
			observe(epoch, epochs)
		}
	}
}
