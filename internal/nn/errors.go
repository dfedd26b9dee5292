package nn

import "errors"

// Contract violations panic with an error wrapping one of these.
var (
	// ErrInvalidTopology: fewer than two layers, a non-positive layer width,
	// or a nil activation.
	ErrInvalidTopology = errors.New("nn: invalid topology")

	// ErrInputShape: the input is not a column with layers[0] rows.
	ErrInputShape = errors.New("nn: input shape does not match input layer")

	// ErrTargetShape: the target does not have the prediction's shape.
	ErrTargetShape = errors.New("nn: target shape does not match output layer")

	// ErrForeignTrace: a trace was nil or produced by another network.
	ErrForeignTrace = errors.New("nn: trace was not produced by this network")

	// ErrDatasetMismatch: training inputs and targets differ in count.
	ErrDatasetMismatch = errors.New("nn: inputs and targets differ in length")

	// ErrOutOfRange: a layer or trace index outside its bounds.
	ErrOutOfRange = errors.New("nn: index out of range")
)
