package nn

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neuron-go/neuron/internal/matrix"
)

// panicError runs f and returns the error it panicked with, or nil.
func panicError(t *testing.T, f func()) (err error) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		e, ok := r.(error)
		require.Truef(t, ok, "panic value %v (%T) is not an error", r, r)
		err = e
	}()
	f()
	return nil
}

func newTestNetwork(layers []int, lr float64, seed int64) *Network {
	return NewWithRand(layers, Sigmoid{}, lr, rand.New(rand.NewSource(seed)))
}

func TestNew_Shapes(t *testing.T) {
	net := New([]int{2, 3, 4, 1}, Sigmoid{}, 0.5)

	assert.Equal(t, []int{2, 3, 4, 1}, net.Layers())
	assert.Equal(t, 0.5, net.LearningRate())
	assert.Equal(t, Sigmoid{}, net.Activation())

	layers := net.Layers()
	for i := 0; i < len(layers)-1; i++ {
		w, b := net.Weight(i), net.Bias(i)
		assert.Equal(t, layers[i+1], w.Rows(), "weight %d rows", i)
		assert.Equal(t, layers[i], w.Cols(), "weight %d cols", i)
		assert.Equal(t, layers[i+1], b.Rows(), "bias %d rows", i)
		assert.Equal(t, 1, b.Cols(), "bias %d cols", i)
		for _, v := range append(w.Data(), b.Data()...) {
			assert.GreaterOrEqual(t, v, 0.0)
			assert.Less(t, v, 1.0)
		}
	}
}

func TestNew_CopiesTopology(t *testing.T) {
	layers := []int{2, 3, 1}
	net := New(layers, Sigmoid{}, 0.5)
	layers[0] = 9
	assert.Equal(t, []int{2, 3, 1}, net.Layers())
}

func TestNew_LearningRateVerbatim(t *testing.T) {
	for _, lr := range []float64{0, 0.5, 1e-9, -0.25, 3} {
		assert.Equal(t, lr, New([]int{1, 1}, Sigmoid{}, lr).LearningRate())
	}
}

func TestNew_InvalidTopology(t *testing.T) {
	tests := []struct {
		name       string
		layers     []int
		activation Activation
	}{
		{"no layers", nil, Sigmoid{}},
		{"single layer", []int{3}, Sigmoid{}},
		{"zero width", []int{2, 0, 1}, Sigmoid{}},
		{"negative width", []int{2, -1}, Sigmoid{}},
		{"nil activation", []int{2, 1}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := panicError(t, func() { New(tt.layers, tt.activation, 0.5) })
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidTopology), "got %v", err)
		})
	}
}

func TestNewWithRand_Reproducible(t *testing.T) {
	a := newTestNetwork([]int{2, 3, 1}, 0.5, 11)
	b := newTestNetwork([]int{2, 3, 1}, 0.5, 11)
	for i := 0; i < 2; i++ {
		assert.True(t, a.Weight(i).Equals(b.Weight(i)))
		assert.True(t, a.Bias(i).Equals(b.Bias(i)))
	}
}

func TestFeedForward_OutputShape(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		net := newTestNetwork([]int{2, 3, 1}, 0.5, seed)
		out := net.Predict(matrix.FromVector([]float64{0.3, 0.9}))
		assert.Equal(t, 1, out.Rows())
		assert.Equal(t, 1, out.Cols())
	}
}

func TestFeedForward_Trace(t *testing.T) {
	net := newTestNetwork([]int{2, 3, 2}, 0.5, 1)
	input := matrix.FromVector([]float64{1, 0})
	trace := net.FeedForward(input)

	require.Equal(t, 3, trace.Len())
	assert.True(t, trace.Input().Equals(input))

	// Each recorded layer is f(b + W·previous).
	for i := 0; i < 2; i++ {
		want := net.Bias(i).Add(net.Weight(i).DotMultiply(trace.Activation(i))).Map(Sigmoid{}.Apply)
		assert.True(t, trace.Activation(i+1).Equals(want), "layer %d", i+1)
	}
	assert.True(t, trace.Output().Equals(trace.Activation(2)))

	// A second pass starts a fresh trace.
	other := net.FeedForward(matrix.FromVector([]float64{0, 1}))
	assert.False(t, other.Input().Equals(trace.Input()))
	assert.Equal(t, 3, other.Len())
}

func TestFeedForward_KnownWeights(t *testing.T) {
	// Identity activation makes the arithmetic checkable by hand.
	net := newTestNetwork([]int{2, 1}, 0.5, 1)
	net.activation = identity{}
	net.weights[0] = matrix.FromRows([][]float64{{2, 3}})
	net.biases[0] = matrix.FromVector([]float64{0.5})

	out := net.Predict(matrix.FromVector([]float64{1, 4}))
	assert.True(t, out.Equals(matrix.FromVector([]float64{14.5})), "got %v", out)
}

func TestFeedForward_InputShape(t *testing.T) {
	net := newTestNetwork([]int{2, 3, 1}, 0.5, 1)
	for name, in := range map[string]*matrix.Matrix{
		"too short": matrix.FromVector([]float64{1}),
		"too long":  matrix.FromVector([]float64{1, 2, 3}),
		"row":       matrix.FromRows([][]float64{{1, 2}}),
		"two cols":  matrix.Zeros(2, 2),
	} {
		err := panicError(t, func() { net.FeedForward(in) })
		require.Errorf(t, err, "%s", name)
		assert.Truef(t, errors.Is(err, ErrInputShape), "%s: %v", name, err)
	}
}

// TestBackPropagate_SingleLayer compares the update with the same
// composition of matrix operations written out by hand.
func TestBackPropagate_SingleLayer(t *testing.T) {
	const lr = 0.5
	net := newTestNetwork([]int{2, 1}, lr, 3)
	x := matrix.FromVector([]float64{0.2, 0.8})
	target := matrix.FromVector([]float64{1})

	w0, b0 := net.Weight(0), net.Bias(0)
	trace := net.FeedForward(x)
	pred := trace.Output()

	errs := target.Subtract(pred)
	grad := pred.Map(Sigmoid{}.Derivative).ElementwiseMultiply(errs).Map(func(v float64) float64 { return v * lr })
	wantW := w0.Add(grad.DotMultiply(x.Transpose()))
	wantB := b0.Add(grad)

	net.BackPropagate(trace, target)

	assert.True(t, net.Weight(0).Equals(wantW), "weight\n got %v want %v", net.Weight(0), wantW)
	assert.True(t, net.Bias(0).Equals(wantB), "bias\n got %v want %v", net.Bias(0), wantB)

	// Snapshots taken before the update are untouched.
	assert.False(t, w0.Equals(net.Weight(0)))
}

// TestBackPropagate_PropagatesThroughUpdatedWeights pins that the error
// reaching layer 0 is computed with the already-updated layer 1 weights.
func TestBackPropagate_PropagatesThroughUpdatedWeights(t *testing.T) {
	const lr = 0.3
	net := newTestNetwork([]int{2, 2, 1}, lr, 5)
	x := matrix.FromVector([]float64{1, 0.5})
	target := matrix.FromVector([]float64{0})
	scale := func(v float64) float64 { return v * lr }
	d := Sigmoid{}.Derivative

	w0, b0, w1, b1 := net.Weight(0), net.Bias(0), net.Weight(1), net.Bias(1)
	trace := net.FeedForward(x)
	hidden, pred := trace.Activation(1), trace.Output()

	errs := target.Subtract(pred)
	grad1 := pred.Map(d).ElementwiseMultiply(errs).Map(scale)
	wantW1 := w1.Add(grad1.DotMultiply(hidden.Transpose()))
	wantB1 := b1.Add(grad1)

	hiddenErrs := wantW1.Transpose().DotMultiply(errs)
	grad0 := hidden.Map(d).ElementwiseMultiply(hiddenErrs).Map(scale)
	wantW0 := w0.Add(grad0.DotMultiply(x.Transpose()))
	wantB0 := b0.Add(grad0)

	net.BackPropagate(trace, target)

	assert.True(t, net.Weight(1).Equals(wantW1))
	assert.True(t, net.Bias(1).Equals(wantB1))
	assert.True(t, net.Weight(0).Equals(wantW0))
	assert.True(t, net.Bias(0).Equals(wantB0))
}

func TestBackPropagate_ZeroLearningRate(t *testing.T) {
	net := newTestNetwork([]int{2, 3, 1}, 0, 7)
	w0, b1 := net.Weight(0), net.Bias(1)

	trace := net.FeedForward(matrix.FromVector([]float64{1, 1}))
	net.BackPropagate(trace, matrix.FromVector([]float64{0}))

	assert.True(t, net.Weight(0).Equals(w0))
	assert.True(t, net.Bias(1).Equals(b1))
}

func TestBackPropagate_ForeignTrace(t *testing.T) {
	a := newTestNetwork([]int{2, 1}, 0.5, 1)
	b := newTestNetwork([]int{2, 1}, 0.5, 1)
	target := matrix.FromVector([]float64{1})

	trace := a.FeedForward(matrix.FromVector([]float64{0, 1}))
	err := panicError(t, func() { b.BackPropagate(trace, target) })
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrForeignTrace))

	err = panicError(t, func() { b.BackPropagate(nil, target) })
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrForeignTrace))
}

func TestBackPropagate_TargetShape(t *testing.T) {
	net := newTestNetwork([]int{2, 3, 1}, 0.5, 1)
	trace := net.FeedForward(matrix.FromVector([]float64{0, 1}))

	err := panicError(t, func() { net.BackPropagate(trace, matrix.FromVector([]float64{1, 0})) })
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTargetShape))
}

func TestWeight_OutOfRange(t *testing.T) {
	net := newTestNetwork([]int{2, 1}, 0.5, 1)
	trace := net.FeedForward(matrix.FromVector([]float64{0, 1}))

	cases := map[string]func(){
		"weight": func() { net.Weight(5) },
		"bias":   func() { net.Bias(-1) },
		"trace":  func() { trace.Activation(2) },
	}
	for name, f := range cases {
		err := panicError(t, f)
		require.Errorf(t, err, "%s", name)
		assert.Truef(t, errors.Is(err, ErrOutOfRange), "%s: %v", name, err)
	}
	assert.PanicsWithError(t, "nn: index out of range: Network.Weight: index 5 not in [0, 1)", func() { net.Weight(5) })
}

type identity struct{}

func (identity) Apply(x float64) float64    { return x }
func (identity) Derivative(float64) float64 { return 1 }
