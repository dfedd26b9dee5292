package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"strconv"
	"strings"

	"github.com/neuron-go/neuron/internal/dataset"
	"github.com/neuron-go/neuron/internal/matrix"
	"github.com/neuron-go/neuron/internal/nn"
	"github.com/neuron-go/neuron/internal/progress"
)

// errUsage is returned after usage has been printed for bad invocations.
var errUsage = errors.New("usage")

var (
	defaultInputs  = [][]float64{{0, 0}, {0, 1}, {1, 0}, {1, 1}}
	defaultTargets = [][]float64{{0}, {1}, {0}, {1}}
)

// options holds the parsed command line.
type options struct {
	train      bool
	forward    bool
	loop       int
	watch      bool
	inputs     string
	inputsFile string
	targets    string
	epochs     int
	layers     []int
	rate       float64
	activation nn.Activation
	seed       int64
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	logger := log.New(stderr, "", log.LstdFlags)

	if len(args) > 0 && args[0] == "version" {
		fmt.Fprintf(stdout, "neuron %s\n", version)
		return nil
	}

	opts, fs, err := parseFlags(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}
	if !opts.train && !opts.forward {
		usage(fs)
		return nil
	}

	inputWidth := opts.layers[0]
	outputWidth := opts.layers[len(opts.layers)-1]

	inputs, err := loadInputs(opts, inputWidth)
	if err != nil {
		logger.Printf("inputs: %v", err)
		return err
	}

	var rng *rand.Rand
	if opts.seed != 0 {
		rng = rand.New(rand.NewSource(opts.seed))
	}
	net, err := newNetwork(opts, rng)
	if err != nil {
		logger.Printf("network: %v", err)
		return err
	}

	if opts.train {
		targets := defaultTargets
		if opts.targets != "" {
			targets, err = dataset.Parse(opts.targets, outputWidth)
			if err != nil {
				logger.Printf("targets: %v", err)
				return err
			}
		}
		if len(targets) != len(inputs) {
			err := fmt.Errorf("%d inputs but %d targets", len(inputs), len(targets))
			logger.Printf("train: %v", err)
			return err
		}
		if err := checkWidth(targets, outputWidth, "target"); err != nil {
			logger.Printf("train: %v", err)
			return err
		}
		train(net, inputs, targets, opts.epochs, stdout, stderr, logger)
	}

	if opts.forward {
		for i := 0; i < opts.loop; i++ {
			forwardPass(net, inputs, stdout)
		}
		if opts.watch {
			return watch(ctx, net, opts.inputsFile, inputWidth, stdout, logger)
		}
	}

	return nil
}

func parseFlags(args []string, stderr io.Writer) (*options, *flag.FlagSet, error) {
	fs := flag.NewFlagSet("neuron", flag.ContinueOnError)
	fs.SetOutput(stderr)

	opts := &options{}
	var layers, activation string
	fs.BoolVar(&opts.train, "train", false, "train the network")
	fs.BoolVar(&opts.forward, "forward", false, "run a forward pass over the inputs and print predictions")
	fs.IntVar(&opts.loop, "loop", 1, "repeat the forward pass this many times")
	fs.BoolVar(&opts.watch, "watch", false, "with -forward and -inputs-file, re-run whenever the file changes")
	fs.StringVar(&opts.inputs, "inputs", "", `input vectors, e.g. "0,0 0,1 1,0 1,1"`)
	fs.StringVar(&opts.inputsFile, "inputs-file", "", "read input vectors from a file")
	fs.StringVar(&opts.targets, "targets", "", `target vectors for -train, e.g. "0 1 0 1"`)
	fs.IntVar(&opts.epochs, "epochs", 100000, "training epochs")
	fs.StringVar(&layers, "layers", "2,3,1", "comma separated neurons per layer")
	fs.Float64Var(&opts.rate, "lr", 0.5, "learning rate")
	fs.StringVar(&activation, "activation", "sigmoid", "activation: sigmoid, tanh or relu")
	fs.Int64Var(&opts.seed, "seed", 0, "weight initialisation seed (0 = random)")
	fs.Usage = func() { usage(fs) }

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, fs, err
		}
		return nil, fs, errUsage
	}

	var err error
	if opts.layers, err = parseLayers(layers); err != nil {
		fmt.Fprintf(stderr, "neuron: -layers: %v\n", err)
		return nil, fs, errUsage
	}
	if opts.activation, err = nn.ActivationByName(activation); err != nil {
		fmt.Fprintf(stderr, "neuron: -activation: %v\n", err)
		return nil, fs, errUsage
	}
	if opts.epochs < 0 || opts.loop < 0 {
		fmt.Fprintln(stderr, "neuron: -epochs and -loop must not be negative")
		return nil, fs, errUsage
	}
	if opts.inputs != "" && opts.inputsFile != "" {
		fmt.Fprintln(stderr, "neuron: -inputs and -inputs-file are mutually exclusive")
		return nil, fs, errUsage
	}
	if opts.watch && (opts.inputsFile == "" || !opts.forward) {
		fmt.Fprintln(stderr, "neuron: -watch needs -forward and -inputs-file")
		return nil, fs, errUsage
	}

	return opts, fs, nil
}

func usage(fs *flag.FlagSet) {
	out := fs.Output()
	fmt.Fprintln(out, "Usage for neuron:")
	fmt.Fprintln(out, "  neuron -train     train the network")
	fmt.Fprintln(out, "  neuron -forward   forward process the network")
	fmt.Fprintln(out, "  neuron version    print the version")
	fmt.Fprintln(out, "")
	fmt.Fprintln(out, "Flags:")
	fs.PrintDefaults()
}

func parseLayers(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	layers := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("bad layer size %q: %w", p, err)
		}
		if n <= 0 {
			return nil, fmt.Errorf("layer size must be > 0, got %d", n)
		}
		layers = append(layers, n)
	}
	if len(layers) < 2 {
		return nil, fmt.Errorf("need at least 2 layers, got %d", len(layers))
	}
	return layers, nil
}

func loadInputs(opts *options, width int) ([][]float64, error) {
	var inputs [][]float64
	var err error
	switch {
	case opts.inputsFile != "":
		inputs, err = dataset.Load(opts.inputsFile, width)
	case opts.inputs != "":
		inputs, err = dataset.Parse(opts.inputs, width)
	default:
		inputs = defaultInputs
	}
	if err != nil {
		return nil, err
	}
	if err := checkWidth(inputs, width, "input"); err != nil {
		return nil, err
	}
	return inputs, nil
}

func checkWidth(vectors [][]float64, width int, what string) error {
	for i, v := range vectors {
		if len(v) != width {
			return fmt.Errorf("%s %d has %d values, network expects %d", what, i, len(v), width)
		}
	}
	return nil
}

// newNetwork converts construction panics into errors; flags are validated
// already, so this only trips on programming mistakes.
func newNetwork(opts *options, rng *rand.Rand) (net *nn.Network, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
		}
	}()
	if rng != nil {
		return nn.NewWithRand(opts.layers, opts.activation, opts.rate, rng), nil
	}
	return nn.New(opts.layers, opts.activation, opts.rate), nil
}

func train(net *nn.Network, inputs, targets [][]float64, epochs int, stdout, stderr io.Writer, logger *log.Logger) {
	fmt.Fprintf(stdout, "Training %d epochs\n", epochs)
	logger.Printf("layers=%v lr=%g examples=%d mse=%.6f", net.Layers(), net.LearningRate(), len(inputs),
		net.Evaluate(inputs, targets))

	bar := progress.New(stderr, epochs, "Progress")
	net.Train(inputs, targets, epochs, bar.Observe)
	bar.Finish()

	logger.Printf("trained epochs=%d mse=%.6f", epochs, net.Evaluate(inputs, targets))
}

func forwardPass(net *nn.Network, inputs [][]float64, stdout io.Writer) {
	fmt.Fprintln(stdout, "Forward processing...")
	for _, input := range inputs {
		prediction := net.Predict(matrix.FromVector(input))
		fmt.Fprintf(stdout, "Input %v:  %v\n", input, prediction.Column(0))
	}
}

func watch(ctx context.Context, net *nn.Network, path string, width int, stdout io.Writer, logger *log.Logger) error {
	w, err := dataset.NewWatcher(path)
	if err != nil {
		logger.Printf("watch: %v", err)
		return err
	}
	logger.Printf("watching %s (Ctrl-C to stop)", w.Path())

	err = w.Run(ctx, func() {
		inputs, err := dataset.Load(path, width)
		if err != nil {
			logger.Printf("reload: %v", err)
			return
		}
		forwardPass(net, inputs, stdout)
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		logger.Printf("watch: %v", err)
	}
	return err
}
