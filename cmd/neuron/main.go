// Package main provides the neuron CLI: train a small feed-forward network
// on in-memory examples and print its predictions.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
)

const version = "v0.1.0"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	switch {
	case err == nil, errors.Is(err, context.Canceled):
	case errors.Is(err, errUsage):
		os.Exit(2)
	default:
		os.Exit(1)
	}
}
