// Package dataset reads example vectors for training and inference.
//
// Vectors are written as numbers separated by commas and/or whitespace and
// are grouped by the width of the layer they feed:
//
//	0,0 0,1 1,0 1,1
//
// read with width 2 gives [[0 0] [0 1] [1 0] [1 1]].
package dataset

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode"
)

// ErrIncompleteVector is returned when the number count is not a multiple of
// the vector width.
var ErrIncompleteVector = errors.New("dataset: trailing numbers do not fill a vector")

// Parse splits s into vectors of the given width.
func Parse(s string, width int) ([][]float64, error) {
	if width <= 0 {
		return nil, fmt.Errorf("dataset: vector width must be > 0, got %d", width)
	}

	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})

	vectors := make([][]float64, 0, len(fields)/width)
	current := make([]float64, 0, width)
	for i, field := range fields {
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, fmt.Errorf("dataset: number %d: %w", i+1, err)
		}
		current = append(current, v)
		if len(current) == width {
			vectors = append(vectors, current)
			current = make([]float64, 0, width)
		}
	}
	if len(current) != 0 {
		return nil, fmt.Errorf("%w: %d left over for width %d", ErrIncompleteVector, len(current), width)
	}

	return vectors, nil
}

// Load reads path and parses it like Parse. Newlines are ordinary separators.
func Load(path string, width int) ([][]float64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: failed to read %s: %w", path, err)
	}
	vectors, err := Parse(string(data), width)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return vectors, nil
}
