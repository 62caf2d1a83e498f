// Package params parses the positional command-line arguments of the
// renderer.
package params

import (
	"errors"
	"fmt"
	"github.com/willbeason/mandelbrot/pkg/render"
	"strconv"
	"strings"
)

// NArgs is the number of positional arguments: output path, resolution,
// capture size, max iterations and scale.
const NArgs = 5

var (
	ErrArgCount             = errors.New("wrong number of arguments")
	ErrMissingHeight        = errors.New("missing height")
	ErrMissingWidth         = errors.New("missing width")
	ErrInvalidResolution    = errors.New("invalid resolution")
	ErrInvalidHeight        = errors.New("invalid height")
	ErrInvalidWidth         = errors.New("invalid width")
	ErrInvalidCaptureSize   = errors.New("invalid capture size")
	ErrInvalidMaxIterations = errors.New("invalid max iterations")
	ErrInvalidScale         = errors.New("invalid scale")
)

// Invocation is one fully parsed command line.
type Invocation struct {
	// Output is the path of the image to write. Its extension picks the format.
	Output string

	render.Params
}

// ParseResolution parses a string of the form "<height>x<width>". Whitespace
// around each side is ignored.
func ParseResolution(s string) (height, width int, err error) {
	if strings.TrimSpace(s) == "" {
		return 0, 0, ErrMissingHeight
	}

	parts := strings.Split(s, "x")
	switch {
	case len(parts) < 2:
		return 0, 0, fmt.Errorf("%w in %q", ErrMissingWidth, s)
	case len(parts) > 2:
		return 0, 0, fmt.Errorf("%w %q: want HxW", ErrInvalidResolution, s)
	}

	height, err = parseDimension(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("%w %q", ErrInvalidHeight, parts[0])
	}

	width, err = parseDimension(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("%w %q", ErrInvalidWidth, parts[1])
	}

	return height, width, nil
}

func parseDimension(s string) (int, error) {
	d, err := strconv.ParseUint(strings.TrimSpace(s), 10, 32)
	if err != nil {
		return 0, err
	}

	return int(d), nil
}

// Parse parses the positional arguments, excluding the program name. The
// scale argument is divided by the parsed width to get the per-pixel scale.
func Parse(args []string) (Invocation, error) {
	if len(args) != NArgs {
		return Invocation{}, fmt.Errorf("%w: got %d, want %d", ErrArgCount, len(args), NArgs)
	}

	height, width, err := ParseResolution(args[1])
	if err != nil {
		return Invocation{}, err
	}

	captureRadius, err := strconv.ParseFloat(strings.TrimSpace(args[2]), 64)
	if err != nil {
		return Invocation{}, fmt.Errorf("%w %q: %w", ErrInvalidCaptureSize, args[2], err)
	}

	maxIterations, err := strconv.Atoi(strings.TrimSpace(args[3]))
	if err != nil {
		return Invocation{}, fmt.Errorf("%w %q: %w", ErrInvalidMaxIterations, args[3], err)
	}
	if maxIterations < 0 {
		return Invocation{}, fmt.Errorf("%w %q: must not be negative", ErrInvalidMaxIterations, args[3])
	}

	scale, err := strconv.ParseFloat(strings.TrimSpace(args[4]), 64)
	if err != nil {
		return Invocation{}, fmt.Errorf("%w %q: %w", ErrInvalidScale, args[4], err)
	}

	return Invocation{
		Output: args[0],
		Params: render.Params{
			Width:         width,
			Height:        height,
			CaptureRadius: captureRadius,
			MaxIterations: maxIterations,
			Scale:         scale / float64(width),
		},
	}, nil
}
