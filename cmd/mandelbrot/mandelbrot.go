package main

import (
	"context"
	"errors"
	"fmt"
	"github.com/disintegration/imaging"
	"github.com/spf13/cobra"
	"github.com/willbeason/mandelbrot/pkg/params"
	"github.com/willbeason/mandelbrot/pkg/render"
	"io"
	"log"
	"os"
	"time"
)

const usage = `Usage: file resolution capture_size max_iterations scale
Example: mandelbrot.png 500x500 2.0 255 3.0`

// LogLevelEnv set to "debug" enables progress logging on stderr.
const LogLevelEnv = "MANDELBROT_LOG_LEVEL"

func mainCmd(logger *log.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mandelbrot <output_path> <HxW> <capture_size> <max_iterations> <scale>",
		Short: "Render the Mandelbrot set to a grayscale image",
		// Scale and capture size may be negative, so nothing is a flag.
		DisableFlagParsing: true,
		Args:               cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCmd(cmd, args, logger)
		},
	}

	return cmd
}

func runCmd(cmd *cobra.Command, args []string, logger *log.Logger) error {
	inv, err := params.Parse(args)
	if errors.Is(err, params.ErrArgCount) {
		// Not a failure: print usage and exit cleanly.
		cmd.PrintErrln(usage)
		return nil
	}

	// At this point usage information has already been printed if obviously incorrect.
	cmd.SilenceUsage = true

	if err != nil {
		return err
	}

	// Reject unknown extensions before spending time on the render.
	if _, err := imaging.FormatFromFilename(inv.Output); err != nil {
		return fmt.Errorf("writing %q: %w", inv.Output, err)
	}

	logger.Printf("rendering %dx%d (WxH), capture radius %g, %d iterations, scale %g",
		inv.Width, inv.Height, inv.CaptureRadius, inv.MaxIterations, inv.Scale)

	start := time.Now()
	img := render.Draw(inv.Params)
	logger.Printf("rendered in %s", time.Since(start))

	err = imaging.Save(img, inv.Output)
	if err != nil {
		return fmt.Errorf("writing %q: %w", inv.Output, err)
	}

	logger.Printf("wrote %q", inv.Output)

	return nil
}

// execute runs the command with args and returns the process exit status.
func execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	logger := log.New(io.Discard, "", log.Ldate|log.Ltime|log.Lshortfile)
	if os.Getenv(LogLevelEnv) == "debug" {
		logger.SetOutput(stderr)
	}

	cmd := mainCmd(logger)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.ExecuteContext(ctx)
	if err != nil {
		// At this point the error has already been printed; no need to print again.
		return 1
	}

	return 0
}

func main() {
	ctx := context.Background()

	os.Exit(execute(ctx, os.Args[1:], os.Stdout, os.Stderr))
}
