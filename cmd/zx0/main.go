// SPDX-License-Identifier: MIT
// Source: github.com/go-zx0/zx0

// Command zx0 is the thin file-driver around the zx0 package: argument
// parsing, overwrite checks, reversal for -b, and progress reporting all
// live here, never in the core codec (spec's "driver, not core" split).
package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/go-zx0/zx0"
)

var errUsage = errors.New("zx0: usage error")

func main() {
	app := &cli.App{
		Name:      "zx0",
		Usage:     "compress or decompress a file with the ZX0 codec",
		UsageText: "zx0 [options] [skip] input [output]",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "p", Value: 4, Usage: "parallel thread count"},
			&cli.BoolFlag{Name: "f", Usage: "force overwrite of an existing output file"},
			&cli.BoolFlag{Name: "c", Usage: "classic (v1) format"},
			&cli.BoolFlag{Name: "b", Usage: "backwards direction"},
			&cli.BoolFlag{Name: "q", Usage: "quick mode (restrict offset range to 2176)"},
			&cli.BoolFlag{Name: "d", Usage: "decompress"},
			&cli.BoolFlag{Name: "v", Usage: "verbose progress output"},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "zx0:", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	skip, input, output, err := parsePositional(c.Args().Slice(), c.Bool("d"))
	if err != nil {
		return err
	}

	src, err := os.ReadFile(input)
	if err != nil {
		return err
	}

	if !c.Bool("f") {
		if _, statErr := os.Stat(output); statErr == nil {
			return fmt.Errorf("output file %q already exists (use -f to overwrite)", output)
		}
	}

	threads := c.Int("p")
	if threads < 1 {
		return fmt.Errorf("%w: -p must be >= 1", errUsage)
	}

	backwards := c.Bool("b")
	if backwards {
		reverseBytes(src)
	}

	var out []byte
	if c.Bool("d") {
		out, err = zx0.Decompress(src, &zx0.DecompressOptions{
			Classic:   c.Bool("c"),
			Backwards: backwards,
		})
	} else {
		offsetLimit := zx0.OffsetLimitFull
		if c.Bool("q") {
			offsetLimit = zx0.OffsetLimitQuick
		}
		opts := &zx0.CompressOptions{
			Skip:        skip,
			OffsetLimit: offsetLimit,
			Threads:     threads,
			Classic:     c.Bool("c"),
			Backwards:   backwards,
			Verbose:     c.Bool("v"),
		}
		if opts.Verbose {
			opts.Progress = func(pos, total int) {
				fmt.Fprintf(os.Stderr, "\rcompressing... %d%%", pos*100/total)
			}
		}
		var delta int
		out, delta, err = zx0.Compress(src, opts)
		if opts.Verbose && err == nil {
			fmt.Fprintf(os.Stderr, "\rcompressing... done (delta %d)\n", delta)
		}
	}
	if err != nil {
		return err
	}

	if backwards {
		reverseBytes(out)
	}

	return os.WriteFile(output, out, 0o644)
}

// parsePositional splits the trailing cli.Args into an optional skip
// count, the required input path, and the output path (defaulted per
// spec §6: compression appends ".zx0", decompression strips it).
func parsePositional(args []string, decompress bool) (skip int, input, output string, err error) {
	if len(args) == 0 {
		return 0, "", "", fmt.Errorf("%w: missing input file", errUsage)
	}

	if n, convErr := strconv.Atoi(args[0]); convErr == nil {
		if n < 0 {
			return 0, "", "", fmt.Errorf("%w: skip must be non-negative", errUsage)
		}
		skip = n
		args = args[1:]
	}

	if len(args) == 0 {
		return 0, "", "", fmt.Errorf("%w: missing input file", errUsage)
	}
	input = args[0]

	switch {
	case len(args) >= 2:
		output = args[1]
	case decompress:
		output = strings.TrimSuffix(input, ".zx0")
		if output == input {
			return 0, "", "", fmt.Errorf("%w: input has no .zx0 suffix, specify output explicitly", errUsage)
		}
	default:
		output = input + ".zx0"
	}

	return skip, input, output, nil
}

// reverseBytes reverses b in place, the external half of -b's
// backwardsMode: the codec flag only flips bit polarity, the driver does
// the actual byte-order reversal before and after the codec call.
func reverseBytes(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}
