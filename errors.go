// SPDX-License-Identifier: MIT
// Source: github.com/go-zx0/zx0

package zx0

import "errors"

// Sentinel errors for compression and decompression. Callers can match
// them with errors.Is.
var (
	// ErrEmptyInput is returned when Compress is called with a zero-length input.
	ErrEmptyInput = errors.New("zx0: empty input")
	// ErrInvalidSkip is returned when skip is negative or skip >= len(input).
	ErrInvalidSkip = errors.New("zx0: skip must be in [0, input length)")
	// ErrInvalidThreads is returned when CompressOptions.Threads is negative.
	ErrInvalidThreads = errors.New("zx0: threads must be >= 0")
	// ErrMalformedInput is returned by Decompress/DecompressFromReader when a read advances
	// past the end of the compressed stream before the end marker is reached.
	ErrMalformedInput = errors.New("zx0: malformed compressed input")
)
