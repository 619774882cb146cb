// SPDX-License-Identifier: MIT
// Source: github.com/go-zx0/zx0

package zx0

// CompressOptions configures the optimal parser and emitter.
type CompressOptions struct {
	// Skip is the number of leading input bytes passed through uncompressed
	// by the caller; the parser only considers positions [Skip, len(input)).
	Skip int

	// OffsetLimit caps the maximum match back-offset the parser will
	// consider. Use OffsetLimitQuick (2176, the "ZX7" range) or
	// OffsetLimitFull (32640). Zero defaults to OffsetLimitFull.
	OffsetLimit int

	// Threads is the number of parser shards run concurrently per scan
	// position. Zero or one runs the single-threaded path.
	Threads int

	// Classic selects the v1 wire format (InvertMode = false). The default
	// (false) produces the v2 format (InvertMode = true).
	Classic bool

	// Backwards reverses the unary continuation/terminator polarity of
	// every Elias-gamma code (BackwardsMode). It does not affect parser
	// choice, only bit polarity; byte-reversing the buffers themselves is
	// the driver's job, not the core's.
	Backwards bool

	// Verbose requests diagnostic progress output from the parser. The
	// core package never writes to stderr itself; Verbose only gates
	// optional callbacks a caller may wire in (see CompressOptions.Progress).
	Verbose bool

	// Progress, if non-nil and Verbose is true, is invoked after each scan
	// position with the current position and total length.
	Progress func(pos, total int)
}

// DefaultCompressOptions returns options for a full-range, single-threaded,
// v2-format compression starting at skip=0.
func DefaultCompressOptions() *CompressOptions {
	return &CompressOptions{OffsetLimit: OffsetLimitFull, Threads: 1}
}

// DecompressOptions configures the decoder's wire-format flags.
type DecompressOptions struct {
	// Classic selects the v1 wire format (InvertMode = false).
	Classic bool

	// Backwards mirrors CompressOptions.Backwards.
	Backwards bool
}

// DefaultDecompressOptions returns options for the v2, non-backwards format.
func DefaultDecompressOptions() *DecompressOptions {
	return &DecompressOptions{}
}
