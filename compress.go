// SPDX-License-Identifier: MIT
// Source: github.com/go-zx0/zx0

package zx0

// Compress encodes src as a ZX0 byte stream. opts may be nil (full offset
// range, one thread, v2/non-classic format, skip=0).
//
// Returns ErrEmptyInput if src is empty, ErrInvalidSkip if
// opts.Skip is negative or >= len(src), and ErrInvalidThreads if
// opts.Threads is negative.
func Compress(src []byte, opts *CompressOptions) (out []byte, delta int, err error) {
	if opts == nil {
		opts = DefaultCompressOptions()
	}

	if len(src) == 0 {
		return nil, 0, ErrEmptyInput
	}
	if opts.Skip < 0 || opts.Skip >= len(src) {
		return nil, 0, ErrInvalidSkip
	}
	if opts.Threads < 0 {
		return nil, 0, ErrInvalidThreads
	}

	offsetLimit := opts.OffsetLimit
	if offsetLimit == 0 {
		offsetLimit = OffsetLimitFull
	}
	threads := opts.Threads
	if threads == 0 {
		threads = 1
	}

	var progress func(pos, total int)
	if opts.Verbose {
		progress = opts.Progress
	}
	terminal := optimize(src, opts.Skip, offsetLimit, threads, progress)

	invertMode := !opts.Classic
	out, delta = emit(terminal, src, opts.Skip, opts.Backwards, invertMode)
	return out, delta, nil
}
