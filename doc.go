// SPDX-License-Identifier: MIT
// Source: github.com/go-zx0/zx0

/*
Package zx0 implements the ZX0 compressor and decompressor: a compact
LZ-style byte-stream format built around an optimal (shortest-path) parser
and interlaced Elias-gamma codes, compatible with the reference ZX0 format
v2 and the older "classic" v1 variant.

# Compress

Options may be nil (full offset range, one thread, v2/non-classic format):

	out, delta, err := zx0.Compress(data, nil)
	out, delta, err := zx0.Compress(data, &zx0.CompressOptions{Threads: 4, Classic: true})

Compress requires a non-empty input and skip < len(data); see
CompressOptions.Skip.

# Decompress

	out, err := zx0.Decompress(compressed, nil)
	out, err := zx0.Decompress(compressed, &zx0.DecompressOptions{Classic: true})

From an io.Reader:

	out, err := zx0.DecompressFromReader(r, nil)
*/
package zx0
