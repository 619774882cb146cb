// SPDX-License-Identifier: MIT
// Source: github.com/go-zx0/zx0

package zx0

import "io"

// Decompress decodes a ZX0 byte stream. opts may be nil (v2/non-classic,
// non-backwards format).
//
// Returns ErrEmptyInput if src is empty, and ErrMalformedInput if a read
// advances past the end of src before the end marker is reached.
func Decompress(src []byte, opts *DecompressOptions) ([]byte, error) {
	if opts == nil {
		opts = DefaultDecompressOptions()
	}

	if len(src) == 0 {
		return nil, ErrEmptyInput
	}

	invertMode := !opts.Classic
	return decode(src, opts.Backwards, invertMode)
}

// DecompressFromReader reads the full stream then calls Decompress. It
// carries no decoding logic of its own, the same way
// github.com/woozymasta/lzo/decompress_reader.go's DecompressFromReader
// is a thin io.ReadAll wrapper around the slice-based entry point.
func DecompressFromReader(r io.Reader, opts *DecompressOptions) ([]byte, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Decompress(src, opts)
}
