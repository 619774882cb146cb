// SPDX-License-Identifier: MIT
// Source: github.com/go-zx0/zx0

package zx0

import "math/bits"

// eliasGammaBits returns 1 + 2*floor(log2(v)) for v >= 1, the bit cost of
// an interlaced Elias-gamma code for v.
func eliasGammaBits(v int) int {
	// bits.Len(v) == floor(log2(v)) + 1 for v >= 1.
	return 2*bits.Len(uint(v)) - 1
}
