// SPDX-License-Identifier: MIT
// Source: github.com/go-zx0/zx0

package zx0

import "testing"

func TestEliasGammaBits(t *testing.T) {
	cases := []struct {
		value int
		want  int
	}{
		{1, 1},
		{2, 3},
		{3, 3},
		{4, 5},
		{7, 5},
		{8, 7},
		{256, 17},
		{511, 17},
		{512, 19},
	}

	for _, c := range cases {
		if got := eliasGammaBits(c.value); got != c.want {
			t.Errorf("eliasGammaBits(%d) = %d, want %d", c.value, got, c.want)
		}
	}
}
