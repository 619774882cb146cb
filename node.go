// SPDX-License-Identifier: MIT
// Source: github.com/go-zx0/zx0

package zx0

import "sync"

// block is a parse node: the fundamental optimizer state (spec's "Parse
// node"). offset == 0 marks a literal token; offset > 0 is a match
// back-offset. chain points at the predecessor node, or nil for the
// sentinel.
type block struct {
	bits   int
	index  int
	offset int
	chain  *block
}

// newSentinel returns the sentinel node representing "state before any
// token": index = skip-1, offset = initialOffset, bits = 0, chain = nil.
func newSentinel(skip int) *block {
	return &block{index: skip - 1, offset: initialOffset}
}

// blockPool pools *block allocations across optimize calls, the same way
// github.com/woozymasta/lzo/sliding_window_pool.go pools slidingWindowDict
// values: optimize() acquires scratch, does its work, and releases
// anything that isn't reachable from the winning chain before returning.
var blockPool = sync.Pool{
	New: func() any {
		return &block{}
	},
}

// acquireBlock takes a block from the pool and sets every field.
func acquireBlock(bits, index, offset int, chain *block) *block {
	b := blockPool.Get().(*block)
	b.bits = bits
	b.index = index
	b.offset = offset
	b.chain = chain
	return b
}

// releaseBlocks returns every node in the arena except those reachable
// from keep (the winning chain) to the pool. discarded nodes created
// during optimize() but not on the winning path are recycled here.
func releaseBlocks(arena []*block, keep *block) {
	kept := make(map[*block]bool)
	for n := keep; n != nil; n = n.chain {
		kept[n] = true
	}
	for _, n := range arena {
		if n == nil || kept[n] {
			continue
		}
		n.chain = nil
		blockPool.Put(n)
	}
}
