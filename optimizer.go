// SPDX-License-Identifier: MIT
// Source: github.com/go-zx0/zx0

package zx0

// optimizerState holds the scan-wide, read-mostly state of one optimize
// call: the input, the optimal-prefix table, and the node arena. Its
// struct shape (grouped config / output / scratch fields with doc
// comments) follows github.com/woozymasta/lzo/sliding_window.go's
// slidingWindowDict, even though ZX0's brute-force per-offset scan has no
// hash-chain analogue to reuse directly.
type optimizerState struct {
	// Input and configuration.

	input       []byte
	skip        int
	offsetLimit int

	// optimal[i] is the best parse node ending at position skip+i.
	optimal []*block

	sentinel *block

	// arena collects every *block allocated during this optimize call so
	// releaseBlocks can recycle everything off the winning chain.
	arena []*block

	// progress, if non-nil, is invoked after every scan position.
	progress func(pos, total int)
}

// newBlock allocates a node from the pool and registers it in the arena.
func (o *optimizerState) newBlock(bits, index, offset int, chain *block) *block {
	b := acquireBlock(bits, index, offset, chain)
	o.arena = append(o.arena, b)
	return b
}

// at returns the best parse node ending at position idx, including the
// sentinel at idx == skip-1.
func (o *optimizerState) at(idx int) *block {
	if idx < o.skip {
		return o.sentinel
	}
	return o.optimal[idx-o.skip]
}

// firstPositionFallback returns a single-byte literal closing against the
// sentinel, which is always a valid parse of the first scan position. It
// is used only if no shard produced a candidate at p == skip; since no
// offset matches there (every back-reference would reach into the skipped
// prefix), the sentinel seeded into the offset-1 slot normally yields that
// literal already.
func (o *optimizerState) firstPositionFallback() *block {
	return o.newBlock(1+eliasGammaBits(1)+8, o.skip, 0, o.sentinel)
}

// offsetShard is private per-shard scratch: one contiguous slice of
// offsets [lo, hi] and the per-offset tables that only this shard reads
// and writes (spec §5: "No shard reads or writes another shard's offset
// slice").
type offsetShard struct {
	lo, hi int
	maxHi  int // shard's configured upper bound; hi <= maxHi always

	// arena collects this shard's own block allocations. Kept separate
	// from optimizerState.arena because processPosition runs concurrently
	// across shards in the parallel path (spec §5): a shared arena slice
	// would race under append.
	arena []*block

	lastLiteral []*block
	lastMatch   []*block
	matchLength []int

	// bestLength roll-out scratch, private per shard (spec §9: "Per-shard
	// scratch (the local optimalBlock and bestLength array) must be
	// private"). Recomputed fresh every position; shards needn't agree on
	// its contents since it only depends on (position, length), and every
	// shard that consults it recomputes the same deterministic values.
	bestLength     []int
	bestLengthSize int
}

func newOffsetShard(lo, hi, capacity int) *offsetShard {
	n := hi - lo + 1
	return &offsetShard{
		lo:          lo,
		hi:          hi,
		maxHi:       hi,
		lastLiteral: make([]*block, n),
		lastMatch:   make([]*block, n),
		matchLength: make([]int, n),
		bestLength:  make([]int, capacity+2),
	}
}

// extendBestLength grows bestLength up to index `length`, following the
// roll-out rule in spec §4.1: bestLength[2] = 2; for each k above the
// previously rolled-out size, keep the candidate length k if its encoded
// cost is <= the incumbent's (ties favor the longer length), else inherit
// the incumbent.
func (s *offsetShard) extendBestLength(o *optimizerState, p, length int) {
	if length < 2 {
		return
	}
	if s.bestLengthSize < 2 {
		s.bestLength[2] = 2
		s.bestLengthSize = 2
	}
	for k := s.bestLengthSize + 1; k <= length; k++ {
		candidate := o.at(p - k).bits + eliasGammaBits(k-1)
		incumbent := s.bestLength[k-1]
		incumbentCost := o.at(p - incumbent).bits + eliasGammaBits(incumbent-1)
		if candidate <= incumbentCost {
			s.bestLength[k] = k
		} else {
			s.bestLength[k] = incumbent
		}
	}
	s.bestLengthSize = length
}

// resetForPosition clears the bestLength roll-out marker; it must not
// persist across positions (optimal[p-k] changes every position).
func (s *offsetShard) resetForPosition() {
	s.bestLengthSize = 0
}

// newBlock allocates a node from the pool into this shard's own arena.
func (s *offsetShard) newBlock(bits, index, offset int, chain *block) *block {
	b := acquireBlock(bits, index, offset, chain)
	s.arena = append(s.arena, b)
	return b
}

// processPosition scans this shard's offset range at position p and
// returns the shard-local best node ending at p, or nil if none found.
func (s *offsetShard) processPosition(o *optimizerState, p int) *block {
	s.resetForPosition()

	input := o.input
	var local *block

	for off := s.lo; off <= s.hi; off++ {
		idx := off - s.lo

		// A back-reference never reaches into the skipped prefix: the
		// decoder starts with an empty output and never sees those bytes.
		if p-off >= o.skip && input[p] == input[p-off] {
			// Continue-offset token: close a pending literal with a match
			// at this offset.
			if ll := s.lastLiteral[idx]; ll != nil {
				length := p - ll.index
				bits := ll.bits + 1 + eliasGammaBits(length)
				if lm := s.lastMatch[idx]; lm == nil || lm.index != p || bits < lm.bits {
					s.lastMatch[idx] = s.newBlock(bits, p, off, ll)
				}
			}

			// New-offset token: extend the running match length and
			// consider splitting it at the best prior position.
			s.matchLength[idx]++
			if length := s.matchLength[idx]; length >= 2 {
				s.extendBestLength(o, p, length)
				l := s.bestLength[length]
				bits := o.at(p-l).bits + 8 + eliasGammaBits((off-1)/offsetMSBDivisor+1) + eliasGammaBits(l-1)
				if lm := s.lastMatch[idx]; lm == nil || lm.index != p || bits < lm.bits {
					s.lastMatch[idx] = s.newBlock(bits, p, off, o.at(p-l))
				}
			}
		} else {
			s.matchLength[idx] = 0
			if lm := s.lastMatch[idx]; lm != nil {
				length := p - lm.index
				bits := lm.bits + 1 + eliasGammaBits(length) + 8*length
				if ll := s.lastLiteral[idx]; ll == nil || ll.index != p || bits < ll.bits {
					s.lastLiteral[idx] = s.newBlock(bits, p, 0, lm)
				}
			}
		}

		if ll := s.lastLiteral[idx]; ll != nil && ll.index == p {
			if local == nil || ll.bits < local.bits {
				local = ll
			}
		}
		if lm := s.lastMatch[idx]; lm != nil && lm.index == p {
			if local == nil || lm.bits < local.bits {
				local = lm
			}
		}
	}

	return local
}

// optimize runs the shortest-path parser described in spec §4.1 and
// returns the terminal parse node covering [skip, len(input)). progress,
// if non-nil, is called after every scan position with (pos, total).
func optimize(input []byte, skip, offsetLimit, threads int, progress func(pos, total int)) *block {
	n := len(input)
	o := &optimizerState{
		input:       input,
		skip:        skip,
		offsetLimit: offsetLimit,
		optimal:     make([]*block, n-skip),
		sentinel:    newSentinel(skip),
		progress:    progress,
	}

	if threads <= 1 {
		runSingleThreaded(o)
	} else {
		runParallel(o, threads)
	}

	terminal := o.optimal[n-1-skip]
	releaseBlocks(o.arena, terminal)
	return terminal
}

// runSingleThreaded implements the inlined, non-pooled path required by
// spec §5 ("when threads == 1, no pool is created; processing is
// inlined") using a single shard covering the whole offset range.
func runSingleThreaded(o *optimizerState) {
	n := len(o.input)
	shard := newOffsetShard(1, o.offsetLimit, n-o.skip+2)

	// Fake initial block: seed lastMatch[1] with the sentinel so the first
	// literal at offset 1 has a predecessor to close against.
	shard.lastMatch[0] = o.sentinel

	for p := o.skip; p < n; p++ {
		ceiling := offsetCeiling(p, o.offsetLimit)
		shard.hi = min(shard.maxHi, ceiling)
		best := shard.processPosition(o, p)
		if best == nil && p == o.skip {
			best = o.firstPositionFallback()
		}
		o.optimal[p-o.skip] = best
		if o.progress != nil {
			o.progress(p, n)
		}
	}

	o.arena = append(o.arena, shard.arena...)
}
