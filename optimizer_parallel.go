// SPDX-License-Identifier: MIT
// Source: github.com/go-zx0/zx0

package zx0

// runParallel implements the parallel worker pool from spec §5: a fixed
// pool of `threads` persistent goroutines, one contiguous offset shard
// each, synchronized with a per-position barrier. The goroutine/channel
// shape (persistent workers draining a job channel, a WaitGroup-free
// explicit reply channel per worker) follows
// harriteja-GoZ4X/parallel/dispatcher.go's Dispatcher, adapted from
// chunked one-shot jobs to a bulk-synchronous per-position barrier.
func runParallel(o *optimizerState, threads int) {
	n := len(o.input)
	shardSize := (o.offsetLimit + threads - 1) / threads

	workers := make([]*parallelWorker, 0, threads)
	for lo := 1; lo <= o.offsetLimit; lo += shardSize {
		hi := lo + shardSize - 1
		if hi > o.offsetLimit {
			hi = o.offsetLimit
		}
		w := &parallelWorker{
			shard:  newOffsetShard(lo, hi, n-o.skip+2),
			posCh:  make(chan int),
			doneCh: make(chan *block),
		}
		workers = append(workers, w)
		go w.run(o)
	}
	// Fake initial block lives in the shard owning offset 1, which is
	// always the first worker since shards are built offset-ascending.
	workers[0].shard.lastMatch[0] = o.sentinel

	defer func() {
		for _, w := range workers {
			close(w.posCh)
		}
	}()

	for p := o.skip; p < n; p++ {
		ceiling := offsetCeiling(p, o.offsetLimit)
		for _, w := range workers {
			if w.shard.lo > ceiling {
				break
			}
			w.shard.hi = min(w.shard.maxHi, ceiling)
			w.posCh <- p
		}

		// Deterministic reduction: iterate shards offset-ascending, strict
		// > replacement (first-writer wins ties), mirroring the
		// within-shard tie-break rule.
		var best *block
		for _, w := range workers {
			if w.shard.lo > ceiling {
				continue
			}
			cand := <-w.doneCh
			if cand != nil && (best == nil || best.bits > cand.bits) {
				best = cand
			}
		}
		if best == nil && p == o.skip {
			best = o.firstPositionFallback()
		}
		o.optimal[p-o.skip] = best
		if o.progress != nil {
			o.progress(p, n)
		}
	}

	// Safe to read each shard's arena here: every worker has returned its
	// result for the final barrier position and is blocked on posCh, so
	// none is concurrently appending to its shard's arena.
	for _, w := range workers {
		o.arena = append(o.arena, w.shard.arena...)
	}
}

// parallelWorker owns one offset shard and a private job/result channel
// pair; it blocks on posCh between barrier rounds.
type parallelWorker struct {
	shard  *offsetShard
	posCh  chan int
	doneCh chan *block
}

func (w *parallelWorker) run(o *optimizerState) {
	for p := range w.posCh {
		w.doneCh <- w.shard.processPosition(o, p)
	}
}
