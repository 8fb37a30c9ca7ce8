// SPDX-License-Identifier: MIT

package assembler

import (
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/sequencer/fragment"
	"github.com/katalvlaran/sequencer/overlap"
)

// best tracks the winning candidate of a scan.
type best struct {
	c     Candidate
	found bool
}

// offer replaces the current winner iff c has a strictly larger overlap, or
// an equal overlap with a strictly shorter right operand.
// Equal keys keep the earlier candidate, which makes the scan order the
// final tie-break.
func (b *best) offer(c Candidate, frags []fragment.Fragment) {
	if b.found && !improves(c, b.c, frags) {
		return
	}
	b.c, b.found = c, true
}

func improves(c, cur Candidate, frags []fragment.Fragment) bool {
	if c.Overlap != cur.Overlap {
		return c.Overlap > cur.Overlap
	}

	return frags[c.Right].Len() < frags[cur.Right].Len()
}

// scanRows examines every ordered pair (i, j), i in [lo, hi), j != i,
// computing overlaps directly.
// Complexity: O((hi-lo)·n·L).
func scanRows(frags []fragment.Fragment, lo, hi int) best {
	var b best
	for i := lo; i < hi; i++ {
		for j := range frags {
			if i == j {
				continue
			}
			b.offer(Candidate{Left: i, Right: j, Overlap: frags[i].Overlap(frags[j])}, frags)
		}
	}

	return b
}

// scanTable examines every ordered pair using cached overlaps.
// Complexity: O(n²).
func scanTable(frags []fragment.Fragment, t *overlap.Table) best {
	var b best
	t.Do(func(i, j, v int) bool {
		b.offer(Candidate{Left: i, Right: j, Overlap: v}, frags)
		return true
	})

	return b
}

// scanParallel splits the rows into contiguous chunks, scans them on up to
// workers goroutines and folds the chunk winners in row order. Folding with
// the same rule as the sequential scan yields the same winner.
//
// frags is only read while goroutines run.
func scanParallel(frags []fragment.Fragment, workers int) best {
	n := len(frags)
	if workers > n {
		workers = n
	}
	if workers <= 1 {
		return scanRows(frags, 0, n)
	}

	chunk := (n + workers - 1) / workers
	parts := make([]best, workers)

	var g errgroup.Group
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := min(lo+chunk, n)
		if lo >= hi {
			continue
		}
		g.Go(func() error {
			parts[w] = scanRows(frags, lo, hi)
			return nil
		})
	}
	_ = g.Wait() // scans never fail

	var b best
	for _, p := range parts {
		if p.found {
			b.offer(p.c, frags)
		}
	}

	return b
}
