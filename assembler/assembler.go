// SPDX-License-Identifier: MIT

package assembler

import (
	"context"
	"slices"

	"github.com/katalvlaran/sequencer/fragment"
	"github.com/katalvlaran/sequencer/overlap"
)

// Assembler greedily merges an ordered collection of fragments.
type Assembler struct {
	frags []fragment.Fragment
	table *overlap.Table // nil when caching is disabled
	opts  options
}

// New returns an Assembler over a copy of frags; later changes to the
// caller's slice do not affect the assembler, and vice versa.
//
// Complexity: O(n) without cache, O(n²·L) with cache (table build).
func New(frags []fragment.Fragment, opts ...Option) *Assembler {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	a := &Assembler{
		frags: slices.Clone(frags),
		opts:  o,
	}
	if o.cache {
		a.table = overlap.New(a.frags, overlap.WithWorkers(o.workers))
	}

	return a
}

// Assemble is a convenience wrapper: it runs AssembleAll over a copy of
// frags and returns the irreducible collection.
func Assemble(frags []fragment.Fragment, opts ...Option) []fragment.Fragment {
	a := New(frags, opts...)
	a.AssembleAll()

	return a.frags
}

// Fragments returns a copy of the current collection.
func (a *Assembler) Fragments() []fragment.Fragment { return slices.Clone(a.frags) }

// Len returns the number of fragments currently held.
func (a *Assembler) Len() int { return len(a.frags) }

// Best returns the pair AssembleOnce would merge next, without merging it.
// It reports false when the collection is irreducible: fewer than two
// fragments, or no ordered pair overlaps by at least one symbol.
//
// Complexity: O(n²) with cache, O(n²·L) without.
func (a *Assembler) Best() (Candidate, bool) {
	if len(a.frags) < 2 {
		return Candidate{}, false
	}

	var b best
	switch {
	case a.table != nil:
		b = scanTable(a.frags, a.table)
	case a.opts.workers > 1:
		b = scanParallel(a.frags, a.opts.workers)
	default:
		b = scanRows(a.frags, 0, len(a.frags))
	}
	if !b.found || b.c.Overlap < 1 {
		return Candidate{}, false
	}

	return b.c, true
}

// AssembleOnce performs at most one merge and reports whether it did.
//
// Steps:
//  1. Find the best ordered pair (see Best).
//  2. If its overlap is below 1, return false; the collection is untouched.
//  3. Otherwise build left.MergedWith(right), remove both sources (higher
//     index first), insert the merged fragment at the lower index, and
//     return true.
//
// The collection shrinks by exactly one on every successful call.
func (a *Assembler) AssembleOnce() bool {
	c, ok := a.Best()
	if !ok {
		return false
	}

	left, right := a.frags[c.Left], a.frags[c.Right]
	merged := left.MergedWith(right)
	lo, hi := min(c.Left, c.Right), max(c.Left, c.Right)

	a.frags = slices.Delete(a.frags, hi, hi+1)
	a.frags = slices.Delete(a.frags, lo, lo+1)
	a.frags = slices.Insert(a.frags, lo, merged)
	a.syncTable(lo, hi)

	if a.opts.onMerge != nil {
		a.opts.onMerge(Step{
			Pair:      c,
			Left:      left,
			Right:     right,
			Merged:    merged,
			Index:     lo,
			Remaining: len(a.frags),
		})
	}

	return true
}

// syncTable mirrors a merge of rows lo < hi into the cached table.
func (a *Assembler) syncTable(lo, hi int) {
	if a.table == nil {
		return
	}
	err := a.table.Remove(hi)
	if err == nil {
		err = a.table.Remove(lo)
	}
	if err == nil {
		err = a.table.Insert(lo, a.frags)
	}
	if err != nil {
		// Indices come from the table itself, so this only happens if the
		// table drifted from the collection; start over from the fragments.
		a.table = overlap.New(a.frags, overlap.WithWorkers(a.opts.workers))
	}
}

// AssembleAll merges until the collection is irreducible and returns the
// number of merges performed. Once irreducible, further calls return 0 and
// change nothing.
//
// At most n-1 merges happen for n fragments.
func (a *Assembler) AssembleAll() int {
	merges := 0
	for a.AssembleOnce() {
		merges++
	}

	return merges
}

// AssembleAllContext is AssembleAll with cancellation checked between
// steps. On cancellation it returns the merges done so far and ctx.Err();
// the collection is left in a consistent, partially assembled state.
func (a *Assembler) AssembleAllContext(ctx context.Context) (int, error) {
	merges := 0
	for {
		if err := ctx.Err(); err != nil {
			return merges, err
		}
		if !a.AssembleOnce() {
			return merges, nil
		}
		merges++
	}
}
