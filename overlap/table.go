// SPDX-License-Identifier: MIT

package overlap

import (
	"slices"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/sequencer/fragment"
)

// Table is an n×n matrix of directional overlaps.
//   - cells[i][j] == frags[i].Overlap(frags[j]) for i != j.
//   - cells[i][i] == 0.
//
// A Table is not safe for concurrent mutation.
type Table struct {
	cells [][]int // row-major, len(cells) == n and len(cells[i]) == n
}

// New computes the overlap of every ordered pair of distinct fragments.
//
// With WithWorkers(w > 1) rows are filled concurrently; the fragments are
// only read, and each goroutine writes a disjoint row.
//
// Complexity: O(n²·L) time, O(n²) memory.
func New(frags []fragment.Fragment, opts ...Option) *Table {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	n := len(frags)
	cells := make([][]int, n)
	fill := func(i int) {
		row := make([]int, n)
		for j := range frags {
			if i != j {
				row[j] = frags[i].Overlap(frags[j])
			}
		}
		cells[i] = row
	}

	if o.workers <= 1 || n < 2 {
		for i := 0; i < n; i++ {
			fill(i)
		}
	} else {
		var g errgroup.Group
		g.SetLimit(o.workers)
		for i := 0; i < n; i++ {
			g.Go(func() error {
				fill(i)
				return nil
			})
		}
		_ = g.Wait() // fill never fails
	}

	return &Table{cells: cells}
}

// Size returns the number of fragments the table mirrors.
func (t *Table) Size() int { return len(t.cells) }

// At returns the overlap of fragment i onto fragment j.
// Returns ErrIndexOutOfBounds if either index is outside [0, Size()).
// Complexity: O(1).
func (t *Table) At(i, j int) (int, error) {
	if !t.inRange(i) || !t.inRange(j) {
		return 0, tableErrorf("At", i, j, ErrIndexOutOfBounds)
	}

	return t.cells[i][j], nil
}

// Do calls f for every off-diagonal cell in row-major order, stopping
// early if f returns false.
// Complexity: O(n²).
func (t *Table) Do(f func(i, j, overlap int) bool) {
	for i, row := range t.cells {
		for j, v := range row {
			if i == j {
				continue
			}
			if !f(i, j, v) {
				return
			}
		}
	}
}

// Remove drops row and column i; later indices shift down by one.
// Complexity: O(n²) integer moves.
func (t *Table) Remove(i int) error {
	if !t.inRange(i) {
		return tableErrorf("Remove", i, i, ErrIndexOutOfBounds)
	}
	t.cells = slices.Delete(t.cells, i, i+1)
	for r := range t.cells {
		t.cells[r] = slices.Delete(t.cells[r], i, i+1)
	}

	return nil
}

// Insert adds a row and column at index i for frags[i], where frags is the
// collection AFTER insertion (len(frags) == Size()+1). Only the overlaps
// involving frags[i] are computed; every other cell is kept.
//
// Errors:
//   - ErrSizeMismatch if len(frags) != Size()+1.
//   - ErrIndexOutOfBounds if i is outside [0, Size()].
//
// Complexity: O(n·L) overlap work plus O(n²) integer moves.
func (t *Table) Insert(i int, frags []fragment.Fragment) error {
	n := len(t.cells)
	if len(frags) != n+1 {
		return tableErrorf("Insert", i, len(frags), ErrSizeMismatch)
	}
	if i < 0 || i > n {
		return tableErrorf("Insert", i, i, ErrIndexOutOfBounds)
	}

	f := frags[i]
	row := make([]int, n+1)
	for j := range frags {
		if j != i {
			row[j] = f.Overlap(frags[j])
		}
	}
	for r := range t.cells {
		src := r
		if r >= i {
			src = r + 1 // index of the same fragment in frags
		}
		t.cells[r] = slices.Insert(t.cells[r], i, frags[src].Overlap(f))
	}
	t.cells = slices.Insert(t.cells, i, row)

	return nil
}

// String renders the table one row per line, cells separated by spaces.
func (t *Table) String() string {
	var sb strings.Builder
	for _, row := range t.cells {
		for j, v := range row {
			if j > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(strconv.Itoa(v))
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

func (t *Table) inRange(i int) bool { return i >= 0 && i < len(t.cells) }
