// SPDX-License-Identifier: MIT

package fragment

import "strings"

// Alphabet lists the nucleotide symbols a Fragment may contain.
const Alphabet = "ACGT"

// Fragment is an immutable, validated nucleotide sequence.
//
// Fragment is comparable: a == b holds iff both carry the same symbols,
// so fragments may be used directly as map keys.
type Fragment struct {
	seq string // validated symbols, stored verbatim
}

// New validates sequence against Alphabet and returns it as a Fragment.
//
// The sequence is stored exactly as given; no case folding or trimming
// is performed, so "acgt" is rejected. The empty string yields the empty
// Fragment.
//
// Errors:
//   - *AlphabetError (matches ErrInvalidAlphabet) for the first symbol
//     outside Alphabet.
//
// Complexity: O(L).
func New(sequence string) (Fragment, error) {
	for off, r := range sequence {
		if !isNucleotide(r) {
			return Fragment{}, &AlphabetError{Symbol: r, Offset: off}
		}
	}

	return Fragment{seq: sequence}, nil
}

// MustNew is like New but panics if sequence is not a valid fragment.
// It is meant for literals in tests and examples.
func MustNew(sequence string) Fragment {
	f, err := New(sequence)
	if err != nil {
		panic(err)
	}

	return f
}

// isNucleotide reports whether r belongs to Alphabet.
func isNucleotide(r rune) bool {
	switch r {
	case 'A', 'C', 'G', 'T':
		return true
	}

	return false
}

// Len returns the number of symbols in f.
// Validated sequences are ASCII, so bytes and symbols coincide.
func (f Fragment) Len() int { return len(f.seq) }

// String returns the sequence exactly as it was passed to New.
func (f Fragment) String() string { return f.seq }

// Equal reports whether f and other carry identical symbols.
func (f Fragment) Equal(other Fragment) bool { return f.seq == other.seq }

// Overlap returns the number of symbols by which the end of f overlaps
// the start of other.
//
// Every candidate length k in [1, min(f.Len(), other.Len())] is tested in
// ascending order and the last match wins, so the result is the LARGEST k
// for which f's last k symbols equal other's first k symbols. For example
// CAA and AAG overlap by 2, not 1. Zero means no suffix of f is a prefix
// of other.
//
// Overlap is directional and not symmetric.
//
// Complexity: O(m²) worst case, m = min(f.Len(), other.Len()).
func (f Fragment) Overlap(other Fragment) int {
	best := 0
	m := min(len(f.seq), len(other.seq))
	for k := 1; k <= m; k++ {
		if f.seq[len(f.seq)-k:] == other.seq[:k] {
			best = k
		}
	}

	return best
}

// MergedWith returns a new Fragment made of f followed by other, sharing
// the f.Overlap(other) symbols where they coincide.
//
// Cases:
//   - k > 0 and f ends with other's first k symbols: f + other[k:]
//     (f is the left piece, other the right one).
//   - k > 0 but the directional check fails: other + f[k:].
//   - k == 0: plain concatenation f + other.
//
// The result never needs validation: gluing two valid sequences cannot
// introduce a foreign symbol.
//
// Complexity: O(m² + f.Len() + other.Len()).
func (f Fragment) MergedWith(other Fragment) Fragment {
	k := f.Overlap(other)
	if k == 0 {
		return Fragment{seq: f.seq + other.seq}
	}
	if strings.HasSuffix(f.seq, other.seq[:k]) {
		return Fragment{seq: f.seq + other.seq[k:]}
	}

	return Fragment{seq: other.seq + f.seq[k:]}
}
