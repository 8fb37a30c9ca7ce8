// Package fragment defines Fragment, an immutable nucleotide read over the
// alphabet {A, C, G, T}, together with the two primitives a greedy assembler
// needs: directional suffix/prefix overlap and overlapped merge.
//
// What is a Fragment?
//
//	A short validated sequence of nucleotide symbols. Fragments are values:
//	two fragments are equal iff their symbols are identical, and nothing
//	mutates a fragment after New returns it. The zero Fragment is the empty
//	read, a degenerate but legal fragment of length 0.
//
// Key operations:
//   - New validates the alphabet and fails with ErrInvalidAlphabet.
//   - Overlap(a, b) is the length of the longest suffix of a that equals a
//     prefix of b. It is directional: a.Overlap(b) may differ from b.Overlap(a).
//   - MergedWith(a, b) glues b onto a, sharing the overlapped symbols.
//
// Usage:
//
//	a, err := fragment.New("CAA")
//	if err != nil {
//	  // handle ErrInvalidAlphabet
//	}
//	b := fragment.MustNew("AAG")
//	a.Overlap(b)    // 2
//	a.MergedWith(b) // CAAG
//
// Complexity:
//
//   - New:        O(L)
//   - Overlap:    O(m²) worst case, m = min(len(a), len(b))
//   - MergedWith: O(m² + len(a) + len(b))
package fragment
