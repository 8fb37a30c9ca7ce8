// Package overlap maintains a square table of directional suffix/prefix
// overlaps between every ordered pair of fragments in a collection.
//
// Cell (i, j) holds frags[i].Overlap(frags[j]). The diagonal is always 0:
// a fragment is never compared with itself. Rows and columns can be removed
// and inserted in step with the collection they mirror, so a greedy
// assembler only recomputes the overlaps of the fragment it just created
// instead of rescanning all pairs after every merge.
//
// Complexity:
//
//   - New:    O(n²·L) time, O(n²) memory
//   - At:     O(1)
//   - Remove: O(n²) integer moves, no overlap recomputation
//   - Insert: O(n·L) overlap computations plus O(n²) integer moves
package overlap
