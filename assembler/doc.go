// Package assembler reconstructs a sequence from overlapping reads by greedy
// pairwise merging, a heuristic for the shortest common superstring problem.
//
// What does it do?
//
//	An Assembler owns an ordered collection of fragments. Each step examines
//	every ordered pair of distinct fragments (i, j), measures how far the end
//	of i overlaps the start of j, and merges the best pair into one fragment.
//	Steps repeat until a single fragment remains or no pair overlaps at all.
//
// Selection rule:
//   - the largest overlap wins;
//   - on equal overlap, the pair whose right operand (j) is shorter wins;
//   - remaining ties go to the first pair in row-major (i, then j) order.
//
// The result is a heuristic: greedy merging does not guarantee the shortest
// superstring.
//
// Usage:
//
//	asm := assembler.New(reads)
//	merges := asm.AssembleAll()
//	for _, f := range asm.Fragments() {
//	  fmt.Println(f)
//	}
//
// Options:
//   - WithCache(true)  keep an overlap.Table across steps (default) so a step
//     only computes overlaps for the newly merged fragment.
//   - WithWorkers(n)   spread the pairwise scan over n goroutines. The winner
//     is identical to the sequential scan.
//   - WithOnMerge(fn)  observe every merge as a Step.
//
// Complexity:
//
//   - AssembleOnce: O(n²·L) without cache, O(n·L + n²) with cache
//   - AssembleAll:  at most n−1 successful steps
//
// An Assembler is not safe for concurrent use.
package assembler
