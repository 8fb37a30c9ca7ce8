// Package sequencer reconstructs DNA sequences from short overlapping reads
// with a greedy shortest-common-superstring heuristic.
//
// What is inside?
//
//	fragment/    immutable nucleotide strings over A, C, G, T with
//	             suffix/prefix overlap and merge primitives
//	overlap/     pairwise overlap table, optionally built in parallel
//	assembler/   greedy merge loop: pick the best overlapping pair, merge,
//	             repeat until no pair overlaps
//	loader/      read sets from plain line files or FASTA
//	config/      YAML configuration and zap logging setup
//	state/       per-run environment carried through context.Context
//
// Quick example:
//
//	reads := []fragment.Fragment{
//		fragment.MustNew("ATTAGC"),
//		fragment.MustNew("TAGCA"),
//		fragment.MustNew("GCAT"),
//	}
//	asm := assembler.New(reads)
//	asm.AssembleAll()
//	fmt.Println(asm.Fragments()) // [ATTAGCAT]
//
// The command line front end lives in cmd/sequencer:
//
//	sequencer assemble reads.fasta contigs.txt
//	sequencer overlap reads.txt
//	sequencer dumpconfig --default
package sequencer
