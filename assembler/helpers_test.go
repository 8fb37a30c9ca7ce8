package assembler_test

import (
	"math/rand"

	"github.com/katalvlaran/sequencer/fragment"
)

// shotgun samples count reads with lengths in [minLen, maxLen] from a random
// genome of genomeLen symbols. The rng fixes the outcome for a given seed.
func shotgun(rng *rand.Rand, genomeLen, count, minLen, maxLen int) []fragment.Fragment {
	genome := make([]byte, genomeLen)
	for i := range genome {
		genome[i] = fragment.Alphabet[rng.Intn(len(fragment.Alphabet))]
	}

	reads := make([]fragment.Fragment, count)
	for i := range reads {
		n := minLen + rng.Intn(maxLen-minLen+1)
		start := rng.Intn(genomeLen - n + 1)
		reads[i] = fragment.MustNew(string(genome[start : start+n]))
	}

	return reads
}
