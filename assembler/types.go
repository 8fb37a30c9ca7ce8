package assembler

import "github.com/katalvlaran/sequencer/fragment"

// Candidate identifies an ordered pair of fragments by their indices in the
// current collection, together with the overlap of Left onto Right.
type Candidate struct {
	Left    int // index of the left (suffix) operand
	Right   int // index of the right (prefix) operand
	Overlap int // Fragments()[Left].Overlap(Fragments()[Right])
}

// Step describes one performed merge.
type Step struct {
	// Pair is the merged candidate, indexed before the merge.
	Pair Candidate

	// Left and Right are the consumed fragments.
	Left, Right fragment.Fragment

	// Merged is Left.MergedWith(Right).
	Merged fragment.Fragment

	// Index is the position of Merged in the collection after the merge.
	Index int

	// Remaining is the collection size after the merge.
	Remaining int
}

// Option configures an Assembler.
type Option func(*options)

type options struct {
	cache   bool       // keep an overlap table across steps
	workers int        // goroutines used for pairwise overlap work
	onMerge func(Step) // called after every merge; may be nil
}

// defaultOptions returns cached, single-goroutine assembly with no hook.
func defaultOptions() options {
	return options{
		cache:   true,
		workers: 1,
	}
}

// WithCache toggles the overlap table. With the cache disabled every step
// rescans all ordered pairs.
func WithCache(enabled bool) Option {
	return func(o *options) { o.cache = enabled }
}

// WithWorkers sets the number of goroutines used to compute overlaps.
// Values below 1 are treated as 1.
func WithWorkers(n int) Option {
	return func(o *options) {
		if n < 1 {
			n = 1
		}
		o.workers = n
	}
}

// WithOnMerge registers fn to be called after every successful merge.
func WithOnMerge(fn func(Step)) Option {
	return func(o *options) { o.onMerge = fn }
}
