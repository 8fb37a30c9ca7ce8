package overlap

// Option configures how a Table is built.
type Option func(*options)

type options struct {
	workers int // goroutines used to fill rows in New
}

// defaultOptions builds the table on the calling goroutine.
func defaultOptions() options {
	return options{workers: 1}
}

// WithWorkers fills the rows of a new Table with up to n goroutines.
// Values below 1 are treated as 1.
func WithWorkers(n int) Option {
	return func(o *options) {
		if n < 1 {
			n = 1
		}
		o.workers = n
	}
}
