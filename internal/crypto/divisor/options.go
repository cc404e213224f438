package divisor

import "go.uber.org/zap"

const defaultParallelThreshold = 32

// Option configures Build.
type Option func(*options)

type options struct {
	logger            *zap.Logger
	workers           int
	parallelThreshold int
	validate          bool
}

func newOptions(opts []Option) *options {
	o := &options{
		logger:            zap.NewNop(),
		workers:           1,
		parallelThreshold: defaultParallelThreshold,
		validate:          true,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithLogger sets the logger used for debug output.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithWorkers merges independent sub-divisors on a pool of n goroutines.
// n <= 1 keeps construction on the calling goroutine.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithParallelThreshold sets the minimum number of merges in a round before
// the round is dispatched to the worker pool.
func WithParallelThreshold(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.parallelThreshold = n
		}
	}
}

// WithoutValidation skips the on-curve and sum-to-identity checks on the input.
// A multiset that does not sum to the identity is still rejected once the last
// merge completes, but points off the curve may then surface as ErrDivision.
func WithoutValidation() Option {
	return func(o *options) {
		o.validate = false
	}
}
