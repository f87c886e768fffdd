package diameter

import (
	"errors"
	"runtime"
)

// DefaultSampleSize is the number of leading vertices used as sweep sources.
const DefaultSampleSize = 100

var (
	// ErrNilGraph indicates that Estimate received a nil graph.
	ErrNilGraph = errors.New("diameter: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("diameter: invalid option supplied")
)

// Options configures Estimate.
type Options struct {
	// SampleSize caps how many leading vertices are used as sources; >= 1.
	SampleSize int

	// Workers is the number of concurrent sweeps; >= 1.
	Workers int

	err error
}

// Option represents a functional option for configuring Estimate.
type Option func(*Options)

// DefaultOptions returns SampleSize = DefaultSampleSize and one worker per CPU.
func DefaultOptions() Options {
	return Options{
		SampleSize: DefaultSampleSize,
		Workers:    runtime.GOMAXPROCS(0),
	}
}

// WithSampleSize sets the number of leading vertices swept.
func WithSampleSize(k int) Option {
	return func(o *Options) {
		if k < 1 {
			o.err = ErrOptionViolation
			return
		}
		o.SampleSize = k
	}
}

// WithWorkers sets the number of concurrent sweeps.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = ErrOptionViolation
			return
		}
		o.Workers = n
	}
}

// Result is the approximate diameter and the pair realizing it.
//
// When no positive distance was observed, MaxDistance, Source and Target
// are all zero. Sampled is the number of sources actually swept; it is
// zero only for an empty graph.
type Result struct {
	MaxDistance float64
	Source      int
	Target      int
	Sampled     int
}

// Found reports whether a positive distance was observed.
func (r Result) Found() bool { return r.MaxDistance > 0 }
