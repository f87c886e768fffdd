package simgraph

import (
	"errors"
	"math"
	"runtime"
)

// DefaultThreshold is the maximum edge length in normalized feature space.
const DefaultThreshold = 0.5

// Sentinel errors returned by Build.
var (
	// ErrNilMatrix indicates that Build received a nil matrix.
	ErrNilMatrix = errors.New("simgraph: matrix is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("simgraph: invalid option supplied")
)

// Options configures Build.
type Options struct {
	// Threshold is the inclusive distance bound for an edge; must be finite and >= 0.
	Threshold float64

	// Workers is the number of concurrent scanners; must be >= 1.
	Workers int

	// err records the first invalid option.
	err error
}

// Option represents a functional option for configuring Build.
type Option func(*Options)

// DefaultOptions returns Threshold = DefaultThreshold and one worker per
// available CPU.
func DefaultOptions() Options {
	return Options{
		Threshold: DefaultThreshold,
		Workers:   runtime.GOMAXPROCS(0),
	}
}

// WithThreshold sets the inclusive edge distance bound.
// Negative or non-finite values surface as ErrOptionViolation from Build.
func WithThreshold(th float64) Option {
	return func(o *Options) {
		if th < 0 || math.IsNaN(th) || math.IsInf(th, 0) {
			o.err = ErrOptionViolation
			return
		}
		o.Threshold = th
	}
}

// WithWorkers sets the number of concurrent scanners. Values < 1 surface
// as ErrOptionViolation from Build.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = ErrOptionViolation
			return
		}
		o.Workers = n
	}
}
