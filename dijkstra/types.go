package dijkstra

import (
	"errors"
	"math"
	"slices"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrInvalidNode indicates that the source vertex is outside the graph's node range.
	ErrInvalidNode = errors.New("dijkstra: source node out of range")

	// ErrNegativeWeight indicates that a negative edge weight was detected in the graph.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrOptionViolation indicates that an option received an invalid argument.
	ErrOptionViolation = errors.New("dijkstra: invalid option supplied")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// Source      – starting vertex (must be in [0, NodeCount)).
// ReturnPath  – if true, Result.Prev is populated; otherwise it is nil.
// MaxDistance – vertices farther than this are not settled. Default +Inf.
type Options struct {
	Source      int
	ReturnPath  bool
	MaxDistance float64

	// err records the first invalid option.
	err error
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting vertex.
func Source(v int) Option {
	return func(o *Options) {
		o.Source = v
	}
}

// WithReturnPath enables generation of the predecessor map in the result.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance threshold. Vertices whose
// shortest distance would exceed max are left out of the result.
// Negative or NaN values surface as ErrOptionViolation.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if max < 0 || math.IsNaN(max) {
			o.err = ErrOptionViolation
			return
		}
		o.MaxDistance = max
	}
}

// DefaultOptions returns Options for the given source with no distance
// cap and no predecessor tracking.
func DefaultOptions(source int) Options {
	return Options{
		Source:      source,
		MaxDistance: math.Inf(1),
	}
}

// Result is the outcome of one Dijkstra run: the distance table of the
// source and, optionally, a shortest-path tree.
type Result struct {
	// Source is the vertex the run started from.
	Source int

	// Dist maps every reachable vertex (Source included, at 0) to its
	// shortest-path distance. Unreachable vertices are absent.
	Dist map[int]float64

	// Prev maps every reachable vertex except Source to its predecessor on
	// one shortest path. Nil unless WithReturnPath was given.
	Prev map[int]int
}

// Reachable returns the reachable vertices in ascending index order.
func (r *Result) Reachable() []int {
	nodes := make([]int, 0, len(r.Dist))
	for v := range r.Dist {
		nodes = append(nodes, v)
	}
	slices.Sort(nodes)

	return nodes
}

// Farthest returns the reachable vertex with the largest distance. Ties go
// to the smallest vertex index. For a source with no neighbors it returns
// (Source, 0).
func (r *Result) Farthest() (int, float64) {
	best, bestDist := r.Source, 0.0
	for _, v := range r.Reachable() {
		if d := r.Dist[v]; d > bestDist {
			best, bestDist = v, d
		}
	}

	return best, bestDist
}

// PathTo rebuilds the vertex sequence Source → … → target.
// It reports false when target is unreachable or Prev was not requested.
func (r *Result) PathTo(target int) ([]int, bool) {
	if _, ok := r.Dist[target]; !ok {
		return nil, false
	}
	if target == r.Source {
		return []int{target}, true
	}
	if r.Prev == nil {
		return nil, false
	}

	path := []int{target}
	for v := target; v != r.Source; {
		u, ok := r.Prev[v]
		if !ok {
			return nil, false
		}
		path = append(path, u)
		v = u
	}
	slices.Reverse(path)

	return path, true
}
