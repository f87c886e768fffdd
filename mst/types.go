package mst

import (
	"errors"

	"github.com/katalvlaran/simgraph/core"
)

var (
	// ErrNilGraph indicates that a nil graph was passed.
	ErrNilGraph = errors.New("mst: graph is nil")

	// ErrInvalidRoot indicates that Prim's root is outside the graph.
	ErrInvalidRoot = errors.New("mst: root vertex out of range")
)

// Forest is a minimum spanning forest (or, from Prim, a single tree).
type Forest struct {
	// Edges are listed in the order the algorithm accepted them.
	Edges []core.Edge

	// TotalWeight is the sum of edge weights.
	TotalWeight float64

	// Trees is the number of trees, isolated vertices included.
	Trees int
}

// Bottleneck returns the heaviest edge of f; ties go to the earliest
// accepted edge. The second result is false for an edgeless forest.
func (f *Forest) Bottleneck() (core.Edge, bool) {
	if len(f.Edges) == 0 {
		return core.Edge{}, false
	}
	best := f.Edges[0]
	for _, e := range f.Edges[1:] {
		if e.Weight > best.Weight {
			best = e
		}
	}

	return best, true
}
