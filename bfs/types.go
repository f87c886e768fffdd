package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartVertexNotFound is returned when the start index is out of range.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNeighbors is returned when fetching neighbors from the graph fails.
	ErrNeighbors = errors.New("bfs: neighbor iteration error")
)

// Option adjusts one BFS run. A bad value is remembered and returned as
// ErrOptionViolation by BFS before any vertex is visited.
type Option func(*BFSOptions)

// BFSOptions controls a single traversal.
type BFSOptions struct {
	// Ctx is checked before every dequeue.
	Ctx context.Context

	// OnVisit sees each vertex once, in visit order, with its hop depth.
	// A non-nil error stops the walk and is returned wrapped.
	OnVisit func(v, depth int) error

	// MaxDepth bounds the hop depth of reached vertices; 0 means unbounded.
	MaxDepth int

	err error
}

// DefaultOptions is an unbounded walk under context.Background.
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:     context.Background(),
		OnVisit: func(int, int) error { return nil },
	}
}

// WithContext makes the walk stop with ctx.Err() once ctx is done.
// A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs the visit hook. A nil fn is ignored.
func WithOnVisit(fn func(v, depth int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops expanding at hop depth d. Zero lifts the bound and
// a negative d is an option violation.
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// BFSResult is one traversal: Order lists vertices as visited, Depth maps
// every reached vertex to its hop count and Parent holds the BFS tree
// (the start has no entry).
type BFSResult struct {
	Start  int
	Order  []int
	Depth  map[int]int
	Parent map[int]int
}

// PathTo reconstructs the fewest-hop path from the start vertex to dest.
// Returns an error if dest was not reached.
func (r *BFSResult) PathTo(dest int) ([]int, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("bfs: no path to %d", dest)
	}
	path := []int{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// Component is one connected component. Members are ascending, so
// Members[0] is the smallest sample index in the component.
type Component struct {
	ID      int
	Members []int
}

// Size returns the number of vertices in c.
func (c Component) Size() int { return len(c.Members) }
