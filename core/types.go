// SPDX-License-Identifier: MIT
// Package core defines the central Graph and Edge types, the sentinel
// errors, and the NewGraph constructor.
//
// Errors:
//
//	ErrBadOrder            - negative vertex count passed to NewGraph.
//	ErrVertexNotFound      - vertex index outside [0, NodeCount).
//	ErrBadWeight           - negative, NaN or infinite edge weight.
//	ErrLoopNotAllowed      - edge from a vertex to itself.
//	ErrMultiEdgeNotAllowed - second edge between the same pair.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrBadOrder indicates that NewGraph was asked for a negative vertex count.
	ErrBadOrder = errors.New("core: vertex count must be non-negative")

	// ErrVertexNotFound indicates an operation referenced a vertex outside [0, NodeCount).
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrBadWeight indicates a negative, NaN or infinite edge weight.
	ErrBadWeight = errors.New("core: edge weight must be finite and non-negative")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Edge is an undirected connection between two sample vertices.
//
// Edges stored in the catalog are normalized so that From < To.
// Neighbors(v) returns copies re-oriented so that From == v.
type Edge struct {
	// ID is the dense insertion index of this edge.
	ID int

	// From and To are the endpoint vertex indices.
	From int
	To   int

	// Weight is the Euclidean distance between the two feature rows.
	Weight float64
}

// pairKey identifies an unordered vertex pair (lo < hi).
type pairKey struct {
	lo, hi int
}

// Graph is an undirected weighted graph over the vertices 0..n-1.
//
// mu protects edges, adjacency and pairs. n is immutable after NewGraph.
type Graph struct {
	mu sync.RWMutex

	n int // number of vertices

	edges     []Edge          // edge ID → Edge (From < To)
	adjacency [][]int         // vertex → incident edge IDs, insertion order
	pairs     map[pairKey]int // unordered pair → edge ID
}

// NewGraph creates a graph with n isolated vertices 0..n-1.
// Complexity: O(n).
func NewGraph(n int) (*Graph, error) {
	if n < 0 {
		return nil, ErrBadOrder
	}

	return &Graph{
		n:         n,
		edges:     make([]Edge, 0),
		adjacency: make([][]int, n),
		pairs:     make(map[pairKey]int),
	}, nil
}

// GraphStats is a read-only snapshot of graph size and weight range.
type GraphStats struct {
	NodeCount     int     // |V|
	EdgeCount     int     // |E|
	IsolatedCount int     // vertices with degree 0
	MaxDegree     int     // largest vertex degree
	MeanDegree    float64 // 2|E| / |V|, 0 for the empty graph
	MinWeight     float64 // smallest edge weight, 0 when |E| == 0
	MaxWeight     float64 // largest edge weight, 0 when |E| == 0
}
