// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/HasEdge/Weight/Edges/EdgeCount.
// Determinism:
//   - Edge IDs are dense and monotonic (0, 1, 2, …).
//   - Edges() returns edges sorted by Edge.ID asc.
// Concurrency:
//   - Mutations under mu write lock; queries under mu read lock.

package core

import "math"

// AddEdge inserts the undirected edge {from, to} with the given weight and
// returns its ID.
//
// Steps:
//  1. Validate endpoints (ErrVertexNotFound), loops, and weight.
//  2. Lock mu, reject an existing pair (ErrMultiEdgeNotAllowed).
//  3. Append to the catalog with From < To and link both adjacency lists.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to int, weight float64) (int, error) {
	// 1) Input validation
	if !g.HasNode(from) || !g.HasNode(to) {
		return 0, ErrVertexNotFound
	}
	if from == to {
		return 0, ErrLoopNotAllowed
	}
	if weight < 0 || math.IsNaN(weight) || math.IsInf(weight, 0) {
		return 0, ErrBadWeight
	}

	// Normalize orientation so the catalog is symmetric-free.
	key := pairKey{lo: min(from, to), hi: max(from, to)}

	// 2) Insert under lock
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.pairs[key]; exists {
		return 0, ErrMultiEdgeNotAllowed
	}

	// 3) Store and link adjacency
	eid := len(g.edges)
	g.edges = append(g.edges, Edge{ID: eid, From: key.lo, To: key.hi, Weight: weight})
	g.pairs[key] = eid
	g.adjacency[key.lo] = append(g.adjacency[key.lo], eid)
	g.adjacency[key.hi] = append(g.adjacency[key.hi], eid)

	return eid, nil
}

// HasEdge reports whether the undirected edge {u, v} exists.
// Complexity: O(1).
func (g *Graph) HasEdge(u, v int) bool {
	_, ok := g.Weight(u, v)

	return ok
}

// Weight returns the weight of edge {u, v} and whether it exists.
// Complexity: O(1).
func (g *Graph) Weight(u, v int) (float64, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	eid, ok := g.pairs[pairKey{lo: min(u, v), hi: max(u, v)}]
	if !ok {
		return 0, false
	}

	return g.edges[eid].Weight, true
}

// Edges returns a copy of the edge catalog sorted by ID ascending.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// EdgeCount returns |E|.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}
