// File: methods_vertices.go
// Role: Vertex queries and neighborhoods.
//
// Determinism:
//   - Neighbors(v) returns incident edges in insertion (Edge.ID) order.
//
// Concurrency:
//   - Adjacency reads under mu read lock; NodeCount needs no lock (immutable).

package core

// NodeCount returns |V|. The vertex set never changes after NewGraph.
// Complexity: O(1).
func (g *Graph) NodeCount() int {
	return g.n
}

// HasNode reports whether v is a vertex of g, i.e. 0 <= v < NodeCount().
// Complexity: O(1).
func (g *Graph) HasNode(v int) bool {
	return v >= 0 && v < g.n
}

// Neighbors returns the edges incident to v, each re-oriented so that
// From == v and To is the neighbor.
//
// Implementation:
//   - Stage 1: Validate v (ErrVertexNotFound).
//   - Stage 2: Under read lock, copy each incident catalog edge, flipping
//     endpoints when v is the catalog's To side.
//
// Returns copies; mutating them does not affect the graph.
//
// Complexity:
//   - Time O(deg(v)), Space O(deg(v)).
func (g *Graph) Neighbors(v int) ([]Edge, error) {
	// Stage 1: Validate
	if !g.HasNode(v) {
		return nil, ErrVertexNotFound
	}

	// Stage 2: Collect under read lock
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := g.adjacency[v]
	out := make([]Edge, len(ids))
	var e Edge
	for i, eid := range ids {
		e = g.edges[eid]
		if e.From != v { // stored as (lo, hi); flip so From is the caller's vertex
			e.From, e.To = e.To, e.From
		}
		out[i] = e
	}

	return out, nil
}

// NeighborIDs returns the vertices adjacent to v in insertion order.
// Complexity: O(deg(v)).
func (g *Graph) NeighborIDs(v int) ([]int, error) {
	edges, err := g.Neighbors(v)
	if err != nil {
		return nil, err
	}
	ids := make([]int, len(edges))
	for i, e := range edges {
		ids[i] = e.To
	}

	return ids, nil
}

// Degree returns the number of edges incident to v.
// Complexity: O(1).
func (g *Graph) Degree(v int) (int, error) {
	if !g.HasNode(v) {
		return 0, ErrVertexNotFound
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency[v]), nil
}
