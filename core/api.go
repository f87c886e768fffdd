// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only diagnostics over a built graph.

package core

// Stats produces a deterministic, read-only snapshot of the graph's size,
// degree profile and weight range.
//
// Implementation:
//   - Stage 1: Under read lock, scan adjacency for degree counters.
//   - Stage 2: Scan the edge catalog for the weight range.
//
// Complexity:
//   - Time O(V+E), Space O(1) plus the returned struct.
func (g *Graph) Stats() GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	stats := GraphStats{
		NodeCount: g.n,
		EdgeCount: len(g.edges),
	}

	// Stage 1: degree profile
	var deg int
	for _, ids := range g.adjacency {
		deg = len(ids)
		if deg == 0 {
			stats.IsolatedCount++
		}
		if deg > stats.MaxDegree {
			stats.MaxDegree = deg
		}
	}
	if g.n > 0 {
		stats.MeanDegree = 2 * float64(len(g.edges)) / float64(g.n)
	}

	// Stage 2: weight range
	for i, e := range g.edges {
		if i == 0 || e.Weight < stats.MinWeight {
			stats.MinWeight = e.Weight
		}
		if e.Weight > stats.MaxWeight {
			stats.MaxWeight = e.Weight
		}
	}

	return stats
}
