package mst

import (
	"slices"

	"github.com/katalvlaran/simgraph/core"
)

// Kruskal computes the minimum spanning forest of g.
//
// Steps:
//  1. Validate g; an empty graph yields an empty forest.
//  2. Sort a copy of the edge catalog by (Weight, ID).
//  3. Accept every edge joining two different union-find sets.
//
// A disconnected graph is not an error: Trees counts the components.
//
// Complexity: O(E log E + α(V)·E). Memory: O(E + V).
func Kruskal(g *core.Graph) (*Forest, error) {
	// 1) Validate
	if g == nil {
		return nil, ErrNilGraph
	}
	n := g.NodeCount()

	// 2) Sort edges; stable on ID for equal weights.
	edges := g.Edges()
	slices.SortStableFunc(edges, func(a, b core.Edge) int {
		switch {
		case a.Weight < b.Weight:
			return -1
		case a.Weight > b.Weight:
			return 1
		default:
			return a.ID - b.ID
		}
	})

	// 3) Union-find with path halving and union by rank.
	parent := make([]int, n)
	rank := make([]int, n)
	for v := range parent {
		parent[v] = v
	}
	find := func(u int) int {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}

		return u
	}

	f := &Forest{Trees: n}
	for _, e := range edges {
		ru, rv := find(e.From), find(e.To)
		if ru == rv {
			continue
		}
		if rank[ru] < rank[rv] {
			ru, rv = rv, ru
		}
		parent[rv] = ru
		if rank[ru] == rank[rv] {
			rank[ru]++
		}
		f.Edges = append(f.Edges, e)
		f.TotalWeight += e.Weight
		f.Trees--
		if f.Trees == 1 {
			break
		}
	}

	return f, nil
}
