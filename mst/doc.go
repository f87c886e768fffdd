// Package mst computes minimum spanning forests of a similarity graph.
//
// A spanning forest keeps, for every connected component, the cheapest set
// of edges that still connects it. Over a similarity graph this answers a
// practical question: the heaviest forest edge (the bottleneck) is the
// smallest threshold at which the graph would keep exactly the same
// components, so it tells how much slack the chosen threshold has.
//
// Two algorithms are provided:
//
//	Kruskal(g):     whole-graph forest via sorted edges and union-find.
//	Prim(g, root):  tree of root's component grown with a min-heap.
//
// Both are deterministic: equal weights are broken by edge ID, which for a
// built similarity graph follows ascending (From, To).
package mst
