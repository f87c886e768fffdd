// Package core provides the in-memory similarity graph shared by every
// analysis stage: an undirected, float-weighted graph whose vertices are
// the sample indices 0..n-1 of a feature matrix.
//
// The Graph G = (V,E) is deliberately narrow:
//
//   - V is fixed at construction (NewGraph(n)); vertex i is sample row i.
//   - E holds undirected edges with non-negative, finite float64 weights.
//   - Self-loops and parallel edges are rejected (ErrLoopNotAllowed,
//     ErrMultiEdgeNotAllowed), so every unordered pair carries at most one edge.
//   - Edge IDs are dense and assigned in insertion order (0, 1, 2, …).
//
// Determinism:
//
//	– Edges() returns edges sorted by Edge.ID ascending (insertion order).
//	– Neighbors(v) returns incident edges in insertion order, each oriented
//	  so that From == v.
//
// Concurrency:
//
//	A single sync.RWMutex guards the edge catalog and adjacency. Builders
//	mutate the graph from one goroutine and then hand it off; readers
//	(Dijkstra sweeps, BFS, reporting) may run concurrently afterwards.
//
// Core Methods:
//
//	NewGraph(n int) (*Graph, error)                        // O(n)
//	AddEdge(from, to int, weight float64) (int, error)     // O(1) amortized
//	HasEdge(u, v int) bool                                 // O(1)
//	Weight(u, v int) (float64, bool)                       // O(1)
//	Neighbors(v int) ([]Edge, error)                       // O(deg(v))
//	Degree(v int) (int, error)                             // O(1)
//	Edges() []Edge                                         // O(E)
//	NodeCount(), EdgeCount() int                           // O(1)
//	Stats() GraphStats                                     // O(V+E)
package core
