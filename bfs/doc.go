// Package bfs provides breadth-first search and connected-component
// labelling over a core.Graph.
//
// BFS ignores edge weights: it measures hop counts between samples, which
// the report uses to show how many samples sit at each hop around the
// source. Components partitions the vertex set so callers can tell
// which pairs no shortest-path query can ever connect.
//
// Traversal order is deterministic: neighbors are expanded in the order the
// graph stores them, which for a similarity graph is ascending by the pair
// ordering the builder inserted.
//
//	res, err := bfs.BFS(g, 0, bfs.WithMaxDepth(3))
//	comps := bfs.Components(g)
package bfs
