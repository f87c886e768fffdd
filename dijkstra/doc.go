// Package dijkstra implements single-source shortest paths over the
// similarity graph (core.Graph), whose edge weights are non-negative
// Euclidean distances.
//
// Overview:
//
//   - Dijkstra computes the minimum-cost distance from a source vertex to
//     every vertex reachable from it in O((V + E) log V) time.
//   - It relies on a min-heap (priority queue) with lazy decrease-key: a
//     shorter distance pushes a new heap entry, stale entries are skipped.
//   - The returned distance table holds reachable vertices only; an absent
//     vertex is unreachable (there are no +Inf entries).
//
// Key features:
//
//   - Functional options without changing the API signature.
//   - WithReturnPath(): also return predecessors, so Result.PathTo can
//     rebuild any shortest path.
//   - WithMaxDistance(x): stop exploring beyond distance x.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph:       the graph pointer is nil.
//   - ErrInvalidNode:    the source is outside [0, NodeCount).
//   - ErrNegativeWeight: an edge with negative weight was found (O(E) pre-scan).
//   - ErrOptionViolation: an option received an invalid argument.
//
// Thread safety:
//
//   - Dijkstra only reads the graph; any number of runs may share one
//     core.Graph concurrently (the diameter sweep relies on this).
package dijkstra
