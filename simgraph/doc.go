// Package simgraph builds the undirected similarity graph over the rows of
// a normalized feature matrix.
//
// Vertex i is matrix row i. An edge {i, j} with weight d(i, j) exists iff
// i != j and the Euclidean distance d(i, j) <= Threshold (default 0.5 in
// the [0,1]-per-feature space produced by the encoder).
//
// Complexity:
//
//   - Time:  O(n² · f) for n rows and f features; every unordered pair is
//     compared exactly once. This is the dominant cost of a run.
//   - Space: O(n + E).
//
// Parallelism:
//
//	Rows are split into interleaved stripes, one per worker (worker w scans
//	rows i ≡ w mod W against every j > i). Interleaving balances the
//	triangular workload. Each worker owns its own edge buffer; a single
//	reduce sorts by (i, j) and inserts into core.Graph, so the result is
//	identical for any worker count.
package simgraph
