// Package simgraph turns tabular samples into a similarity graph and
// analyzes its shortest-path structure.
//
// What is in the box?
//
//	A batch pipeline, each stage a small package with a pure API:
//		• dataset/   delimited-file loading, label lookup, column selection
//		• encoder/   numeric vs categorical detection, sorted one-hot, min-max scaling
//		• matrix/    row-major Dense matrix, column ranges, Euclidean distance
//		• simgraph/  threshold graph over all row pairs, built by parallel workers
//		• core/      undirected float-weighted graph keyed by sample index
//		• dijkstra/  single-source distances over reachable samples only
//		• diameter/  fixed-prefix diameter estimate with a reproducible tie-break
//		• mst/       minimum spanning forest and its bottleneck edge
//		• bfs/       hop-count traversal and connected components
//		• report/    go-pretty tables, class distribution, gonum/plot histogram
//
// The command in cmd/simgraph wires the stages together through
// internal/pipeline and reads its settings through internal/config.
//
// Quick ASCII example (threshold 1.8 over four encoded rows):
//
//	0──√3──1
//	│      │
//	1      1
//	│      │
//	2──√3──3
//
// The diameter estimate is 1+√3 between samples 0 and 3.
//
//	go install github.com/katalvlaran/simgraph/cmd/simgraph@latest
package simgraph
