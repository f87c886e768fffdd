// Package diameter approximates the weighted diameter of a similarity graph.
//
// The estimate runs a full single-source shortest-path sweep from a fixed
// prefix of sources (vertices 0..k-1, k = min(SampleSize, NodeCount)) and
// keeps the longest finite distance seen. Pairs in different components
// never contribute, so on a disconnected graph the value is the largest
// within-component distance reachable from the sampled sources.
//
// Sweeps are independent and run concurrently; their per-source maxima are
// merged in ascending source order so the answer never depends on the
// worker count or on goroutine scheduling.
//
// Tie-break: the first maximum wins, scanning sources in ascending order and
// targets in ascending vertex order within a source.
//
//	res, err := diameter.Estimate(ctx, g, diameter.WithSampleSize(100))
//	if err != nil { … }
//	fmt.Println(res.MaxDistance, res.Source, res.Target)
package diameter
