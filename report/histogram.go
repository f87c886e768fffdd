package report

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/simgraph/dijkstra"
)

// histogramBins is the bar count of the distance histogram.
const histogramBins = 20

// DistanceValues returns the distances of every vertex reachable from the
// source except the source itself, in ascending vertex order.
func DistanceValues(res *dijkstra.Result) plotter.Values {
	reach := res.Reachable()
	vals := make(plotter.Values, 0, len(reach))
	for _, v := range reach {
		if v == res.Source {
			continue
		}
		vals = append(vals, res.Dist[v])
	}

	return vals
}

// WriteHistogram renders the shortest-path distance distribution of res as
// an image at path; the format follows the file extension (.png, .svg, ...).
// Returns ErrNoData when the source reaches no other vertex.
func WriteHistogram(path string, res *dijkstra.Result) error {
	vals := DistanceValues(res)
	if len(vals) == 0 {
		return fmt.Errorf("%w: node %d reaches no other node", ErrNoData, res.Source)
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Shortest-path distances from node %d", res.Source)
	p.X.Label.Text = "distance"
	p.Y.Label.Text = "nodes"

	h, err := plotter.NewHist(vals, histogramBins)
	if err != nil {
		return fmt.Errorf("report: histogram: %w", err)
	}
	p.Add(h)
	p.Add(plotter.NewGrid())

	if err := p.Save(8*vg.Inch, 5*vg.Inch, path); err != nil {
		return fmt.Errorf("report: save %s: %w", path, err)
	}

	return nil
}
