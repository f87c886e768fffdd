package report

import (
	"fmt"
	"io"
	"slices"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/katalvlaran/simgraph/bfs"
	"github.com/katalvlaran/simgraph/core"
	"github.com/katalvlaran/simgraph/dataset"
	"github.com/katalvlaran/simgraph/diameter"
	"github.com/katalvlaran/simgraph/dijkstra"
	"github.com/katalvlaran/simgraph/encoder"
	"github.com/katalvlaran/simgraph/mst"
)

// Reporter writes report sections for one dataset.
type Reporter struct {
	w         io.Writer
	data      *dataset.Table
	format    Format
	labelName string
	labelIdx  int
	hasLabel  bool
}

// New returns a Reporter writing to w about the rows of data.
func New(w io.Writer, data *dataset.Table, opts ...Option) *Reporter {
	r := &Reporter{w: w, data: data, format: FormatText, labelIdx: -1}
	for _, opt := range opts {
		opt(r)
	}
	if data != nil {
		r.labelIdx, r.hasLabel = data.LabelIndex(r.labelName)
	}

	return r
}

// HasLabel reports whether the configured label column exists.
func (r *Reporter) HasLabel() bool { return r.hasLabel }

// ClassDistribution counts rows per label value, sorted by label. Every
// row is counted; rows missing the label cell count under "".
func ClassDistribution(t *dataset.Table, labelIdx int) []ClassCount {
	if t == nil {
		return nil
	}
	counts := make(map[string]int)
	for i := 0; i < t.Len(); i++ {
		counts[t.Label(i, labelIdx)]++
	}
	out := make([]ClassCount, 0, len(counts))
	for label, n := range counts {
		out = append(out, ClassCount{Label: label, Count: n})
	}
	slices.SortFunc(out, func(a, b ClassCount) int {
		switch {
		case a.Label < b.Label:
			return -1
		case a.Label > b.Label:
			return 1
		default:
			return 0
		}
	})

	return out
}

// Summary writes the graph size and the encoded feature layout.
func (r *Reporter) Summary(g *core.Graph, enc *encoder.Encoded) error {
	st := g.Stats()
	if _, err := fmt.Fprintf(r.w, "Graph: %d nodes, %d edges\n\n", st.NodeCount, st.EdgeCount); err != nil {
		return err
	}

	title := "Summary"
	t := r.newTable()
	t.AppendHeader(table.Row{"Metric", "Value"})
	t.AppendRow(table.Row{"Samples", st.NodeCount})
	t.AppendRow(table.Row{"Edges", st.EdgeCount})
	t.AppendRow(table.Row{"Isolated samples", st.IsolatedCount})
	t.AppendRow(table.Row{"Max degree", st.MaxDegree})
	t.AppendRow(table.Row{"Mean degree", fmt.Sprintf("%.2f", st.MeanDegree)})
	if st.EdgeCount > 0 {
		t.AppendRow(table.Row{"Edge length", fmt.Sprintf("%.4f .. %.4f", st.MinWeight, st.MaxWeight)})
	}
	if enc != nil {
		t.AppendRow(table.Row{"Numeric columns", len(enc.Numeric)})
		t.AppendRow(table.Row{"Categorical columns", len(enc.Categorical)})
		t.AppendRow(table.Row{"Features", len(enc.Features)})
	}

	return r.render(title, t)
}

// Distances lists every vertex reachable from res.Source with its distance
// and, when a label column exists, its label.
func (r *Reporter) Distances(res *dijkstra.Result) error {
	title := fmt.Sprintf("Shortest paths from node %d", res.Source)
	t := r.newTable()
	header := table.Row{"Node", "Distance"}
	if r.hasLabel {
		header = append(header, r.labelName)
	}
	t.AppendHeader(header)

	reach := res.Reachable()
	for _, v := range reach {
		row := table.Row{v, fmt.Sprintf("%.2f", res.Dist[v])}
		if r.hasLabel {
			row = append(row, r.data.Label(v, r.labelIdx))
		}
		t.AppendRow(row)
	}
	t.AppendFooter(table.Row{"Reachable", len(reach)})

	return r.render(title, t)
}

// Layers writes how many samples sit at each hop depth around source;
// layers[d] counts depth d.
func (r *Reporter) Layers(source int, layers []int) error {
	title := fmt.Sprintf("Hop layers around node %d", source)
	t := r.newTable()
	t.AppendHeader(table.Row{"Hops", "Samples"})
	total := 0
	for d, n := range layers {
		t.AppendRow(table.Row{d, n})
		total += n
	}
	t.AppendFooter(table.Row{"Total", total})

	return r.render(title, t)
}

// Classes writes the class distribution. It writes nothing when the label
// column is missing.
func (r *Reporter) Classes() error {
	if !r.hasLabel {
		return nil
	}
	title := "Class distribution"
	t := r.newTable()
	t.AppendHeader(table.Row{r.labelName, "Count"})
	total := 0
	for _, c := range ClassDistribution(r.data, r.labelIdx) {
		t.AppendRow(table.Row{c.Label, c.Count})
		total += c.Count
	}
	t.AppendFooter(table.Row{"Total", total})

	return r.render(title, t)
}

// Diameter writes the estimate, the shortest path realizing it when known,
// and a field-by-field dump of both endpoint rows.
func (r *Reporter) Diameter(est diameter.Result, path []int) error {
	if _, err := fmt.Fprintf(r.w, "Max path length (graph diameter estimate): %.2f between nodes %d and %d (%d sources sampled)\n",
		est.MaxDistance, est.Source, est.Target, est.Sampled); err != nil {
		return err
	}
	if len(path) > 0 {
		if _, err := fmt.Fprintf(r.w, "Shortest path (%d hops): %v\n", len(path)-1, path); err != nil {
			return err
		}
	}
	if est.Sampled == 0 {
		return nil
	}
	if _, err := fmt.Fprintln(r.w); err != nil {
		return err
	}

	if err := r.Record(est.Source); err != nil {
		return err
	}
	if est.Target == est.Source {
		return nil
	}

	return r.Record(est.Target)
}

// Record dumps every header field of row i.
func (r *Reporter) Record(i int) error {
	title := fmt.Sprintf("Node %d data", i)
	t := r.newTable()
	t.AppendHeader(table.Row{"Field", "Value"})
	for j, h := range r.data.Header {
		t.AppendRow(table.Row{h, r.data.Cell(i, j)})
	}

	return r.render(title, t)
}

// Components summarizes connectivity: how many components there are and
// the largest few, so readers can see which pairs no path query can join.
func (r *Reporter) Components(comps []bfs.Component, limit int) error {
	title := fmt.Sprintf("Connected components: %d", len(comps))
	t := r.newTable()
	t.AppendHeader(table.Row{"Component", "Size", "Smallest node"})

	sorted := slices.Clone(comps)
	slices.SortStableFunc(sorted, func(a, b bfs.Component) int { return b.Size() - a.Size() })
	if limit > 0 && len(sorted) > limit {
		sorted = sorted[:limit]
	}
	for _, c := range sorted {
		first := -1
		if c.Size() > 0 {
			first = c.Members[0]
		}
		t.AppendRow(table.Row{c.ID, c.Size(), first})
	}
	if big, ok := bfs.Largest(comps); ok {
		share := 100 * float64(big.Size()) / float64(sampleCount(comps))
		t.AppendFooter(table.Row{"Largest", big.Size(), fmt.Sprintf("%.1f%% of samples", share)})
	}

	return r.render(title, t)
}

// Spanning summarizes the minimum spanning forest. The bottleneck edge is
// the smallest threshold that keeps the same components.
func (r *Reporter) Spanning(f *mst.Forest, threshold float64) error {
	title := "Minimum spanning forest"
	t := r.newTable()
	t.AppendHeader(table.Row{"Metric", "Value"})
	t.AppendRow(table.Row{"Trees", f.Trees})
	t.AppendRow(table.Row{"Edges", len(f.Edges)})
	t.AppendRow(table.Row{"Total weight", fmt.Sprintf("%.4f", f.TotalWeight)})
	if b, ok := f.Bottleneck(); ok {
		t.AppendRow(table.Row{"Bottleneck edge", fmt.Sprintf("%d—%d (%.4f)", b.From, b.To, b.Weight)})
		t.AppendRow(table.Row{"Threshold slack", fmt.Sprintf("%.4f", threshold-b.Weight)})
	}

	return r.render(title, t)
}

// SourceTree summarizes the minimum spanning tree of source's component.
func (r *Reporter) SourceTree(source int, tree *mst.Forest) error {
	title := fmt.Sprintf("Spanning tree of node %d", source)
	t := r.newTable()
	t.AppendHeader(table.Row{"Metric", "Value"})
	t.AppendRow(table.Row{"Samples", len(tree.Edges) + 1})
	t.AppendRow(table.Row{"Total weight", fmt.Sprintf("%.4f", tree.TotalWeight)})
	if b, ok := tree.Bottleneck(); ok {
		t.AppendRow(table.Row{"Bottleneck edge", fmt.Sprintf("%d—%d (%.4f)", b.From, b.To, b.Weight)})
	}

	return r.render(title, t)
}

// sampleCount is the number of vertices covered by comps.
func sampleCount(comps []bfs.Component) int {
	n := 0
	for _, c := range comps {
		n += c.Size()
	}

	return n
}

func (r *Reporter) newTable() table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)

	return t
}

// render writes t in the configured format followed by a blank line.
// Markdown tables carry no title row, so the title becomes a heading.
func (r *Reporter) render(title string, t table.Writer) error {
	var out string
	if r.format == FormatMarkdown {
		out = "### " + title + "\n\n" + t.RenderMarkdown()
	} else {
		t.SetTitle(title)
		out = t.Render()
	}
	_, err := io.WriteString(r.w, out+"\n\n")

	return err
}
