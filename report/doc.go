// Package report renders the results of a similarity-graph analysis as
// human-readable tables.
//
// The Reporter is read-only over its inputs: it consumes the loaded table,
// the encoded feature layout, the graph, distance tables, the diameter
// estimate and the component summary, and writes text to an io.Writer.
// Tables are rendered with go-pretty in either a boxed text style or as
// Markdown.
//
// Sections that depend on a label column (the label column of the distance
// listing and the class distribution) are left out when the table has no
// such column; nothing else changes.
//
// WriteHistogram additionally renders the distance distribution of one
// source as a PNG with gonum/plot.
package report
