package report

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors returned by the report package.
var (
	// ErrUnknownFormat is returned by ParseFormat for unsupported names.
	ErrUnknownFormat = errors.New("report: unknown output format")

	// ErrNoData is returned when there is nothing to plot.
	ErrNoData = errors.New("report: no data to render")
)

// Format selects how tables are rendered.
type Format string

const (
	// FormatText renders boxed tables with light borders.
	FormatText Format = "text"

	// FormatMarkdown renders GitHub-flavored Markdown tables.
	FormatMarkdown Format = "markdown"
)

// ParseFormat maps "text", "markdown" or "md" (any case) to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text", "table":
		return FormatText, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// ClassCount is the number of rows carrying one label value.
type ClassCount struct {
	Label string
	Count int
}

// Option configures a Reporter.
type Option func(*Reporter)

// WithFormat selects the table format. Default FormatText.
func WithFormat(f Format) Option {
	return func(r *Reporter) {
		if f != "" {
			r.format = f
		}
	}
}

// WithLabelColumn names the label column. When the table has no column of
// that name, label-dependent sections are omitted.
func WithLabelColumn(name string) Option {
	return func(r *Reporter) {
		r.labelName = name
	}
}
