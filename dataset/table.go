package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
)

// Table is a loaded dataset: an ordered header and rows of string cells.
// Tables are read once and never mutated afterwards.
type Table struct {
	Header []string
	Rows   [][]string
}

// LoadOptions configures Load.
type LoadOptions struct {
	// Delimiter separates fields; defaults to ','.
	Delimiter rune
}

// LoadOption is a functional option for Load and LoadFile.
type LoadOption func(*LoadOptions)

// WithDelimiter sets the field delimiter. Zero keeps the default.
func WithDelimiter(r rune) LoadOption {
	return func(o *LoadOptions) {
		if r != 0 {
			o.Delimiter = r
		}
	}
}

// DefaultLoadOptions returns comma-separated loading.
func DefaultLoadOptions() LoadOptions {
	return LoadOptions{Delimiter: ','}
}

// LoadFile opens path and loads it with Load.
func LoadFile(path string, opts ...LoadOption) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadFailure, err)
	}
	defer f.Close()

	t, err := Load(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return t, nil
}

// Load reads a header row followed by data rows from r.
// Every data row must have exactly as many fields as the header.
func Load(r io.Reader, opts ...LoadOption) (*Table, error) {
	o := DefaultLoadOptions()
	for _, opt := range opts {
		opt(&o)
	}

	reader := csv.NewReader(r)
	reader.Comma = o.Delimiter
	reader.FieldsPerRecord = 0 // header fixes the width

	// First line is expected to be a header
	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: missing header row", ErrLoadFailure)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: reading header: %w", ErrLoadFailure, err)
	}

	t := &Table{Header: header}
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: reading row %d: %w", ErrLoadFailure, len(t.Rows)+1, err)
		}
		t.Rows = append(t.Rows, record)
	}

	return t, nil
}

// Len returns the number of data rows.
func (t *Table) Len() int { return len(t.Rows) }

// Cell returns row i, column j, or "" when the row is shorter than the
// header. Out-of-range rows also read as "".
func (t *Table) Cell(i, j int) string {
	if i < 0 || i >= len(t.Rows) {
		return ""
	}
	row := t.Rows[i]
	if j < 0 || j >= len(row) {
		return ""
	}

	return row[j]
}

// ColumnIndex returns the position of the first header equal to name.
func (t *Table) ColumnIndex(name string) (int, bool) {
	for i, h := range t.Header {
		if h == name {
			return i, true
		}
	}

	return -1, false
}

// LabelIndex looks the label column up by exact name. An empty name never matches.
func (t *Table) LabelIndex(name string) (int, bool) {
	if name == "" {
		return -1, false
	}

	return t.ColumnIndex(name)
}

// Label returns row i's value in the label column, or "" if it has none.
func (t *Table) Label(i, labelIdx int) string {
	return t.Cell(i, labelIdx)
}
