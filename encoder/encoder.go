package encoder

import (
	"fmt"
	"math"
	"slices"
	"strconv"

	"github.com/katalvlaran/simgraph/dataset"
	"github.com/katalvlaran/simgraph/matrix"
)

// Encode builds the normalized feature matrix for the selected columns of t.
// The CategoryMap is derived from t itself, so every categorical cell
// lands in its block.
//
// Complexity: O(rows × |selection|) for classification and population,
// plus O(k log k) per categorical column to order its k values.
func Encode(t *dataset.Table, sel dataset.Selection) (*Encoded, error) {
	if t == nil {
		return nil, ErrNilTable
	}
	if err := validateSelection(t, sel); err != nil {
		return nil, err
	}

	numeric, categorical := Classify(t, sel)

	return encode(t, numeric, categorical, Categories(t, categorical))
}

// EncodeWith encodes t against a CategoryMap built elsewhere (for example
// from a reference table). Columns are classified from the map: a selected
// column is categorical iff categories has an entry for it. Cells whose
// value is not in the map produce an all-zero block.
func EncodeWith(t *dataset.Table, sel dataset.Selection, categories CategoryMap) (*Encoded, error) {
	if t == nil {
		return nil, ErrNilTable
	}
	if err := validateSelection(t, sel); err != nil {
		return nil, err
	}

	var numeric, categorical []int
	for _, col := range sel {
		if _, ok := categories[col]; ok {
			categorical = append(categorical, col)
		} else {
			numeric = append(numeric, col)
		}
	}
	own := make(CategoryMap, len(categorical))
	for _, col := range categorical {
		own[col] = slices.Clone(categories[col])
	}

	return encode(t, numeric, categorical, own)
}

// Classify splits sel into numeric and categorical columns, both in
// selection order. A column is categorical if any row's cell fails to
// parse as a finite number.
func Classify(t *dataset.Table, sel dataset.Selection) (numeric, categorical []int) {
	for _, col := range sel {
		isNumeric := true
		for i := range t.Rows {
			if _, ok := parseFinite(t.Cell(i, col)); !ok {
				isNumeric = false
				break
			}
		}
		if isNumeric {
			numeric = append(numeric, col)
		} else {
			categorical = append(categorical, col)
		}
	}

	return numeric, categorical
}

// Categories collects the sorted distinct values of each listed column.
// Missing cells contribute "".
func Categories(t *dataset.Table, columns []int) CategoryMap {
	cm := make(CategoryMap, len(columns))
	for _, col := range columns {
		seen := make(map[string]struct{})
		for i := range t.Rows {
			seen[t.Cell(i, col)] = struct{}{}
		}
		vals := make([]string, 0, len(seen))
		for v := range seen {
			vals = append(vals, v)
		}
		slices.Sort(vals)
		cm[col] = vals
	}

	return cm
}

func encode(t *dataset.Table, numeric, categorical []int, categories CategoryMap) (*Encoded, error) {
	// Layout: numeric block, then one-hot blocks.
	width := len(numeric)
	for _, col := range categorical {
		width += len(categories[col])
	}
	m, err := matrix.NewDense(t.Len(), width)
	if err != nil {
		return nil, fmt.Errorf("encoder: allocating %dx%d matrix: %w", t.Len(), width, err)
	}

	features := make([]string, 0, width)
	for _, col := range numeric {
		features = append(features, t.Header[col])
	}
	// offsets[k] is the first matrix column of categorical[k]'s block;
	// index[k] maps a value to its position inside that block.
	offsets := make([]int, len(categorical))
	index := make([]map[string]int, len(categorical))
	next := len(numeric)
	for k, col := range categorical {
		offsets[k] = next
		index[k] = make(map[string]int, len(categories[col]))
		for p, v := range categories[col] {
			index[k][v] = p
			features = append(features, t.Header[col]+"="+v)
		}
		next += len(categories[col])
	}

	// Populate row by row.
	for i := range t.Rows {
		for j, col := range numeric {
			v, _ := parseFinite(t.Cell(i, col)) // 0.0 on failure
			if err = m.Set(i, j, v); err != nil {
				return nil, fmt.Errorf("encoder: %w", err)
			}
		}
		for k, col := range categorical {
			p, ok := index[k][t.Cell(i, col)]
			if !ok {
				continue // unseen value: all-zero block
			}
			if err = m.Set(i, offsets[k]+p, 1); err != nil {
				return nil, fmt.Errorf("encoder: %w", err)
			}
		}
	}

	ranges, err := matrix.NormalizeColumnsMinMax(m)
	if err != nil {
		return nil, fmt.Errorf("encoder: %w", err)
	}

	return &Encoded{
		Matrix:      m,
		Numeric:     numeric,
		Categorical: categorical,
		Categories:  categories,
		Features:    features,
		Ranges:      ranges,
	}, nil
}

// parseFinite parses s as a float64, rejecting NaN and ±Inf.
func parseFinite(s string) (float64, bool) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}

	return v, true
}

func validateSelection(t *dataset.Table, sel dataset.Selection) error {
	if len(sel) == 0 {
		return fmt.Errorf("%w: empty selection", dataset.ErrInvalidSchema)
	}
	for _, col := range sel {
		if col < 0 || col >= len(t.Header) {
			return fmt.Errorf("%w: column index %d outside [0, %d)", dataset.ErrInvalidSchema, col, len(t.Header))
		}
	}

	return nil
}
