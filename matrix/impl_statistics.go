// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide per-column statistics and the min-max normalization used to
//     bring every feature onto a common [0, 1] scale before distances are taken.
//
// Exposed API:
//   - ColumnRanges(X)           -> ([]Range, error)   // per-column min/max
//   - NormalizeColumnsMinMax(X) -> ([]Range, error)   // in place; constant columns unchanged
//
// Determinism & Performance:
//   - Fixed i→j traversal over the row-major flat buffer.
//   - Zero-size matrices are strict no-ops.

package matrix

// Operation name constants for unified error wrapping.
const (
	opColumnRanges           = "ColumnRanges"
	opNormalizeColumnsMinMax = "NormalizeColumnsMinMax"
)

// Range holds the observed minimum and maximum of one column.
type Range struct {
	Min float64
	Max float64
}

// Constant reports whether every value in the column was equal.
func (r Range) Constant() bool { return !(r.Max > r.Min) }

// ColumnRanges returns the min and max of every column.
//
// Implementation:
//   - Stage 1: Validate X (non-nil).
//   - Stage 2: Seed each range with row 0, then fold rows 1..r-1.
//
// Behavior highlights:
//   - 0-row matrices return c zero ranges.
//
// Complexity:
//   - Time O(r*c), Space O(c).
func ColumnRanges(X *Dense) ([]Range, error) {
	// Stage 1 (Validate)
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opColumnRanges, err)
	}

	r, c := X.r, X.c
	ranges := make([]Range, c)
	if r == 0 || c == 0 {
		return ranges, nil
	}

	// Stage 2 (Execute): seed with first row
	var i, j int
	var v float64
	for j = 0; j < c; j++ {
		ranges[j] = Range{Min: X.data[j], Max: X.data[j]}
	}
	for i = 1; i < r; i++ {
		base := i * c
		for j = 0; j < c; j++ {
			v = X.data[base+j]
			if v < ranges[j].Min {
				ranges[j].Min = v
			}
			if v > ranges[j].Max {
				ranges[j].Max = v
			}
		}
	}

	return ranges, nil
}

// NormalizeColumnsMinMax rescales each column in place to x' = (x-min)/(max-min).
//
// Implementation:
//   - Stage 1: Validate X and require finite values (ErrNaNInf).
//   - Stage 2: Compute column ranges over the complete matrix.
//   - Stage 3: Rescale every column whose max > min; constant columns are left as-is.
//
// Behavior highlights:
//   - After the call, every non-constant column has min 0 and max 1 exactly:
//     the minimum maps to (min-min)/span = 0 and the maximum to span/span = 1.
//   - Requires the whole matrix to be materialized (ranges depend on every row).
//
// Returns:
//   - []Range: the pre-normalization ranges, one per column.
//
// Complexity:
//   - Time O(r*c), Space O(c).
func NormalizeColumnsMinMax(X *Dense) ([]Range, error) {
	// Stage 1 (Validate)
	if err := ValidateFinite(X); err != nil {
		return nil, matrixErrorf(opNormalizeColumnsMinMax, err)
	}

	// Stage 2 (Prepare)
	ranges, err := ColumnRanges(X)
	if err != nil {
		return nil, matrixErrorf(opNormalizeColumnsMinMax, err)
	}

	// Stage 3 (Execute): divide by the span rather than multiply by its
	// reciprocal so that the column maximum lands on exactly 1.0.
	r, c := X.r, X.c
	span := make([]float64, c)
	var i, j int
	for j = 0; j < c; j++ {
		if !ranges[j].Constant() {
			span[j] = ranges[j].Max - ranges[j].Min
		}
	}
	for i = 0; i < r; i++ {
		base := i * c
		for j = 0; j < c; j++ {
			if span[j] == 0 { // constant column
				continue
			}
			X.data[base+j] = (X.data[base+j] - ranges[j].Min) / span[j]
		}
	}

	return ranges, nil
}
