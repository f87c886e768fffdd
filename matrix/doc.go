// Package matrix provides the dense feature matrix used between encoding
// and graph construction, together with the column statistics and vector
// distances those stages need.
//
// The matrix package provides:
//
//   - Dense, a row-major samples × features matrix of float64 values
//     stored in one flat slice for cache-friendly row scans.
//   - NormalizeColumnsMinMax, the in-place min-max rescaling that maps every
//     non-constant column onto [0, 1] and leaves constant columns untouched.
//   - Euclidean and RowDistance, the L2 distance between feature vectors.
//
// Zero-size matrices (0×N or N×0) are valid: they arise from datasets with
// a header but no rows, and every operation treats them as a no-op.
//
// All errors are package sentinels matched with errors.Is; no exported
// function panics on user-triggered conditions.
package matrix
