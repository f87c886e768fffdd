// Package encoder turns the string cells of a dataset.Table into a
// normalized numeric feature matrix.
//
// Encoding runs in fixed stages over the complete table:
//
//  1. Classify each selected column: numeric iff every cell parses as a
//     finite float64; one failure anywhere makes the whole column categorical.
//  2. Collect each categorical column's distinct values (missing cells are
//     ""), sorted lexicographically so one-hot order never depends on map
//     iteration.
//  3. Lay out the matrix: numeric columns in selection order, then one
//     one-hot block per categorical column in selection order.
//  4. Populate: numeric cells that fail to parse become 0.0; categorical
//     cells set exactly one 1.0 in their block, or none when the value is
//     absent from the CategoryMap.
//  5. Min-max normalize every column (matrix.NormalizeColumnsMinMax).
//
// The coercions in step 4 are policy, not error paths: one malformed cell
// must not abort a batch run.
package encoder
