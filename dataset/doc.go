// Package dataset loads delimited tabular text into an immutable Table
// (ordered header plus ordered string rows) and resolves the column
// selection that feeds feature encoding.
//
// Overview:
//
//   - Load / LoadFile read a header row and every data row. Any I/O or
//     format problem (unreadable source, ragged rows, missing header) is a
//     load failure: ErrLoadFailure, wrapped with the cause.
//   - Table.LabelIndex finds the label column by exact header name; a
//     missing label disables label-dependent reporting, never the run.
//   - ParseMode turns the user's choice into a Mode, defaulting to ModeAll
//     on anything it does not recognize.
//   - Resolve maps a Mode onto concrete header indices. ModeAll is every
//     column except the last; ModeEating and ModePhysical come from
//     configurable Subsets, named by column (preferred) or by index.
//     Selections that fall outside the header fail with ErrInvalidSchema.
//
// Errors (sentinel):
//
//   - ErrLoadFailure   source unreadable, malformed, or missing a header row.
//   - ErrInvalidSchema selection resolves to columns the header does not have.
package dataset
