package dataset

import "errors"

// Sentinel errors returned by the dataset package.
var (
	// ErrLoadFailure indicates the source could not be read as a table.
	ErrLoadFailure = errors.New("dataset: load failure")

	// ErrInvalidSchema indicates that a column selection does not fit the header.
	ErrInvalidSchema = errors.New("dataset: invalid schema")
)
