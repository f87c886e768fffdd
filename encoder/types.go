package encoder

import (
	"errors"

	"github.com/katalvlaran/simgraph/matrix"
)

// ErrNilTable is returned when Encode receives a nil table.
var ErrNilTable = errors.New("encoder: table is nil")

// CategoryMap maps a categorical column's header index to its distinct
// values in one-hot order (lexicographic ascending).
type CategoryMap map[int][]string

// Size returns the total number of one-hot columns across all blocks.
func (cm CategoryMap) Size() int {
	n := 0
	for _, vals := range cm {
		n += len(vals)
	}

	return n
}

// Encoded is the result of encoding a table.
type Encoded struct {
	// Matrix is the normalized samples × features matrix.
	Matrix *matrix.Dense

	// Numeric lists numeric header indices in selection order.
	Numeric []int

	// Categorical lists categorical header indices in selection order.
	Categorical []int

	// Categories holds the one-hot order of every categorical column.
	Categories CategoryMap

	// Features names each output column: the header name for numeric
	// columns, "header=value" for one-hot columns.
	Features []string

	// Ranges are the per-column ranges observed before normalization.
	Ranges []matrix.Range
}
