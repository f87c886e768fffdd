// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Euclidean (L2) distance between feature vectors, the edge weight of
//     the similarity graph.

package matrix

import (
	"fmt"
	"math"
)

// Euclidean returns sqrt(Σ (a_k - b_k)²).
// Vectors must have equal length (ErrDimensionMismatch otherwise).
// Complexity: O(len(a)).
func Euclidean(a, b []float64) (float64, error) {
	if err := ValidateSameLen(a, b); err != nil {
		return 0, matrixErrorf("Euclidean", err)
	}

	return euclidean(a, b), nil
}

// euclidean is the unchecked kernel; callers guarantee len(a) == len(b).
func euclidean(a, b []float64) float64 {
	var s, d float64
	for k := range a {
		d = a[k] - b[k]
		s += d * d
	}

	return math.Sqrt(s)
}

// RowDistance returns the Euclidean distance between rows i and j of m.
// Both rows share m's column count, so no length check is needed.
// Complexity: O(c).
func (m *Dense) RowDistance(i, j int) (float64, error) {
	if i < 0 || i >= m.r || j < 0 || j >= m.r {
		return 0, matrixErrorf(fmt.Sprintf("Dense.RowDistance(%d,%d)", i, j), ErrOutOfRange)
	}
	c := m.c

	return euclidean(m.data[i*c:(i+1)*c], m.data[j*c:(j+1)*c]), nil
}
