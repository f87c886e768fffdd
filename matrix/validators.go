// SPDX-License-Identifier: MIT
// Package matrix: argument validators shared by the statistics and
// distance kernels. Each returns a tagged sentinel and never panics.

package matrix

import "math"

// ValidateNotNil ensures the matrix reference is non-nil.
// Complexity: O(1).
func ValidateNotNil(m *Dense) error {
	if m == nil {
		return matrixErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameLen ensures two vectors can be compared element-wise.
// Complexity: O(1).
func ValidateSameLen(a, b []float64) error {
	if len(a) != len(b) {
		return matrixErrorf("ValidateSameLen", ErrDimensionMismatch)
	}

	return nil
}

// ValidateFinite ensures every element of m is finite.
// Complexity: O(r*c).
func ValidateFinite(m *Dense) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	for _, v := range m.data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return matrixErrorf("ValidateFinite", ErrNaNInf)
		}
	}

	return nil
}
