package matrix_test

import (
	"testing"

	"github.com/katalvlaran/simgraph/matrix"
	"github.com/stretchr/testify/require"
)

const distTol = 1e-6

func TestEuclidean(t *testing.T) {
	tests := []struct {
		name string
		a, b []float64
		want float64
	}{
		{"identical", []float64{1, 2, 3}, []float64{1, 2, 3}, 0},
		{"3-4-5", []float64{0, 0}, []float64{3, 4}, 5},
		{"small diff", []float64{1, 2, 3}, []float64{1, 2.1, 3}, 0.1},
		{"empty", []float64{}, []float64{}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := matrix.Euclidean(tt.a, tt.b)
			require.NoError(t, err)
			require.InDelta(t, tt.want, got, distTol)
		})
	}
}

func TestEuclidean_Symmetric(t *testing.T) {
	a := []float64{0.2, 0.9, 0.4}
	b := []float64{0.7, 0.1, 0.0}
	ab, err := matrix.Euclidean(a, b)
	require.NoError(t, err)
	ba, err := matrix.Euclidean(b, a)
	require.NoError(t, err)
	require.Equal(t, ab, ba)
}

func TestEuclidean_LengthMismatch(t *testing.T) {
	_, err := matrix.Euclidean([]float64{1}, []float64{1, 2})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestDense_RowDistance(t *testing.T) {
	m, err := matrix.NewDenseFromRows([][]float64{{0, 0}, {3, 4}})
	require.NoError(t, err)
	d, err := m.RowDistance(0, 1)
	require.NoError(t, err)
	require.InDelta(t, 5.0, d, distTol)

	d, err = m.RowDistance(1, 1)
	require.NoError(t, err)
	require.Equal(t, 0.0, d)

	_, err = m.RowDistance(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}
