package dataset_test

import (
	"testing"

	"github.com/katalvlaran/simgraph/dataset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var obesityHeader = []string{
	"Gender", "Age", "Height", "Weight", "family_history_with_overweight",
	"FAVC", "FCVC", "NCP", "CAEC", "SMOKE", "CH2O", "SCC", "FAF", "TUE",
	"CALC", "MTRANS", "NObeyesdad",
}

func TestParseMode(t *testing.T) {
	tests := map[string]dataset.Mode{
		"1":        dataset.ModeAll,
		"2":        dataset.ModeEating,
		" 3\n":     dataset.ModePhysical,
		"Physical": dataset.ModePhysical,
		"eating":   dataset.ModeEating,
		"all":      dataset.ModeAll,
		"4":        dataset.ModeAll,
		"0":        dataset.ModeAll,
		"":         dataset.ModeAll,
		"two":      dataset.ModeAll,
		"-2":       dataset.ModeAll,
		"2.0":      dataset.ModeAll,
	}
	for in, want := range tests {
		assert.Equal(t, want, dataset.ParseMode(in), "ParseMode(%q)", in)
	}
	assert.Equal(t, "physical", dataset.ModePhysical.String())
}

func TestResolve_All(t *testing.T) {
	sel, err := dataset.Resolve([]string{"a", "b", "label"}, dataset.ModeAll, dataset.DefaultSubsets())
	require.NoError(t, err)
	assert.Equal(t, dataset.Selection{0, 1}, sel)

	_, err = dataset.Resolve([]string{"label"}, dataset.ModeAll, dataset.DefaultSubsets())
	require.ErrorIs(t, err, dataset.ErrInvalidSchema)
}

func TestResolve_DefaultSubsetsMatchLegacyPositions(t *testing.T) {
	sel, err := dataset.Resolve(obesityHeader, dataset.ModeEating, dataset.DefaultSubsets())
	require.NoError(t, err)
	assert.Equal(t, dataset.Selection{4, 5, 8, 10, 11, 13}, sel)

	sel, err = dataset.Resolve(obesityHeader, dataset.ModePhysical, dataset.DefaultSubsets())
	require.NoError(t, err)
	assert.Equal(t, dataset.Selection{2, 3, 6, 7, 9, 12}, sel)
}

func TestResolve_NamedColumnsFollowHeaderOrder(t *testing.T) {
	header := []string{"Weight", "Height", "x"}
	subsets := dataset.Subsets{Physical: dataset.Subset{Columns: []string{"Height", "Weight"}}}
	sel, err := dataset.Resolve(header, dataset.ModePhysical, subsets)
	require.NoError(t, err)
	assert.Equal(t, dataset.Selection{1, 0}, sel)
}

func TestResolve_InvalidSchema(t *testing.T) {
	short := obesityHeader[:5]

	_, err := dataset.Resolve(short, dataset.ModeEating, dataset.DefaultSubsets())
	require.ErrorIs(t, err, dataset.ErrInvalidSchema)

	byIndex := dataset.Subsets{Eating: dataset.Subset{Indices: []int{4, 5, 8}}}
	_, err = dataset.Resolve(short, dataset.ModeEating, byIndex)
	require.ErrorIs(t, err, dataset.ErrInvalidSchema)

	sel, err := dataset.Resolve(obesityHeader, dataset.ModeEating, byIndex)
	require.NoError(t, err)
	assert.Equal(t, dataset.Selection{4, 5, 8}, sel)

	_, err = dataset.Resolve(obesityHeader, dataset.ModePhysical, dataset.Subsets{})
	require.ErrorIs(t, err, dataset.ErrInvalidSchema, "empty subset")
}
