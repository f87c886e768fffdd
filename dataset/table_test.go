package dataset_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/simgraph/dataset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCSV = `Gender,Age,Height,NObeyesdad
Female,21,1.62,Normal_Weight
Male,23,1.8,Overweight_Level_I
Female,27,1.55,Normal_Weight
`

func TestLoad(t *testing.T) {
	tbl, err := dataset.Load(strings.NewReader(sampleCSV))
	require.NoError(t, err)
	assert.Equal(t, []string{"Gender", "Age", "Height", "NObeyesdad"}, tbl.Header)
	assert.Equal(t, 3, tbl.Len())
	assert.Equal(t, "Male", tbl.Cell(1, 0))
	assert.Equal(t, "", tbl.Cell(1, 9), "missing cell reads as empty string")
	assert.Equal(t, "", tbl.Cell(7, 0))
}

func TestLoad_Delimiter(t *testing.T) {
	tbl, err := dataset.Load(strings.NewReader("a;b\n1;2\n"), dataset.WithDelimiter(';'))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, tbl.Header)
	assert.Equal(t, [][]string{{"1", "2"}}, tbl.Rows)
}

func TestLoad_HeaderOnly(t *testing.T) {
	tbl, err := dataset.Load(strings.NewReader("a,b\n"))
	require.NoError(t, err)
	assert.Equal(t, 0, tbl.Len())
}

func TestLoad_Failures(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty source", ""},
		{"ragged row", "a,b\n1,2,3\n"},
		{"short row", "a,b,c\n1,2\n"},
		{"bad quoting", "a,b\n\"1,2\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := dataset.Load(strings.NewReader(tt.input))
			require.ErrorIs(t, err, dataset.ErrLoadFailure)
		})
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.csv")
	require.NoError(t, os.WriteFile(path, []byte(sampleCSV), 0o600))

	tbl, err := dataset.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 3, tbl.Len())

	_, err = dataset.LoadFile(filepath.Join(dir, "missing.csv"))
	require.ErrorIs(t, err, dataset.ErrLoadFailure)
}

func TestTable_LabelIndex(t *testing.T) {
	tbl, err := dataset.Load(strings.NewReader(sampleCSV))
	require.NoError(t, err)

	idx, ok := tbl.LabelIndex("NObeyesdad")
	require.True(t, ok)
	assert.Equal(t, 3, idx)
	assert.Equal(t, "Overweight_Level_I", tbl.Label(1, idx))

	_, ok = tbl.LabelIndex("class")
	assert.False(t, ok)
	_, ok = tbl.LabelIndex("")
	assert.False(t, ok)
}
