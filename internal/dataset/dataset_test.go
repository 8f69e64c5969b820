package dataset

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTableKeysAndLookup(t *testing.T) {
	t.Parallel()
	tbl := NewTable([]string{"a", "b"}, []Row{
		{"a": "1", "b": "2"},
		{"a": "3", "b": "4", "ignored": "x"},
	})

	require.Equal(t, 2, tbl.Len())
	require.Equal(t, []string{"a", "b"}, tbl.Columns())
	require.Equal(t, []int{0, 1}, tbl.Keys())

	row, ok := tbl.Row(1)
	require.True(t, ok)
	require.Equal(t, "3", row["a"])
	_, ok = row["ignored"] // cells outside the column set are dropped
	require.False(t, ok)

	_, ok = tbl.Row(2)
	require.False(t, ok)
	_, ok = tbl.Row(-1)
	require.False(t, ok)

	require.Equal(t, "4", tbl.Cell(1, "b"))
	require.Equal(t, "", tbl.Cell(9, "b"))
}

func TestReadCSV(t *testing.T) {
	t.Parallel()
	data := strings.Join([]string{
		"question,answer,score",
		"what is go,a language,5",
		`"quoted, comma",plain,3`,
	}, "\n")

	tbl, err := ReadCSV(strings.NewReader(data))
	require.NoError(t, err)
	require.Equal(t, []string{"question", "answer", "score"}, tbl.Columns())
	require.Equal(t, 2, tbl.Len())
	require.Equal(t, "quoted, comma", tbl.Cell(1, "question"))
	require.Equal(t, "5", tbl.Cell(0, "score"))
}

func TestReadCSVEmptyInput(t *testing.T) {
	t.Parallel()
	_, err := ReadCSV(strings.NewReader(""))
	require.Error(t, err)
}

func TestReadCSVRaggedRecord(t *testing.T) {
	t.Parallel()
	data := "a,b\n1,2\n3\n"
	_, err := ReadCSV(strings.NewReader(data))
	require.Error(t, err)
	require.Contains(t, err.Error(), "line 3")
}

func TestReadCSVHeaderOnly(t *testing.T) {
	t.Parallel()
	tbl, err := ReadCSV(strings.NewReader("a,b\n"))
	require.NoError(t, err)
	require.Equal(t, 0, tbl.Len())
	require.Empty(t, tbl.Keys())
}
