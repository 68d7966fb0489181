package sorter

import (
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wrgl/csvt/pkg/csv"
	"github.com/wrgl/csvt/pkg/testutils"
)

func writeCSV(t *testing.T, rows [][]string) *os.File {
	t.Helper()
	f, err := testutils.TempFile("", "test_sorter_*")
	require.NoError(t, err)
	require.NoError(t, csv.NewWriter(f).WriteAll(rows))
	_, err = f.Seek(0, io.SeekStart)
	require.NoError(t, err)
	return f
}

func collectRows(t *testing.T, s *Sorter) [][]string {
	t.Helper()
	errCh := make(chan error, 1)
	rowsCh := s.SortedRows(errCh)
	sorted := [][]string{}
	offset := 0
	for batch := range rowsCh {
		require.Equal(t, offset, batch.Offset)
		offset++
		sorted = append(sorted, batch.Rows...)
	}
	close(errCh)
	err, ok := <-errCh
	assert.False(t, ok)
	require.NoError(t, err)
	return sorted
}

func TestSorterSortFile(t *testing.T) {
	rows := testutils.BuildRawCSV(4, 700)
	f := writeCSV(t, rows)
	defer os.Remove(f.Name())

	s, err := NewSorter(WithRunSize(4096))
	require.NoError(t, err)
	defer s.Close()
	require.NoError(t, s.SortFile(f, rows[0][:1]))
	assert.Equal(t, rows[0], s.Columns)
	assert.Equal(t, []uint32{0}, s.Key)
	assert.Equal(t, uint32(700), s.RowsCount)
	assert.NotEmpty(t, s.runs)

	sorted := collectRows(t, s)
	require.Len(t, sorted, 700)
	SortRows(rows[1:], s.Key)
	assert.Equal(t, rows[1:], sorted)
}

func TestSorterInMemoryOnly(t *testing.T) {
	f := writeCSV(t, [][]string{
		{"a", "b"},
		{"2", "x"},
		{"1", "z"},
		{"1", "y"},
	})
	defer os.Remove(f.Name())

	s, err := NewSorter(WithRunSize(1 << 20))
	require.NoError(t, err)
	defer s.Close()
	require.NoError(t, s.SortFile(f, nil))
	assert.Empty(t, s.runs)
	assert.Equal(t, [][]string{
		{"1", "y"},
		{"1", "z"},
		{"2", "x"},
	}, collectRows(t, s))
}

func TestSorterKeyColumns(t *testing.T) {
	f := writeCSV(t, [][]string{
		{"id", "city", "pop"},
		{"3", "berlin", "3645000"},
		{"1", "paris", "2161000"},
		{"2", "austin", "964000"},
	})
	defer os.Remove(f.Name())

	s, err := NewSorter(WithRunSize(1 << 20))
	require.NoError(t, err)
	defer s.Close()
	require.NoError(t, s.SortFile(f, []string{"city"}))
	assert.Equal(t, []uint32{1}, s.Key)
	assert.Equal(t, [][]string{
		{"2", "austin", "964000"},
		{"3", "berlin", "3645000"},
		{"1", "paris", "2161000"},
	}, collectRows(t, s))
}

func TestSorterUnknownKeyColumn(t *testing.T) {
	f := writeCSV(t, [][]string{
		{"a", "b"},
		{"1", "2"},
	})
	defer os.Remove(f.Name())

	s, err := NewSorter(WithRunSize(1 << 20))
	require.NoError(t, err)
	defer s.Close()
	err = s.SortFile(f, []string{"nope"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `column "nope" not found`)
}

func TestSorterCSVOptions(t *testing.T) {
	f, err := testutils.TempFile("", "test_sorter_*")
	require.NoError(t, err)
	defer os.Remove(f.Name())
	w := csv.NewWriter(f, csv.WithDelimiter(';'))
	require.NoError(t, w.WriteAll([][]string{
		{"a", "b"},
		{"2", "x"},
		{"1", "y"},
	}))
	_, err = f.Seek(0, io.SeekStart)
	require.NoError(t, err)

	s, err := NewSorter(WithRunSize(1<<20), WithCSVOptions(csv.WithDelimiter(';')))
	require.NoError(t, err)
	defer s.Close()
	require.NoError(t, s.SortFile(f, []string{"a"}))
	assert.Equal(t, []string{"a", "b"}, s.Columns)
	assert.Equal(t, [][]string{
		{"1", "y"},
		{"2", "x"},
	}, collectRows(t, s))
}

func TestSorterRaggedRow(t *testing.T) {
	f := writeCSV(t, [][]string{
		{"a", "b"},
		{"1", "2"},
		{""},
	})
	defer os.Remove(f.Name())

	s, err := NewSorter(WithRunSize(1 << 20))
	require.NoError(t, err)
	defer s.Close()
	err = s.SortFile(f, []string{"b"})
	assert.EqualError(t, err, "row 2 has 1 fields, expecting 2")
}
