// SPDX-License-Identifier: Apache-2.0
// Copyright © 2021 Wrangle Ltd

package testutils

import (
	"bytes"
	"math/rand"
	"os"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/wrgl/csvt/pkg/csv"
)

func BuildRawCSV(numCol, numRow int) [][]string {
	columns := []string{"id"}
	for i := 0; i < numCol-1; i++ {
		columns = append(columns, BrokenRandomAlphaNumericString(5))
	}
	rawCSV := [][]string{columns}
	for i := 0; i < numRow; i++ {
		row := []string{strconv.Itoa(i + 1)}
		for j := 0; j < numCol-1; j++ {
			row = append(row, BrokenRandomAlphaNumericString(rand.Intn(20)+1))
		}
		rawCSV = append(rawCSV, row)
	}
	return rawCSV
}

func ModifiedCSV(orig [][]string, mPercent int) [][]string {
	res := [][]string{}
	for i := 0; i < len(orig); i++ {
		row := append([]string{}, orig[i]...)
		if rand.Intn(100) <= mPercent {
			j := rand.Intn(len(row))
			row[j] = BrokenRandomAlphaNumericString(5)
		}
		res = append(res, row)
	}
	return res
}

func RawCSVReader(rows [][]string) *csv.Reader {
	buf := bytes.NewBuffer(nil)
	if err := csv.NewWriter(buf).WriteAll(rows); err != nil {
		panic(err)
	}
	return csv.NewReader(buf)
}

// WriteCSVFile writes rows to a fresh file under dir and returns its path.
func WriteCSVFile(t *testing.T, dir string, rows [][]string) string {
	t.Helper()
	f, err := TempFile(dir, "*.csv")
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, csv.NewWriter(f).WriteAll(rows))
	return f.Name()
}

// ReadCSVFile parses all rows of the file at path.
func ReadCSVFile(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}
