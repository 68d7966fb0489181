// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package csv_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wrgl/csvt/pkg/csv"
	"github.com/wrgl/csvt/pkg/testutils"
)

func roundTrip(t *testing.T, rows [][]string, opts ...csv.Option) [][]string {
	t.Helper()
	buf := bytes.NewBuffer(nil)
	require.NoError(t, csv.NewWriter(buf, opts...).WriteAll(rows))
	result, err := csv.NewReader(buf, opts...).ReadAll()
	require.NoError(t, err)
	return result
}

func TestRoundTrip(t *testing.T) {
	rows := [][]string{
		{"id", "name", "note"},
		{"1", "hello, world", `He said "Hi"`},
		{"2", "line1\nline2", "a\rb"},
		{"3", "", ","},
		{"4", `""`, "★ unicode ★"},
		{"5", "\"\n,", "mixed \"quotes\", delimiters\nand newlines"},
	}
	assert.Equal(t, rows, roundTrip(t, rows))
}

func TestRoundTripCustomOptions(t *testing.T) {
	opts := []csv.Option{csv.WithDelimiter(';'), csv.WithQuote('\'')}
	rows := [][]string{
		{"a;b", "it's", "plain"},
		{"''", ";", "x\ny"},
	}
	assert.Equal(t, rows, roundTrip(t, rows, opts...))
}

func TestRoundTripGeneratedRows(t *testing.T) {
	for i := 0; i < 10; i++ {
		rows := testutils.BuildRawCSV(6, 30)
		// salt some rows with characters that force escaping
		rows[1][1] = rows[1][1] + ",\""
		rows[2][2] = "\n" + rows[2][2]
		rows[3][3] = "\"" + rows[3][3] + "\""
		assert.Equal(t, rows, roundTrip(t, rows))
	}
}

func TestMismatchedOptions(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	require.NoError(t, csv.NewWriter(buf, csv.WithDelimiter(';')).Write([]string{"a", "b"}))
	rows, err := csv.NewReader(buf).ReadAll()
	require.NoError(t, err)
	// fields stay joined when read back with the wrong delimiter
	assert.Equal(t, [][]string{{"a;b"}}, rows)

	buf.Reset()
	require.NoError(t, csv.NewWriter(buf).Write([]string{"a,b"}))
	rows, err = csv.NewReader(buf, csv.WithQuote('\'')).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, [][]string{{`"a`, `b"`}}, rows)
}
