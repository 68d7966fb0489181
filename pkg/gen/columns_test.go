// SPDX-License-Identifier: Apache-2.0
// Copyright © 2021 Wrangle Ltd

package gen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wrgl/csvt/pkg/slice"
)

func TestAddColumns(t *testing.T) {
	m := NewModifier([][]string{
		{"a", "b", "c"},
		{"1", "q", "w"},
		{"2", "a", "s"},
		{"3", "z", "x"},
	})
	m.AddColumns(2.0 / 3.0)
	assert.Len(t, m.Rows, 4)
	for _, sl := range m.Rows {
		assert.Len(t, sl, 5)
		for _, s := range sl {
			assert.NotEmpty(t, s)
		}
	}
	for name := range m.modifiedCols {
		assert.True(t, slice.StringSliceContains(m.Rows[0], name))
	}
}

func TestRemColumns(t *testing.T) {
	m := NewModifier([][]string{
		{"a", "b", "c", "d"},
		{"1", "q", "w", "e"},
		{"2", "a", "s", "d"},
		{"3", "z", "x", "c"},
	})
	m.PreserveColumns([]string{"a"})
	m.RemColumns(2.0 / 4.0)
	assert.Len(t, m.Rows, 4)
	for _, sl := range m.Rows {
		assert.Len(t, sl, 2)
		for _, s := range sl {
			assert.NotEmpty(t, s)
		}
	}
	assert.True(t, slice.StringSliceContains(m.Rows[0], "a"))
}

func TestRenameColumns(t *testing.T) {
	m := NewModifier([][]string{
		{"a", "b", "c", "d"},
		{"1", "q", "w", "e"},
		{"2", "a", "s", "d"},
		{"3", "z", "x", "c"},
	})
	m.PreserveColumns([]string{"a"})
	m.RenameColumns(2.0 / 4.0)
	assert.Len(t, m.Rows, 4)
	for _, sl := range m.Rows {
		assert.Len(t, sl, 4)
		for _, s := range sl {
			assert.NotEmpty(t, s)
		}
	}
	assert.Len(t, m.modifiedCols, 5)
	assert.True(t, slice.StringSliceContains(m.Rows[0], "a"))
	found := 0
	for _, s := range m.Rows[0] {
		if _, ok := m.modifiedCols[s]; ok {
			found++
			if s != "a" {
				assert.Len(t, s, 8)
				assert.True(t, strings.HasPrefix(s, "col_"))
			}
		}
	}
	assert.Equal(t, 3, found)
}

func TestMoveColumns(t *testing.T) {
	orig := []string{"a", "b", "c", "d"}
	m := NewModifier([][]string{
		append([]string{}, orig...),
		{"1", "q", "w", "e"},
		{"2", "a", "s", "d"},
		{"3", "z", "x", "c"},
	})
	m.MoveColumns(1.0 / 4.0)
	assert.ElementsMatch(t, orig, m.Rows[0])
	assert.False(t, slice.StringSliceEqual(orig, m.Rows[0]))
	for _, sl := range m.Rows {
		assert.Len(t, sl, 4)
	}
}

func TestGenColumns(t *testing.T) {
	assert.Equal(t, []string{"col_a", "col_b", "col_c"}, GenColumns(3))
	cols := GenColumns(60)
	assert.Equal(t, "col_y", cols[24])
	assert.Equal(t, "col_ba", cols[25])
	assert.Equal(t, "col_bb", cols[26])
	assert.Empty(t, slice.DuplicatedString(cols))
}
