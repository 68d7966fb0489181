// SPDX-License-Identifier: Apache-2.0
// Copyright © 2021 Wrangle Ltd

package gen

import (
	"math/rand"
	"time"
)

func insertAt(sl []string, i int, s string) []string {
	sl = append(sl[:i+1], sl[i:]...)
	sl[i] = s
	return sl
}

func randomColName() string {
	return "col_" + brokenRandomLowerAlphaString(4)
}

// Modifier mutates a row matrix in place. The first row is always
// treated as the header.
type Modifier struct {
	modifiedCols map[string]struct{}
	modifiedRows map[int]struct{}
	Rows         [][]string
	nCols        int
	nRows        int
}

func NewModifier(rows [][]string) *Modifier {
	m := &Modifier{
		modifiedCols: map[string]struct{}{},
		modifiedRows: map[int]struct{}{},
		Rows:         rows,
		nCols:        len(rows[0]),
		nRows:        len(rows),
	}
	return m
}

// PreserveColumns excludes columns from subsequent modifications.
func (m *Modifier) PreserveColumns(columns []string) *Modifier {
	for _, s := range columns {
		m.modifiedCols[s] = struct{}{}
	}
	return m
}

func (m *Modifier) AddColumns(pct float64) *Modifier {
	numColMods := int(float64(m.nCols) * pct)
	for i := 0; i < numColMods; i++ {
		name := randomColName()
		m.modifiedCols[name] = struct{}{}
		j := rand.Intn(len(m.Rows[0]))
		m.Rows[0] = insertAt(m.Rows[0], j, name)
		for k := len(m.Rows) - 1; k >= 1; k-- {
			m.Rows[k] = insertAt(m.Rows[k], j, randomValue())
		}
	}
	return m
}

func selectColumn(modifiedCols map[string]struct{}, columns []string) int {
	rand.Seed(time.Now().UnixNano())
	for {
		j := rand.Intn(len(columns))
		name := columns[j]
		if _, ok := modifiedCols[name]; !ok {
			modifiedCols[name] = struct{}{}
			return j
		}
	}
}

func cloneStringMap(m map[string]struct{}) map[string]struct{} {
	res := map[string]struct{}{}
	for k := range m {
		res[k] = struct{}{}
	}
	return res
}

func (m *Modifier) RemColumns(pct float64) *Modifier {
	numColMods := int(float64(m.nCols) * pct)
	for i := 0; i < numColMods; i++ {
		j := selectColumn(cloneStringMap(m.modifiedCols), m.Rows[0])
		for k := len(m.Rows) - 1; k >= 0; k-- {
			m.Rows[k] = append(m.Rows[k][:j], m.Rows[k][j+1:]...)
		}
	}
	return m
}

func (m *Modifier) RenameColumns(pct float64) *Modifier {
	numColMods := int(float64(m.nCols) * pct)
	for i := 0; i < numColMods; i++ {
		j := selectColumn(m.modifiedCols, m.Rows[0])
		name := randomColName()
		m.modifiedCols[name] = struct{}{}
		m.Rows[0][j] = name
	}
	return m
}

func (m *Modifier) MoveColumns(pct float64) *Modifier {
	numColMods := int(float64(m.nCols) * pct)
	for i := 0; i < numColMods; i++ {
		j := selectColumn(m.modifiedCols, m.Rows[0])
		var l int
		for {
			l = rand.Intn(len(m.Rows[0]))
			if l != j {
				break
			}
		}
		for k := len(m.Rows) - 1; k >= 0; k-- {
			v := m.Rows[k][j]
			m.Rows[k] = append(m.Rows[k][:j], m.Rows[k][j+1:]...)
			m.Rows[k] = insertAt(m.Rows[k], l, v)
		}
	}
	return m
}

// GenColumns names n columns col_a through col_y then col_ba, col_bb
// and so on.
func GenColumns(n int) []string {
	cols := make([]string, n)
	for i := 0; i < n; i++ {
		col := []byte("col_")
		if i < 25 {
			col = append(col, byte(i+97))
			cols[i] = string(col)
			continue
		}
		chars := []byte{}
		for k := i; k > 0; k = k / 25 {
			chars = append(chars, byte(k-(k/25)*25))
		}
		for j := len(chars) - 1; j >= 0; j-- {
			col = append(col, chars[j]+97)
		}
		cols[i] = string(col)
	}
	return cols
}
