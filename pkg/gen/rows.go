// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package gen

import (
	"math/rand"
	"sort"
	"time"
)

func selectIndex(modifiedIndices map[int]struct{}, n int) int {
	rand.Seed(time.Now().UnixNano())
	for {
		j := rand.Intn(n)
		if _, ok := modifiedIndices[j]; !ok {
			modifiedIndices[j] = struct{}{}
			return j
		}
	}
}

func selectIndices(modifiedIndices map[int]struct{}, numModRows, n int) []int {
	if modifiedIndices == nil {
		modifiedIndices = map[int]struct{}{}
	}
	offs := make([]int, numModRows)
	for i := 0; i < numModRows; i++ {
		j := selectIndex(modifiedIndices, n)
		offs[i] = j
	}
	sort.Ints(offs)
	return offs
}

func cloneIntMap(m map[int]struct{}) map[int]struct{} {
	res := map[int]struct{}{}
	for k := range m {
		res[k] = struct{}{}
	}
	return res
}

func (m *Modifier) AddRows(pct float64) *Modifier {
	numModRows := int(float64(m.nRows-1) * pct)
	offs := selectIndices(m.modifiedRows, numModRows, len(m.Rows)-1+numModRows)
	n := len(m.Rows[0])
	for _, off := range offs {
		k := 1 + off
		m.Rows = append(m.Rows[:k+1], m.Rows[k:]...)
		m.Rows[k] = make([]string, n)
		for j := 0; j < n; j++ {
			m.Rows[k][j] = randomValue()
		}
	}
	return m
}

func (m *Modifier) RemoveRows(pct float64) *Modifier {
	numModRows := int(float64(m.nRows-1) * pct)
	offs := selectIndices(cloneIntMap(m.modifiedRows), numModRows, len(m.Rows)-1)
	for i := len(offs) - 1; i >= 0; i-- {
		off := offs[i] + 1
		m.Rows = append(m.Rows[:off], m.Rows[off+1:]...)
	}
	return m
}

func (m *Modifier) ModifyRows(pct float64) *Modifier {
	numModRows := int(float64(m.nRows-1) * pct)
	offs := selectIndices(m.modifiedRows, numModRows, len(m.Rows)-1)
	for _, off := range offs {
		off++
		l := (len(m.Rows[0]) - 1) / 5
		if l == 0 {
			l = 1
		}
		inds := selectIndices(nil, l, len(m.Rows[0])-1)
		for _, i := range inds {
			m.Rows[off][i+1] = randomValue()
		}
	}
	return m
}
