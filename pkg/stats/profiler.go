// SPDX-License-Identifier: Apache-2.0
// Copyright © 2021 Wrangle Ltd

package stats

import (
	"sort"
	"strconv"
)

const (
	MaxTopValues        = 20
	PercentileIncrement = 5
)

type Profiler struct {
	columns     []*ColumnProfile
	rowsCount   uint32
	strLens     []int
	sums        []float64
	numbers     []map[float64]uint32
	valueCounts []map[string]uint32
}

func NewProfiler(columnNames []string) *Profiler {
	n := len(columnNames)
	m := &Profiler{
		columns:     make([]*ColumnProfile, n),
		strLens:     make([]int, n),
		valueCounts: make([]map[string]uint32, n),
		numbers:     make([]map[float64]uint32, n),
		sums:        make([]float64, n),
	}
	for i, name := range columnNames {
		m.columns[i] = &ColumnProfile{
			Name:     name,
			IsNumber: true,
		}
		m.valueCounts[i] = map[string]uint32{}
		m.numbers[i] = map[float64]uint32{}
	}
	return m
}

// Process folds a row into the profile. Rows must have as many fields
// as there are column names.
func (m *Profiler) Process(row []string) {
	m.rowsCount += 1
	for i, col := range m.columns {
		v := row[i]
		m.strLens[i] += len(v)
		if v == "" {
			col.NullCount++
			continue
		}
		if l := uint16(len(v)); l > col.MaxStrLen {
			col.MaxStrLen = l
		}
		if l := uint16(len(v)); col.MinStrLen == 0 || l < col.MinStrLen {
			col.MinStrLen = l
		}
		if col.IsNumber {
			n, err := strconv.ParseFloat(v, 64)
			if err != nil {
				col.IsNumber = false
				col.Min = nil
				col.Max = nil
			} else {
				m.sums[i] += n
				m.numbers[i][n] += 1
				if col.Max == nil {
					var m float64 = n
					col.Max = &m
				}
				if col.Min == nil {
					var m float64 = n
					col.Min = &m
				}
				if n > *col.Max {
					*col.Max = n
				} else if n < *col.Min {
					*col.Min = n
				}
			}
		}
		m.valueCounts[i][v] += 1
	}
}

func (m *Profiler) calculatePercentiles(i int) (median float64, percentiles []float64) {
	sl := numberCountsFromMap(m.numbers[i])
	median = sl.percentile(50)
	// too few values to fill the percentile slots
	if sl[len(sl)-1].cumCount < 100/PercentileIncrement {
		return
	}
	percentiles = make([]float64, 0, 100/PercentileIncrement-1)
	for k := PercentileIncrement; k < 100; k += PercentileIncrement {
		percentiles = append(percentiles, sl.percentile(k))
	}
	return
}

func floatPtr(f float64) *float64 {
	return &f
}

// Summarize finalizes the profile of all processed rows so far.
func (m *Profiler) Summarize() *TableProfile {
	for i, col := range m.columns {
		if m.rowsCount > 0 {
			col.AvgStrLen = uint16(uint32(m.strLens[i]) / m.rowsCount)
		}
		if col.NullCount == m.rowsCount {
			col.IsNumber = false
		}
		if col.IsNumber {
			col.Mean = floatPtr(m.sums[i] / float64(m.rowsCount))
			var median float64
			median, col.Percentiles = m.calculatePercentiles(i)
			col.Median = &median
		}

		allUnique := true
		for s, n := range m.valueCounts[i] {
			if n > 1 {
				allUnique = false
			}
			col.TopValues = append(col.TopValues, ValueCount{
				Value: s,
				Count: n,
			})
		}
		if allUnique {
			col.TopValues = nil
		} else {
			sort.Sort(col.TopValues)
			if col.TopValues.Len() > MaxTopValues {
				col.TopValues = col.TopValues[:MaxTopValues]
			}
		}
	}
	return &TableProfile{
		RowsCount: m.rowsCount,
		Columns:   m.columns,
	}
}
