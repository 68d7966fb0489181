// SPDX-License-Identifier: Apache-2.0
// Copyright © 2021 Wrangle Ltd

// Package stats profiles CSV columns in a single streaming pass.
package stats

// ValueCount records how often a value appears in a column.
type ValueCount struct {
	Value string `yaml:"value"`
	Count uint32 `yaml:"count"`
}

type ValueCounts []ValueCount

func (a ValueCounts) Len() int      { return len(a) }
func (a ValueCounts) Swap(i, j int) { a[i], a[j] = a[j], a[i] }
func (a ValueCounts) Less(i, j int) bool {
	if a[i].Count == a[j].Count {
		return a[i].Value < a[j].Value
	}
	return a[i].Count > a[j].Count
}

type ColumnProfile struct {
	Name        string      `yaml:"name"`
	NullCount   uint32      `yaml:"nullCount"`
	IsNumber    bool        `yaml:"isNumber,omitempty"`
	Min         *float64    `yaml:"min,omitempty"`
	Max         *float64    `yaml:"max,omitempty"`
	Mean        *float64    `yaml:"mean,omitempty"`
	Median      *float64    `yaml:"median,omitempty"`
	MinStrLen   uint16      `yaml:"minStrLen"`
	MaxStrLen   uint16      `yaml:"maxStrLen"`
	AvgStrLen   uint16      `yaml:"avgStrLen"`
	TopValues   ValueCounts `yaml:"topValues,omitempty"`
	Percentiles []float64   `yaml:"percentiles,omitempty"`
}

type TableProfile struct {
	RowsCount uint32           `yaml:"rowsCount"`
	Columns   []*ColumnProfile `yaml:"columns"`
}
