// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

// Package gen produces sample CSV data, either from scratch or by
// mutating an existing row matrix.
package gen

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
)

// ColumnSpec pairs a column name with the kind of values generated for
// it.
type ColumnSpec struct {
	Name string
	Kind string
}

var kinds = map[string]func(g *Generator) string{
	"cell":  func(*Generator) string { return gofakeit.Phone() },
	"city":  func(*Generator) string { return gofakeit.City() },
	"date":  func(*Generator) string { return gofakeit.Date().Format("2006-01-02") },
	"email": func(*Generator) string { return gofakeit.Email() },
	"float": func(*Generator) string { return strconv.FormatFloat(gofakeit.Float64Range(0, 1000000), 'f', 4, 64) },
	"int":   func(*Generator) string { return strconv.Itoa(gofakeit.Number(0, 1000000)) },
	"name":  func(*Generator) string { return gofakeit.Name() },
	"rand":  func(*Generator) string { return randomValue() },
	"seq":   func(g *Generator) string { g.seq++; return strconv.Itoa(g.seq) },
	"uuid":  func(*Generator) string { return uuid.New().String() },
	"word":  func(*Generator) string { return gofakeit.Word() },
}

// Kinds lists valid column kinds in alphabetical order.
func Kinds() []string {
	sl := make([]string, 0, len(kinds))
	for k := range kinds {
		sl = append(sl, k)
	}
	sort.Strings(sl)
	return sl
}

// ParseColumnSpecs parses a comma separated list of NAME:KIND pairs.
func ParseColumnSpecs(s string) ([]ColumnSpec, error) {
	var specs []ColumnSpec
	for _, part := range strings.Split(s, ",") {
		name, kind, found := strings.Cut(part, ":")
		if !found || name == "" {
			return nil, fmt.Errorf("invalid column spec %q, expecting NAME:KIND", part)
		}
		if _, ok := kinds[kind]; !ok {
			return nil, fmt.Errorf("unknown kind %q, valid kinds are %s", kind, strings.Join(Kinds(), ", "))
		}
		specs = append(specs, ColumnSpec{Name: name, Kind: kind})
	}
	return specs, nil
}

// Generator produces rows of sample data one at a time.
type Generator struct {
	specs []ColumnSpec
	seq   int
}

func NewGenerator(specs ...ColumnSpec) *Generator {
	return &Generator{specs: specs}
}

// Seed makes subsequent rows deterministic.
func (g *Generator) Seed(n int64) {
	gofakeit.Seed(n)
}

// Columns returns the header row.
func (g *Generator) Columns() []string {
	sl := make([]string, len(g.specs))
	for i, spec := range g.specs {
		sl[i] = spec.Name
	}
	return sl
}

// Row generates the next row.
func (g *Generator) Row() []string {
	sl := make([]string, len(g.specs))
	for i, spec := range g.specs {
		sl[i] = kinds[spec.Kind](g)
	}
	return sl
}
