// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package csvt

import (
	"fmt"
	"io"

	"github.com/gobwas/glob"
	"github.com/spf13/cobra"
	"github.com/wrgl/csvt/cmd/csvt/utils"
	"github.com/wrgl/csvt/pkg/csv"
	"github.com/wrgl/csvt/pkg/slice"
)

func newSelectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "select [CSV_FILE]",
		Short: "Project a CSV stream onto a subset of its columns",
		Long: "Project a CSV stream onto a subset of its columns. Each pattern given with\n" +
			"--columns either names a column exactly or is a glob matched against all column\n" +
			"names. Selected columns keep their original order.",
		Example: utils.CombineExamples([]utils.Example{
			{
				Comment: "keep two columns by name",
				Line:    "csvt select data.csv -c id,email",
			},
			{
				Comment: "keep every column starting with addr_",
				Line:    "csvt select data.csv -c 'addr_*'",
			},
		}),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			patterns, err := cmd.Flags().GetStringSlice("columns")
			if err != nil {
				return err
			}
			outFile, err := cmd.Flags().GetString("output")
			if err != nil {
				return err
			}
			c, err := getConfig(cmd)
			if err != nil {
				return err
			}
			var inFile string
			if len(args) > 0 {
				inFile = args[0]
			}
			in, err := utils.OpenInput(inFile, cmd.InOrStdin())
			if err != nil {
				return err
			}
			defer in.Close()
			out, err := utils.OpenOutput(outFile, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			opts := inputCSVOptions(cmd, c)
			if err = selectColumns(csv.NewReader(in, opts...), csv.NewWriter(out, opts...), patterns); err != nil {
				out.Close()
				return err
			}
			return out.Close()
		},
	}
	cmd.Flags().StringSliceP("columns", "c", nil, "column names or glob patterns to keep (required)")
	cmd.MarkFlagRequired("columns")
	cmd.Flags().StringP("output", "o", "", "write output to this file instead of stdout")
	return cmd
}

// matchColumns returns the indices of columns matched by any pattern, in
// column order. A pattern that matches nothing is an error, catching
// misspelled column names early.
func matchColumns(columns []string, patterns []string) ([]uint32, error) {
	matched := make([]bool, len(columns))
	for _, pat := range patterns {
		g, err := glob.Compile(pat)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %q: %v", pat, err)
		}
		found := false
		for i, name := range columns {
			if name == pat || g.Match(name) {
				matched[i] = true
				found = true
			}
		}
		if !found {
			return nil, fmt.Errorf("no column matches %q", pat)
		}
	}
	var indices []uint32
	for i, ok := range matched {
		if ok {
			indices = append(indices, uint32(i))
		}
	}
	return indices, nil
}

func selectColumns(r *csv.Reader, w *csv.Writer, patterns []string) error {
	columns, err := r.Read()
	if err == io.EOF {
		return nil
	}
	if err != nil {
		return err
	}
	indices, err := matchColumns(columns, patterns)
	if err != nil {
		return err
	}
	if err = w.Write(slice.IndicesToValues(columns, indices)); err != nil {
		return err
	}
	n := 0
	for {
		row, err := r.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		n++
		if len(row) != len(columns) {
			return fmt.Errorf("row %d has %d fields, expecting %d", n, len(row), len(columns))
		}
		if err = w.Write(slice.IndicesToValues(row, indices)); err != nil {
			return err
		}
	}
}
