// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package csvt

import (
	"github.com/spf13/cobra"
	"github.com/wrgl/csvt/cmd/csvt/utils"
	"github.com/wrgl/csvt/pkg/csv"
	"github.com/wrgl/csvt/pkg/sorter"
)

func newSortCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sort [CSV_FILE]",
		Short: "Sort CSV rows by key columns",
		Long: "Sort CSV rows by key columns. Rows are buffered up to the run size and spill\n" +
			"to temporary files beyond it, so inputs larger than memory sort fine. Without\n" +
			"--key, rows sort by all columns left to right.",
		Example: utils.CombineExamples([]utils.Example{
			{
				Comment: "sort by the id column",
				Line:    "csvt sort data.csv -k id",
			},
			{
				Comment: "sort by last then first name, reading from stdin",
				Line:    "cat people.csv | csvt sort -k last_name,first_name",
			},
		}),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := cmd.Flags().GetStringSlice("key")
			if err != nil {
				return err
			}
			runSize, err := cmd.Flags().GetUint64("run-size")
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
			out, err := utils.OpenOutput(outFile, cmd.OutOrStdout())
			if err != nil {
				in.Close()
				return err
			}
			// in is closed by SortFile on success
			container, err := utils.GetProgressBarContainer(cmd, outFile == "" && !utils.StdoutIsTTY())
			if err != nil {
				return err
			}
			opts := inputCSVOptions(cmd, c)
			sortOpts := []sorter.SorterOption{
				sorter.WithCSVOptions(opts...),
				sorter.WithProgressBar(container.NewBar(-1, "sorting rows", 0)),
			}
			if runSize > 0 {
				sortOpts = append(sortOpts, sorter.WithRunSize(runSize))
			}
			s, err := sorter.NewSorter(sortOpts...)
			if err != nil {
				return err
			}
			defer s.Close()
			if err = s.SortFile(in, key); err != nil {
				return err
			}
			container.Wait()
			w := csv.NewWriter(out, opts...)
			if err = w.Write(s.Columns); err != nil {
				out.Close()
				return err
			}
			if err = writeSortedRows(w, s); err != nil {
				out.Close()
				return err
			}
			return out.Close()
		},
	}
	cmd.Flags().StringSliceP("key", "k", nil, "column names to sort by, in order of precedence")
	cmd.Flags().Uint64("run-size", 0, "max bytes of rows buffered in memory before spilling to disk. Defaults to a fraction of available memory.")
	cmd.Flags().StringP("output", "o", "", "write output to this file instead of stdout")
	return cmd
}

// writeSortedRows writes merged batches in order. On a write error it
// keeps receiving until the merge goroutine closes the channel, so the
// goroutine never stays blocked on a send.
func writeSortedRows(w *csv.Writer, s *sorter.Sorter) error {
	errChan := make(chan error, 1)
	rowsCh := s.SortedRows(errChan)
	for batch := range rowsCh {
		for _, row := range batch.Rows {
			if err := w.Write(row); err != nil {
				for range rowsCh {
				}
				return err
			}
		}
	}
	select {
	case err := <-errChan:
		return err
	default:
	}
	return nil
}
