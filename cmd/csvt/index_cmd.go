// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package csvt

import (
	"github.com/spf13/cobra"
	"github.com/wrgl/csvt/cmd/csvt/utils"
	"github.com/wrgl/csvt/pkg/csv"
	"github.com/wrgl/csvt/pkg/index"
)

func defaultIndexDir(csvFile string) string {
	return csvFile + ".index"
}

func newIndexCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "index CSV_FILE",
		Short: "Index the rows of a CSV file by primary key",
		Long: "Index the rows of a CSV file by primary key, for fast lookups with \"csvt get\".\n" +
			"When two rows share a primary key the later row wins. Without --primary-key,\n" +
			"each row is keyed by its entire content.",
		Example: utils.CombineExamples([]utils.Example{
			{
				Comment: "index a file by the id column",
				Line:    "csvt index data.csv -p id",
			},
			{
				Comment: "index by a compound key, at an explicit location",
				Line:    "csvt index data.csv -p last_name,first_name --index-dir /tmp/people.idx",
			},
		}),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pk, err := cmd.Flags().GetStringSlice("primary-key")
			if err != nil {
				return err
			}
			dir, err := cmd.Flags().GetString("index-dir")
			if err != nil {
				return err
			}
			if dir == "" {
				dir = defaultIndexDir(args[0])
			}
			badgerLog, err := cmd.Flags().GetString("badger-log")
			if err != nil {
				return err
			}
			c, err := getConfig(cmd)
			if err != nil {
				return err
			}
			in, err := utils.OpenInput(args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}
			defer in.Close()
			container, err := utils.GetProgressBarContainer(cmd, false)
			if err != nil {
				return err
			}
			bar := container.NewBar(-1, "indexing rows", 0)
			opts := []index.Option{
				index.WithProgressBar(bar),
				index.WithBadgerLogLevel(badgerLog),
			}
			if logger := utils.GetLogger(cmd); logger != nil {
				opts = append(opts, index.WithDebugLogger(logger))
			}
			idx, err := index.Create(dir, csv.NewReader(in, inputCSVOptions(cmd, c)...), pk, opts...)
			if err != nil {
				bar.Abort()
				container.Wait()
				return err
			}
			container.Wait()
			defer idx.Close()
			cmd.Printf("indexed %d rows (%d duplicates) at %s\n", idx.RowsCount(), idx.DuplicatesCount(), dir)
			return nil
		},
	}
	cmd.Flags().StringSliceP("primary-key", "p", nil, "column names making up the primary key")
	cmd.Flags().String("index-dir", "", "directory holding the index. Defaults to CSV_FILE + \".index\".")
	return cmd
}
