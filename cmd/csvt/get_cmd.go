// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package csvt

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/wrgl/csvt/cmd/csvt/utils"
	"github.com/wrgl/csvt/pkg/csv"
	"github.com/wrgl/csvt/pkg/index"
)

func newGetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get CSV_FILE PK_VALUE...",
		Short: "Look up a row by primary key in an indexed CSV file",
		Long: "Look up a row by primary key in a CSV file previously indexed with \"csvt index\".\n" +
			"Primary key values are given in the order the key columns were declared.",
		Example: utils.CombineExamples([]utils.Example{
			{
				Comment: "fetch the row with id 42",
				Line:    "csvt get data.csv 42",
			},
			{
				Comment: "fetch a row by compound key, printing column names too",
				Line:    "csvt get data.csv Doe John --with-columns",
			},
		}),
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := cmd.Flags().GetString("index-dir")
			if err != nil {
				return err
			}
			if dir == "" {
				dir = defaultIndexDir(args[0])
			}
			withColumns, err := cmd.Flags().GetBool("with-columns")
			if err != nil {
				return err
			}
			badgerLog, err := cmd.Flags().GetString("badger-log")
			if err != nil {
				return err
			}
			c, err := getConfig(cmd)
			if err != nil {
				return err
			}
			idx, err := index.Open(dir, index.WithBadgerLogLevel(badgerLog))
			if err != nil {
				return fmt.Errorf("error opening index at %q (create it with \"csvt index\"): %v", dir, err)
			}
			defer idx.Close()
			row, err := idx.Get(args[1:]...)
			if err == index.ErrKeyNotFound {
				return fmt.Errorf("no row found for key %v", args[1:])
			}
			if err != nil {
				return err
			}
			w := csv.NewWriter(cmd.OutOrStdout(), outputCSVOptions(cmd, c)...)
			if withColumns {
				if err = w.Write(idx.Columns()); err != nil {
					return err
				}
			}
			return w.Write(row)
		},
	}
	cmd.Flags().String("index-dir", "", "directory holding the index. Defaults to CSV_FILE + \".index\".")
	cmd.Flags().Bool("with-columns", false, "print the column names before the row")
	return cmd
}
