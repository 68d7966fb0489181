// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package csvt

import (
	"io"
	"strings"

	"github.com/mitchellh/colorstring"
	"github.com/spf13/cobra"
	"github.com/wrgl/csvt/cmd/csvt/utils"
	"github.com/wrgl/csvt/pkg/csv"
)

func newHeadCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "head [CSV_FILE]",
		Short: "Print the column names and first rows of a CSV stream",
		Example: utils.CombineExamples([]utils.Example{
			{
				Comment: "peek at the first 10 rows",
				Line:    "csvt head data.csv",
			},
			{
				Comment: "print only the column names",
				Line:    "csvt head -n 0 data.csv",
			},
		}),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := cmd.Flags().GetInt("rows")
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
			opts := inputCSVOptions(cmd, c)
			r := csv.NewReader(in, opts...)
			columns, err := r.Read()
			if err == io.EOF {
				return nil
			}
			if err != nil {
				return err
			}
			colorize := colorstring.Colorize{
				Colors:  colorstring.DefaultColors,
				Disable: !utils.StdoutIsTTY(),
				Reset:   true,
			}
			escaped := make([]string, len(columns))
			delim, quote := resolveDialect(c)
			for i, s := range columns {
				escaped[i] = csv.EscapeField(s, delim, quote)
			}
			cmd.Println(colorize.Color("[bold][green]" + strings.Join(escaped, string(delim))))
			w := csv.NewWriter(cmd.OutOrStdout(), opts...)
			for i := 0; i < n; i++ {
				row, err := r.Read()
				if err == io.EOF {
					break
				}
				if err != nil {
					return err
				}
				if err = w.Write(row); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().IntP("rows", "n", 10, "number of rows to print after the column names")
	return cmd
}
