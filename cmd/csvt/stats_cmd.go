// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package csvt

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/wrgl/csvt/cmd/csvt/utils"
	"github.com/wrgl/csvt/pkg/csv"
	"github.com/wrgl/csvt/pkg/stats"
	"gopkg.in/yaml.v3"
)

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats [CSV_FILE]",
		Short: "Profile the columns of a CSV stream",
		Long: "Profile the columns of a CSV stream in a single pass: null counts, numeric\n" +
			"min/max/mean/median, string lengths and most common values.",
		Example: utils.CombineExamples([]utils.Example{
			{
				Comment: "profile a file",
				Line:    "csvt stats data.csv",
			},
			{
				Comment: "produce a machine readable profile",
				Line:    "csvt stats data.csv --format yaml > profile.yaml",
			},
		}),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := cmd.Flags().GetString("format")
			if err != nil {
				return err
			}
			if format != "table" && format != "yaml" {
				return fmt.Errorf("unknown format %q, valid formats are table and yaml", format)
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
			container, err := utils.GetProgressBarContainer(cmd, format == "yaml" && !utils.StdoutIsTTY())
			if err != nil {
				return err
			}
			bar := container.NewBar(-1, "profiling rows", 0)
			r := csv.NewReader(in, inputCSVOptions(cmd, c)...)
			columns, err := r.Read()
			if err == io.EOF {
				bar.Abort()
				container.Wait()
				return fmt.Errorf("empty input")
			}
			if err != nil {
				return err
			}
			profiler := stats.NewProfiler(columns)
			n := 0
			for {
				row, err := r.Read()
				if err == io.EOF {
					break
				}
				if err != nil {
					bar.Abort()
					container.Wait()
					return err
				}
				n++
				if len(row) != len(columns) {
					bar.Abort()
					container.Wait()
					return fmt.Errorf("row %d has %d fields, expecting %d", n, len(row), len(columns))
				}
				profiler.Process(row)
				bar.Incr()
			}
			bar.Done()
			container.Wait()
			profile := profiler.Summarize()
			if format == "yaml" {
				b, err := yaml.Marshal(profile)
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(b)
				return err
			}
			return writeProfileTable(cmd.OutOrStdout(), profile)
		},
	}
	cmd.Flags().String("format", "table", `output format, either "table" or "yaml"`)
	return cmd
}

func formatFloat(f *float64) string {
	if f == nil {
		return "-"
	}
	return strconv.FormatFloat(*f, 'f', -1, 64)
}

func writeProfileTable(out io.Writer, profile *stats.TableProfile) error {
	header := color.New(color.FgGreen, color.Bold)
	if _, err := header.Fprintf(out, "rows: %d\n", profile.RowsCount); err != nil {
		return err
	}
	for _, col := range profile.Columns {
		if _, err := header.Fprintf(out, "\n%s\n", col.Name); err != nil {
			return err
		}
		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  null count\t%d\n", col.NullCount)
		if col.IsNumber {
			fmt.Fprintf(w, "  min\t%s\n", formatFloat(col.Min))
			fmt.Fprintf(w, "  max\t%s\n", formatFloat(col.Max))
			fmt.Fprintf(w, "  mean\t%s\n", formatFloat(col.Mean))
			fmt.Fprintf(w, "  median\t%s\n", formatFloat(col.Median))
		}
		fmt.Fprintf(w, "  min str len\t%d\n", col.MinStrLen)
		fmt.Fprintf(w, "  max str len\t%d\n", col.MaxStrLen)
		fmt.Fprintf(w, "  avg str len\t%d\n", col.AvgStrLen)
		for i, vc := range col.TopValues {
			if i == 0 {
				fmt.Fprintf(w, "  top values\t%s (%d)\n", vc.Value, vc.Count)
			} else {
				fmt.Fprintf(w, "  \t%s (%d)\n", vc.Value, vc.Count)
			}
		}
		if err := w.Flush(); err != nil {
			return err
		}
	}
	return nil
}
