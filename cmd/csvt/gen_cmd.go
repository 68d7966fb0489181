// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package csvt

import (
	"math/rand"
	"strings"

	"github.com/spf13/cobra"
	"github.com/wrgl/csvt/cmd/csvt/utils"
	"github.com/wrgl/csvt/pkg/conf"
	"github.com/wrgl/csvt/pkg/csv"
	"github.com/wrgl/csvt/pkg/gen"
)

const (
	defaultGenColumns = "id:seq,name:name,email:email,amount:float"
	defaultGenRows    = 100
)

func newGenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate sample CSV data",
		Long: "Generate sample CSV data. By default columns are produced from the spec given\n" +
			"with --columns. With --based-on, an existing file is mutated instead, which is\n" +
			"handy for producing near-identical variants of a dataset. Valid column kinds\n" +
			"are " + strings.Join(gen.Kinds(), ", ") + ".",
		Example: utils.CombineExamples([]utils.Example{
			{
				Comment: "generate 1000 rows with the default columns",
				Line:    "csvt gen --rows 1000 > sample.csv",
			},
			{
				Comment: "generate custom columns",
				Line:    "csvt gen --columns 'id:seq,city:city,joined:date' --rows 50",
			},
			{
				Comment: "mutate an existing file",
				Line:    "csvt gen --based-on data.csv --rename-cols --mod-rows > variant.csv",
			},
		}),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := getConfig(cmd)
			if err != nil {
				return err
			}
			seed, err := cmd.Flags().GetInt64("seed")
			if err != nil {
				return err
			}
			if seed != 0 {
				rand.Seed(seed)
			}
			outFile, err := cmd.Flags().GetString("output")
			if err != nil {
				return err
			}
			out, err := utils.OpenOutput(outFile, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			w := csv.NewWriter(out, outputCSVOptions(cmd, c)...)
			basedOn, err := cmd.Flags().GetString("based-on")
			if err != nil {
				return err
			}
			if basedOn != "" {
				err = mutateFile(cmd, c, w, basedOn)
			} else {
				err = generateRows(cmd, c, w, seed)
			}
			if err != nil {
				out.Close()
				return err
			}
			return out.Close()
		},
	}
	cmd.Flags().Int("rows", 0, "number of rows to generate (defaults to gen.rows in config, else 100)")
	cmd.Flags().String("columns", "", "columns to generate as a comma separated list of NAME:KIND pairs")
	cmd.Flags().Int64("seed", 0, "random seed, for reproducible output")
	cmd.Flags().StringP("output", "o", "", "write output to this file instead of stdout")
	cmd.Flags().String("based-on", "", "mutate this CSV file instead of generating from scratch")
	cmd.Flags().StringSlice("preserve-columns", nil, "columns never modified by --based-on mutations")
	cmd.Flags().Bool("addrem-cols", false, "randomly add and remove columns")
	cmd.Flags().Bool("rename-cols", false, "randomly rename columns")
	cmd.Flags().Bool("move-cols", false, "randomly move columns")
	cmd.Flags().Bool("mod-rows", false, "randomly add, remove and modify rows")
	cmd.Flags().Float64("pct", 0.2, "fraction of columns/rows affected by each --based-on mutation")
	return cmd
}

func generateRows(cmd *cobra.Command, c *conf.Config, w *csv.Writer, seed int64) error {
	colSpec, err := cmd.Flags().GetString("columns")
	if err != nil {
		return err
	}
	if colSpec == "" && c.Gen != nil {
		colSpec = c.Gen.Columns
	}
	if colSpec == "" {
		colSpec = defaultGenColumns
	}
	specs, err := gen.ParseColumnSpecs(colSpec)
	if err != nil {
		return err
	}
	n, err := cmd.Flags().GetInt("rows")
	if err != nil {
		return err
	}
	if n == 0 && c.Gen != nil {
		n = c.Gen.Rows
	}
	if n == 0 {
		n = defaultGenRows
	}
	g := gen.NewGenerator(specs...)
	if seed != 0 {
		g.Seed(seed)
	}
	container, err := utils.GetProgressBarContainer(cmd, !utils.StdoutIsTTY())
	if err != nil {
		return err
	}
	bar := container.NewBar(int64(n), "generating rows", 0)
	if err = w.Write(g.Columns()); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		if err = w.Write(g.Row()); err != nil {
			bar.Abort()
			container.Wait()
			return err
		}
		bar.Incr()
	}
	bar.Done()
	container.Wait()
	return nil
}

func mutateFile(cmd *cobra.Command, c *conf.Config, w *csv.Writer, path string) error {
	preserve, err := cmd.Flags().GetStringSlice("preserve-columns")
	if err != nil {
		return err
	}
	pct, err := cmd.Flags().GetFloat64("pct")
	if err != nil {
		return err
	}
	f, err := utils.OpenInput(path, cmd.InOrStdin())
	if err != nil {
		return err
	}
	defer f.Close()
	rows, err := csv.NewReader(f, inputCSVOptions(cmd, c)...).ReadAll()
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return nil
	}
	m := gen.NewModifier(rows).PreserveColumns(preserve)
	if b, err := cmd.Flags().GetBool("addrem-cols"); err != nil {
		return err
	} else if b {
		m.AddColumns(pct).RemColumns(pct)
	}
	if b, err := cmd.Flags().GetBool("rename-cols"); err != nil {
		return err
	} else if b {
		m.RenameColumns(pct)
	}
	if b, err := cmd.Flags().GetBool("move-cols"); err != nil {
		return err
	} else if b {
		m.MoveColumns(pct)
	}
	if b, err := cmd.Flags().GetBool("mod-rows"); err != nil {
		return err
	} else if b {
		m.AddRows(pct).RemoveRows(pct).ModifyRows(pct)
	}
	return w.WriteAll(m.Rows)
}
