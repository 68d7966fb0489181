// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package csvt

import (
	"io"

	"github.com/pckhoi/meow"
	"github.com/spf13/cobra"
	"github.com/wrgl/csvt/cmd/csvt/utils"
	"github.com/wrgl/csvt/pkg/csv"
	"github.com/wrgl/csvt/pkg/encoding"
	"github.com/wrgl/csvt/pkg/pbar"
)

func newConvertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert [CSV_FILE]",
		Short: "Reencode a CSV stream with different delimiter or quote settings",
		Long: "Reencode a CSV stream with different delimiter or quote settings. Input is parsed\n" +
			"with the global --delimiter and --quote settings and written back out with\n" +
			"--out-delimiter and --out-quote. Files ending in .gz are decompressed and\n" +
			"compressed transparently. Without CSV_FILE, input comes from stdin.",
		Example: utils.CombineExamples([]utils.Example{
			{
				Comment: "convert a semicolon separated file to plain CSV",
				Line:    "csvt convert -d ';' --out-delimiter ',' data.ssv -o data.csv",
			},
			{
				Comment: "normalize quoting and line endings in place of a pipe",
				Line:    "cat messy.csv | csvt convert > clean.csv",
			},
			{
				Comment: "drop duplicate rows while compressing the output",
				Line:    "csvt convert data.csv --dedup -o data.csv.gz",
			},
		}),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := getConfig(cmd)
			if err != nil {
				return err
			}
			inOpts := inputCSVOptions(cmd, c)
			if strict, err := cmd.Flags().GetBool("strict"); err != nil {
				return err
			} else if strict {
				inOpts = append(inOpts, csv.StrictQuotes())
			}
			dedup, err := cmd.Flags().GetBool("dedup")
			if err != nil {
				return err
			}
			outFile, err := cmd.Flags().GetString("output")
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
			container, err := utils.GetProgressBarContainer(cmd, outFile == "" && !utils.StdoutIsTTY())
			if err != nil {
				return err
			}
			bar := container.NewBar(-1, "converting rows", 0)
			if err = convertRows(
				csv.NewReader(in, inOpts...),
				csv.NewWriter(out, outputCSVOptions(cmd, c)...),
				dedup, bar,
			); err != nil {
				bar.Abort()
				container.Wait()
				out.Close()
				return err
			}
			bar.Done()
			container.Wait()
			return out.Close()
		},
	}
	cmd.Flags().String("out-delimiter", "", "field delimiter of the output. Defaults to the input delimiter.")
	cmd.Flags().String("out-quote", "", "quote character of the output. Defaults to the input quote.")
	cmd.Flags().StringP("output", "o", "", "write output to this file instead of stdout")
	cmd.Flags().Bool("dedup", false, "drop rows that already appeared earlier in the stream")
	cmd.Flags().Bool("strict", false, "fail on unterminated quoted section instead of flushing it")
	return cmd
}

func convertRows(r *csv.Reader, w *csv.Writer, dedup bool, bar pbar.Bar) error {
	var seen map[[16]byte]struct{}
	var enc *encoding.RowEncoder
	if dedup {
		seen = map[[16]byte]struct{}{}
		enc = encoding.NewRowEncoder(true)
	}
	for {
		row, err := r.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if dedup {
			sum := meow.Checksum(0, enc.Encode(row))
			if _, ok := seen[sum]; ok {
				continue
			}
			seen[sum] = struct{}{}
		}
		if err = w.Write(row); err != nil {
			return err
		}
		bar.Incr()
	}
}
