// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package csvt

import (
	"database/sql"
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"strings"

	_ "github.com/mattn/go-sqlite3"
	"github.com/spf13/cobra"
	"github.com/wrgl/csvt/cmd/csvt/utils"
	"github.com/wrgl/csvt/pkg/csv"
	"github.com/wrgl/csvt/pkg/pbar"
	"github.com/wrgl/csvt/pkg/sqlutil"
)

// insertBatchSize is the number of rows loaded per transaction.
const insertBatchSize = 1000

var tableNameCleaner = regexp.MustCompile(`[^a-zA-Z0-9_]+`)

// tableNameFromPath derives a SQL table name from a CSV file path, e.g.
// "out/daily sales.csv.gz" becomes "daily_sales".
func tableNameFromPath(path string) string {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, ".gz")
	base = strings.TrimSuffix(base, filepath.Ext(base))
	name := tableNameCleaner.ReplaceAllString(base, "_")
	name = strings.Trim(name, "_")
	if name == "" {
		return "rows"
	}
	return name
}

func newToSQLCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tosql [CSV_FILE]",
		Short: "Load a CSV stream into a SQLite database",
		Long: "Load a CSV stream into a SQLite database. All columns are created as TEXT,\n" +
			"matching CSV's untyped fields. Rows are inserted in batched transactions.",
		Example: utils.CombineExamples([]utils.Example{
			{
				Comment: "load a file into a table named after it",
				Line:    "csvt tosql data.csv --db data.sqlite",
			},
			{
				Comment: "load from stdin into an explicit table",
				Line:    "cat data.csv | csvt tosql --db data.sqlite --table staging",
			},
		}),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dbPath, err := cmd.Flags().GetString("db")
			if err != nil {
				return err
			}
			table, err := cmd.Flags().GetString("table")
			if err != nil {
				return err
			}
			var inFile string
			if len(args) > 0 {
				inFile = args[0]
			}
			if table == "" {
				table = tableNameFromPath(inFile)
			}
			c, err := getConfig(cmd)
			if err != nil {
				return err
			}
			in, err := utils.OpenInput(inFile, cmd.InOrStdin())
			if err != nil {
				return err
			}
			defer in.Close()
			db, err := sql.Open("sqlite3", dbPath)
			if err != nil {
				return err
			}
			defer db.Close()
			container, err := utils.GetProgressBarContainer(cmd, false)
			if err != nil {
				return err
			}
			bar := container.NewBar(-1, "loading rows", 0)
			n, err := loadRows(csv.NewReader(in, inputCSVOptions(cmd, c)...), db, table, bar)
			if err != nil {
				bar.Abort()
				container.Wait()
				return err
			}
			bar.Done()
			container.Wait()
			cmd.Printf("loaded %d rows into table %s\n", n, table)
			return nil
		},
	}
	cmd.Flags().String("db", "", "path of the SQLite database file (required)")
	cmd.MarkFlagRequired("db")
	cmd.Flags().String("table", "", "name of the destination table. Defaults to a name derived from CSV_FILE.")
	return cmd
}

func loadRows(r *csv.Reader, db *sql.DB, table string, bar pbar.Bar) (n int, err error) {
	columns, err := r.Read()
	if err == io.EOF {
		return 0, fmt.Errorf("empty input")
	}
	if err != nil {
		return 0, err
	}
	if err = sqlutil.RunInTx(db, func(tx *sql.Tx) error {
		return sqlutil.CreateRowsTable(tx, table, columns)
	}); err != nil {
		return 0, err
	}
	batch := make([][]string, 0, insertBatchSize)
	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		if err := sqlutil.RunInTx(db, func(tx *sql.Tx) error {
			return sqlutil.InsertRows(tx, table, columns, batch)
		}); err != nil {
			return err
		}
		n += len(batch)
		bar.IncrBy(len(batch))
		batch = batch[:0]
		return nil
	}
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return n, err
		}
		if len(row) != len(columns) {
			return n, fmt.Errorf("row %d has %d fields, expecting %d", n+len(batch)+1, len(row), len(columns))
		}
		batch = append(batch, row)
		if len(batch) == insertBatchSize {
			if err = flush(); err != nil {
				return n, err
			}
		}
	}
	return n, flush()
}
