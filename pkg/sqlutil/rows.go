package sqlutil

import (
	"database/sql"
	"fmt"
	"strings"
)

// maxVars is the lowest default bind-variable limit among SQLite
// builds. Multi-row inserts are chunked to stay under it.
const maxVars = 999

// QuoteIdent quotes an identifier so that arbitrary column names, which
// may contain spaces or quotes, are usable in statements.
func QuoteIdent(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// CreateRowsTable creates a table with a TEXT column per CSV column,
// dropping any previous table with the same name.
func CreateRowsTable(tx *sql.Tx, table string, columns []string) error {
	if _, err := tx.Exec(fmt.Sprintf(`DROP TABLE IF EXISTS %s`, QuoteIdent(table))); err != nil {
		return err
	}
	defs := make([]string, len(columns))
	for i, col := range columns {
		defs[i] = QuoteIdent(col) + " TEXT"
	}
	_, err := tx.Exec(fmt.Sprintf(
		`CREATE TABLE %s (%s)`, QuoteIdent(table), strings.Join(defs, ", "),
	))
	return err
}

// InsertRows inserts rows into table with one statement per chunk of
// rows, keeping each statement under the bind-variable limit. Every row
// must have exactly len(columns) fields.
func InsertRows(tx *sql.Tx, table string, columns []string, rows [][]string) error {
	if len(rows) == 0 {
		return nil
	}
	names := make([]string, len(columns))
	for i, col := range columns {
		names[i] = QuoteIdent(col)
	}
	rowsPerStmt := maxVars / len(columns)
	if rowsPerStmt == 0 {
		return fmt.Errorf("too many columns: %d", len(columns))
	}
	tuple := "(" + strings.TrimSuffix(strings.Repeat("?,", len(columns)), ",") + ")"
	for len(rows) > 0 {
		n := rowsPerStmt
		if n > len(rows) {
			n = len(rows)
		}
		args := make([]interface{}, 0, n*len(columns))
		for _, row := range rows[:n] {
			if len(row) != len(columns) {
				return fmt.Errorf("row has %d fields, expecting %d", len(row), len(columns))
			}
			for _, field := range row {
				args = append(args, field)
			}
		}
		tuples := strings.TrimSuffix(strings.Repeat(tuple+",", n), ",")
		if _, err := tx.Exec(fmt.Sprintf(
			`INSERT INTO %s (%s) VALUES %s`, QuoteIdent(table), strings.Join(names, ", "), tuples,
		), args...); err != nil {
			return err
		}
		rows = rows[n:]
	}
	return nil
}

// CountRows returns the number of rows in table.
func CountRows(db DB, table string) (n int, err error) {
	err = QueryRows(db, fmt.Sprintf(`SELECT COUNT(*) FROM %s`, QuoteIdent(table)), nil, []interface{}{&n}, func() error {
		return nil
	})
	return
}
