package sqlutil_test

import (
	"database/sql"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wrgl/csvt/pkg/sqlutil"
	"github.com/wrgl/csvt/pkg/testutils"
)

func TestQuoteIdent(t *testing.T) {
	assert.Equal(t, `"name"`, sqlutil.QuoteIdent("name"))
	assert.Equal(t, `"full name"`, sqlutil.QuoteIdent("full name"))
	assert.Equal(t, `"say ""hi"""`, sqlutil.QuoteIdent(`say "hi"`))
}

func TestCreateAndInsertRows(t *testing.T) {
	db, stop := testutils.CreateSQLDB(t, nil)
	defer stop()

	columns := []string{"id", "full name", `note "quoted"`}
	rows := [][]string{}
	for i := 0; i < 1000; i++ {
		rows = append(rows, []string{
			strconv.Itoa(i), testutils.BrokenRandomAlphaNumericString(8), "",
		})
	}
	require.NoError(t, sqlutil.RunInTx(db, func(tx *sql.Tx) error {
		if err := sqlutil.CreateRowsTable(tx, "data", columns); err != nil {
			return err
		}
		return sqlutil.InsertRows(tx, "data", columns, rows)
	}))

	n, err := sqlutil.CountRows(db, "data")
	require.NoError(t, err)
	assert.Equal(t, 1000, n)

	var id, name string
	found := [][]string{}
	require.NoError(t, sqlutil.QueryRows(db,
		`SELECT "id", "full name" FROM "data" WHERE "id" IN (?, ?) ORDER BY CAST("id" AS INTEGER)`,
		[]interface{}{"12", "999"},
		[]interface{}{&id, &name},
		func() error {
			found = append(found, []string{id, name})
			return nil
		},
	))
	require.Len(t, found, 2)
	assert.Equal(t, rows[12][:2], found[0])
	assert.Equal(t, rows[999][:2], found[1])
}

func TestCreateRowsTableReplacesPrevious(t *testing.T) {
	db, stop := testutils.CreateSQLDB(t, nil)
	defer stop()

	require.NoError(t, sqlutil.RunInTx(db, func(tx *sql.Tx) error {
		if err := sqlutil.CreateRowsTable(tx, "data", []string{"a"}); err != nil {
			return err
		}
		return sqlutil.InsertRows(tx, "data", []string{"a"}, [][]string{{"1"}})
	}))
	require.NoError(t, sqlutil.RunInTx(db, func(tx *sql.Tx) error {
		return sqlutil.CreateRowsTable(tx, "data", []string{"a", "b"})
	}))
	n, err := sqlutil.CountRows(db, "data")
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestInsertRowsFieldCountMismatch(t *testing.T) {
	db, stop := testutils.CreateSQLDB(t, nil)
	defer stop()

	err := sqlutil.RunInTx(db, func(tx *sql.Tx) error {
		if err := sqlutil.CreateRowsTable(tx, "data", []string{"a", "b"}); err != nil {
			return err
		}
		return sqlutil.InsertRows(tx, "data", []string{"a", "b"}, [][]string{{"1"}})
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row has 1 fields, expecting 2")
}
