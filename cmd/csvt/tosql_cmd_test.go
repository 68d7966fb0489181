// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package csvt

import (
	"database/sql"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	confhelpers "github.com/wrgl/csvt/pkg/conf/helpers"
	"github.com/wrgl/csvt/pkg/sqlutil"
	"github.com/wrgl/csvt/pkg/testutils"
)

func TestToSQLCmd(t *testing.T) {
	defer confhelpers.MockGlobalConf(t, true)()
	_, cleanup := testutils.ChTempDir(t)
	defer cleanup()

	fp := testutils.WriteCSVFile(t, "", [][]string{
		{"id", "name"},
		{"1", "Alice"},
		{"2", "Bob"},
		{"3", "Carol"},
	})
	dbPath := filepath.Join(t.TempDir(), "data.sqlite")

	cmd := rootCmd()
	cmd.SetArgs([]string{"tosql", fp, "--db", dbPath, "--table", "people", "--no-progress"})
	assertCmdOutput(t, cmd, "loaded 3 rows into table people\n")

	db, err := sql.Open("sqlite3", dbPath)
	require.NoError(t, err)
	defer db.Close()
	n, err := sqlutil.CountRows(db, "people")
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	var name string
	require.NoError(t, sqlutil.QueryRows(db, `SELECT "name" FROM "people" WHERE "id" = ?`, []interface{}{"2"}, []interface{}{&name}, func() error {
		return nil
	}))
	assert.Equal(t, "Bob", name)
}

func TestToSQLCmdRaggedRow(t *testing.T) {
	defer confhelpers.MockGlobalConf(t, true)()
	_, cleanup := testutils.ChTempDir(t)
	defer cleanup()

	fp := testutils.WriteCSVFile(t, "", [][]string{
		{"id", "name"},
		{"1", "Alice"},
		{"2"},
	})
	dbPath := filepath.Join(t.TempDir(), "data.sqlite")

	cmd := rootCmd()
	cmd.SetArgs([]string{"tosql", fp, "--db", dbPath, "--no-progress"})
	assertCmdFailed(t, cmd, "expecting 2")
}

func TestTableNameFromPath(t *testing.T) {
	for _, c := range []struct {
		path string
		name string
	}{
		{"data.csv", "data"},
		{"out/daily sales.csv.gz", "daily_sales"},
		{"", "rows"},
		{"-", "rows"},
	} {
		assert.Equal(t, c.name, tableNameFromPath(c.path), fmt.Sprintf("path %q", c.path))
	}
}
