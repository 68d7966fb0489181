// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package csvt

import (
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	confhelpers "github.com/wrgl/csvt/pkg/conf/helpers"
	"github.com/wrgl/csvt/pkg/testutils"
)

func TestGenCmd(t *testing.T) {
	defer confhelpers.MockGlobalConf(t, true)()
	_, cleanup := testutils.ChTempDir(t)
	defer cleanup()

	fp := filepath.Join(t.TempDir(), "sample.csv")
	cmd := rootCmd()
	cmd.SetArgs([]string{"gen", "--rows", "5", "--columns", "id:seq,word:word", "--seed", "42", "-o", fp, "--no-progress"})
	assertCmdOutput(t, cmd, "")

	rows := testutils.ReadCSVFile(t, fp)
	require.Len(t, rows, 6)
	assert.Equal(t, []string{"id", "word"}, rows[0])
	for i, row := range rows[1:] {
		require.Len(t, row, 2)
		assert.Equal(t, strconv.Itoa(i+1), row[0])
		assert.NotEmpty(t, row[1])
	}
}

func TestGenCmdBadColumnSpec(t *testing.T) {
	defer confhelpers.MockGlobalConf(t, true)()
	_, cleanup := testutils.ChTempDir(t)
	defer cleanup()

	cmd := rootCmd()
	cmd.SetArgs([]string{"gen", "--columns", "id:nope", "--no-progress"})
	assertCmdFailed(t, cmd, "unknown kind")
}

func TestGenCmdBasedOn(t *testing.T) {
	defer confhelpers.MockGlobalConf(t, true)()
	_, cleanup := testutils.ChTempDir(t)
	defer cleanup()

	orig := testutils.BuildRawCSV(5, 10)
	fp := testutils.WriteCSVFile(t, "", orig)

	out := filepath.Join(t.TempDir(), "variant.csv")
	cmd := rootCmd()
	cmd.SetArgs([]string{"gen", "--based-on", fp, "--rename-cols", "--seed", "7", "-o", out, "--no-progress"})
	assertCmdOutput(t, cmd, "")

	rows := testutils.ReadCSVFile(t, out)
	// renaming never changes the shape
	require.Len(t, rows, len(orig))
	require.Len(t, rows[0], len(orig[0]))
	assert.Equal(t, orig[1:], rows[1:])
}

func TestGenCmdBasedOnModRows(t *testing.T) {
	defer confhelpers.MockGlobalConf(t, true)()
	_, cleanup := testutils.ChTempDir(t)
	defer cleanup()

	orig := testutils.BuildRawCSV(5, 10)
	fp := testutils.WriteCSVFile(t, "", orig)

	out := filepath.Join(t.TempDir(), "variant.csv")
	cmd := rootCmd()
	cmd.SetArgs([]string{"gen", "--based-on", fp, "--mod-rows", "--seed", "7", "-o", out, "--no-progress"})
	assertCmdOutput(t, cmd, "")

	rows := testutils.ReadCSVFile(t, out)
	assert.Equal(t, orig[0], rows[0])
	for _, row := range rows {
		require.Len(t, row, len(orig[0]))
	}
}
