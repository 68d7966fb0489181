// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package csvt

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	confhelpers "github.com/wrgl/csvt/pkg/conf/helpers"
	"github.com/wrgl/csvt/pkg/stats"
	"github.com/wrgl/csvt/pkg/testutils"
	"gopkg.in/yaml.v3"
)

func TestStatsCmdYAML(t *testing.T) {
	defer confhelpers.MockGlobalConf(t, true)()
	_, cleanup := testutils.ChTempDir(t)
	defer cleanup()

	fp := testutils.WriteCSVFile(t, "", [][]string{
		{"id", "name"},
		{"1", "Alice"},
		{"2", "Bob"},
		{"3", ""},
	})

	cmd := rootCmd()
	cmd.SetArgs([]string{"stats", fp, "--format", "yaml", "--no-progress"})
	buf := bytes.NewBufferString("")
	cmd.SetOut(buf)
	cmd.SetErr(bytes.NewBufferString(""))
	require.NoError(t, cmd.Execute())

	profile := &stats.TableProfile{}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), profile))
	assert.Equal(t, uint32(3), profile.RowsCount)
	require.Len(t, profile.Columns, 2)
	assert.Equal(t, "id", profile.Columns[0].Name)
	assert.True(t, profile.Columns[0].IsNumber)
	assert.Equal(t, uint32(0), profile.Columns[0].NullCount)
	assert.Equal(t, "name", profile.Columns[1].Name)
	assert.False(t, profile.Columns[1].IsNumber)
	assert.Equal(t, uint32(1), profile.Columns[1].NullCount)
}

func TestStatsCmdTable(t *testing.T) {
	defer confhelpers.MockGlobalConf(t, true)()
	_, cleanup := testutils.ChTempDir(t)
	defer cleanup()

	fp := testutils.WriteCSVFile(t, "", [][]string{
		{"id", "name"},
		{"1", "Alice"},
		{"2", "Bob"},
	})

	cmd := rootCmd()
	cmd.SetArgs([]string{"stats", fp, "--no-progress"})
	out := execCmd(t, cmd)
	assert.Contains(t, out, "rows: 2")
	assert.Contains(t, out, "id")
	assert.Contains(t, out, "name")
	assert.Contains(t, out, "null count")
}

func TestStatsCmdBadFormat(t *testing.T) {
	defer confhelpers.MockGlobalConf(t, true)()
	_, cleanup := testutils.ChTempDir(t)
	defer cleanup()

	fp := testutils.WriteCSVFile(t, "", [][]string{{"a"}, {"1"}})
	cmd := rootCmd()
	cmd.SetArgs([]string{"stats", fp, "--format", "json", "--no-progress"})
	assertCmdFailed(t, cmd, "unknown format")
}

func TestStatsCmdRaggedRow(t *testing.T) {
	defer confhelpers.MockGlobalConf(t, true)()
	_, cleanup := testutils.ChTempDir(t)
	defer cleanup()

	fp := testutils.WriteCSVFile(t, "", [][]string{
		{"a", "b"},
		{"1", "2"},
		{""},
	})
	cmd := rootCmd()
	cmd.SetArgs([]string{"stats", fp, "--no-progress"})
	assertCmdFailed(t, cmd, "row 2 has 1 fields, expecting 2")
}
