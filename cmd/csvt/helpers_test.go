// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package csvt

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wrgl/csvt/pkg/csv"
)

func assertCmdOutput(t *testing.T, cmd *cobra.Command, output string) {
	t.Helper()
	buf := bytes.NewBufferString("")
	cmd.SetOut(buf)
	cmd.SetErr(bytes.NewBufferString(""))
	err := cmd.Execute()
	assert.Equal(t, output, buf.String())
	require.NoError(t, err)
}

func assertCmdFailed(t *testing.T, cmd *cobra.Command, msg string) {
	t.Helper()
	buf := bytes.NewBufferString("")
	cmd.SetOut(buf)
	cmd.SetErr(bytes.NewBufferString(""))
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), msg)
}

func execCmd(t *testing.T, cmd *cobra.Command) string {
	t.Helper()
	buf := bytes.NewBufferString("")
	cmd.SetOut(buf)
	cmd.SetErr(bytes.NewBufferString(""))
	require.NoError(t, cmd.Execute())
	return buf.String()
}

func rawCSV(t *testing.T, rows [][]string, opts ...csv.Option) string {
	t.Helper()
	buf := bytes.NewBufferString("")
	require.NoError(t, csv.NewWriter(buf, opts...).WriteAll(rows))
	return buf.String()
}
