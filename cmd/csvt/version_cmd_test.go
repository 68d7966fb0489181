// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package csvt

import (
	"testing"
)

func TestVersionCmd(t *testing.T) {
	cmd := rootCmd()
	cmd.SetArgs([]string{"version"})
	assertCmdOutput(t, cmd, "csvt v0.1.0\n")
}
