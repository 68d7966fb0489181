// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package utils

import (
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// GetRuneFromFlag reads a string flag expected to hold a single
// character, returning 0 when the flag is unset.
func GetRuneFromFlag(cmd *cobra.Command, flag string) (rune, error) {
	s, err := cmd.Flags().GetString(flag)
	if err != nil {
		return 0, err
	}
	if s != "" {
		r, size := utf8.DecodeRuneInString(s)
		if size > 0 {
			return r, nil
		}
		return 0, fmt.Errorf("error reading rune from flag %q: could not decode rune in %q", flag, s)
	}
	return 0, nil
}

// StdoutIsTTY reports whether the process stdout is attached to a
// terminal. Color and progress output are disabled when it is not.
func StdoutIsTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
