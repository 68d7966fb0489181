// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package utils

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/wrgl/csvt/pkg/pbar"
)

func SetupProgressBarFlags(flags *pflag.FlagSet) {
	flags.Bool("no-progress", false, "don't display progress bar")
}

// GetProgressBarContainer returns a progress bar container rendering to
// stderr, so that data written to stdout stays clean. Bars are silenced
// by --no-progress or when quiet is true.
func GetProgressBarContainer(cmd *cobra.Command, quiet bool) (*pbar.Container, error) {
	noP, err := cmd.Flags().GetBool("no-progress")
	if err != nil {
		return nil, err
	}
	return pbar.NewContainer(cmd.ErrOrStderr(), noP || quiet), nil
}
