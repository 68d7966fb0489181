// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package csvt

import (
	"os"
	"runtime/pprof"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/wrgl/csvt/cmd/csvt/utils"
)

func RootCmd() *cobra.Command {
	return rootCmd()
}

func rootCmd() *cobra.Command {
	var logCleanup func()
	rootCmd := &cobra.Command{
		Use:   "csvt",
		Short: "Streaming CSV toolkit",
		Long: "Csvt reads and writes delimiter-separated values as streams. It converts\n" +
			"between dialects, previews, profiles, sorts, samples and indexes CSV files\n" +
			"of any size without loading them into memory.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cpuprofile, err := cmd.Flags().GetString("cpuprofile")
			if err != nil {
				return err
			}
			if cpuprofile != "" {
				f, err := os.Create(cpuprofile)
				if err != nil {
					return err
				}
				pprof.StartCPUProfile(f)
			}
			logCleanup, err = utils.SetupLogger(cmd)
			return err
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			pprof.StopCPUProfile()
			if logCleanup != nil {
				logCleanup()
			}
			heapprofile, err := cmd.Flags().GetString("heapprofile")
			if err != nil {
				return err
			}
			if heapprofile != "" {
				f, err := os.Create(heapprofile)
				if err != nil {
					return err
				}
				defer f.Close()
				err = pprof.WriteHeapProfile(f)
				if err != nil {
					return err
				}
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Usage()
		},
	}
	viper.SetEnvPrefix("csvt")
	rootCmd.PersistentFlags().StringP("delimiter", "d", "", "field delimiter. Defaults to comma.")
	viper.BindEnv("delimiter")
	viper.BindPFlag("delimiter", rootCmd.PersistentFlags().Lookup("delimiter"))
	rootCmd.PersistentFlags().String("quote", "", "quote character. Defaults to double quote.")
	viper.BindEnv("quote")
	viper.BindPFlag("quote", rootCmd.PersistentFlags().Lookup("quote"))
	rootCmd.PersistentFlags().String("badger-log", "", `set Badger log level, valid options are "error", "warning", "debug", and "info" (defaults to "error")`)
	rootCmd.PersistentFlags().String("cpuprofile", "", "write cpu profile to file")
	rootCmd.PersistentFlags().String("heapprofile", "", "write heap profile to file")
	utils.SetupProgressBarFlags(rootCmd.PersistentFlags())
	utils.AddLoggerFlags(rootCmd.PersistentFlags())
	rootCmd.AddCommand(newConvertCmd())
	rootCmd.AddCommand(newHeadCmd())
	rootCmd.AddCommand(newStatsCmd())
	rootCmd.AddCommand(newSelectCmd())
	rootCmd.AddCommand(newSortCmd())
	rootCmd.AddCommand(newGenCmd())
	rootCmd.AddCommand(newIndexCmd())
	rootCmd.AddCommand(newGetCmd())
	rootCmd.AddCommand(newToSQLCmd())
	rootCmd.AddCommand(newPreviewCmd())
	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}
