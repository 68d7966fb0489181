// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package csvt

import (
	"os"
	"unicode/utf8"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/wrgl/csvt/pkg/conf"
	"github.com/wrgl/csvt/pkg/csv"
)

// getConfig aggregates global and local config files. Flags and env vars
// take precedence over anything read here.
func getConfig(cmd *cobra.Command) (*conf.Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	return conf.NewStore(wd, conf.AggregateSource, "").Open()
}

func firstRune(s string) rune {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return 0
	}
	return r
}

// resolveDialect picks the effective delimiter and quote, in order of
// precedence: flag, CSVT_* env var, config file, package default.
func resolveDialect(c *conf.Config) (delimiter, quote rune) {
	delimiter = firstRune(viper.GetString("delimiter"))
	if delimiter == 0 {
		delimiter = c.DelimiterRune()
	}
	if delimiter == 0 {
		delimiter = csv.DefaultDelimiter
	}
	quote = firstRune(viper.GetString("quote"))
	if quote == 0 {
		quote = c.QuoteRune()
	}
	if quote == 0 {
		quote = csv.DefaultQuote
	}
	return delimiter, quote
}

// inputCSVOptions resolves delimiter and quote for parsing input.
func inputCSVOptions(cmd *cobra.Command, c *conf.Config) []csv.Option {
	delimiter, quote := resolveDialect(c)
	return []csv.Option{csv.WithDelimiter(delimiter), csv.WithQuote(quote)}
}

// outputCSVOptions resolves delimiter and quote for emitting output.
// The out-delimiter and out-quote flags take precedence; unset, output
// uses the same settings as input so that converting is opt-in.
func outputCSVOptions(cmd *cobra.Command, c *conf.Config) []csv.Option {
	opts := inputCSVOptions(cmd, c)
	if f := cmd.Flags().Lookup("out-delimiter"); f != nil && f.Value.String() != "" {
		opts = append(opts, csv.WithDelimiter(firstRune(f.Value.String())))
	}
	if f := cmd.Flags().Lookup("out-quote"); f != nil && f.Value.String() != "" {
		opts = append(opts, csv.WithQuote(firstRune(f.Value.String())))
	}
	return opts
}
