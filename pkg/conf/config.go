// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

// Package conf defines csvt configuration and the stores that load it.
package conf

import "unicode/utf8"

type Preview struct {
	// Rows caps the number of rows loaded by the preview command. When
	// zero, preview loads at most 1000 rows.
	Rows int `yaml:"rows,omitempty" json:"rows,omitempty"`
}

type Gen struct {
	// Rows is the default number of rows produced by the gen command.
	Rows int `yaml:"rows,omitempty" json:"rows,omitempty"`

	// Columns is the default column spec of the gen command, as a comma
	// separated list of NAME:KIND pairs.
	Columns string `yaml:"columns,omitempty" json:"columns,omitempty"`
}

type Config struct {
	// Delimiter separates fields within a row. Must hold exactly one
	// character. Defaults to comma when empty.
	Delimiter string `yaml:"delimiter,omitempty" json:"delimiter,omitempty"`

	// Quote delimits quoted sections within a field. Must hold exactly
	// one character and differ from Delimiter. Defaults to double quote
	// when empty.
	Quote string `yaml:"quote,omitempty" json:"quote,omitempty"`

	// NoProgress hides progress bars when set to true.
	NoProgress *bool `yaml:"noProgress,omitempty" json:"noProgress,omitempty"`

	Preview *Preview `yaml:"preview,omitempty" json:"preview,omitempty"`

	Gen *Gen `yaml:"gen,omitempty" json:"gen,omitempty"`
}

func firstRune(s string) rune {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return 0
	}
	return r
}

// DelimiterRune returns Delimiter as a rune, or 0 when unset.
func (c *Config) DelimiterRune() rune {
	return firstRune(c.Delimiter)
}

// QuoteRune returns Quote as a rune, or 0 when unset.
func (c *Config) QuoteRune() rune {
	return firstRune(c.Quote)
}
