// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

// Package csv reads and writes delimiter-separated rows as streams.
//
// Unlike encoding/csv it never buffers more than one chunk of input at a
// time, preserves fields byte for byte, and lets both the delimiter and
// the quote character be arbitrary runes. Rows produced by Writer parse
// back to the same fields when Reader is configured with the same options.
package csv

const (
	// DefaultChunkSize is the number of bytes a Reader requests from its
	// source per refill.
	DefaultChunkSize = 4096

	// DefaultDelimiter separates fields within a row.
	DefaultDelimiter = ','

	// DefaultQuote delimits quoted sections within a field.
	DefaultQuote = '"'
)

type config struct {
	delimiter rune
	quote     rune
	chunkSize int
	strict    bool
}

func defaultConfig() *config {
	return &config{
		delimiter: DefaultDelimiter,
		quote:     DefaultQuote,
		chunkSize: DefaultChunkSize,
	}
}

// Option configures a Reader or a Writer. The same options can be passed
// to both ends so that output written by one is readable by the other.
type Option func(c *config)

// WithDelimiter sets the field delimiter. The delimiter must differ from
// the quote character, otherwise quoted sections cannot be recognized.
func WithDelimiter(r rune) Option {
	return func(c *config) {
		c.delimiter = r
	}
}

// WithQuote sets the quote character.
func WithQuote(r rune) Option {
	return func(c *config) {
		c.quote = r
	}
}

// WithChunkSize sets the size in bytes of each read from the underlying
// source. Values below 1 are ignored. Writers do not chunk their output
// so this option has no effect on them.
func WithChunkSize(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.chunkSize = n
		}
	}
}

// StrictQuotes makes a Reader return a ParseError wrapping
// ErrUnterminatedQuote when input ends inside a quoted section. By
// default such input is tolerated and pending characters are flushed as
// the final field. Writers ignore this option.
func StrictQuotes() Option {
	return func(c *config) {
		c.strict = true
	}
}
