// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package csv

import (
	"io"
	"strings"
	"unicode/utf8"
)

// EscapeField returns field in a form safe to place in a row that uses
// the given delimiter and quote. Fields containing the delimiter, the
// quote, a line feed or a carriage return are wrapped in quotes, with
// any embedded quote doubled. All other fields are returned unchanged.
func EscapeField(field string, delimiter, quote rune) string {
	q := string(quote)
	needsQuotes := strings.ContainsRune(field, delimiter) ||
		strings.Contains(field, q) ||
		strings.ContainsAny(field, "\n\r")
	if !needsQuotes {
		return field
	}
	if strings.Contains(field, q) {
		field = strings.ReplaceAll(field, q, q+q)
	}
	return q + field + q
}

// Writer emits rows to an io.Writer. Each row becomes exactly one call
// to the underlying writer, so when that call fails the row is dropped
// as a whole and previously written rows stay intact. There is no
// buffering and nothing to flush.
//
// A Writer is not safe for concurrent use.
type Writer struct {
	dst       io.Writer
	delimiter rune
	quote     rune
	line      []byte
}

// NewWriter returns a Writer emitting rows to w.
func NewWriter(w io.Writer, opts ...Option) *Writer {
	c := defaultConfig()
	for _, opt := range opts {
		opt(c)
	}
	return &Writer{
		dst:       w,
		delimiter: c.delimiter,
		quote:     c.quote,
	}
}

// Write escapes each field of record, joins them with the delimiter,
// appends a line feed and writes the result. An empty record produces a
// bare line feed, which reads back as a row holding a single empty
// field.
func (w *Writer) Write(record []string) error {
	w.line = w.line[:0]
	for i, field := range record {
		if i > 0 {
			w.line = utf8.AppendRune(w.line, w.delimiter)
		}
		w.line = append(w.line, EscapeField(field, w.delimiter, w.quote)...)
	}
	w.line = append(w.line, '\n')
	_, err := w.dst.Write(w.line)
	return err
}

// WriteAll writes records in order, stopping at the first error.
func (w *Writer) WriteAll(records [][]string) error {
	for _, record := range records {
		if err := w.Write(record); err != nil {
			return err
		}
	}
	return nil
}
