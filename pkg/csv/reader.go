// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package csv

import (
	"io"
	"unicode/utf8"
)

// Reader parses rows from an io.Reader one at a time. It holds at most
// one chunk of unconsumed input in memory regardless of row or field
// size, so arbitrarily large inputs can be parsed with bounded extra
// memory beyond the current row.
//
// A Reader is not safe for concurrent use.
type Reader struct {
	src       io.Reader
	delimiter rune
	quote     rune
	chunkSize int
	strict    bool

	buf    []byte
	pos    int
	chunk  []byte
	field  []byte
	eof    bool
	srcErr error
	line   int
	done   bool
}

// NewReader returns a Reader consuming rows from r.
func NewReader(r io.Reader, opts ...Option) *Reader {
	c := defaultConfig()
	for _, opt := range opts {
		opt(c)
	}
	return &Reader{
		src:       r,
		delimiter: c.delimiter,
		quote:     c.quote,
		chunkSize: c.chunkSize,
		strict:    c.strict,
		line:      1,
	}
}

// Read returns the next row. Quote characters that delimit quoted
// sections are removed, escaped quotes are unescaped, and carriage
// returns outside quoted sections are dropped, so line endings never
// leak into field values. Once the source is exhausted Read returns
// io.EOF, and keeps returning it on subsequent calls.
//
// The returned slice is not reused and may be retained by the caller.
func (r *Reader) Read() ([]string, error) {
	if r.done {
		return nil, io.EOF
	}
	var fields []string
	r.field = r.field[:0]
	inQuotes := false
	for {
		if err := r.ensureRune(); err != nil {
			r.done = true
			return nil, err
		}
		if r.pos >= len(r.buf) {
			if inQuotes && r.strict {
				r.done = true
				return nil, &ParseError{Line: r.line, Err: ErrUnterminatedQuote}
			}
			if len(r.field) > 0 || len(fields) > 0 {
				fields = append(fields, string(r.field))
				r.field = r.field[:0]
				return fields, nil
			}
			r.done = true
			return nil, io.EOF
		}
		c, size := utf8.DecodeRune(r.buf[r.pos:])
		start := r.pos
		r.pos += size
		if inQuotes {
			switch c {
			case r.quote:
				// A quote immediately followed by another quote is an
				// escaped literal quote. The lookahead may require a
				// refill when the pair straddles a chunk boundary.
				if err := r.ensureRune(); err != nil {
					r.done = true
					return nil, err
				}
				if r.pos < len(r.buf) {
					if c2, size2 := utf8.DecodeRune(r.buf[r.pos:]); c2 == r.quote {
						r.field = append(r.field, r.buf[r.pos:r.pos+size2]...)
						r.pos += size2
						continue
					}
				}
				inQuotes = false
			case '\n':
				r.line++
				r.field = append(r.field, '\n')
			default:
				r.field = append(r.field, r.buf[start:r.pos]...)
			}
			continue
		}
		switch c {
		case r.quote:
			inQuotes = true
		case r.delimiter:
			fields = append(fields, string(r.field))
			r.field = r.field[:0]
		case '\n':
			r.line++
			fields = append(fields, string(r.field))
			r.field = r.field[:0]
			return fields, nil
		case '\r':
			// part of a CRLF line ending or a stray carriage return,
			// dropped either way
		default:
			r.field = append(r.field, r.buf[start:r.pos]...)
		}
	}
}

// ReadAll consumes the remaining rows. io.EOF is treated as the end of
// input rather than an error.
func (r *Reader) ReadAll() ([][]string, error) {
	var rows [][]string
	for {
		row, err := r.Read()
		if err == io.EOF {
			return rows, nil
		}
		if err != nil {
			return rows, err
		}
		rows = append(rows, row)
	}
}

// ensureRune refills the buffer until it holds at least one complete
// rune or the source is exhausted. Bytes that do not form a valid UTF-8
// encoding are left in place and later consumed one at a time.
func (r *Reader) ensureRune() error {
	for !r.eof && (r.pos >= len(r.buf) || !utf8.FullRune(r.buf[r.pos:])) {
		if err := r.fill(); err != nil {
			return err
		}
	}
	return nil
}

// fill discards consumed bytes and appends one chunk from the source.
func (r *Reader) fill() error {
	if r.pos > 0 {
		r.buf = append(r.buf[:0], r.buf[r.pos:]...)
		r.pos = 0
	}
	if r.srcErr != nil {
		err := r.srcErr
		r.srcErr = nil
		if err == io.EOF {
			r.eof = true
			return nil
		}
		return err
	}
	if cap(r.chunk) < r.chunkSize {
		r.chunk = make([]byte, r.chunkSize)
	}
	n, err := r.src.Read(r.chunk[:r.chunkSize])
	if n > 0 {
		r.buf = append(r.buf, r.chunk[:n]...)
	}
	if err != nil {
		if n == 0 {
			if err == io.EOF {
				r.eof = true
				return nil
			}
			return err
		}
		// deliver the buffered bytes first, surface the error on the
		// next refill
		r.srcErr = err
	}
	return nil
}
