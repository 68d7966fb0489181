// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package csv

import (
	"errors"
	"fmt"
)

// ErrUnterminatedQuote is returned wrapped in a ParseError when a Reader
// configured with StrictQuotes reaches the end of input inside a quoted
// section.
var ErrUnterminatedQuote = errors.New("unterminated quoted section")

// ParseError describes an error encountered while parsing. Line is the
// 1-based line number at which the quoted section that caused the error
// was still open.
type ParseError struct {
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error on line %d: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
