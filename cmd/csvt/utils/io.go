// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package utils

import (
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
)

type readCloser struct {
	io.Reader
	closers []io.Closer
}

func (r *readCloser) Close() error {
	for _, c := range r.closers {
		if err := c.Close(); err != nil {
			return err
		}
	}
	return nil
}

type writeCloser struct {
	io.Writer
	closers []io.Closer
}

func (w *writeCloser) Close() error {
	for _, c := range w.closers {
		if err := c.Close(); err != nil {
			return err
		}
	}
	return nil
}

// OpenInput opens path for reading, transparently decompressing files
// ending in ".gz". An empty path or "-" reads from stdin, which is never
// closed by the returned closer.
func OpenInput(path string, stdin io.Reader) (io.ReadCloser, error) {
	if path == "" || path == "-" {
		return &readCloser{Reader: stdin}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	if strings.HasSuffix(path, ".gz") {
		gr, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, err
		}
		return &readCloser{Reader: gr, closers: []io.Closer{gr, f}}, nil
	}
	return f, nil
}

// OpenOutput opens path for writing, transparently compressing files
// ending in ".gz". An empty path or "-" writes to stdout, which is never
// closed by the returned closer.
func OpenOutput(path string, stdout io.Writer) (io.WriteCloser, error) {
	if path == "" || path == "-" {
		return &writeCloser{Writer: stdout}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	if strings.HasSuffix(path, ".gz") {
		gw := gzip.NewWriter(f)
		return &writeCloser{Writer: gw, closers: []io.Closer{gw, f}}, nil
	}
	return f, nil
}
