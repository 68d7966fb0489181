// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

// Package sorter sorts CSV rows by key columns without holding the
// whole input in memory: rows buffer up to a run size, full runs spill
// to temp files as sorted encoded rows, and the output is a k-way merge
// of all runs plus the rows still in memory.
package sorter

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/wrgl/csvt/pkg/csv"
	"github.com/wrgl/csvt/pkg/encoding"
	"github.com/wrgl/csvt/pkg/mem"
	"github.com/wrgl/csvt/pkg/pbar"
	"github.com/wrgl/csvt/pkg/slice"
	"github.com/wrgl/csvt/pkg/testutils"
)

func getRunSize() (uint64, error) {
	total, err := mem.GetTotalMem()
	if err != nil {
		return 0, err
	}
	avail, err := mem.GetAvailMem()
	if err != nil {
		return 0, err
	}
	size := avail
	if size < total/8 {
		size = total / 8
	}
	return size / 4, nil
}

func writeRun(rows [][]string) (*os.File, error) {
	f, err := testutils.TempFile("", "sorted_run_*")
	if err != nil {
		return nil, err
	}
	w := bufio.NewWriter(f)
	enc := encoding.NewRowEncoder(true)
	for _, row := range rows {
		if _, err := w.Write(enc.Encode(row)); err != nil {
			return nil, err
		}
	}
	if err := w.Flush(); err != nil {
		return nil, err
	}
	if _, err = f.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}
	return f, nil
}

// Sorter emits rows of a single CSV input ordered by key columns.
type Sorter struct {
	Key       []uint32
	Columns   []string
	RowsCount uint32

	runSize  uint64
	size     uint64
	bar      pbar.Bar
	runs     []io.Reader
	current  [][]string
	cleanups []func() error
	csvOpts  []csv.Option
}

type SorterOption func(s *Sorter)

// WithRunSize caps the decoded byte size of rows buffered in memory
// before they spill to a temp file.
func WithRunSize(n uint64) SorterOption {
	return func(s *Sorter) {
		s.runSize = n
	}
}

// WithProgressBar ticks bar once per row added.
func WithProgressBar(bar pbar.Bar) SorterOption {
	return func(s *Sorter) {
		s.bar = bar
	}
}

// WithCSVOptions configures how SortFile parses its input.
func WithCSVOptions(opts ...csv.Option) SorterOption {
	return func(s *Sorter) {
		s.csvOpts = opts
	}
}

func NewSorter(opts ...SorterOption) (s *Sorter, err error) {
	s = &Sorter{}
	for _, opt := range opts {
		opt(s)
	}
	if s.runSize == 0 {
		s.runSize, err = getRunSize()
		if err != nil {
			return nil, err
		}
	}
	return s, nil
}

func rowIsLess(key []uint32, a, b []string) bool {
	if len(key) == 0 {
		for i, s := range a {
			if s < b[i] {
				return true
			} else if s > b[i] {
				return false
			}
		}
		return false
	}
	for _, u := range key {
		if a[u] < b[u] {
			return true
		} else if a[u] > b[u] {
			return false
		}
	}
	return false
}

// SortRows orders rows in place by the given key column indices. An
// empty key compares whole rows.
func SortRows(rows [][]string, key []uint32) {
	sort.Slice(rows, func(i, j int) bool {
		return rowIsLess(key, rows[i], rows[j])
	})
}

// AddRow buffers a row, spilling the current run once it outgrows the
// run size.
func (s *Sorter) AddRow(row []string) error {
	s.size += 4
	for _, str := range row {
		s.size += uint64(len(str)) + 4
	}
	if s.bar != nil {
		s.bar.Incr()
	}
	s.RowsCount++
	l := len(s.current)
	if l == cap(s.current) {
		s.current = append(s.current, nil)
	} else {
		s.current = s.current[:l+1]
	}
	if s.current[l] == nil || cap(s.current[l]) < len(row) {
		s.current[l] = make([]string, len(row))
	} else {
		s.current[l] = s.current[l][:len(row)]
	}
	copy(s.current[l], row)
	if s.size >= s.runSize {
		s.size = 0
		SortRows(s.current, s.Key)
		run, err := writeRun(s.current)
		if err != nil {
			return err
		}
		s.runs = append(s.runs, bufio.NewReader(run))
		s.current = s.current[:0]
		s.cleanups = append(s.cleanups, func() error {
			if err := run.Close(); err != nil {
				return err
			}
			return os.Remove(run.Name())
		})
	}
	return nil
}

// SortFile parses the header and rows of f, ordering rows by the named
// key columns. With no key columns rows sort by all columns left to
// right.
func (s *Sorter) SortFile(f io.ReadCloser, key []string) (err error) {
	r := csv.NewReader(f, s.csvOpts...)
	row, err := r.Read()
	if err != nil {
		return
	}
	s.Columns = append(s.Columns, row...)
	s.Key, err = slice.KeyIndices(s.Columns, key)
	if err != nil {
		return
	}
	s.size = 0
	n := 0
	for {
		row, err = r.Read()
		if err == io.EOF {
			err = nil
			break
		} else if err != nil {
			return
		}
		n++
		if len(row) != len(s.Columns) {
			return fmt.Errorf("row %d has %d fields, expecting %d", n, len(row), len(s.Columns))
		}
		if err = s.AddRow(row); err != nil {
			return
		}
	}
	if s.bar != nil {
		s.bar.Done()
	}
	return f.Close()
}

// Rows is a batch of sorted rows. Offset counts batches from zero in
// output order.
type Rows struct {
	Offset int
	Rows   [][]string
}

const batchSize = 255

// SortedRows merges the spilled runs and in-memory rows into batches
// sent in sort order. Merge failures are sent to errChan and the
// channel closes early.
func (s *Sorter) SortedRows(errChan chan<- error) (rowsCh chan *Rows) {
	rowsCh = make(chan *Rows, 10)
	go func() {
		defer close(rowsCh)
		rows := make([][]string, 0, batchSize)
		offset := 0
		n := len(s.runs)
		runRows := make([][]string, n)
		runEOF := make([]bool, n)
		dec := encoding.NewRowDecoder(false)
		SortRows(s.current, s.Key)
		for {
			minInd := 0
			var minRow []string
			for i, run := range s.runs {
				if runEOF[i] {
					continue
				}
				if runRows[i] == nil {
					_, row, err := dec.Read(run)
					if err == io.EOF {
						runEOF[i] = true
					} else if err != nil {
						errChan <- err
						return
					}
					if len(row) > 0 {
						runRows[i] = row
					} else {
						continue
					}
				}
				if minRow == nil || rowIsLess(s.Key, runRows[i], minRow) {
					minRow = runRows[i]
					minInd = i
				}
			}
			if len(s.current) > 0 {
				if minRow == nil || rowIsLess(s.Key, s.current[0], minRow) {
					minRow = s.current[0]
					minInd = n
				}
			}
			if minRow == nil {
				break
			}
			rows = append(rows, minRow)
			if minInd < n {
				runRows[minInd] = nil
			} else {
				s.current = s.current[1:]
			}
			if len(rows) == batchSize {
				rowsCh <- &Rows{
					Offset: offset,
					Rows:   rows,
				}
				offset++
				rows = make([][]string, 0, batchSize)
			}
		}
		if len(rows) > 0 {
			rowsCh <- &Rows{
				Offset: offset,
				Rows:   rows,
			}
		}
	}()
	return rowsCh
}

// Close removes all spilled runs.
func (s *Sorter) Close() error {
	for _, f := range s.cleanups {
		if err := f(); err != nil {
			return err
		}
	}
	return nil
}
