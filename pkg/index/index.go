// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

// Package index persists CSV rows in a Badger store keyed by primary key
// hash, for point lookups without rescanning the source file.
package index

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/dgraph-io/badger/v3"
	"github.com/go-logr/logr"
	"github.com/klauspost/compress/s2"
	"github.com/pckhoi/meow"
	"github.com/wrgl/csvt/pkg/csv"
	"github.com/wrgl/csvt/pkg/encoding"
	"github.com/wrgl/csvt/pkg/pbar"
	"github.com/wrgl/csvt/pkg/slice"
)

var (
	rowPrefix  = []byte("row/")
	columnsKey = []byte("meta/columns")
	pkKey      = []byte("meta/pk")
	rowsKey    = []byte("meta/rows")
	dupsKey    = []byte("meta/duplicates")
)

func rowKey(sum []byte) []byte {
	return append(rowPrefix, sum...)
}

type options struct {
	pt             pbar.Bar
	debugLogger    *logr.Logger
	badgerLogLevel string
}

type Option func(o *options)

func WithProgressBar(pt pbar.Bar) Option {
	return func(o *options) {
		o.pt = pt
	}
}

func WithDebugLogger(l *logr.Logger) Option {
	return func(o *options) {
		o.debugLogger = l
	}
}

// WithBadgerLogLevel alters Badger's own log output. Valid levels are
// "debug", "info", "warning" and "error".
func WithBadgerLogLevel(level string) Option {
	return func(o *options) {
		o.badgerLogLevel = level
	}
}

func applyOptions(opts []Option) *options {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Index is a set of rows from a single CSV file addressable by their
// primary key values. Each row is saved under the meow hash of its
// primary key, s2-compressed. When two rows share a key the later row
// wins and the earlier one is counted as a duplicate.
type Index struct {
	db        *badger.DB
	dir       string
	columns   []string
	pk        []string
	rowsCount uint32
	dupsCount uint32
	enc       *encoding.RowEncoder
	dec       *encoding.RowDecoder
	buf       []byte
}

func newIndex(db *badger.DB, dir string) *Index {
	return &Index{
		db:  db,
		dir: dir,
		enc: encoding.NewRowEncoder(true),
		dec: encoding.NewRowDecoder(false),
	}
}

// Create builds a new index at dir from rows read off r. The first row
// names the columns, pk names the columns making up the primary key.
// With an empty pk each row is keyed by its entire content.
func Create(dir string, r *csv.Reader, pk []string, opts ...Option) (*Index, error) {
	c := applyOptions(opts)
	columns, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("error reading header: %v", err)
	}
	pkIndices, err := slice.KeyIndices(columns, pk)
	if err != nil {
		return nil, err
	}
	db, err := openBadger(dir, c.badgerLogLevel)
	if err != nil {
		return nil, err
	}
	idx := newIndex(db, dir)
	idx.columns = columns
	idx.pk = pk
	if err = idx.build(r, pkIndices, c); err != nil {
		db.Close()
		return nil, err
	}
	return idx, nil
}

func (i *Index) build(r *csv.Reader, pkIndices []uint32, c *options) error {
	t := newTxn(i.db)
	defer t.Discard()
	h := NewRowHasher(pkIndices, 0)
	var buf []byte
	var n int
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		n++
		if len(row) != len(i.columns) {
			return fmt.Errorf("row %d has %d fields, expecting %d", n, len(row), len(i.columns))
		}
		keySum, _, rowContent := h.Sum(row)
		k := rowKey(keySum)
		if t.Exist(k) {
			i.dupsCount++
		} else {
			i.rowsCount++
		}
		buf = s2.Encode(buf, rowContent)
		v := make([]byte, len(buf))
		copy(v, buf)
		if err = t.Set(k, v); err != nil {
			return err
		}
		if c.pt != nil {
			c.pt.Incr()
		}
	}
	if err := i.saveMeta(t); err != nil {
		return err
	}
	if err := t.Commit(); err != nil {
		return err
	}
	if c.pt != nil {
		c.pt.Done()
	}
	if c.debugLogger != nil {
		c.debugLogger.Info("indexed rows",
			"dir", i.dir,
			"rowsCount", i.rowsCount,
			"duplicatesCount", i.dupsCount,
		)
	}
	return nil
}

func (i *Index) saveMeta(t *txn) error {
	enc := encoding.NewRowEncoder(false)
	if err := t.Set(columnsKey, enc.Encode(i.columns)); err != nil {
		return err
	}
	if err := t.Set(pkKey, enc.Encode(i.pk)); err != nil {
		return err
	}
	b := make([]byte, 4)
	binary.BigEndian.PutUint32(b, i.rowsCount)
	if err := t.Set(rowsKey, b); err != nil {
		return err
	}
	b = make([]byte, 4)
	binary.BigEndian.PutUint32(b, i.dupsCount)
	return t.Set(dupsKey, b)
}

// Open opens an existing index at dir.
func Open(dir string, opts ...Option) (*Index, error) {
	c := applyOptions(opts)
	db, err := openBadger(dir, c.badgerLogLevel)
	if err != nil {
		return nil, err
	}
	idx := newIndex(db, dir)
	if err = idx.readMeta(); err != nil {
		db.Close()
		return nil, err
	}
	return idx, nil
}

func (i *Index) readMeta() error {
	dec := encoding.NewRowDecoder(false)
	b, err := getValue(i.db, columnsKey)
	if err != nil {
		return fmt.Errorf("error reading columns: %v", err)
	}
	i.columns = dec.Decode(b)
	b, err = getValue(i.db, pkKey)
	if err != nil {
		return fmt.Errorf("error reading primary key: %v", err)
	}
	i.pk = dec.Decode(b)
	b, err = getValue(i.db, rowsKey)
	if err != nil {
		return fmt.Errorf("error reading rows count: %v", err)
	}
	i.rowsCount = binary.BigEndian.Uint32(b)
	b, err = getValue(i.db, dupsKey)
	if err != nil {
		return fmt.Errorf("error reading duplicates count: %v", err)
	}
	i.dupsCount = binary.BigEndian.Uint32(b)
	return nil
}

// Get returns the row whose primary key columns equal pkVals, given in
// primary key order. When the index has no primary key, pkVals must
// spell out the entire row. It returns ErrKeyNotFound when no row
// matches.
func (i *Index) Get(pkVals ...string) ([]string, error) {
	n := len(i.pk)
	if n == 0 {
		n = len(i.columns)
	}
	if len(pkVals) != n {
		return nil, fmt.Errorf("expecting %d value(s), got %d", n, len(pkVals))
	}
	sum := meow.Checksum(0, i.enc.Encode(pkVals))
	v, err := getValue(i.db, rowKey(sum[:]))
	if err != nil {
		return nil, err
	}
	i.buf, err = s2.Decode(i.buf, v)
	if err != nil {
		return nil, err
	}
	return i.dec.Decode(i.buf), nil
}

func (i *Index) Columns() []string {
	return i.columns
}

func (i *Index) PrimaryKey() []string {
	return i.pk
}

// RowsCount returns the number of distinct rows saved.
func (i *Index) RowsCount() uint32 {
	return i.rowsCount
}

// DuplicatesCount returns the number of rows that were overwritten by a
// later row with the same primary key.
func (i *Index) DuplicatesCount() uint32 {
	return i.dupsCount
}

func (i *Index) Close() error {
	return i.db.Close()
}
