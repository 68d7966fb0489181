// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package index

import (
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v3"
)

var ErrKeyNotFound = fmt.Errorf("key not found")

// openBadger opens the store at dir, mapping logLevel onto Badger's
// logging levels. Unrecognized levels silence everything but errors.
func openBadger(dir, logLevel string) (*badger.DB, error) {
	opts := badger.DefaultOptions(dir).
		WithLoggingLevel(badger.ERROR)
	switch logLevel {
	case "debug":
		opts = opts.WithLoggingLevel(badger.DEBUG)
	case "info":
		opts = opts.WithLoggingLevel(badger.INFO)
	case "warning":
		opts = opts.WithLoggingLevel(badger.WARNING)
	}
	return badger.Open(opts)
}

func getValue(db *badger.DB, k []byte) ([]byte, error) {
	var v []byte
	err := db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(k)
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return ErrKeyNotFound
			}
			return err
		}
		v, err = item.ValueCopy(nil)
		return err
	})
	return v, err
}

// txn wraps a Badger write transaction, committing and starting over
// whenever the transaction outgrows Badger's limit.
type txn struct {
	db  *badger.DB
	txn *badger.Txn
}

func newTxn(db *badger.DB) *txn {
	return &txn{
		db:  db,
		txn: db.NewTransaction(true),
	}
}

func (t *txn) Set(k, v []byte) error {
	err := t.txn.Set(k, v)
	if err == badger.ErrTxnTooBig {
		if err = t.txn.Commit(); err != nil {
			return err
		}
		t.txn = t.db.NewTransaction(true)
		err = t.txn.Set(k, v)
	}
	return err
}

func (t *txn) Exist(k []byte) bool {
	_, err := t.txn.Get(k)
	return err == nil
}

func (t *txn) Commit() error {
	return t.txn.Commit()
}

func (t *txn) Discard() {
	t.txn.Discard()
}
