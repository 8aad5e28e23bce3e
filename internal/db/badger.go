package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
)

const badgerKeyPrefix = "kv:"

// Badger implements KV on top of a Badger database directory.
type Badger struct {
	db *badger.DB
}

// NewBadger opens (creating if needed) the Badger database in dir.
func NewBadger(dir string) (*Badger, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil            // Badger's internal logging would corrupt the TUI
	opts.SyncWrites = true       // every mutation is a durable write-through
	opts.CompactL0OnClose = true // faster startup next time

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("opening badger db: %w", err)
	}
	return &Badger{db: db}, nil
}

func badgerKey(namespace string) []byte {
	return []byte(badgerKeyPrefix + namespace)
}

// Get returns the value stored for namespace.
func (b *Badger) Get(_ context.Context, namespace string) ([]byte, error) {
	var value []byte
	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(badgerKey(namespace))
		if err != nil {
			return err
		}
		value, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("reading namespace %q: %w", namespace, err)
	}
	return value, nil
}

// Put replaces the value stored for namespace.
func (b *Badger) Put(_ context.Context, namespace string, value []byte) error {
	err := b.db.Update(func(txn *badger.Txn) error {
		return txn.Set(badgerKey(namespace), value)
	})
	if err != nil {
		return fmt.Errorf("writing namespace %q: %w", namespace, err)
	}
	return nil
}

// Delete removes namespace.
func (b *Badger) Delete(_ context.Context, namespace string) error {
	err := b.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(badgerKey(namespace))
	})
	if err != nil {
		return fmt.Errorf("deleting namespace %q: %w", namespace, err)
	}
	return nil
}

// Close flushes and closes the database.
func (b *Badger) Close() error {
	return b.db.Close()
}
