package engine

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"github.com/seekerror/logw"
)

// BookStore is a persistent opening book backed by a badger key/value store.
// Book entries are keyed by draw FEN and valued as JSON move lists, so a JSON
// book file can be imported once and probed by later sessions without
// re-parsing it.
type BookStore struct {
	db *badger.DB
}

// OpenBookStore opens (or creates) a book store in the given directory.
func OpenBookStore(path string) (*BookStore, error) {
	opts := badger.DefaultOptions(path)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open book store '%v': %w", path, err)
	}
	return &BookStore{db: db}, nil
}

// Close closes the underlying store.
func (s *BookStore) Close() error {
	return s.db.Close()
}

// Import writes every entry of the book file into the store, overwriting
// existing entries.
func (s *BookStore) Import(ctx context.Context, path string) (int, error) {
	data, err := ReadBookFile(path)
	if err != nil {
		return 0, err
	}

	wb := s.db.NewWriteBatch()
	defer wb.Cancel()

	for key, moves := range data {
		value, err := json.Marshal(moves)
		if err != nil {
			return 0, err
		}
		if err := wb.Set([]byte(key), value); err != nil {
			return 0, fmt.Errorf("failed to write book entry '%v': %w", key, err)
		}
	}
	if err := wb.Flush(); err != nil {
		return 0, fmt.Errorf("failed to flush book import: %w", err)
	}

	logw.Infof(ctx, "Imported %v book positions from %v", len(data), path)
	return len(data), nil
}

// Find returns the move list for the position, or an empty list if the
// position is not in the store.
func (s *BookStore) Find(ctx context.Context, drawFEN string) ([]BookMove, error) {
	var moves []BookMove
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(drawFEN))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(value []byte) error {
			return json.Unmarshal(value, &moves)
		})
	})
	if err != nil {
		return nil, fmt.Errorf("book store lookup failed: %w", err)
	}
	return moves, nil
}
