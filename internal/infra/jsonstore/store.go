// Package jsonstore implements the persistence layer over flat JSON files.
// Each collection is one file holding a JSON array that is read fully into
// memory, modified, and rewritten in full. A single in-process mutex guards
// the read-modify-write cycle; cross-process coordination is out of scope.
package jsonstore

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"

	"skillswap/config"
)

// Store hands out access to the JSON collections under one directory.
type Store struct {
	dir    string
	mu     sync.Mutex
	logger *slog.Logger
}

// New creates the storage directory if needed and returns a Store.
func New(cfg *config.Config, logger *slog.Logger) (*Store, error) {
	if err := os.MkdirAll(cfg.Storage.Path, 0o755); err != nil {
		return nil, errors.Wrapf(err, "create storage directory %s", cfg.Storage.Path)
	}

	return &Store{dir: cfg.Storage.Path, logger: logger}, nil
}

func (s *Store) path(collection string) string {
	return filepath.Join(s.dir, collection+".json")
}

// Read returns every record in a collection. A missing or corrupt file reads
// as an empty collection, never an error.
func Read[T any](s *Store, collection string) []T {
	s.mu.Lock()
	defer s.mu.Unlock()

	return readLocked[T](s, collection)
}

// Write rewrites a collection in full.
func Write[T any](s *Store, collection string, records []T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return writeLocked(s, collection, records)
}

// Update runs one read-modify-write cycle under the store lock. If fn
// returns an error nothing is written, so failed operations leave no partial
// state behind.
func Update[T any](s *Store, collection string, fn func(records []T) ([]T, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := fn(readLocked[T](s, collection))
	if err != nil {
		return err
	}

	return writeLocked(s, collection, records)
}

func readLocked[T any](s *Store, collection string) []T {
	data, err := os.ReadFile(s.path(collection))
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn("failed to read collection", "collection", collection, "error", err)
		}

		return []T{}
	}

	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		s.logger.Warn("collection file is not a valid JSON array, treating as empty",
			"collection", collection, "error", err)

		return []T{}
	}

	return records
}

func writeLocked[T any](s *Store, collection string, records []T) error {
	if records == nil {
		records = []T{}
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return errors.Wrapf(err, "marshal collection %s", collection)
	}

	if err := os.WriteFile(s.path(collection), data, 0o644); err != nil {
		return errors.Wrapf(err, "write collection %s", collection)
	}

	return nil
}
