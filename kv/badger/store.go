package badger

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/dgraph-io/badger/v4"
	"github.com/dgraph-io/badger/v4/options"

	"github.com/mataa-market/mataa/kv"
)

// Store is a kv.Store backed by BadgerDB.
type Store struct {
	db     *badger.DB
	logger *slog.Logger
}

var _ kv.Store = (*Store)(nil)

// badgerLoggerAdapter adapts slog.Logger to badger.Logger interface.
type badgerLoggerAdapter struct {
	logger *slog.Logger
}

var _ badger.Logger = (*badgerLoggerAdapter)(nil)

func (bl *badgerLoggerAdapter) Errorf(msg string, items ...any) {
	bl.logger.Error(fmt.Sprintf(msg, items...))
}

func (bl *badgerLoggerAdapter) Warningf(msg string, items ...any) {
	bl.logger.Warn(fmt.Sprintf(msg, items...))
}

func (bl *badgerLoggerAdapter) Infof(msg string, items ...any) {
	bl.logger.Info(fmt.Sprintf(msg, items...))
}

func (bl *badgerLoggerAdapter) Debugf(msg string, items ...any) {
	bl.logger.Debug(fmt.Sprintf(msg, items...))
}

// OpenStore opens a BadgerDB-backed store at the specified path.
// Creates the directory if it doesn't exist. With inMemory set, path is
// ignored and nothing touches disk.
func OpenStore(filePath string, inMemory bool) (*Store, error) {
	var opts badger.Options

	if inMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		info, err := os.Stat(filePath)
		if err != nil {
			if os.IsNotExist(err) {
				if err := os.MkdirAll(filePath, 0755); err != nil {
					return nil, err
				}
				info, err = os.Stat(filePath)
				if err != nil {
					return nil, err
				}
			} else {
				return nil, err
			}
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("%s is not a directory", filePath)
		}
		opts = badger.DefaultOptions(filePath)
	}

	opts.Logger = &badgerLoggerAdapter{logger: slog.Default()}
	opts.Compression = options.None

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}

	return &Store{
		db:     db,
		logger: slog.Default(),
	}, nil
}

// Get implements kv.Store.
func (s *Store) Get(key string) (string, bool, error) {
	if s.db.IsClosed() {
		return "", false, kv.ErrStoreClosed
	}

	var value string
	err := s.db.View(func(tx *badger.Txn) error {
		item, err := tx.Get([]byte(key))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			value = string(val)
			return nil
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

// Set implements kv.Store. Out-of-space conditions surface as
// kv.ErrQuotaExceeded so the caller can shrink and retry.
func (s *Store) Set(key, value string) error {
	if s.db.IsClosed() {
		return kv.ErrStoreClosed
	}

	err := s.db.Update(func(tx *badger.Txn) error {
		return tx.Set([]byte(key), []byte(value))
	})
	if errors.Is(err, badger.ErrTxnTooBig) || errors.Is(err, badger.ErrValueLogSize) {
		return fmt.Errorf("%w: %w", kv.ErrQuotaExceeded, err)
	}
	return err
}

// Remove implements kv.Store.
func (s *Store) Remove(key string) error {
	if s.db.IsClosed() {
		return kv.ErrStoreClosed
	}

	err := s.db.Update(func(tx *badger.Txn) error {
		return tx.Delete([]byte(key))
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil
	}
	return err
}

// Close implements kv.Store.
func (s *Store) Close() error {
	return s.db.Close()
}
