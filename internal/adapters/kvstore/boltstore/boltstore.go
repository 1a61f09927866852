// Package boltstore persists the key-value store in a single bbolt file.
package boltstore

import (
	"context"
	"fmt"

	portsrepo "github.com/SscSPs/bukukas_app/internal/core/ports/repositories"
	bolt "go.etcd.io/bbolt"
)

// BucketName is the bucket holding every collection key.
const BucketName = "localStorage"

// Store wraps a bbolt database.
type Store struct {
	db *bolt.DB
}

var _ portsrepo.BatchStore = (*Store)(nil)

// Open opens (or creates) the database file and its bucket.
func Open(path string) (*Store, error) {
	db, err := bolt.Open(path, 0o600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt database %s: %w", path, err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists([]byte(BucketName)); err != nil {
			return fmt.Errorf("failed to create bucket %s: %w", BucketName, err)
		}
		return nil
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) GetItem(_ context.Context, key string) (string, bool, error) {
	var (
		value string
		found bool
	)
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(BucketName))
		if b == nil {
			return fmt.Errorf("bucket %s not found", BucketName)
		}
		data := b.Get([]byte(key))
		if data == nil {
			return nil
		}
		// data is only valid inside the transaction; string() copies it.
		value, found = string(data), true
		return nil
	})
	return value, found, err
}

func (s *Store) SetItem(_ context.Context, key, value string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(BucketName))
		if b == nil {
			return fmt.Errorf("bucket %s not found", BucketName)
		}
		return b.Put([]byte(key), []byte(value))
	})
}

func (s *Store) RemoveItem(_ context.Context, key string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(BucketName))
		if b == nil {
			return fmt.Errorf("bucket %s not found", BucketName)
		}
		return b.Delete([]byte(key))
	})
}

func (s *Store) SetItems(_ context.Context, items map[string]*string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(BucketName))
		if b == nil {
			return fmt.Errorf("bucket %s not found", BucketName)
		}
		for k, v := range items {
			var err error
			if v == nil {
				err = b.Delete([]byte(k))
			} else {
				err = b.Put([]byte(k), []byte(*v))
			}
			if err != nil {
				return fmt.Errorf("failed to write key %s: %w", k, err)
			}
		}
		return nil
	})
}
