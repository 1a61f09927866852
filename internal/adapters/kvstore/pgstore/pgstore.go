// Package pgstore keeps the key-value store in the kv_items Postgres table.
package pgstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/bukukas_app/internal/apperrors"
	portsrepo "github.com/SscSPs/bukukas_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Store reads and writes kv_items through a pgx pool.
type Store struct {
	Pool *pgxpool.Pool
}

// New creates a Store on an existing pool.
func New(pool *pgxpool.Pool) *Store {
	return &Store{Pool: pool}
}

var _ portsrepo.BatchStore = (*Store)(nil)

const upsertQuery = `
	INSERT INTO kv_items (key, value, updated_at)
	VALUES ($1, $2, NOW())
	ON CONFLICT (key) DO UPDATE SET
		value = EXCLUDED.value,
		updated_at = EXCLUDED.updated_at;
`

func (s *Store) GetItem(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.Pool.QueryRow(ctx, `SELECT value FROM kv_items WHERE key = $1;`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to read key %s: %w", key, err)
	}
	return value, true, nil
}

func (s *Store) SetItem(ctx context.Context, key, value string) error {
	if _, err := s.Pool.Exec(ctx, upsertQuery, key, value); err != nil {
		return fmt.Errorf("failed to write key %s: %w", key, err)
	}
	return nil
}

func (s *Store) RemoveItem(ctx context.Context, key string) error {
	if _, err := s.Pool.Exec(ctx, `DELETE FROM kv_items WHERE key = $1;`, key); err != nil {
		return fmt.Errorf("failed to remove key %s: %w", key, err)
	}
	return nil
}

func (s *Store) SetItems(ctx context.Context, items map[string]*string) (err error) {
	tx, err := s.Pool.Begin(ctx)
	if err != nil {
		return apperrors.NewAppError(500, "failed to begin transaction", err)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
				err = errors.Join(err, rbErr)
			}
		}
	}()

	for k, v := range items {
		if v == nil {
			_, err = tx.Exec(ctx, `DELETE FROM kv_items WHERE key = $1;`, k)
		} else {
			_, err = tx.Exec(ctx, upsertQuery, k, *v)
		}
		if err != nil {
			return fmt.Errorf("failed to write key %s: %w", k, err)
		}
	}

	if err = tx.Commit(ctx); err != nil {
		return apperrors.NewAppError(500, "failed to commit transaction", err)
	}
	return nil
}
