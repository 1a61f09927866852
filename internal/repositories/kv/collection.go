// Package kv implements the collection repositories on top of a
// KeyValueStore, storing each collection as one JSON array under its key.
package kv

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/SscSPs/bukukas_app/internal/adapters/kvstore"
	portsrepo "github.com/SscSPs/bukukas_app/internal/core/ports/repositories"
	"github.com/SscSPs/bukukas_app/internal/middleware"
	"github.com/shopspring/decimal"
)

// Amounts are stored as JSON numbers, the format existing data already has.
func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

type overlayCtxKey struct{}

// baseRepository resolves the store a call should use: the batch overlay
// carried by ctx when there is one, the backing store otherwise.
type baseRepository struct {
	store portsrepo.KeyValueStore
}

func (r baseRepository) storeFor(ctx context.Context) portsrepo.KeyValueStore {
	if o, ok := ctx.Value(overlayCtxKey{}).(*kvstore.Overlay); ok {
		return o
	}
	return r.store
}

// loadCollection reads key as a JSON array. A missing slot or one that fails
// to parse yields an empty slice; only store failures are returned.
func loadCollection[T any](ctx context.Context, store portsrepo.KeyValueStore, key string) ([]T, error) {
	raw, found, err := store.GetItem(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", key, err)
	}
	items := []T{}
	if !found || raw == "" {
		return items, nil
	}
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		middleware.GetLoggerFromCtx(ctx).Warn("Stored collection is not valid JSON, treating as empty",
			slog.String("key", key), slog.String("error", err.Error()))
		return []T{}, nil
	}
	if items == nil {
		// "null" decodes to a nil slice
		items = []T{}
	}
	return items, nil
}

func saveCollection[T any](ctx context.Context, store portsrepo.KeyValueStore, key string, items []T) error {
	if items == nil {
		items = []T{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", key, err)
	}
	if err := store.SetItem(ctx, key, string(data)); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

// BatchRunner implements portsrepo.BatchRunner with a kvstore.Overlay. An
// outer batch holds the runner's lock from its first read until the flush
// returns, so batches on the same store run one at a time.
type BatchRunner struct {
	mu    sync.Mutex
	store portsrepo.KeyValueStore
}

// NewBatchRunner creates a BatchRunner flushing into store.
func NewBatchRunner(store portsrepo.KeyValueStore) *BatchRunner {
	return &BatchRunner{store: store}
}

var _ portsrepo.BatchRunner = (*BatchRunner)(nil)

func (b *BatchRunner) RunInBatch(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(overlayCtxKey{}).(*kvstore.Overlay); ok {
		return fn(ctx)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	overlay := kvstore.NewOverlay(b.store)
	if err := fn(context.WithValue(ctx, overlayCtxKey{}, overlay)); err != nil {
		overlay.Discard()
		return err
	}
	if err := overlay.Flush(ctx); err != nil {
		return fmt.Errorf("failed to flush batch: %w", err)
	}
	return nil
}
