// Package kvstore holds the key-value store backends and the write overlay
// used to batch several collection writes into one flush.
package kvstore

import (
	"context"
	"sync"

	portsrepo "github.com/SscSPs/bukukas_app/internal/core/ports/repositories"
)

// Overlay buffers writes on top of a backing store. Reads see pending
// writes first; nothing reaches the backing store until Flush.
type Overlay struct {
	mu      sync.Mutex
	backing portsrepo.KeyValueStore
	pending map[string]*string
}

// NewOverlay creates an empty overlay over backing.
func NewOverlay(backing portsrepo.KeyValueStore) *Overlay {
	return &Overlay{backing: backing, pending: make(map[string]*string)}
}

var _ portsrepo.KeyValueStore = (*Overlay)(nil)

func (o *Overlay) GetItem(ctx context.Context, key string) (string, bool, error) {
	o.mu.Lock()
	v, ok := o.pending[key]
	o.mu.Unlock()
	if ok {
		if v == nil {
			return "", false, nil
		}
		return *v, true, nil
	}
	return o.backing.GetItem(ctx, key)
}

func (o *Overlay) SetItem(_ context.Context, key, value string) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.pending[key] = &value
	return nil
}

func (o *Overlay) RemoveItem(_ context.Context, key string) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.pending[key] = nil
	return nil
}

// Dirty returns the number of keys waiting to be flushed.
func (o *Overlay) Dirty() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.pending)
}

// Discard drops every pending write.
func (o *Overlay) Discard() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.pending = make(map[string]*string)
}

// Flush writes pending keys to the backing store. A BatchStore receives them
// in a single SetItems call; any other store gets them one key at a time.
func (o *Overlay) Flush(ctx context.Context) error {
	o.mu.Lock()
	pending := o.pending
	o.pending = make(map[string]*string)
	o.mu.Unlock()

	if len(pending) == 0 {
		return nil
	}

	if bs, ok := o.backing.(portsrepo.BatchStore); ok {
		return bs.SetItems(ctx, pending)
	}
	for k, v := range pending {
		var err error
		if v == nil {
			err = o.backing.RemoveItem(ctx, k)
		} else {
			err = o.backing.SetItem(ctx, k, *v)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
