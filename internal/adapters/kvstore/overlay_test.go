package kvstore_test

import (
	"context"
	"testing"

	"github.com/SscSPs/bukukas_app/internal/adapters/kvstore"
	"github.com/SscSPs/bukukas_app/internal/adapters/kvstore/memstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOverlay_ReadsPendingWritesFirst(t *testing.T) {
	ctx := context.Background()
	backing := memstore.New()
	require.NoError(t, backing.SetItem(ctx, "a", "backing"))
	require.NoError(t, backing.SetItem(ctx, "b", "keep"))

	o := kvstore.NewOverlay(backing)
	require.NoError(t, o.SetItem(ctx, "a", "pending"))
	require.NoError(t, o.RemoveItem(ctx, "b"))

	v, found, _ := o.GetItem(ctx, "a")
	assert.True(t, found)
	assert.Equal(t, "pending", v)
	_, found, _ = o.GetItem(ctx, "b")
	assert.False(t, found)

	v, _, _ = backing.GetItem(ctx, "a")
	assert.Equal(t, "backing", v, "backing store must not change before Flush")
	assert.Equal(t, 2, o.Dirty())
}

func TestOverlay_Flush(t *testing.T) {
	ctx := context.Background()
	backing := memstore.New()
	require.NoError(t, backing.SetItem(ctx, "b", "gone"))

	o := kvstore.NewOverlay(backing)
	require.NoError(t, o.SetItem(ctx, "a", "1"))
	require.NoError(t, o.RemoveItem(ctx, "b"))
	require.NoError(t, o.Flush(ctx))

	v, found, _ := backing.GetItem(ctx, "a")
	assert.True(t, found)
	assert.Equal(t, "1", v)
	_, found, _ = backing.GetItem(ctx, "b")
	assert.False(t, found)
	assert.Zero(t, o.Dirty())
}

func TestOverlay_Discard(t *testing.T) {
	ctx := context.Background()
	backing := memstore.New()
	o := kvstore.NewOverlay(backing)
	require.NoError(t, o.SetItem(ctx, "a", "1"))

	o.Discard()
	require.NoError(t, o.Flush(ctx))

	_, found, _ := backing.GetItem(ctx, "a")
	assert.False(t, found)
}
