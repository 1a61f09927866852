package kv

import (
	"context"
	"testing"

	"github.com/SscSPs/bukukas_app/internal/adapters/kvstore/memstore"
	"github.com/SscSPs/bukukas_app/internal/core/domain"
	portsrepo "github.com/SscSPs/bukukas_app/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCollection_DefaultsToEmpty(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name   string
		stored *string
	}{
		{name: "missing slot"},
		{name: "empty string", stored: strPtr("")},
		{name: "corrupt json", stored: strPtr("{not json")},
		{name: "json null", stored: strPtr("null")},
		{name: "object instead of array", stored: strPtr(`{"noInvoice":"INV-001"}`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := memstore.New()
			if tt.stored != nil {
				require.NoError(t, store.SetItem(ctx, portsrepo.KeyInvoices, *tt.stored))
			}
			got, err := loadCollection[domain.Invoice](ctx, store, portsrepo.KeyInvoices)
			require.NoError(t, err)
			assert.NotNil(t, got)
			assert.Empty(t, got)
		})
	}
}

func TestLoadCollection_ReadsRecordsWrittenByBrowserApp(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()
	raw := `[{"tanggal":"2024-01-05","akun":"Kas","keterangan":"Penjualan - Budi","debit":100000,"kredit":0,"fromPenjualan":true,"noInvoice":"INV-001","jenisTransaksi":"penjualan"}]`
	require.NoError(t, store.SetItem(ctx, portsrepo.KeyJournal, raw))

	lines, err := loadCollection[domain.JournalLine](ctx, store, portsrepo.KeyJournal)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, domain.AccountCash, lines[0].Account)
	assert.True(t, lines[0].Debit.Equal(decimal.NewFromInt(100000)))
	assert.True(t, lines[0].Credit.IsZero())
	assert.Equal(t, domain.KindSale, lines[0].TransactionKind)
}

func TestSaveCollection_NilWritesEmptyArray(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()

	require.NoError(t, saveCollection[domain.Customer](ctx, store, portsrepo.KeyCustomers, nil))

	raw, found, _ := store.GetItem(ctx, portsrepo.KeyCustomers)
	assert.True(t, found)
	assert.Equal(t, "[]", raw)
}

func strPtr(s string) *string {
	return &s
}
