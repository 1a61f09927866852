package kv_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/SscSPs/bukukas_app/internal/adapters/kvstore/memstore"
	"github.com/SscSPs/bukukas_app/internal/core/domain"
	portsrepo "github.com/SscSPs/bukukas_app/internal/core/ports/repositories"
	"github.com/SscSPs/bukukas_app/internal/repositories/kv"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBatchRunner_FlushesOnSuccess(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()
	repos := kv.NewRepositoryProvider(store)

	err := repos.Batch.RunInBatch(ctx, func(ctx context.Context) error {
		require.NoError(t, repos.InvoiceRepo.SaveInvoices(ctx, []domain.Invoice{{InvoiceNumber: "INV-001", Total: decimal.NewFromInt(5)}}))

		// Reads inside the batch see the pending write.
		got, err := repos.InvoiceRepo.ListInvoices(ctx)
		require.NoError(t, err)
		require.Len(t, got, 1)

		_, found, _ := store.GetItem(ctx, portsrepo.KeyInvoices)
		assert.False(t, found, "nothing reaches the store before the batch ends")
		return nil
	})
	require.NoError(t, err)

	got, err := repos.InvoiceRepo.ListInvoices(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "INV-001", got[0].InvoiceNumber)
}

func TestBatchRunner_DiscardsOnError(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()
	repos := kv.NewRepositoryProvider(store)
	require.NoError(t, repos.JournalRepo.SaveJournalLines(ctx, []domain.JournalLine{{Account: domain.AccountCash}}))

	err := repos.Batch.RunInBatch(ctx, func(ctx context.Context) error {
		require.NoError(t, repos.JournalRepo.SaveJournalLines(ctx, nil))
		return assert.AnError
	})
	assert.ErrorIs(t, err, assert.AnError)

	lines, err := repos.JournalRepo.ListJournalLines(ctx)
	require.NoError(t, err)
	assert.Len(t, lines, 1)
}

func TestBatchRunner_NestedJoinsOuter(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()
	repos := kv.NewRepositoryProvider(store)

	err := repos.Batch.RunInBatch(ctx, func(ctx context.Context) error {
		inner := repos.Batch.RunInBatch(ctx, func(ctx context.Context) error {
			return repos.ReportRepo.SaveReportRows(ctx, []domain.FinancialReportRow{{Account: domain.ReportAccountSales}})
		})
		require.NoError(t, inner)
		_, found, _ := store.GetItem(ctx, portsrepo.KeyReport)
		assert.False(t, found, "inner batch must not flush on its own")
		return assert.AnError
	})
	assert.Error(t, err)

	rows, _ := repos.ReportRepo.ListReportRows(ctx)
	assert.Empty(t, rows)
}

func TestBatchRunner_SerializesOuterBatches(t *testing.T) {
	ctx := context.Background()
	repos := kv.NewRepositoryProvider(memstore.New())

	entered := make(chan struct{})
	release := make(chan struct{})
	firstDone := make(chan error, 1)
	go func() {
		firstDone <- repos.Batch.RunInBatch(ctx, func(ctx context.Context) error {
			close(entered)
			<-release
			return repos.InvoiceRepo.SaveInvoices(ctx, []domain.Invoice{{InvoiceNumber: "INV-001"}})
		})
	}()
	<-entered

	var sawFirst atomic.Bool
	secondDone := make(chan error, 1)
	go func() {
		secondDone <- repos.Batch.RunInBatch(ctx, func(ctx context.Context) error {
			invoices, err := repos.InvoiceRepo.ListInvoices(ctx)
			if err != nil {
				return err
			}
			sawFirst.Store(len(invoices) == 1)
			return repos.InvoiceRepo.SaveInvoices(ctx, append(invoices, domain.Invoice{InvoiceNumber: "INV-002"}))
		})
	}()

	select {
	case <-secondDone:
		t.Fatal("second batch ran while the first was open")
	case <-time.After(50 * time.Millisecond):
	}
	close(release)
	require.NoError(t, <-firstDone)
	require.NoError(t, <-secondDone)

	assert.True(t, sawFirst.Load())
	invoices, err := repos.InvoiceRepo.ListInvoices(ctx)
	require.NoError(t, err)
	assert.Len(t, invoices, 2)
}

func TestCollections_StoreAmountsAsNumbers(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()
	repos := kv.NewRepositoryProvider(store)

	require.NoError(t, repos.InvoiceRepo.SaveInvoices(ctx, []domain.Invoice{{InvoiceNumber: "INV-001", Total: decimal.NewFromInt(100000)}}))
	raw, found, err := store.GetItem(ctx, portsrepo.KeyInvoices)
	require.NoError(t, err)
	require.True(t, found)
	assert.Contains(t, raw, `"total":100000`)

	// Quoted amounts written by older builds still load.
	require.NoError(t, store.SetItem(ctx, portsrepo.KeyInvoices, `[{"noInvoice":"INV-002","total":"2500.5"}]`))
	got, err := repos.InvoiceRepo.ListInvoices(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.True(t, got[0].Total.Equal(decimal.RequireFromString("2500.5")))
}

func TestSessionRepository(t *testing.T) {
	ctx := context.Background()
	repos := kv.NewRepositoryProvider(memstore.New())

	_, err := repos.SessionRepo.FindCurrentUser(ctx)
	assert.Error(t, err)

	require.NoError(t, repos.SessionRepo.SaveCurrentUser(ctx, domain.SessionUser{Username: "sari", Role: domain.RoleStaff}))
	user, err := repos.SessionRepo.FindCurrentUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, "sari", user.Username)

	require.NoError(t, repos.SessionRepo.ClearCurrentUser(ctx))
	_, err = repos.SessionRepo.FindCurrentUser(ctx)
	assert.Error(t, err)
}
