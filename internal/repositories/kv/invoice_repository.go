package kv

import (
	"context"

	"github.com/SscSPs/bukukas_app/internal/core/domain"
	portsrepo "github.com/SscSPs/bukukas_app/internal/core/ports/repositories"
)

type invoiceRepository struct {
	baseRepository
}

func newInvoiceRepository(store portsrepo.KeyValueStore) portsrepo.InvoiceRepositoryFacade {
	return &invoiceRepository{baseRepository{store: store}}
}

func (r *invoiceRepository) ListInvoices(ctx context.Context) ([]domain.Invoice, error) {
	return loadCollection[domain.Invoice](ctx, r.storeFor(ctx), portsrepo.KeyInvoices)
}

func (r *invoiceRepository) SaveInvoices(ctx context.Context, invoices []domain.Invoice) error {
	return saveCollection(ctx, r.storeFor(ctx), portsrepo.KeyInvoices, invoices)
}
