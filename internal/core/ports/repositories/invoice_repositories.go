package repositories

import (
	"context"

	"github.com/SscSPs/bukukas_app/internal/core/domain"
)

// InvoiceReader defines read operations for the invoice collection.
type InvoiceReader interface {
	// ListInvoices returns every stored invoice in insertion order.
	ListInvoices(ctx context.Context) ([]domain.Invoice, error)
}

// InvoiceWriter defines write operations for the invoice collection.
type InvoiceWriter interface {
	// SaveInvoices overwrites the whole collection.
	SaveInvoices(ctx context.Context, invoices []domain.Invoice) error
}

// InvoiceRepositoryFacade combines invoice read and write access.
type InvoiceRepositoryFacade interface {
	InvoiceReader
	InvoiceWriter
}
