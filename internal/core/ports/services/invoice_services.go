package services

import (
	"context"

	"github.com/SscSPs/bukukas_app/internal/core/domain"
	"github.com/SscSPs/bukukas_app/internal/dto"
)

// InvoiceReaderSvc defines read operations for invoices.
type InvoiceReaderSvc interface {
	// ListInvoices returns every invoice in insertion order.
	ListInvoices(ctx context.Context) ([]domain.Invoice, error)
}

// InvoiceWriterSvc defines write operations for invoices.
type InvoiceWriterSvc interface {
	// SaveInvoices overwrites the whole collection.
	SaveInvoices(ctx context.Context, invoices []domain.Invoice) error

	// ImportInvoices replaces the collection with a JSON array payload and
	// sweeps report rows left behind by invoices that are no longer present.
	ImportInvoices(ctx context.Context, payload []byte) error

	// CreateInvoice records a sale and books it in the journal and report.
	CreateInvoice(ctx context.Context, req dto.CreateInvoiceRequest) (*domain.Invoice, error)

	// SetPaymentStatus changes the status of the invoice at index.
	SetPaymentStatus(ctx context.Context, index int, status domain.PaymentStatus) (*domain.Invoice, error)

	// DeleteInvoice removes the invoice at index with its journal lines and
	// report rows. It returns false when the confirmer declined.
	DeleteInvoice(ctx context.Context, index int, confirmer Confirmer) (bool, error)

	// DeleteInvoices removes every invoice whose number is listed and returns
	// how many were removed.
	DeleteInvoices(ctx context.Context, numbers []string, confirmer Confirmer) (int, error)
}

// InvoiceSvcFacade combines all invoice service interfaces.
type InvoiceSvcFacade interface {
	InvoiceReaderSvc
	InvoiceWriterSvc
}
