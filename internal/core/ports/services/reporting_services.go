package services

import (
	"context"

	"github.com/SscSPs/bukukas_app/internal/core/domain"
)

// ReportingReaderSvc defines read operations on the financial report.
type ReportingReaderSvc interface {
	ListReportRows(ctx context.Context) ([]domain.FinancialReportRow, error)
	Summary(ctx context.Context) (*domain.ReportSummary, error)
}

// ReconcilerSvc keeps the financial report consistent with invoices.
type ReconcilerSvc interface {
	// RecordSale replaces the sale row of invoice.
	RecordSale(ctx context.Context, invoice domain.Invoice) error

	// RecordPayment upserts the settlement row of a paid invoice.
	RecordPayment(ctx context.Context, invoice domain.Invoice) error

	// RemoveForInvoice drops every row of invoiceNumber.
	RemoveForInvoice(ctx context.Context, invoiceNumber string) (int, error)

	// RemoveMatching drops rows loosely matching a deleted journal line.
	RemoveMatching(ctx context.Context, line domain.JournalLine) (int, error)

	// SweepOrphans drops rows whose invoice no longer exists, in a batch of
	// its own, and notifies when anything was removed.
	SweepOrphans(ctx context.Context) (int, error)

	// PruneOrphans is SweepOrphans without the batch and the notification,
	// for callers that already run a batch.
	PruneOrphans(ctx context.Context) (int, error)

	// RecordManual appends a manual row mirroring line.
	RecordManual(ctx context.Context, line domain.JournalLine) error
}

// ReportingSvcFacade combines the reporting interfaces.
type ReportingSvcFacade interface {
	ReportingReaderSvc
	ReconcilerSvc
}
