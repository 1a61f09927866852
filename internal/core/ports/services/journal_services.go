package services

import (
	"context"

	"github.com/SscSPs/bukukas_app/internal/core/domain"
)

// JournalReaderSvc defines read operations for journal data.
type JournalReaderSvc interface {
	ListJournalLines(ctx context.Context) ([]domain.JournalLine, error)
	ListByInvoice(ctx context.Context, invoiceNumber string) ([]domain.JournalLine, error)
	TrialBalance(ctx context.Context) ([]domain.TrialBalanceRow, error)
}

// JournalWriterSvc defines write operations for journal data.
type JournalWriterSvc interface {
	// RecordSale appends the two lines booking invoice as a sale.
	RecordSale(ctx context.Context, invoice domain.Invoice) error

	// RecordPayment appends the two lines settling a credit sale.
	RecordPayment(ctx context.Context, invoice domain.Invoice) error

	// RemoveByInvoice drops every line for invoiceNumber and returns the count.
	RemoveByInvoice(ctx context.Context, invoiceNumber string) (int, error)

	// RecordManual appends lines entered by hand and mirrors each to the report.
	RecordManual(ctx context.Context, lines []domain.JournalLine) error

	// DeleteLine removes the line at index. It returns false when the
	// confirmer declined.
	DeleteLine(ctx context.Context, index int, confirmer Confirmer) (bool, error)
}

// JournalSvcFacade combines all journal-related service interfaces.
type JournalSvcFacade interface {
	JournalReaderSvc
	JournalWriterSvc
}
