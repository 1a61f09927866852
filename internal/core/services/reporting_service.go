package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/bukukas_app/internal/core/domain"
	portsrepo "github.com/SscSPs/bukukas_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bukukas_app/internal/core/ports/services"
)

const (
	msgReportSwept      = "Data laporan keuangan telah dibersihkan dari invoice yang sudah dihapus"
	msgReportSaveFailed = "Gagal menyimpan data laporan keuangan"
)

// reportingService is the financial report reconciler. Every write replaces
// the whole collection.
type reportingService struct {
	BaseService
	reportRepo  portsrepo.ReportRepositoryFacade
	invoiceRepo portsrepo.InvoiceReader
	batch       portsrepo.BatchRunner
}

// NewReportingService creates a new reporting service with the provided options
func NewReportingService(reportRepo portsrepo.ReportRepositoryFacade, invoiceRepo portsrepo.InvoiceReader, batch portsrepo.BatchRunner, options ...Option) portssvc.ReportingSvcFacade {
	return &reportingService{
		BaseService: newBaseService(options),
		reportRepo:  reportRepo,
		invoiceRepo: invoiceRepo,
		batch:       batch,
	}
}

// Ensure reportingService implements the ReportingSvcFacade interface
var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

func (s *reportingService) ListReportRows(ctx context.Context) ([]domain.FinancialReportRow, error) {
	return s.reportRepo.ListReportRows(ctx)
}

func (s *reportingService) Summary(ctx context.Context) (*domain.ReportSummary, error) {
	rows, err := s.reportRepo.ListReportRows(ctx)
	if err != nil {
		return nil, err
	}
	summary := domain.Summarize(rows)
	return &summary, nil
}

// RecordSale keeps exactly one sale row per invoice.
func (s *reportingService) RecordSale(ctx context.Context, invoice domain.Invoice) error {
	rows, err := s.reportRepo.ListReportRows(ctx)
	if err != nil {
		return err
	}

	rows = filterRows(rows, func(r domain.FinancialReportRow) bool {
		return !r.Is(invoice.InvoiceNumber, domain.KindSale)
	})
	rows = append(rows, domain.FinancialReportRow{
		Date:            invoice.Date,
		Account:         domain.ReportAccountSales,
		Value:           invoice.Total,
		Description:     fmt.Sprintf("Penjualan - %s", invoice.CustomerName),
		EntryType:       domain.EntryCredit,
		InvoiceNumber:   invoice.InvoiceNumber,
		TransactionKind: domain.KindSale,
		PaymentMethod:   invoice.PaymentMethod,
		InvoiceKind:     invoice.Kind(),
	})

	return s.save(ctx, rows)
}

// RecordPayment adds the settlement row of a paid invoice, replacing an
// earlier one for the same invoice. Unpaid invoices and invoices with no
// payment date leave the report untouched.
func (s *reportingService) RecordPayment(ctx context.Context, invoice domain.Invoice) error {
	if !invoice.IsPaid() || invoice.PaymentDate == "" {
		return nil
	}

	rows, err := s.reportRepo.ListReportRows(ctx)
	if err != nil {
		return err
	}

	rows = filterRows(rows, func(r domain.FinancialReportRow) bool {
		return !r.Is(invoice.InvoiceNumber, domain.KindPayment)
	})
	rows = append(rows, domain.FinancialReportRow{
		Date:            invoice.PaymentDate,
		Account:         domain.ReportAccountSettlement,
		Value:           invoice.Total,
		Description:     fmt.Sprintf("Pelunasan Invoice %s - %s", invoice.InvoiceNumber, invoice.CustomerName),
		EntryType:       domain.EntryDebit,
		InvoiceNumber:   invoice.InvoiceNumber,
		TransactionKind: domain.KindPayment,
	})

	return s.save(ctx, rows)
}

func (s *reportingService) RemoveForInvoice(ctx context.Context, invoiceNumber string) (int, error) {
	return s.remove(ctx, func(r domain.FinancialReportRow) bool {
		return r.InvoiceNumber == invoiceNumber
	})
}

// RemoveMatching drops rows with the line's account, date and amount. It may
// over-match when two rows share all three.
func (s *reportingService) RemoveMatching(ctx context.Context, line domain.JournalLine) (int, error) {
	return s.remove(ctx, func(r domain.FinancialReportRow) bool {
		return r.MatchesLine(line)
	})
}

// SweepOrphans runs PruneOrphans in its own batch and announces the cleanup
// once the batch is stored.
func (s *reportingService) SweepOrphans(ctx context.Context) (int, error) {
	var removed int
	err := s.batch.RunInBatch(ctx, func(ctx context.Context) error {
		var err error
		removed, err = s.PruneOrphans(ctx)
		return err
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to sweep financial report")
		s.Notify(ctx, msgReportSaveFailed, domain.SeverityError)
		return 0, err
	}
	if removed > 0 {
		s.Notify(ctx, msgReportSwept, domain.SeverityInfo)
	}
	return removed, nil
}

// PruneOrphans drops rows pointing at invoices that no longer exist. Manual
// rows are kept. Running it twice removes nothing the second time. It raises
// no notification; callers composing it into a batch announce the result.
func (s *reportingService) PruneOrphans(ctx context.Context) (int, error) {
	invoices, err := s.invoiceRepo.ListInvoices(ctx)
	if err != nil {
		return 0, err
	}
	known := make(map[string]struct{}, len(invoices))
	for _, inv := range invoices {
		known[inv.InvoiceNumber] = struct{}{}
	}

	removed, err := s.remove(ctx, func(r domain.FinancialReportRow) bool {
		if r.IsManual() {
			return false
		}
		_, ok := known[r.InvoiceNumber]
		return !ok
	})
	if err != nil {
		return 0, err
	}
	if removed > 0 {
		s.LogInfo(ctx, "Swept orphaned report rows", slog.Int("removed", removed))
	}
	return removed, nil
}

// RecordManual mirrors a hand-entered journal line as a manual report row.
func (s *reportingService) RecordManual(ctx context.Context, line domain.JournalLine) error {
	rows, err := s.reportRepo.ListReportRows(ctx)
	if err != nil {
		return err
	}
	entryType := domain.EntryCredit
	if line.IsDebit() {
		entryType = domain.EntryDebit
	}
	rows = append(rows, domain.FinancialReportRow{
		Date:        line.Date,
		Account:     line.Account,
		Value:       line.Amount(),
		Description: line.Description,
		EntryType:   entryType,
	})
	return s.save(ctx, rows)
}

func (s *reportingService) remove(ctx context.Context, drop func(domain.FinancialReportRow) bool) (int, error) {
	rows, err := s.reportRepo.ListReportRows(ctx)
	if err != nil {
		return 0, err
	}
	kept := filterRows(rows, func(r domain.FinancialReportRow) bool { return !drop(r) })
	removed := len(rows) - len(kept)
	if removed == 0 {
		return 0, nil
	}
	if err := s.save(ctx, kept); err != nil {
		return 0, err
	}
	return removed, nil
}

func (s *reportingService) save(ctx context.Context, rows []domain.FinancialReportRow) error {
	if err := s.reportRepo.SaveReportRows(ctx, rows); err != nil {
		s.LogError(ctx, err, "Failed to save financial report")
		return fmt.Errorf("failed to save financial report: %w", err)
	}
	return nil
}

func filterRows(rows []domain.FinancialReportRow, keep func(domain.FinancialReportRow) bool) []domain.FinancialReportRow {
	out := make([]domain.FinancialReportRow, 0, len(rows))
	for _, r := range rows {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}
