package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/bukukas_app/internal/apperrors"
	"github.com/SscSPs/bukukas_app/internal/core/domain"
	portsrepo "github.com/SscSPs/bukukas_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bukukas_app/internal/core/ports/services"
	"github.com/SscSPs/bukukas_app/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// journalService is the journal writer. Every write reads the whole journal,
// transforms it and writes it back.
type journalService struct {
	BaseService
	journalRepo portsrepo.JournalRepositoryFacade
	reconciler  portssvc.ReconcilerSvc
	activitySvc portssvc.ActivitySvc
	batch       portsrepo.BatchRunner
}

// NewJournalService creates a new JournalService.
func NewJournalService(journalRepo portsrepo.JournalRepositoryFacade, reconciler portssvc.ReconcilerSvc, activitySvc portssvc.ActivitySvc, batch portsrepo.BatchRunner, options ...Option) portssvc.JournalSvcFacade {
	return &journalService{
		BaseService: newBaseService(options),
		journalRepo: journalRepo,
		reconciler:  reconciler,
		activitySvc: activitySvc,
		batch:       batch,
	}
}

// Ensure journalService implements the portssvc.JournalSvcFacade interface
var _ portssvc.JournalSvcFacade = (*journalService)(nil)

func (s *journalService) ListJournalLines(ctx context.Context) ([]domain.JournalLine, error) {
	return s.journalRepo.ListJournalLines(ctx)
}

func (s *journalService) ListByInvoice(ctx context.Context, invoiceNumber string) ([]domain.JournalLine, error) {
	lines, err := s.journalRepo.ListJournalLines(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.JournalLine, 0)
	for _, l := range lines {
		if l.InvoiceNumber == invoiceNumber {
			out = append(out, l)
		}
	}
	return out, nil
}

func (s *journalService) TrialBalance(ctx context.Context) ([]domain.TrialBalanceRow, error) {
	lines, err := s.journalRepo.ListJournalLines(ctx)
	if err != nil {
		return nil, err
	}
	return accounting.TrialBalance(lines), nil
}

// RecordSale credits revenue and debits cash for a Tunai sale or receivables
// otherwise, both for the invoice total.
func (s *journalService) RecordSale(ctx context.Context, invoice domain.Invoice) error {
	debitAccount := domain.AccountReceivable
	if invoice.IsCash() {
		debitAccount = domain.AccountCash
	}
	description := fmt.Sprintf("Penjualan - %s", invoice.CustomerName)

	return s.appendLines(ctx,
		invoiceLine(invoice, invoice.Date, domain.AccountServiceRevenue, description, decimal.Zero, invoice.Total, domain.KindSale),
		invoiceLine(invoice, invoice.Date, debitAccount, description, invoice.Total, decimal.Zero, domain.KindSale),
	)
}

// RecordPayment moves the invoice total from receivables to cash on the
// payment date, or today when the invoice has none.
func (s *journalService) RecordPayment(ctx context.Context, invoice domain.Invoice) error {
	date := invoice.PaymentDate
	if date == "" {
		date = s.Today()
	}
	description := fmt.Sprintf("Pelunasan Invoice %s - %s", invoice.InvoiceNumber, invoice.CustomerName)

	return s.appendLines(ctx,
		invoiceLine(invoice, date, domain.AccountReceivable, description, decimal.Zero, invoice.Total, domain.KindPayment),
		invoiceLine(invoice, date, domain.AccountCash, description, invoice.Total, decimal.Zero, domain.KindPayment),
	)
}

func (s *journalService) RemoveByInvoice(ctx context.Context, invoiceNumber string) (int, error) {
	lines, err := s.journalRepo.ListJournalLines(ctx)
	if err != nil {
		return 0, err
	}
	kept := make([]domain.JournalLine, 0, len(lines))
	for _, l := range lines {
		if l.InvoiceNumber != invoiceNumber {
			kept = append(kept, l)
		}
	}
	removed := len(lines) - len(kept)
	if removed == 0 {
		return 0, nil
	}
	if err := s.save(ctx, kept); err != nil {
		return 0, err
	}
	return removed, nil
}

// RecordManual appends hand-entered lines. Each line must post to the chart
// of accounts with exactly one positive side.
func (s *journalService) RecordManual(ctx context.Context, lines []domain.JournalLine) error {
	if len(lines) == 0 {
		return fmt.Errorf("%w: jurnal harus memiliki minimal satu baris", apperrors.ErrValidation)
	}
	manual := make([]domain.JournalLine, 0, len(lines))
	for i, l := range lines {
		if !domain.IsValidDate(l.Date) {
			return fmt.Errorf("%w: tanggal baris %d tidak valid", apperrors.ErrValidation, i+1)
		}
		if !accounting.ValidateLine(l) {
			return fmt.Errorf("%w: baris %d harus memiliki akun yang dikenal dan tepat satu nilai debit atau kredit", apperrors.ErrValidation, i+1)
		}
		l.FromInvoice = false
		l.InvoiceNumber = ""
		l.TransactionKind = domain.KindManual
		manual = append(manual, l)
	}

	err := s.batch.RunInBatch(ctx, func(ctx context.Context) error {
		if err := s.appendLines(ctx, manual...); err != nil {
			return err
		}
		for _, l := range manual {
			if err := s.reconciler.RecordManual(ctx, l); err != nil {
				return err
			}
		}
		return s.activitySvc.Record(ctx, fmt.Sprintf("Menambah jurnal umum: %d baris", len(manual)))
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to record manual journal", slog.Int("lines", len(manual)))
		s.Notify(ctx, "Terjadi kesalahan saat menyimpan ke jurnal", domain.SeverityError)
		return err
	}
	s.Notify(ctx, "Data jurnal berhasil disimpan", domain.SeveritySuccess)
	return nil
}

// DeleteLine removes the line at index and the report rows matching it.
func (s *journalService) DeleteLine(ctx context.Context, index int, confirmer portssvc.Confirmer) (bool, error) {
	declined := false
	err := s.batch.RunInBatch(ctx, func(ctx context.Context) error {
		lines, err := s.journalRepo.ListJournalLines(ctx)
		if err != nil {
			return err
		}
		if index < 0 || index >= len(lines) {
			return fmt.Errorf("%w: journal line %d", apperrors.ErrNotFound, index)
		}
		line := lines[index]
		if !confirmer.Confirm(ctx, fmt.Sprintf("Apakah Anda yakin ingin menghapus jurnal %s?", line.Description)) {
			declined = true
			return nil
		}

		kept := make([]domain.JournalLine, 0, len(lines)-1)
		kept = append(kept, lines[:index]...)
		kept = append(kept, lines[index+1:]...)
		if err := s.save(ctx, kept); err != nil {
			return err
		}
		if _, err := s.reconciler.RemoveMatching(ctx, line); err != nil {
			return err
		}
		return s.activitySvc.Record(ctx, fmt.Sprintf("Menghapus jurnal: %s", line.Description))
	})
	if errors.Is(err, apperrors.ErrNotFound) {
		s.Notify(ctx, "Data jurnal tidak ditemukan", domain.SeverityError)
		return false, err
	}
	if err != nil {
		s.LogError(ctx, err, "Failed to delete journal line", slog.Int("index", index))
		s.Notify(ctx, "Terjadi kesalahan saat menghapus jurnal", domain.SeverityError)
		return false, err
	}
	if declined {
		return false, nil
	}
	s.Notify(ctx, "Data jurnal berhasil dihapus", domain.SeveritySuccess)
	return true, nil
}

func (s *journalService) appendLines(ctx context.Context, newLines ...domain.JournalLine) error {
	lines, err := s.journalRepo.ListJournalLines(ctx)
	if err != nil {
		return err
	}
	return s.save(ctx, append(lines, newLines...))
}

func (s *journalService) save(ctx context.Context, lines []domain.JournalLine) error {
	if err := s.journalRepo.SaveJournalLines(ctx, lines); err != nil {
		s.LogError(ctx, err, "Failed to save journal")
		return fmt.Errorf("failed to save journal: %w", err)
	}
	return nil
}

func invoiceLine(invoice domain.Invoice, date, account, description string, debit, credit decimal.Decimal, kind domain.TransactionKind) domain.JournalLine {
	return domain.JournalLine{
		Date:            date,
		Account:         account,
		Description:     description,
		Debit:           debit,
		Credit:          credit,
		FromInvoice:     true,
		InvoiceNumber:   invoice.InvoiceNumber,
		TransactionKind: kind,
	}
}
