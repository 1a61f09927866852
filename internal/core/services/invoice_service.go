package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/SscSPs/bukukas_app/internal/apperrors"
	"github.com/SscSPs/bukukas_app/internal/core/domain"
	portsrepo "github.com/SscSPs/bukukas_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bukukas_app/internal/core/ports/services"
	"github.com/SscSPs/bukukas_app/internal/dto"
	"github.com/SscSPs/bukukas_app/internal/utils"
)

const (
	invoiceNumberPrefix = "INV-"

	msgInvoiceNotFound = "Data invoice tidak ditemukan"
)

// invoiceService owns the invoice collection and drives the journal writer
// and the report reconciler so the three stay consistent. Each operation runs
// in one batch: the store sees all of its writes or none.
type invoiceService struct {
	BaseService
	invoiceRepo portsrepo.InvoiceRepositoryFacade
	journalSvc  portssvc.JournalWriterSvc
	reconciler  portssvc.ReconcilerSvc
	activitySvc portssvc.ActivitySvc
	batch       portsrepo.BatchRunner
}

// NewInvoiceService creates the invoice service.
func NewInvoiceService(
	invoiceRepo portsrepo.InvoiceRepositoryFacade,
	journalSvc portssvc.JournalWriterSvc,
	reconciler portssvc.ReconcilerSvc,
	activitySvc portssvc.ActivitySvc,
	batch portsrepo.BatchRunner,
	options ...Option,
) portssvc.InvoiceSvcFacade {
	return &invoiceService{
		BaseService: newBaseService(options),
		invoiceRepo: invoiceRepo,
		journalSvc:  journalSvc,
		reconciler:  reconciler,
		activitySvc: activitySvc,
		batch:       batch,
	}
}

var _ portssvc.InvoiceSvcFacade = (*invoiceService)(nil)

func (s *invoiceService) ListInvoices(ctx context.Context) ([]domain.Invoice, error) {
	return s.invoiceRepo.ListInvoices(ctx)
}

func (s *invoiceService) SaveInvoices(ctx context.Context, invoices []domain.Invoice) error {
	err := s.batch.RunInBatch(ctx, func(ctx context.Context) error {
		return s.saveInvoices(ctx, invoices)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to save invoices")
		s.Notify(ctx, "Gagal menyimpan data invoice", domain.SeverityError)
		return err
	}
	return nil
}

// saveInvoices is SaveInvoices for use inside a batch; the caller reports
// the failure once the batch is over.
func (s *invoiceService) saveInvoices(ctx context.Context, invoices []domain.Invoice) error {
	if invoices == nil {
		invoices = []domain.Invoice{}
	}
	if err := s.invoiceRepo.SaveInvoices(ctx, invoices); err != nil {
		return fmt.Errorf("failed to save invoices: %w", err)
	}
	return nil
}

// ImportInvoices replaces the collection with payload. A payload that is not
// a JSON array leaves the stored invoices untouched.
func (s *invoiceService) ImportInvoices(ctx context.Context, payload []byte) error {
	invoices, err := utils.DecodeSequence[domain.Invoice](payload)
	if err != nil {
		s.LogError(ctx, err, "Rejected invoice import")
		s.Notify(ctx, "Gagal menyimpan data invoice", domain.SeverityError)
		return err
	}

	var swept int
	err = s.batch.RunInBatch(ctx, func(ctx context.Context) error {
		if err := s.saveInvoices(ctx, invoices); err != nil {
			return err
		}
		n, err := s.reconciler.PruneOrphans(ctx)
		if err != nil {
			return err
		}
		swept = n
		return s.activitySvc.Record(ctx, fmt.Sprintf("Mengimpor %d invoice", len(invoices)))
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to import invoices")
		s.Notify(ctx, "Gagal menyimpan data invoice", domain.SeverityError)
		return err
	}
	if swept > 0 {
		s.Notify(ctx, msgReportSwept, domain.SeverityInfo)
	}
	return nil
}

// CreateInvoice records a new sale. A cash sale is paid on the spot; any
// other method defaults to unpaid.
func (s *invoiceService) CreateInvoice(ctx context.Context, req dto.CreateInvoiceRequest) (*domain.Invoice, error) {
	if err := validateCreateInvoice(req); err != nil {
		s.Notify(ctx, "Data invoice tidak valid", domain.SeverityError)
		return nil, err
	}

	invoice := domain.Invoice{
		InvoiceNumber: strings.TrimSpace(req.InvoiceNumber),
		Date:          req.Date,
		CustomerName:  strings.TrimSpace(req.CustomerName),
		Total:         req.Total,
		PaymentMethod: req.PaymentMethod,
		PaymentStatus: req.PaymentStatus,
		PaymentDate:   req.PaymentDate,
		InvoiceKind:   req.InvoiceKind,
	}
	if invoice.InvoiceKind == "" {
		invoice.InvoiceKind = domain.DefaultInvoiceKind
	}
	if invoice.PaymentStatus == "" {
		invoice.PaymentStatus = domain.StatusUnpaid
		if invoice.IsCash() {
			invoice.PaymentStatus = domain.StatusPaid
		}
	}
	if invoice.IsPaid() && invoice.PaymentDate == "" {
		invoice.PaymentDate = invoice.Date
	}
	if !invoice.IsPaid() {
		invoice.PaymentDate = ""
	}

	err := s.batch.RunInBatch(ctx, func(ctx context.Context) error {
		invoices, err := s.invoiceRepo.ListInvoices(ctx)
		if err != nil {
			return err
		}
		if invoice.InvoiceNumber == "" {
			invoice.InvoiceNumber = nextInvoiceNumber(invoices)
		}
		for _, existing := range invoices {
			if existing.InvoiceNumber == invoice.InvoiceNumber {
				return fmt.Errorf("%w: invoice %s sudah ada", apperrors.ErrDuplicate, invoice.InvoiceNumber)
			}
		}

		if err := s.saveInvoices(ctx, append(invoices, invoice)); err != nil {
			return err
		}
		if err := s.journalSvc.RecordSale(ctx, invoice); err != nil {
			return err
		}
		if err := s.reconciler.RecordSale(ctx, invoice); err != nil {
			return err
		}
		// A credit sale entered as already paid is settled right away so the
		// receivable does not linger.
		if invoice.IsPaid() && !invoice.IsCash() {
			if err := s.journalSvc.RecordPayment(ctx, invoice); err != nil {
				return err
			}
			if err := s.reconciler.RecordPayment(ctx, invoice); err != nil {
				return err
			}
		}
		return s.activitySvc.Record(ctx, fmt.Sprintf("Menambah jurnal untuk invoice: %s", invoice.InvoiceNumber))
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to create invoice", slog.String("invoice_number", invoice.InvoiceNumber))
		if errors.Is(err, apperrors.ErrDuplicate) {
			s.Notify(ctx, fmt.Sprintf("Nomor invoice %s sudah digunakan", invoice.InvoiceNumber), domain.SeverityError)
		} else {
			s.Notify(ctx, "Terjadi kesalahan saat menyimpan ke jurnal", domain.SeverityError)
		}
		return nil, err
	}

	s.LogInfo(ctx, "Invoice created", slog.String("invoice_number", invoice.InvoiceNumber))
	s.Notify(ctx, "Data penjualan berhasil dicatat di jurnal dan laporan keuangan!", domain.SeveritySuccess)
	return &invoice, nil
}

// SetPaymentStatus changes the status of the invoice at index. Moving from
// Belum Lunas to Lunas books the payment. Moving back to Belum Lunas only
// clears the payment date; the earlier payment entries are not reversed.
func (s *invoiceService) SetPaymentStatus(ctx context.Context, index int, status domain.PaymentStatus) (*domain.Invoice, error) {
	if !status.IsValid() {
		s.Notify(ctx, "Status pembayaran tidak valid", domain.SeverityError)
		return nil, fmt.Errorf("%w: status %q tidak dikenal", apperrors.ErrValidation, status)
	}

	var invoice domain.Invoice
	paymentBooked := false

	err := s.batch.RunInBatch(ctx, func(ctx context.Context) error {
		invoices, err := s.invoiceAt(ctx, index)
		if err != nil {
			return err
		}
		invoice = invoices[index]
		oldStatus := invoice.PaymentStatus
		invoice.PaymentStatus = status

		if status == domain.StatusPaid {
			if invoice.PaymentDate == "" {
				invoice.PaymentDate = s.Today()
			}
			if oldStatus == domain.StatusUnpaid {
				if err := s.journalSvc.RecordPayment(ctx, invoice); err != nil {
					return err
				}
				if err := s.reconciler.RecordPayment(ctx, invoice); err != nil {
					return err
				}
				if err := s.activitySvc.Record(ctx, fmt.Sprintf("Update laporan keuangan untuk pelunasan invoice: %s", invoice.InvoiceNumber)); err != nil {
					return err
				}
				paymentBooked = true
			}
		} else {
			invoice.PaymentDate = ""
		}

		invoices[index] = invoice
		if err := s.saveInvoices(ctx, invoices); err != nil {
			return err
		}
		return s.activitySvc.Record(ctx, fmt.Sprintf("Mengubah status pembayaran invoice %s dari %s menjadi %s", invoice.InvoiceNumber, oldStatus, status))
	})
	if errors.Is(err, apperrors.ErrNotFound) {
		s.Notify(ctx, msgInvoiceNotFound, domain.SeverityError)
		return nil, err
	}
	if err != nil {
		s.LogError(ctx, err, "Failed to change payment status", slog.String("invoice_number", invoice.InvoiceNumber))
		s.Notify(ctx, "Terjadi kesalahan saat mengubah status pembayaran", domain.SeverityError)
		return nil, err
	}

	if paymentBooked {
		s.Notify(ctx, "Status pembayaran diperbarui dan dicatat di laporan keuangan!", domain.SeveritySuccess)
	}
	s.Notify(ctx, "Status pembayaran berhasil diperbarui", domain.SeveritySuccess)
	return &invoice, nil
}

func (s *invoiceService) DeleteInvoice(ctx context.Context, index int, confirmer portssvc.Confirmer) (bool, error) {
	var invoice domain.Invoice
	declined := false

	err := s.batch.RunInBatch(ctx, func(ctx context.Context) error {
		invoices, err := s.invoiceAt(ctx, index)
		if err != nil {
			return err
		}
		invoice = invoices[index]
		if !confirmer.Confirm(ctx, fmt.Sprintf("Apakah Anda yakin ingin menghapus invoice %s?", invoice.InvoiceNumber)) {
			declined = true
			return nil
		}

		remaining := make([]domain.Invoice, 0, len(invoices)-1)
		remaining = append(remaining, invoices[:index]...)
		remaining = append(remaining, invoices[index+1:]...)
		return s.removeInvoice(ctx, remaining, invoice.InvoiceNumber)
	})
	if errors.Is(err, apperrors.ErrNotFound) {
		s.Notify(ctx, msgInvoiceNotFound, domain.SeverityError)
		return false, err
	}
	if err != nil {
		s.LogError(ctx, err, "Failed to delete invoice", slog.String("invoice_number", invoice.InvoiceNumber))
		s.Notify(ctx, "Terjadi kesalahan saat menghapus invoice", domain.SeverityError)
		return false, err
	}
	if declined {
		s.LogDebug(ctx, "Invoice deletion declined", slog.String("invoice_number", invoice.InvoiceNumber))
		return false, nil
	}

	s.LogInfo(ctx, "Invoice deleted", slog.String("invoice_number", invoice.InvoiceNumber))
	s.Notify(ctx, fmt.Sprintf("Invoice %s berhasil dihapus", invoice.InvoiceNumber), domain.SeveritySuccess)
	return true, nil
}

// DeleteInvoices removes the listed invoices in one batch and finishes with
// an orphan sweep.
func (s *invoiceService) DeleteInvoices(ctx context.Context, numbers []string, confirmer portssvc.Confirmer) (int, error) {
	wanted := make(map[string]struct{}, len(numbers))
	for _, n := range numbers {
		wanted[n] = struct{}{}
	}
	var doomed []string
	declined := false
	swept := 0

	err := s.batch.RunInBatch(ctx, func(ctx context.Context) error {
		invoices, err := s.invoiceRepo.ListInvoices(ctx)
		if err != nil {
			return err
		}
		remaining := make([]domain.Invoice, 0, len(invoices))
		for _, inv := range invoices {
			if _, ok := wanted[inv.InvoiceNumber]; ok {
				doomed = append(doomed, inv.InvoiceNumber)
				continue
			}
			remaining = append(remaining, inv)
		}
		if len(doomed) == 0 {
			return fmt.Errorf("%w: none of the invoices exist", apperrors.ErrNotFound)
		}
		if !confirmer.Confirm(ctx, fmt.Sprintf("Apakah Anda yakin ingin menghapus %d invoice?", len(doomed))) {
			declined = true
			return nil
		}

		for _, number := range doomed {
			if err := s.removeInvoice(ctx, remaining, number); err != nil {
				return err
			}
		}
		swept, err = s.reconciler.PruneOrphans(ctx)
		return err
	})
	if errors.Is(err, apperrors.ErrNotFound) {
		s.Notify(ctx, msgInvoiceNotFound, domain.SeverityError)
		return 0, err
	}
	if err != nil {
		s.LogError(ctx, err, "Failed to delete invoices", slog.Int("count", len(doomed)))
		s.Notify(ctx, "Terjadi kesalahan saat menghapus invoice", domain.SeverityError)
		return 0, err
	}
	if declined {
		return 0, nil
	}

	if swept > 0 {
		s.Notify(ctx, msgReportSwept, domain.SeverityInfo)
	}
	s.Notify(ctx, fmt.Sprintf("%d invoice berhasil dihapus", len(doomed)), domain.SeveritySuccess)
	return len(doomed), nil
}

// invoiceAt loads the invoice collection and checks that index is inside it.
func (s *invoiceService) invoiceAt(ctx context.Context, index int) ([]domain.Invoice, error) {
	invoices, err := s.invoiceRepo.ListInvoices(ctx)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(invoices) {
		return nil, fmt.Errorf("%w: invoice index %d", apperrors.ErrNotFound, index)
	}
	return invoices, nil
}

// removeInvoice stores remaining as the invoice collection and drops the
// journal lines and report rows of number.
func (s *invoiceService) removeInvoice(ctx context.Context, remaining []domain.Invoice, number string) error {
	if err := s.saveInvoices(ctx, remaining); err != nil {
		return err
	}
	if _, err := s.journalSvc.RemoveByInvoice(ctx, number); err != nil {
		return err
	}
	if _, err := s.reconciler.RemoveForInvoice(ctx, number); err != nil {
		return err
	}
	return s.activitySvc.Record(ctx, fmt.Sprintf("Menghapus invoice: %s", number))
}

func validateCreateInvoice(req dto.CreateInvoiceRequest) error {
	if err := utils.ValidateStruct(req); err != nil {
		return err
	}
	if !domain.IsValidDate(req.Date) {
		return fmt.Errorf("%w: tanggal harus berformat YYYY-MM-DD", apperrors.ErrValidation)
	}
	if req.PaymentDate != "" && !domain.IsValidDate(req.PaymentDate) {
		return fmt.Errorf("%w: tanggal pelunasan harus berformat YYYY-MM-DD", apperrors.ErrValidation)
	}
	if req.Total.IsNegative() {
		return fmt.Errorf("%w: total tidak boleh negatif", apperrors.ErrValidation)
	}
	if req.PaymentStatus != "" && !req.PaymentStatus.IsValid() {
		return fmt.Errorf("%w: status %q tidak dikenal", apperrors.ErrValidation, req.PaymentStatus)
	}
	return nil
}

// nextInvoiceNumber returns INV-NNN one above the highest numbered invoice.
func nextInvoiceNumber(invoices []domain.Invoice) string {
	highest := 0
	for _, inv := range invoices {
		suffix, ok := strings.CutPrefix(inv.InvoiceNumber, invoiceNumberPrefix)
		if !ok {
			continue
		}
		if n, err := strconv.Atoi(suffix); err == nil && n > highest {
			highest = n
		}
	}
	return fmt.Sprintf("%s%03d", invoiceNumberPrefix, highest+1)
}
