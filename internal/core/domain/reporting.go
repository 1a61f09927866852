package domain

import "github.com/shopspring/decimal"

// Report row account labels for invoice-derived rows.
const (
	ReportAccountSales      = "Penjualan"
	ReportAccountSettlement = "Pelunasan"
)

// EntryType is the side of a financial report row.
type EntryType string

const (
	EntryDebit  EntryType = "debit"
	EntryCredit EntryType = "kredit"
)

// FinancialReportRow is the one-line-per-event summary kept next to the
// two-line journal. Rows without an InvoiceNumber are manual entries.
type FinancialReportRow struct {
	Date            string          `json:"tanggal"`
	Account         string          `json:"akun"`
	Value           decimal.Decimal `json:"nilai"`
	Description     string          `json:"keterangan"`
	EntryType       EntryType       `json:"tipe"`
	InvoiceNumber   string          `json:"noInvoice,omitempty"`
	TransactionKind TransactionKind `json:"jenisTransaksi,omitempty"`
	PaymentMethod   string          `json:"metodePembayaran,omitempty"`
	InvoiceKind     string          `json:"jenisInvoice,omitempty"`
}

// IsManual reports whether the row is exempt from invoice reconciliation.
func (r FinancialReportRow) IsManual() bool {
	return r.InvoiceNumber == ""
}

// Is reports whether the row belongs to the given invoice event.
func (r FinancialReportRow) Is(invoiceNumber string, kind TransactionKind) bool {
	return r.InvoiceNumber == invoiceNumber && r.TransactionKind == kind
}

// MatchesLine is the loose match used when a journal line is deleted: same
// account, same date, and a value equal to the line's debit or credit.
func (r FinancialReportRow) MatchesLine(line JournalLine) bool {
	return r.Account == line.Account &&
		r.Date == line.Date &&
		r.Value.Equal(line.Amount())
}

// ReportSummary totals the financial report.
type ReportSummary struct {
	TotalDebit  decimal.Decimal `json:"totalDebit"`
	TotalCredit decimal.Decimal `json:"totalKredit"`
	Net         decimal.Decimal `json:"net"` // TotalCredit - TotalDebit
	RowCount    int             `json:"rowCount"`
}

// Summarize totals rows by entry type.
func Summarize(rows []FinancialReportRow) ReportSummary {
	s := ReportSummary{TotalDebit: decimal.Zero, TotalCredit: decimal.Zero, RowCount: len(rows)}
	for _, r := range rows {
		switch r.EntryType {
		case EntryDebit:
			s.TotalDebit = s.TotalDebit.Add(r.Value)
		case EntryCredit:
			s.TotalCredit = s.TotalCredit.Add(r.Value)
		}
	}
	s.Net = s.TotalCredit.Sub(s.TotalDebit)
	return s
}
