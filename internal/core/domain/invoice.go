package domain

import "github.com/shopspring/decimal"

// PaymentStatus is the settlement state of an invoice.
type PaymentStatus string

const (
	StatusPaid   PaymentStatus = "Lunas"
	StatusUnpaid PaymentStatus = "Belum Lunas"
)

// IsValid reports whether s is one of the known statuses.
func (s PaymentStatus) IsValid() bool {
	return s == StatusPaid || s == StatusUnpaid
}

// PaymentMethodCash is the payment method that settles a sale immediately.
// Every other method books the sale as a receivable.
const PaymentMethodCash = "Tunai"

// DefaultInvoiceKind is used when a sale carries no invoice kind.
const DefaultInvoiceKind = "jasa"

// Invoice is a sales invoice, identified by its InvoiceNumber.
type Invoice struct {
	InvoiceNumber string          `json:"noInvoice"`
	Date          string          `json:"tanggal"`
	CustomerName  string          `json:"customer"`
	Total         decimal.Decimal `json:"total"`
	PaymentMethod string          `json:"metodePembayaran"`
	PaymentStatus PaymentStatus   `json:"status"`
	PaymentDate   string          `json:"tanggalPelunasan"` // empty when unpaid
	InvoiceKind   string          `json:"jenisInvoice,omitempty"`
}

// IsCash reports whether the invoice was paid in cash at the point of sale.
func (i Invoice) IsCash() bool {
	return i.PaymentMethod == PaymentMethodCash
}

// IsPaid reports whether the invoice is settled.
func (i Invoice) IsPaid() bool {
	return i.PaymentStatus == StatusPaid
}

// Kind returns the invoice kind, falling back to DefaultInvoiceKind.
func (i Invoice) Kind() string {
	if i.InvoiceKind == "" {
		return DefaultInvoiceKind
	}
	return i.InvoiceKind
}
