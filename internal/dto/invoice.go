package dto

import (
	"github.com/SscSPs/bukukas_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateInvoiceRequest is the payload for recording a sale.
type CreateInvoiceRequest struct {
	InvoiceNumber string               `json:"noInvoice"` // generated when empty
	Date          string               `json:"tanggal" binding:"required"`
	CustomerName  string               `json:"customer" binding:"required"`
	Total         decimal.Decimal      `json:"total"`
	PaymentMethod string               `json:"metodePembayaran" binding:"required"`
	PaymentStatus domain.PaymentStatus `json:"status"`
	PaymentDate   string               `json:"tanggalPelunasan"`
	InvoiceKind   string               `json:"jenisInvoice"`
}

// UpdatePaymentStatusRequest changes the status of one invoice.
type UpdatePaymentStatusRequest struct {
	Status domain.PaymentStatus `json:"status" binding:"required"`
}

// BulkDeleteInvoicesRequest lists the invoice numbers to delete.
type BulkDeleteInvoicesRequest struct {
	InvoiceNumbers []string `json:"noInvoice" binding:"required,min=1"`
}

// BulkDeleteInvoicesResponse reports how many invoices were removed.
type BulkDeleteInvoicesResponse struct {
	Deleted int `json:"deleted"`
}
