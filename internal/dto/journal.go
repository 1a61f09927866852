package dto

import (
	"github.com/SscSPs/bukukas_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ManualJournalLineRequest is one hand-entered journal line.
type ManualJournalLineRequest struct {
	Date        string          `json:"tanggal" binding:"required"`
	Account     string          `json:"akun" binding:"required"`
	Description string          `json:"keterangan"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"kredit"`
}

// CreateManualJournalRequest groups the lines of one manual transaction.
type CreateManualJournalRequest struct {
	Lines []ManualJournalLineRequest `json:"lines" binding:"required,min=1,dive"`
}

// ToDomain converts the request into journal lines not tied to an invoice.
func (r CreateManualJournalRequest) ToDomain() []domain.JournalLine {
	lines := make([]domain.JournalLine, 0, len(r.Lines))
	for _, l := range r.Lines {
		lines = append(lines, domain.JournalLine{
			Date:        l.Date,
			Account:     l.Account,
			Description: l.Description,
			Debit:       l.Debit,
			Credit:      l.Credit,
		})
	}
	return lines
}

// TrialBalanceResponse represents the trial balance report response
type TrialBalanceResponse struct {
	Rows   []domain.TrialBalanceRow `json:"rows"`
	Totals struct {
		Debit  decimal.Decimal `json:"debit"`
		Credit decimal.Decimal `json:"kredit"`
	} `json:"totals"`
}

// NewTrialBalanceResponse totals rows.
func NewTrialBalanceResponse(rows []domain.TrialBalanceRow) TrialBalanceResponse {
	resp := TrialBalanceResponse{Rows: rows}
	resp.Totals.Debit = decimal.Zero
	resp.Totals.Credit = decimal.Zero
	for _, r := range rows {
		resp.Totals.Debit = resp.Totals.Debit.Add(r.Debit)
		resp.Totals.Credit = resp.Totals.Credit.Add(r.Credit)
	}
	return resp
}
