package domain

import "github.com/shopspring/decimal"

// Chart of accounts used by journal lines.
const (
	AccountCash           = "Kas"
	AccountReceivable     = "Piutang Usaha"
	AccountServiceRevenue = "Pendapatan Jasa"
	AccountOperatingCost  = "Beban Operasional"
	AccountOwnerEquity    = "Modal Pemilik"
	AccountOwnerDrawing   = "Prive"
)

// ChartOfAccounts lists every account a journal line may post to.
var ChartOfAccounts = []string{
	AccountCash,
	AccountReceivable,
	AccountServiceRevenue,
	AccountOperatingCost,
	AccountOwnerEquity,
	AccountOwnerDrawing,
}

// IsKnownAccount reports whether name is part of ChartOfAccounts.
func IsKnownAccount(name string) bool {
	for _, a := range ChartOfAccounts {
		if a == name {
			return true
		}
	}
	return false
}

// TransactionKind tags the invoice event that produced a line or row.
// The zero value marks a manual entry.
type TransactionKind string

const (
	KindSale    TransactionKind = "penjualan"
	KindPayment TransactionKind = "pelunasan"
	KindManual  TransactionKind = ""
)

// JournalLine is one side of a double-entry transaction. Exactly one of Debit
// and Credit is nonzero.
type JournalLine struct {
	Date            string          `json:"tanggal"`
	Account         string          `json:"akun"`
	Description     string          `json:"keterangan"`
	Debit           decimal.Decimal `json:"debit"`
	Credit          decimal.Decimal `json:"kredit"`
	FromInvoice     bool            `json:"fromPenjualan"`
	InvoiceNumber   string          `json:"noInvoice,omitempty"`
	TransactionKind TransactionKind `json:"jenisTransaksi,omitempty"`
}

// IsDebit reports whether the line sits on the debit side.
func (l JournalLine) IsDebit() bool {
	return !l.Debit.IsZero()
}

// Amount is the nonzero side of the line.
func (l JournalLine) Amount() decimal.Decimal {
	if !l.Debit.IsZero() {
		return l.Debit
	}
	return l.Credit
}

// TrialBalanceRow totals the journal for one account.
type TrialBalanceRow struct {
	Account string          `json:"akun"`
	Debit   decimal.Decimal `json:"debit"`
	Credit  decimal.Decimal `json:"kredit"`
	Balance decimal.Decimal `json:"saldo"` // Debit - Credit
}
