package accounting

import (
	"github.com/SscSPs/bukukas_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TrialBalance totals lines per account. Accounts of the chart come first in
// chart order, then any other account in order of first appearance.
func TrialBalance(lines []domain.JournalLine) []domain.TrialBalanceRow {
	totals := make(map[string]*domain.TrialBalanceRow)
	order := make([]string, 0, len(domain.ChartOfAccounts))
	for _, acc := range domain.ChartOfAccounts {
		totals[acc] = &domain.TrialBalanceRow{Account: acc, Debit: decimal.Zero, Credit: decimal.Zero}
		order = append(order, acc)
	}

	for _, l := range lines {
		row, ok := totals[l.Account]
		if !ok {
			row = &domain.TrialBalanceRow{Account: l.Account, Debit: decimal.Zero, Credit: decimal.Zero}
			totals[l.Account] = row
			order = append(order, l.Account)
		}
		row.Debit = row.Debit.Add(l.Debit)
		row.Credit = row.Credit.Add(l.Credit)
	}

	out := make([]domain.TrialBalanceRow, 0, len(order))
	for _, acc := range order {
		row := totals[acc]
		row.Balance = row.Debit.Sub(row.Credit)
		out = append(out, *row)
	}
	return out
}

// SumSides returns the total debit and credit of lines.
func SumSides(lines []domain.JournalLine) (debit, credit decimal.Decimal) {
	debit, credit = decimal.Zero, decimal.Zero
	for _, l := range lines {
		debit = debit.Add(l.Debit)
		credit = credit.Add(l.Credit)
	}
	return debit, credit
}

// ValidateLine reports whether line posts to a known account with exactly one
// positive side.
func ValidateLine(line domain.JournalLine) bool {
	if !domain.IsKnownAccount(line.Account) {
		return false
	}
	debitSet := line.Debit.GreaterThan(decimal.Zero)
	creditSet := line.Credit.GreaterThan(decimal.Zero)
	if line.Debit.IsNegative() || line.Credit.IsNegative() {
		return false
	}
	return debitSet != creditSet
}
