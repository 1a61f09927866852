package utils

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// FormatRupiah renders amount in rupiah for the CLI and the xlsx export.
func FormatRupiah(amount decimal.Decimal) string {
	cur := money.GetCurrency(money.IDR)
	minor := amount.Shift(int32(cur.Fraction)).Round(0)
	return money.New(minor.IntPart(), money.IDR).Display()
}
