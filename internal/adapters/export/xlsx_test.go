package export_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/SscSPs/bukukas_app/internal/adapters/export"
	"github.com/SscSPs/bukukas_app/internal/core/domain"
)

func TestWriteReport(t *testing.T) {
	rows := []domain.FinancialReportRow{
		{Date: "2024-01-05", Account: "Penjualan", Value: decimal.NewFromInt(100000), Description: "Penjualan - Budi", EntryType: domain.EntryCredit, InvoiceNumber: "INV-001"},
		{Date: "2024-01-10", Account: "Pelunasan", Value: decimal.NewFromInt(100000), Description: "Pelunasan Invoice INV-001 - Budi", EntryType: domain.EntryDebit, InvoiceNumber: "INV-001"},
		{Date: "2024-01-11", Account: "Beban Operasional", Value: decimal.NewFromInt(25000), Description: "Listrik", EntryType: domain.EntryDebit},
	}

	var buf bytes.Buffer
	require.NoError(t, export.WriteReport(&buf, rows))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{export.SheetName}, f.GetSheetList())
	got, err := f.GetRows(export.SheetName)
	require.NoError(t, err)
	require.Len(t, got, 5)

	assert.Equal(t, []string{"Tanggal", "Akun", "Keterangan", "No Invoice", "Debit", "Kredit"}, got[0])
	assert.Equal(t, "INV-001", got[1][3])
	assert.Equal(t, "100000", got[1][5])
	assert.Equal(t, "100000", got[2][4])
	assert.Equal(t, "Total", got[4][0])
	assert.Equal(t, "125000", got[4][4])
	assert.True(t, strings.HasPrefix(got[4][2], "Saldo "))
}

func TestWriteReport_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.WriteReport(&buf, nil))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()
	got, err := f.GetRows(export.SheetName)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}
