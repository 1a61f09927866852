// Package export writes the financial report as an xlsx workbook.
package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/SscSPs/bukukas_app/internal/core/domain"
	"github.com/SscSPs/bukukas_app/internal/utils"
)

// SheetName is the worksheet holding the report.
const SheetName = "Laporan Keuangan"

// ContentType is the media type of the written workbook.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

var header = []any{"Tanggal", "Akun", "Keterangan", "No Invoice", "Debit", "Kredit"}

// WriteReport writes rows followed by a totals line to w. Amounts are stored
// as numbers with a rupiah rendering of the net in the last line.
func WriteReport(w io.Writer, rows []domain.FinancialReportRow) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("create style: %w", err)
	}
	if err := f.SetCellStyle(SheetName, "A1", "F1", bold); err != nil {
		return fmt.Errorf("style header: %w", err)
	}

	for i, r := range rows {
		var debit, credit any = "", ""
		if r.EntryType == domain.EntryDebit {
			debit = r.Value.InexactFloat64()
		} else {
			credit = r.Value.InexactFloat64()
		}
		line := []any{r.Date, r.Account, r.Description, r.InvoiceNumber, debit, credit}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(SheetName, cell, &line); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}

	summary := domain.Summarize(rows)
	totalRow := len(rows) + 2
	totals := []any{"Total", "", "Saldo " + utils.FormatRupiah(summary.Net), "", summary.TotalDebit.InexactFloat64(), summary.TotalCredit.InexactFloat64()}
	cell, err := excelize.CoordinatesToCellName(1, totalRow)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(SheetName, cell, &totals); err != nil {
		return fmt.Errorf("write totals: %w", err)
	}
	end, _ := excelize.CoordinatesToCellName(6, totalRow)
	if err := f.SetCellStyle(SheetName, cell, end, bold); err != nil {
		return fmt.Errorf("style totals: %w", err)
	}
	if err := f.SetColWidth(SheetName, "C", "C", 40); err != nil {
		return fmt.Errorf("set width: %w", err)
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
