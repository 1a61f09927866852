package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/SscSPs/bukukas_app/internal/adapters/export"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:     "export",
	Short:   "Export the financial report to an xlsx file",
	Example: `  bukukas export --out laporan.xlsx`,
	RunE:    runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "laporan-keuangan.xlsx", "output file")
}

func runExport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	container, closeFn, err := openServices(ctx)
	if err != nil {
		return err
	}
	defer closeFn()

	rows, err := container.Report.ListReportRows(ctx)
	if err != nil {
		return fmt.Errorf("failed to read report: %w", err)
	}

	f, err := os.Create(exportOut)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", exportOut, err)
	}
	defer f.Close()

	if err := export.WriteReport(f, rows); err != nil {
		return err
	}

	slog.Debug("Report exported", slog.String("path", exportOut), slog.Int("rows", len(rows)))
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d rows to %s\n", len(rows), exportOut)
	return nil
}
