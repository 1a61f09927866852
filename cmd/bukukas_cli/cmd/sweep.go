package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SscSPs/bukukas_app/internal/notify"
)

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Remove financial report rows of deleted invoices",
	Long: `Drop every report row whose invoice no longer exists. Manual rows
are kept. Running it twice removes nothing the second time.`,
	RunE: runSweep,
}

func runSweep(cmd *cobra.Command, args []string) error {
	ctx, _ := notify.WithCollector(cmd.Context())

	container, closeFn, err := openServices(ctx)
	if err != nil {
		return err
	}
	defer closeFn()

	removed, err := container.Report.SweepOrphans(ctx)
	printNotifications(ctx, cmd)
	if err != nil {
		return fmt.Errorf("sweep failed: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Removed %d orphaned report rows\n", removed)
	return nil
}
