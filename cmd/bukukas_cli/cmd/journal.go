package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/SscSPs/bukukas_app/internal/utils"
)

var journalCmd = &cobra.Command{
	Use:   "journal",
	Short: "Print the trial balance of the journal",
	RunE:  runJournal,
}

func runJournal(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	container, closeFn, err := openServices(ctx)
	if err != nil {
		return err
	}
	defer closeFn()

	rows, err := container.Journal.TrialBalance(ctx)
	if err != nil {
		return fmt.Errorf("failed to compute trial balance: %w", err)
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "Akun\tDebit\tKredit\tSaldo\t")
	debit, credit := decimal.Zero, decimal.Zero
	for _, r := range rows {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t\n", r.Account,
			utils.FormatRupiah(r.Debit), utils.FormatRupiah(r.Credit), utils.FormatRupiah(r.Balance))
		debit = debit.Add(r.Debit)
		credit = credit.Add(r.Credit)
	}
	fmt.Fprintf(w, "Total\t%s\t%s\t%s\t\n", utils.FormatRupiah(debit), utils.FormatRupiah(credit), utils.FormatRupiah(debit.Sub(credit)))
	if err := w.Flush(); err != nil {
		return err
	}

	if !debit.Equal(credit) {
		return fmt.Errorf("journal is out of balance by %s", utils.FormatRupiah(debit.Sub(credit)))
	}
	return nil
}
