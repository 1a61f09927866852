package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var logsLast int

var logsCmd = &cobra.Command{
	Use:   "logs",
	Short: "Print the activity log",
	RunE:  runLogs,
}

func init() {
	logsCmd.Flags().IntVarP(&logsLast, "last", "n", 0, "only print the last n entries")
}

func runLogs(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	container, closeFn, err := openServices(ctx)
	if err != nil {
		return err
	}
	defer closeFn()

	entries, err := container.Activity.ListActivityLogs(ctx)
	if err != nil {
		return fmt.Errorf("failed to read activity logs: %w", err)
	}
	if logsLast > 0 && len(entries) > logsLast {
		entries = entries[len(entries)-logsLast:]
	}

	for _, e := range entries {
		fmt.Fprintf(cmd.OutOrStdout(), "%s  %-12s %-6s %s\n",
			e.Timestamp.Local().Format("2006-01-02 15:04:05"), e.Username, e.Role, e.Description)
	}
	return nil
}
