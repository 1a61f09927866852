// Package cmd provides the bukukas CLI commands.
package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	portssvc "github.com/SscSPs/bukukas_app/internal/core/ports/services"
	"github.com/SscSPs/bukukas_app/internal/core/services"
	"github.com/SscSPs/bukukas_app/internal/notify"
	"github.com/SscSPs/bukukas_app/internal/platform/config"
	"github.com/SscSPs/bukukas_app/internal/platform/storage"
	"github.com/SscSPs/bukukas_app/internal/repositories/kv"
)

var debug bool

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "bukukas",
	Short: "Maintain the bukukas books from the command line",
	Long: `bukukas works directly on the configured store (STORE_DRIVER,
BOLT_PATH, PGSQL_URL) without going through the HTTP server.

Example:
  bukukas sweep
  bukukas export --out laporan.xlsx
  bukukas journal
  bukukas logs`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logLevel := slog.LevelInfo
		if debug {
			logLevel = slog.LevelDebug
		}

		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: logLevel,
		}))
		slog.SetDefault(logger)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(sweepCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(journalCmd)
	rootCmd.AddCommand(logsCmd)
}

// openServices loads the configuration and wires the services on the
// configured store. The returned function closes the store.
func openServices(ctx context.Context) (*portssvc.ServiceContainer, func(), error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := slog.Default()
	store, closeStore, err := storage.Open(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	container := services.NewServiceContainer(cfg, kv.NewRepositoryProvider(store), nil,
		services.WithNotifier(notify.NewNotifier()))

	return container, func() {
		if cerr := closeStore(); cerr != nil {
			logger.Error("Error closing store", slog.String("error", cerr.Error()))
		}
	}, nil
}

// printNotifications writes the messages collected on ctx to stderr.
func printNotifications(ctx context.Context, cmd *cobra.Command) {
	for _, n := range notify.Items(ctx) {
		fmt.Fprintf(cmd.ErrOrStderr(), "[%s] %s\n", n.Severity, n.Message)
	}
}
