// Package cli implements the tgwire command tree.
package cli

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// debugFlag turns on debug logging
var debugFlag bool

// logger is set up before any subcommand runs
var logger = slog.New(slog.NewTextHandler(io.Discard, nil))

var rootCmd = &cobra.Command{
	Use:   "tgwire",
	Short: "tgwire - Telegram Bot API payload tooling",
	Long: `tgwire decodes Telegram Bot API payloads with the same codec bots use.

It allows you to:
  - Decode a JSON payload and see which variant it resolves to
  - Check a suite of fixtures against their expected variants
  - Re-decode a fixture every time it is saved
  - Smoke-test a bot token with getMe`,
	Example: `  # Decode an update
  tgwire decode -t update testdata/update.json

  # Run a fixture suite and keep a report
  tgwire check suite.yaml --report-dir reports

  # Re-decode a getUpdates response on every save
  tgwire watch -t response.updates updates.json

  # Call getMe with TELEGRAM_BOT_TOKEN from .env
  tgwire ping`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := slog.LevelInfo
		if debugFlag || os.Getenv("TGWIRE_LOG_LEVEL") == "debug" {
			level = slog.LevelDebug
		}
		logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
		return nil
	},
}

// Execute runs the command tree against os.Args.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(decodeCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(pingCmd)
	rootCmd.AddCommand(targetsCmd)
}
