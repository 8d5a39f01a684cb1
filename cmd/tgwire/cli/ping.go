package cli

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/prilive-com/tgwire/sender"
)

var (
	pingEnvFile string
	pingTimeout time.Duration
)

var pingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Call getMe with the configured token",
	Long: `Call getMe against the Bot API and print the bot identity.

The sender is configured from the environment (TELEGRAM_BOT_TOKEN,
TELEGRAM_API_BASE_URL and the other sender variables). A .env file is read
first; variables already set in the environment take precedence.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := loadDotEnv(pingEnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", pingEnvFile, err)
		}
		cfg, err := sender.LoadConfig()
		if err != nil {
			return err
		}
		client, err := sender.NewFromConfig(*cfg, sender.WithLogger(logger))
		if err != nil {
			return err
		}
		defer client.Close()

		ctx, cancel := context.WithTimeout(cmd.Context(), pingTimeout)
		defer cancel()

		w := cmd.OutOrStdout()
		start := time.Now()
		me, err := client.GetMe(ctx)
		if err != nil {
			color.New(color.FgRed).Fprint(w, "✗ ")
			fmt.Fprintln(w, err)
			return err
		}

		color.New(color.FgGreen).Fprint(w, "✓ ")
		color.New(color.Bold).Fprintf(w, "@%s", me.Username)
		fmt.Fprintf(w, " (id %d, %s) in %s\n", me.ID, me.FirstName, time.Since(start).Round(time.Millisecond))
		fmt.Fprintf(w, "  can join groups:     %t\n", me.CanJoinGroups)
		fmt.Fprintf(w, "  reads all messages:  %t\n", me.CanReadAllGroupMessages)
		fmt.Fprintf(w, "  inline queries:      %t\n", me.SupportsInlineQueries)
		return nil
	},
}

func init() {
	pingCmd.Flags().StringVar(&pingEnvFile, "env-file", ".env", "Read environment variables from this file")
	pingCmd.Flags().DurationVar(&pingTimeout, "timeout", 30*time.Second, "Give up after this long")
}
