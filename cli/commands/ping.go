package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/kingler-db/kingler-go/cli/internal/config"
	"github.com/kingler-db/kingler-go/cli/internal/ui"
	"github.com/kingler-db/kingler-go/runtime/client"
)

// NewPingCommand creates the ping command.
func NewPingCommand() *cobra.Command {
	var backend string
	var url string
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "ping",
		Short: "Verify the configured database is reachable",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			if backend == "" {
				backend = cfg.Backend
			}
			if url == "" {
				url = cfg.DatabaseURL
			}
			if url == "" {
				return fmt.Errorf("no connection target: pass --url or set DATABASE_URL")
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			spinner, _ := ui.Spinner(fmt.Sprintf("Connecting to %s...", backend))
			c, err := client.Open(ctx, backend, url)
			if spinner != nil {
				_ = spinner.Stop()
			}
			if err != nil {
				ui.PrintError("Connection failed: %v", err)
				return err
			}
			defer c.Close()

			ui.PrintSuccess("Connected")
			ui.PrintKeyValues([][]string{
				{"Backend", c.Backend()},
				{"Target", url},
			})
			return nil
		},
	}

	cmd.Flags().StringVar(&backend, "backend", "", "backend name (sqlite, postgres, mysql)")
	cmd.Flags().StringVar(&url, "url", "", "connection target")
	cmd.Flags().DurationVar(&timeout, "timeout", 10*time.Second, "connection timeout")

	return cmd
}
