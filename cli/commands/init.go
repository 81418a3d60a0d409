package commands

import (
	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/kingler-db/kingler-go/cli/internal/config"
	"github.com/kingler-db/kingler-go/cli/internal/ui"
)

// NewInitCommand creates the init command.
func NewInitCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Configure a database backend interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			ui.PrintHeader("kingler init")

			cfg := &config.Config{}

			if err := survey.AskOne(&survey.Select{
				Message: "Database backend:",
				Options: []string{"sqlite", "postgres", "mysql"},
				Default: "sqlite",
			}, &cfg.Backend); err != nil {
				return err
			}

			if err := survey.AskOne(&survey.Input{
				Message: "Connection target:",
				Help:    "A file path for sqlite, a DSN for postgres/mysql",
				Default: "kingler.db",
			}, &cfg.DatabaseURL); err != nil {
				return err
			}

			if err := config.SaveConfig(cfg); err != nil {
				return err
			}

			env := "DATABASE_URL=" + cfg.DatabaseURL + "\n"
			if err := afero.WriteFile(config.AppFs, ".env", []byte(env), 0644); err != nil {
				return err
			}

			ui.PrintSuccess("Configuration written")
			ui.PrintInfo("Backend: %s", cfg.Backend)
			ui.PrintInfo("Target:  %s", cfg.DatabaseURL)
			return nil
		},
	}
}
