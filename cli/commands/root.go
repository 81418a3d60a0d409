// Package commands implements the kingler CLI commands.
package commands

import (
	"github.com/spf13/cobra"
)

// Execute builds the root command and runs the CLI.
func Execute() error {
	rootCmd := &cobra.Command{
		Use:   "kingler",
		Short: "Map Go record types to relational tables",
		Long: "kingler derives table schemas from Go record types, generates\n" +
			"dialect-correct SQL and executes it against sqlite, postgres or mysql.",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(NewInitCommand())
	rootCmd.AddCommand(NewPingCommand())
	rootCmd.AddCommand(NewVersionCommand())

	return rootCmd.Execute()
}
