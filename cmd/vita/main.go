package main

import (
	"os"

	"github.com/spf13/cobra"

	"vita/internal/interfaces/cli/migrate"
	"vita/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "vita",
		Short: "Vita - a personal health journal",
		Long:  `Vita is a household health journal with Fitbit synchronization, profile switching, and daily journal entries.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
