package main

import (
	"os"

	"github.com/spf13/cobra"

	"repairsync/internal/interfaces/cli/migrate"
	"repairsync/internal/interfaces/cli/server"
	"repairsync/internal/interfaces/cli/syncrun"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "repairsync",
		Short: "Ticket lifecycle sync and analytics engine",
		Long:  `Repairsync mirrors tickets from an external ticketing service into a local analytics store, derives repair metrics, and serves rollups over HTTP.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		syncrun.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
