package main

import (
	"os"

	"github.com/spf13/cobra"

	"licenza/internal/interfaces/cli/alerts"
	"licenza/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "licenza",
		Short: "Licenza - license expiry monitoring and reporting",
		Long:  `Licenza tracks company licenses, raises expiry alerts over email, and serves dashboard statistics.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		alerts.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
