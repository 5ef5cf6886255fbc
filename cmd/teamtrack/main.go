package main

import (
	"os"

	"github.com/spf13/cobra"

	"teamtrack/internal/interfaces/cli/admin"
	"teamtrack/internal/interfaces/cli/migrate"
	"teamtrack/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "teamtrack",
		Short: "TeamTrack - project and ticket tracking for software teams",
		Long:  `TeamTrack is a project and ticket tracking service with a built-in HTTP server, migration tools, and administrative commands.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		admin.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
