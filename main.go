package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mrlokans/english-hub/internal/config"
	"github.com/mrlokans/english-hub/internal/entrypoint"
)

// Version information - set at build time via ldflags
var (
	Version = "dev"
	Commit  = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "english-hub",
	Short: "Workplace English Hub API server",
	Long: `English Hub stores vocabulary words, example sentences and dialogues
and serves them over a JSON HTTP API.

Configuration is read from environment variables (PORT, DATABASE_PATH,
CORS_ALLOWED_ORIGIN, BACKUP_DIR, ...).`,
	SilenceUsage: true,
	// No subcommand starts the server
	RunE: runServe,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Write a JSON snapshot of all records to BACKUP_DIR",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := entrypoint.RunBackup(config.NewConfig())
		if err != nil {
			return fmt.Errorf("backup: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", Version, Commit)
	},
}

func runServe(cmd *cobra.Command, args []string) error {
	entrypoint.Run(config.NewConfig(), Version)
	return nil
}

func main() {
	rootCmd.AddCommand(serveCmd, backupCmd, versionCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
