package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lbruni/collaudo/internal/app"
	"github.com/lbruni/collaudo/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "collaudo",
	Short: "Track equipment test campaigns",
	Long: `collaudo tracks equipment/installation test campaigns.

Define a project, import its checklist from CSV, run test sessions
recording PASS/FAIL/SKIP outcomes per check, and export a report.`,
	SilenceUsage: true,
}

var dbPath string

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "SQLite database path (overrides config)")
}

// Execute runs the CLI.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// openApp loads configuration, applies CLI overrides and opens the store.
// The caller must Close the returned App.
func openApp() (*app.App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if dbPath != "" {
		cfg.DB.Path = dbPath
	}
	return app.New(cfg)
}
