// Package cli implements the editorcal command-line interface.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Eason-TWPlus/editor-calendar/internal/config"
	"github.com/Eason-TWPlus/editor-calendar/internal/rowstore"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "editorcal",
	Short: "Scheduling board for the video editing team",
	Long: `editorcal serves a month-calendar scheduling board for editing tasks,
backed by a shared sheet as the system of record.

Quick start:
  editorcal serve             Start the web server
  editorcal doctor            Check store connectivity and sheet schema
  editorcal export out.csv    Back up the sheet to CSV`,
	SilenceUsage: true,
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "editorcal.yml", "config file")

	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newDoctorCmd())
	rootCmd.AddCommand(newExportCmd())
}

func loadConfig() (*config.Config, error) {
	return config.Load(cfgFile)
}

// openStore builds the configured row-store backend.
func openStore(ctx context.Context, cfg *config.Config) (rowstore.Store, error) {
	switch cfg.Store.Backend {
	case "sheets":
		return rowstore.OpenSheets(ctx, rowstore.SheetsOptions{
			SpreadsheetID:   cfg.Store.SpreadsheetID,
			Worksheet:       cfg.Store.Worksheet,
			CredentialsFile: cfg.Store.CredentialsFile,
		})
	case "sqlite":
		return rowstore.OpenSQLite(cfg.Store.DataDir)
	case "memory":
		return rowstore.NewMemStore(), nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
	}
}
