// Package main provides the entry point for the job application tracker.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/pape-dev/Dashboard-Gestion-Candidatures-sub001/internal/config"
	"github.com/pape-dev/Dashboard-Gestion-Candidatures-sub001/internal/db"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:          "jobtrack",
	Short:        "Job application tracker",
	Long:         "jobtrack serves the job application dashboard API and manages its database from the command line.",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a config file (default: ./jobtrack.yaml if present)")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig reads the configuration selected by --config.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// openStore connects to the database of cfg, retrying while it starts up.
func openStore(ctx context.Context, cfg *config.Config) (*db.DB, error) {
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}
	return db.ConnectWithRetry(ctx, cfg.DatabaseURL, cfg.MaxRetryAttempts)
}
