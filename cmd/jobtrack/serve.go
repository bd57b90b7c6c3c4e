package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/spf13/cobra"

	"github.com/pape-dev/Dashboard-Gestion-Candidatures-sub001/internal/dashboard"
	"github.com/pape-dev/Dashboard-Gestion-Candidatures-sub001/internal/digest"
	"github.com/pape-dev/Dashboard-Gestion-Candidatures-sub001/internal/notify"
	"github.com/pape-dev/Dashboard-Gestion-Candidatures-sub001/internal/retry"
	"github.com/pape-dev/Dashboard-Gestion-Candidatures-sub001/internal/server"
)

var (
	servePort     int
	serveMigrate  bool
	serveNoDigest bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start the HTTP server exposing the dashboard REST API, along with the daily digest scheduler.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides PORT)")
	serveCmd.Flags().BoolVar(&serveMigrate, "migrate", true, "Apply database migrations before serving")
	serveCmd.Flags().BoolVar(&serveNoDigest, "no-digest", false, "Do not schedule the daily digest")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if servePort != 0 {
		cfg.Port = servePort
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
	defer cancel()
	store, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	if serveMigrate {
		applied, err := store.Migrate(ctx)
		if err != nil {
			return err
		}
		log.Printf("[db] %d migration file(s) applied", len(applied))
	}

	notifier := notify.LogNotifier{}
	srv, err := server.New(cfg, store, notifier)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	if !serveNoDigest {
		loc, err := time.LoadLocation(cfg.DigestTimezone)
		if err != nil {
			return fmt.Errorf("invalid digest timezone: %w", err)
		}
		loader := dashboard.NewLoader(store, cfg.MaxRetryAttempts, retry.DefaultBaseDelay)
		scheduler := digest.NewScheduler(store, loader, notifier, loc)
		if _, err := scheduler.Schedule(cfg.DigestSchedule); err != nil {
			return err
		}
		scheduler.Start()
		defer scheduler.Stop()
		log.Printf("[digest] scheduled at %q (%s)", cfg.DigestSchedule, loc)
	}

	return srv.Start()
}
