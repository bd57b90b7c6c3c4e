// Package digest sends each user a daily summary of their job search.
package digest

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"

	"github.com/pape-dev/Dashboard-Gestion-Candidatures-sub001/internal/dashboard"
	"github.com/pape-dev/Dashboard-Gestion-Candidatures-sub001/internal/notify"
)

// Store lists the users to summarize and their records.
type Store interface {
	dashboard.Source
	ListUserIDs(ctx context.Context) ([]uuid.UUID, error)
}

// runTimeout bounds one full pass over every user.
const runTimeout = 10 * time.Minute

// Scheduler runs the digest on a cron schedule.
type Scheduler struct {
	cron     *cron.Cron
	store    Store
	loader   *dashboard.Loader
	notifier notify.Notifier
	now      func() time.Time
}

// NewScheduler creates a Scheduler whose schedules are evaluated in loc.
// Specs have six fields, seconds first.
func NewScheduler(store Store, loader *dashboard.Loader, notifier notify.Notifier, loc *time.Location) *Scheduler {
	return &Scheduler{
		cron:     cron.New(cron.WithLocation(loc), cron.WithSeconds()),
		store:    store,
		loader:   loader,
		notifier: notifier,
		now:      time.Now,
	}
}

// Schedule registers a digest run for the cron expression expr, e.g. "0 0 8 * * *" for 08:00 every day.
func (s *Scheduler) Schedule(expr string) (cron.EntryID, error) {
	id, err := s.cron.AddFunc(expr, func() {
		ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
		defer cancel()
		sent, err := s.Run(ctx)
		if err != nil {
			log.Printf("[digest] run finished with errors: %v", err)
		}
		log.Printf("[digest] sent %d digest(s)", sent)
	})
	if err != nil {
		return 0, fmt.Errorf("invalid digest schedule %q: %w", expr, err)
	}
	return id, nil
}

// Start runs the scheduler in its own goroutine.
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop stops the scheduler and waits for a running digest to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

// Run sends one digest to every user and returns how many were sent.
// A user whose records cannot be loaded is skipped; the failures are returned joined.
func (s *Scheduler) Run(ctx context.Context) (int, error) {
	userIDs, err := s.store.ListUserIDs(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list users: %w", err)
	}

	today := s.now()
	sent := 0
	var errs []error
	for _, userID := range userIDs {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}
		snap, err := s.loader.Load(ctx, userID)
		if err != nil {
			log.Printf("[digest] skipping user %s: %v", userID, err)
			errs = append(errs, fmt.Errorf("user %s: %w", userID, err))
			continue
		}
		s.notifier.Notify(ctx, userID, Summarize(dashboard.Build(snap, today)))
		sent++
	}
	return sent, errors.Join(errs...)
}

// Summarize turns a dashboard overview into the digest notice. The first insight
// is appended to the counters.
func Summarize(o dashboard.Overview) notify.Notice {
	desc := fmt.Sprintf("%d candidature(s) active(s), %d entretien(s) planifié(s), %d tâche(s) ouverte(s). Taux de réponse : %d%%.",
		o.Stats.Active, o.Stats.InterviewsScheduled, o.OpenTasks, o.Stats.ResponseRate)
	if len(o.Insights) > 0 {
		desc += " " + o.Insights[0].Title + " : " + o.Insights[0].Description
	}
	return notify.Info("Votre résumé du jour", desc)
}
