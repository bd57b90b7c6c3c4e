package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/pape-dev/Dashboard-Gestion-Candidatures-sub001/internal/retry"
	"github.com/pape-dev/Dashboard-Gestion-Candidatures-sub001/internal/types"
)

// Snapshot is the set of records owned by one user session. It is loaded once
// per request and passed down explicitly.
type Snapshot struct {
	UserID       uuid.UUID
	Applications []types.Application
	Interviews   []types.Interview
	Contacts     []types.Contact
	Tasks        []types.Task
}

// Source lists a user's records.
type Source interface {
	ListApplications(ctx context.Context, userID uuid.UUID) ([]types.Application, error)
	ListInterviews(ctx context.Context, userID uuid.UUID) ([]types.Interview, error)
	ListContacts(ctx context.Context, userID uuid.UUID) ([]types.Contact, error)
	ListTasks(ctx context.Context, userID uuid.UUID) ([]types.Task, error)
}

// Loader fetches snapshots, retrying each list independently.
type Loader struct {
	source    Source
	attempts  int
	baseDelay time.Duration
}

// NewLoader creates a Loader. attempts below one means a single try.
func NewLoader(source Source, attempts int, baseDelay time.Duration) *Loader {
	return &Loader{source: source, attempts: attempts, baseDelay: baseDelay}
}

// Load fetches the four record lists of userID concurrently.
func (l *Loader) Load(ctx context.Context, userID uuid.UUID) (*Snapshot, error) {
	snap := &Snapshot{UserID: userID}
	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		apps, err := retry.Value(gCtx, l.attempts, l.baseDelay, func(ctx context.Context) ([]types.Application, error) {
			return l.source.ListApplications(ctx, userID)
		})
		if err != nil {
			return fmt.Errorf("failed to load applications: %w", err)
		}
		snap.Applications = apps
		return nil
	})
	g.Go(func() error {
		interviews, err := retry.Value(gCtx, l.attempts, l.baseDelay, func(ctx context.Context) ([]types.Interview, error) {
			return l.source.ListInterviews(ctx, userID)
		})
		if err != nil {
			return fmt.Errorf("failed to load interviews: %w", err)
		}
		snap.Interviews = interviews
		return nil
	})
	g.Go(func() error {
		contacts, err := retry.Value(gCtx, l.attempts, l.baseDelay, func(ctx context.Context) ([]types.Contact, error) {
			return l.source.ListContacts(ctx, userID)
		})
		if err != nil {
			return fmt.Errorf("failed to load contacts: %w", err)
		}
		snap.Contacts = contacts
		return nil
	})
	g.Go(func() error {
		tasks, err := retry.Value(gCtx, l.attempts, l.baseDelay, func(ctx context.Context) ([]types.Task, error) {
			return l.source.ListTasks(ctx, userID)
		})
		if err != nil {
			return fmt.Errorf("failed to load tasks: %w", err)
		}
		snap.Tasks = tasks
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return snap, nil
}

// Overview is everything the dashboard page renders.
type Overview struct {
	Stats     Stats        `json:"stats"`
	Week      Week         `json:"week"`
	Timeline  []MonthGroup `json:"timeline"`
	Insights  []Insight    `json:"insights"`
	Contacts  int          `json:"contacts"`
	OpenTasks int          `json:"open_tasks"`
}

// Build derives the overview of snap as of today.
func Build(snap *Snapshot, today time.Time) Overview {
	stats := ComputeStats(snap.Applications, snap.Interviews)

	open := 0
	for _, task := range snap.Tasks {
		if task.Status != types.TaskCompleted {
			open++
		}
	}

	return Overview{
		Stats:    stats,
		Week:     WeeklyActivity(snap.Applications, snap.Interviews, snap.Tasks, today),
		Timeline: GroupTimeline(snap.Applications),
		Insights: GenerateInsights(InsightInput{
			Stats:        stats,
			Applications: snap.Applications,
			Interviews:   snap.Interviews,
			Today:        today,
		}),
		Contacts:  len(snap.Contacts),
		OpenTasks: open,
	}
}
