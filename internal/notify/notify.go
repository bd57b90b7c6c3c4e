// Package notify surfaces operation results and errors to the user.
package notify

import (
	"context"
	"log"
	"sync"

	"github.com/google/uuid"
)

// Severity is how a notice is presented.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Notice is a toast-style message.
type Notice struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Severity    Severity `json:"severity"`
}

// Success builds a success notice.
func Success(title, description string) Notice {
	return Notice{Title: title, Description: description, Severity: SeveritySuccess}
}

// Info builds an informational notice.
func Info(title, description string) Notice {
	return Notice{Title: title, Description: description, Severity: SeverityInfo}
}

// Error builds an error notice.
func Error(title, description string) Notice {
	return Notice{Title: title, Description: description, Severity: SeverityError}
}

// Notifier delivers notices to a user.
type Notifier interface {
	Notify(ctx context.Context, userID uuid.UUID, n Notice)
}

// LogNotifier writes notices to the process log.
type LogNotifier struct{}

// Notify implements Notifier.
func (LogNotifier) Notify(_ context.Context, userID uuid.UUID, n Notice) {
	log.Printf("[notify] user=%s severity=%s title=%q description=%q", userID, n.Severity, n.Title, n.Description)
}

// Recorder keeps notices in memory, newest last.
type Recorder struct {
	mu      sync.Mutex
	notices map[uuid.UUID][]Notice
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{notices: make(map[uuid.UUID][]Notice)}
}

// Notify implements Notifier.
func (r *Recorder) Notify(_ context.Context, userID uuid.UUID, n Notice) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notices[userID] = append(r.notices[userID], n)
}

// Drain returns and forgets the notices recorded for userID.
func (r *Recorder) Drain(userID uuid.UUID) []Notice {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := r.notices[userID]
	delete(r.notices, userID)
	return out
}
