// Package types provides type definitions for the records tracked by the job application dashboard.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"time"

	"github.com/google/uuid"
)

// ApplicationStatus is the lifecycle label of an application.
type ApplicationStatus string

// Application lifecycle labels. The set is closed; the database enforces it with a CHECK.
const (
	StatusPending   ApplicationStatus = "En attente"
	StatusInterview ApplicationStatus = "Entretien"
	StatusAccepted  ApplicationStatus = "Acceptée"
	StatusRejected  ApplicationStatus = "Refusée"
)

// ApplicationStatuses lists every valid application status in display order.
var ApplicationStatuses = []ApplicationStatus{StatusPending, StatusInterview, StatusAccepted, StatusRejected}

// Valid reports whether s belongs to the closed status set.
func (s ApplicationStatus) Valid() bool {
	for _, known := range ApplicationStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// Responded reports whether the status means the company replied in any way.
func (s ApplicationStatus) Responded() bool {
	return s == StatusInterview || s == StatusAccepted || s == StatusRejected
}

// Priority ranks applications and tasks.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Application is a single job application tracked by a user.
type Application struct {
	ID           uuid.UUID         `json:"id"`
	UserID       uuid.UUID         `json:"user_id"`
	Company      string            `json:"company"`
	Position     string            `json:"position"`
	Location     string            `json:"location,omitempty"`
	Status       ApplicationStatus `json:"status"`
	AppliedDate  string            `json:"applied_date,omitempty"` // YYYY-MM-DD, may be empty
	Salary       string            `json:"salary,omitempty"`
	Priority     Priority          `json:"priority"`
	Description  string            `json:"description,omitempty"`
	Tags         []string          `json:"tags"`
	ContactName  string            `json:"contact_name,omitempty"`
	ContactEmail string            `json:"contact_email,omitempty"`
	ContactPhone string            `json:"contact_phone,omitempty"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}
