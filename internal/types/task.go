package types

import (
	"time"

	"github.com/google/uuid"
)

// TaskStatus is the progress state of a follow-up task.
type TaskStatus string

const (
	TaskTodo       TaskStatus = "todo"
	TaskInProgress TaskStatus = "in-progress"
	TaskCompleted  TaskStatus = "completed"
)

// TaskCategory is the closed set of task categories.
type TaskCategory string

const (
	CategoryApplication TaskCategory = "application"
	CategoryInterview   TaskCategory = "interview"
	CategoryFollowUp    TaskCategory = "follow-up"
	CategoryNetworking  TaskCategory = "networking"
	CategoryPreparation TaskCategory = "preparation"
	CategoryOther       TaskCategory = "other"
)

// Task is a follow-up action, optionally attached to an application.
//
// Completed and CompletedAt are derived from Status and must only be changed
// through SetStatus.
type Task struct {
	ID            uuid.UUID    `json:"id"`
	UserID        uuid.UUID    `json:"user_id"`
	ApplicationID *uuid.UUID   `json:"application_id,omitempty"`
	Title         string       `json:"title"`
	Description   *string      `json:"description,omitempty"`
	DueDate       *string      `json:"due_date,omitempty"`
	Priority      Priority     `json:"priority"`
	Status        TaskStatus   `json:"status"`
	Category      TaskCategory `json:"category"`
	Completed     bool         `json:"completed"`
	CompletedAt   *time.Time   `json:"completed_at,omitempty"`
	CreatedAt     time.Time    `json:"created_at"`
}

// SetStatus moves the task to status and keeps the completion fields consistent:
// completed implies Completed and a completion timestamp, anything else clears both.
// An already completed task keeps its original timestamp.
func (t *Task) SetStatus(status TaskStatus, now time.Time) {
	t.Status = status
	if status != TaskCompleted {
		t.Completed = false
		t.CompletedAt = nil
		return
	}
	t.Completed = true
	if t.CompletedAt == nil {
		ts := now.UTC()
		t.CompletedAt = &ts
	}
}

// Consistent reports whether the derived completion fields agree with Status.
func (t *Task) Consistent() bool {
	if t.Status == TaskCompleted {
		return t.Completed && t.CompletedAt != nil
	}
	return !t.Completed && t.CompletedAt == nil
}
