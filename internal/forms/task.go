package forms

import (
	"time"

	"github.com/google/uuid"

	"github.com/pape-dev/Dashboard-Gestion-Candidatures-sub001/internal/types"
)

// TaskForm is a created or edited task.
type TaskForm struct {
	ApplicationID *string `json:"application_id,omitempty" validate:"omitempty,uuid"`
	Title         string  `json:"title" validate:"required,min=3,max=100"`
	Description   *string `json:"description,omitempty" validate:"omitempty,max=500"`
	DueDate       *string `json:"due_date,omitempty" validate:"omitempty,isodate"`
	Priority      string  `json:"priority" validate:"required,oneof=high medium low"`
	Status        string  `json:"status" validate:"required,oneof=todo in-progress completed"`
	Category      string  `json:"category" validate:"required,oneof=application interview follow-up networking preparation other"`
}

// Normalize implements Form.
func (f *TaskForm) Normalize() {
	optional(&f.ApplicationID)
	trim(&f.Title)
	optional(&f.Description)
	optional(&f.DueDate)
	orDefault(&f.Priority, string(types.PriorityMedium))
	orDefault(&f.Status, string(types.TaskTodo))
	orDefault(&f.Category, string(types.CategoryOther))
}

// Task builds the task record for userID with consistent completion fields.
// The form must be valid.
func (f *TaskForm) Task(userID uuid.UUID, now time.Time) *types.Task {
	task := &types.Task{
		UserID:      userID,
		Title:       f.Title,
		Description: f.Description,
		DueDate:     f.DueDate,
		Priority:    types.Priority(f.Priority),
		Category:    types.TaskCategory(f.Category),
	}
	if f.ApplicationID != nil {
		id := uuid.MustParse(*f.ApplicationID)
		task.ApplicationID = &id
	}
	task.SetStatus(types.TaskStatus(f.Status), now)
	return task
}

// TaskStatusForm changes only the status of a task.
type TaskStatusForm struct {
	Status string `json:"status" validate:"required,oneof=todo in-progress completed"`
}

// Normalize implements Form.
func (f *TaskStatusForm) Normalize() {
	trim(&f.Status)
}
