package forms

import (
	"github.com/google/uuid"

	"github.com/pape-dev/Dashboard-Gestion-Candidatures-sub001/internal/types"
)

// ApplicationForm is a created or edited job application.
type ApplicationForm struct {
	Company      string   `json:"company" validate:"required,max=100"`
	Position     string   `json:"position" validate:"required,max=100"`
	Location     *string  `json:"location,omitempty" validate:"omitempty,max=100"`
	Status       string   `json:"status" validate:"required,appstatus"`
	AppliedDate  *string  `json:"applied_date,omitempty" validate:"omitempty,isodate"`
	Salary       *string  `json:"salary,omitempty" validate:"omitempty,max=50"`
	Priority     string   `json:"priority" validate:"required,oneof=high medium low"`
	Description  *string  `json:"description,omitempty" validate:"omitempty,max=2000"`
	Tags         []string `json:"tags,omitempty" validate:"omitempty,max=10,dive,min=1,max=30"`
	ContactName  *string  `json:"contact_name,omitempty" validate:"omitempty,max=100"`
	ContactEmail *string  `json:"contact_email,omitempty" validate:"omitempty,email"`
	ContactPhone *string  `json:"contact_phone,omitempty" validate:"omitempty,phone"`
}

// Normalize implements Form. A missing status defaults to pending and a missing priority to medium.
func (f *ApplicationForm) Normalize() {
	trim(&f.Company)
	trim(&f.Position)
	optional(&f.Location)
	orDefault(&f.Status, string(types.StatusPending))
	optional(&f.AppliedDate)
	optional(&f.Salary)
	orDefault(&f.Priority, string(types.PriorityMedium))
	optional(&f.Description)
	optional(&f.ContactName)
	optional(&f.ContactEmail)
	optional(&f.ContactPhone)

	tags := make([]string, 0, len(f.Tags))
	seen := make(map[string]bool, len(f.Tags))
	for _, tag := range f.Tags {
		trim(&tag)
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		tags = append(tags, tag)
	}
	f.Tags = tags
}

// Application builds the application record for userID.
func (f *ApplicationForm) Application(userID uuid.UUID) *types.Application {
	return &types.Application{
		UserID:       userID,
		Company:      f.Company,
		Position:     f.Position,
		Location:     deref(f.Location),
		Status:       types.ApplicationStatus(f.Status),
		AppliedDate:  deref(f.AppliedDate),
		Salary:       deref(f.Salary),
		Priority:     types.Priority(f.Priority),
		Description:  deref(f.Description),
		Tags:         f.Tags,
		ContactName:  deref(f.ContactName),
		ContactEmail: deref(f.ContactEmail),
		ContactPhone: deref(f.ContactPhone),
	}
}

// StatusForm changes only the status of an application.
type StatusForm struct {
	Status string `json:"status" validate:"required,appstatus"`
}

// Normalize implements Form.
func (f *StatusForm) Normalize() {
	trim(&f.Status)
}
