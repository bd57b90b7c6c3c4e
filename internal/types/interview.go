package types

import (
	"time"

	"github.com/google/uuid"
)

// InterviewStatus is the confirmation state of an interview.
type InterviewStatus string

const (
	InterviewConfirmed InterviewStatus = "confirmed"
	InterviewToConfirm InterviewStatus = "to-confirm"
	InterviewPostponed InterviewStatus = "postponed"
	InterviewCancelled InterviewStatus = "cancelled"
)

// InterviewType describes the format of an interview.
type InterviewType string

const (
	InterviewPhone     InterviewType = "phone"
	InterviewVideo     InterviewType = "video"
	InterviewOnsite    InterviewType = "onsite"
	InterviewTechnical InterviewType = "technical"
	InterviewHR        InterviewType = "hr"
)

// Interview is a scheduled meeting tied to an application.
type Interview struct {
	ID            uuid.UUID       `json:"id"`
	UserID        uuid.UUID       `json:"user_id"`
	ApplicationID uuid.UUID       `json:"application_id"`
	Date          string          `json:"date"` // YYYY-MM-DD
	Time          string          `json:"time"` // HH:MM
	Type          InterviewType   `json:"type"`
	Location      string          `json:"location,omitempty"`
	Interviewer   string          `json:"interviewer,omitempty"`
	Duration      int             `json:"duration"` // minutes
	Status        InterviewStatus `json:"status"`
	Notes         *string         `json:"notes,omitempty"`
	MeetingLink   *string         `json:"meeting_link,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}
