package forms

import (
	"github.com/google/uuid"

	"github.com/pape-dev/Dashboard-Gestion-Candidatures-sub001/internal/types"
)

// DefaultInterviewDuration is used when no duration is given, in minutes.
const DefaultInterviewDuration = 60

// InterviewForm is a created or edited interview.
type InterviewForm struct {
	ApplicationID string  `json:"application_id" validate:"required,uuid"`
	Date          string  `json:"date" validate:"required,isodate"`
	Time          string  `json:"time" validate:"required,hhmm"`
	Type          string  `json:"type" validate:"required,oneof=phone video onsite technical hr"`
	Location      *string `json:"location,omitempty" validate:"omitempty,max=200"`
	Interviewer   *string `json:"interviewer,omitempty" validate:"omitempty,max=100"`
	Duration      int     `json:"duration" validate:"min=15,max=480"`
	Status        string  `json:"status" validate:"required,oneof=confirmed to-confirm postponed cancelled"`
	Notes         *string `json:"notes,omitempty" validate:"omitempty,max=1000"`
	MeetingLink   *string `json:"meeting_link,omitempty" validate:"omitempty,url"`
}

// Normalize implements Form.
func (f *InterviewForm) Normalize() {
	trim(&f.ApplicationID)
	trim(&f.Date)
	trim(&f.Time)
	orDefault(&f.Type, string(types.InterviewVideo))
	optional(&f.Location)
	optional(&f.Interviewer)
	if f.Duration == 0 {
		f.Duration = DefaultInterviewDuration
	}
	orDefault(&f.Status, string(types.InterviewToConfirm))
	optional(&f.Notes)
	optional(&f.MeetingLink)
}

// Interview builds the interview record for userID. The form must be valid.
func (f *InterviewForm) Interview(userID uuid.UUID) *types.Interview {
	return &types.Interview{
		UserID:        userID,
		ApplicationID: uuid.MustParse(f.ApplicationID),
		Date:          f.Date,
		Time:          f.Time,
		Type:          types.InterviewType(f.Type),
		Location:      deref(f.Location),
		Interviewer:   deref(f.Interviewer),
		Duration:      f.Duration,
		Status:        types.InterviewStatus(f.Status),
		Notes:         f.Notes,
		MeetingLink:   f.MeetingLink,
	}
}
