package types

import (
	"time"

	"github.com/google/uuid"
)

// Contact is a person met during the job search. Only the name is mandatory.
type Contact struct {
	ID              uuid.UUID `json:"id"`
	UserID          uuid.UUID `json:"user_id"`
	Name            string    `json:"name"`
	Email           *string   `json:"email,omitempty"`
	Phone           *string   `json:"phone,omitempty"`
	Company         *string   `json:"company,omitempty"`
	Position        *string   `json:"position,omitempty"`
	Notes           *string   `json:"notes,omitempty"`
	LinkedInURL     *string   `json:"linkedin_url,omitempty"`
	LastContactDate *string   `json:"last_contact_date,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}
