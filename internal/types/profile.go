package types

import (
	"time"

	"github.com/google/uuid"
)

// Profile holds the personal details shown on the user's dashboard.
type Profile struct {
	UserID      uuid.UUID `json:"user_id"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	Email       string    `json:"email"`
	Phone       *string   `json:"phone,omitempty"`
	Title       *string   `json:"title,omitempty"`
	Location    *string   `json:"location,omitempty"`
	Bio         *string   `json:"bio,omitempty"`
	Website     *string   `json:"website,omitempty"`
	LinkedInURL *string   `json:"linkedin_url,omitempty"`
	GithubURL   *string   `json:"github_url,omitempty"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Experience is a past position listed on the profile.
type Experience struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	Title       string    `json:"title"`
	Company     string    `json:"company"`
	Location    *string   `json:"location,omitempty"`
	StartDate   string    `json:"start_date"`
	EndDate     *string   `json:"end_date,omitempty"`
	Current     bool      `json:"current"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Skill is a self-assessed competence, Level ranges 1 to 5.
type Skill struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Name      string    `json:"name"`
	Level     int       `json:"level"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"created_at"`
}

// Document is an uploaded file (CV, cover letter, ...). Content is stored separately.
type Document struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	Name        string    `json:"name"`
	Type        string    `json:"type"`
	MimeType    string    `json:"mime_type"`
	Size        int64     `json:"size"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// SocialLink is a public profile URL.
type SocialLink struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Platform  string    `json:"platform"`
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"created_at"`
}
