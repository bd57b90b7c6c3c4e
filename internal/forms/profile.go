package forms

import (
	"time"

	"github.com/google/uuid"

	"github.com/pape-dev/Dashboard-Gestion-Candidatures-sub001/internal/types"
)

// ProfileForm is the editable part of a user profile.
type ProfileForm struct {
	FirstName   string  `json:"first_name" validate:"required,min=2,max=50"`
	LastName    string  `json:"last_name" validate:"required,min=2,max=50"`
	Email       string  `json:"email" validate:"required,email"`
	Phone       *string `json:"phone,omitempty" validate:"omitempty,phone"`
	Title       *string `json:"title,omitempty" validate:"omitempty,max=100"`
	Location    *string `json:"location,omitempty" validate:"omitempty,max=100"`
	Bio         *string `json:"bio,omitempty" validate:"omitempty,max=500"`
	Website     *string `json:"website,omitempty" validate:"omitempty,url"`
	LinkedInURL *string `json:"linkedin_url,omitempty" validate:"omitempty,url"`
	GithubURL   *string `json:"github_url,omitempty" validate:"omitempty,url"`
}

// Normalize implements Form.
func (f *ProfileForm) Normalize() {
	trim(&f.FirstName)
	trim(&f.LastName)
	trim(&f.Email)
	optional(&f.Phone)
	optional(&f.Title)
	optional(&f.Location)
	optional(&f.Bio)
	optional(&f.Website)
	optional(&f.LinkedInURL)
	optional(&f.GithubURL)
}

// Profile builds the profile record for userID.
func (f *ProfileForm) Profile(userID uuid.UUID, now time.Time) *types.Profile {
	return &types.Profile{
		UserID:      userID,
		FirstName:   f.FirstName,
		LastName:    f.LastName,
		Email:       f.Email,
		Phone:       f.Phone,
		Title:       f.Title,
		Location:    f.Location,
		Bio:         f.Bio,
		Website:     f.Website,
		LinkedInURL: f.LinkedInURL,
		GithubURL:   f.GithubURL,
		UpdatedAt:   now,
	}
}
