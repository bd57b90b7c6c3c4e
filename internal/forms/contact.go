package forms

import (
	"github.com/google/uuid"

	"github.com/pape-dev/Dashboard-Gestion-Candidatures-sub001/internal/types"
)

// ContactForm is a created or edited contact.
type ContactForm struct {
	Name            string  `json:"name" validate:"required,min=2,max=100"`
	Email           *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone           *string `json:"phone,omitempty" validate:"omitempty,phone"`
	Company         *string `json:"company,omitempty" validate:"omitempty,max=100"`
	Position        *string `json:"position,omitempty" validate:"omitempty,max=100"`
	Notes           *string `json:"notes,omitempty" validate:"omitempty,max=1000"`
	LinkedInURL     *string `json:"linkedin_url,omitempty" validate:"omitempty,url"`
	LastContactDate *string `json:"last_contact_date,omitempty" validate:"omitempty,isodate"`
}

// Normalize implements Form.
func (f *ContactForm) Normalize() {
	trim(&f.Name)
	optional(&f.Email)
	optional(&f.Phone)
	optional(&f.Company)
	optional(&f.Position)
	optional(&f.Notes)
	optional(&f.LinkedInURL)
	optional(&f.LastContactDate)
}

// Contact builds the contact record for userID.
func (f *ContactForm) Contact(userID uuid.UUID) *types.Contact {
	return &types.Contact{
		UserID:          userID,
		Name:            f.Name,
		Email:           f.Email,
		Phone:           f.Phone,
		Company:         f.Company,
		Position:        f.Position,
		Notes:           f.Notes,
		LinkedInURL:     f.LinkedInURL,
		LastContactDate: f.LastContactDate,
	}
}
