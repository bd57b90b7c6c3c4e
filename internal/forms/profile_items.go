package forms

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/pape-dev/Dashboard-Gestion-Candidatures-sub001/internal/types"
)

// ExperienceForm is a past position. Current positions have no end date.
type ExperienceForm struct {
	Title       string  `json:"title" validate:"required,max=100"`
	Company     string  `json:"company" validate:"required,max=100"`
	Location    *string `json:"location,omitempty" validate:"omitempty,max=100"`
	StartDate   string  `json:"start_date" validate:"required,isodate"`
	EndDate     *string `json:"end_date,omitempty" validate:"omitempty,isodate"`
	Current     bool    `json:"current"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=1000"`
}

// Normalize implements Form.
func (f *ExperienceForm) Normalize() {
	trim(&f.Title)
	trim(&f.Company)
	optional(&f.Location)
	trim(&f.StartDate)
	optional(&f.EndDate)
	if f.Current {
		f.EndDate = nil
	}
	optional(&f.Description)
}

func validateExperienceDates(sl validator.StructLevel) {
	f := sl.Current().Interface().(ExperienceForm)
	if f.EndDate == nil {
		return
	}
	start, err := time.Parse(types.DayLayout, f.StartDate)
	if err != nil {
		return
	}
	end, err := time.Parse(types.DayLayout, *f.EndDate)
	if err != nil {
		return
	}
	if end.Before(start) {
		sl.ReportError(f.EndDate, "end_date", "EndDate", "afterstart", "")
	}
}

// Experience builds the experience record for userID.
func (f *ExperienceForm) Experience(userID uuid.UUID) *types.Experience {
	return &types.Experience{
		UserID:      userID,
		Title:       f.Title,
		Company:     f.Company,
		Location:    f.Location,
		StartDate:   f.StartDate,
		EndDate:     f.EndDate,
		Current:     f.Current,
		Description: f.Description,
	}
}

// SkillForm is a self-assessed skill.
type SkillForm struct {
	Name     string `json:"name" validate:"required,max=50"`
	Level    int    `json:"level" validate:"required,min=1,max=5"`
	Category string `json:"category" validate:"required,oneof=technical soft language tool"`
}

// Normalize implements Form.
func (f *SkillForm) Normalize() {
	trim(&f.Name)
	orDefault(&f.Category, "technical")
}

// Skill builds the skill record for userID.
func (f *SkillForm) Skill(userID uuid.UUID) *types.Skill {
	return &types.Skill{UserID: userID, Name: f.Name, Level: f.Level, Category: f.Category}
}

// DocumentForm describes an uploaded file. Size and MIME type are checked by the uploads package.
type DocumentForm struct {
	Name        string  `json:"name" validate:"required,max=255"`
	Type        string  `json:"type" validate:"required,oneof=cv cover_letter portfolio certificate other"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=500"`
}

// Normalize implements Form.
func (f *DocumentForm) Normalize() {
	trim(&f.Name)
	orDefault(&f.Type, "other")
	optional(&f.Description)
}

// Document builds the document record for userID.
func (f *DocumentForm) Document(userID uuid.UUID, mimeType string, size int64) *types.Document {
	return &types.Document{
		UserID:      userID,
		Name:        f.Name,
		Type:        f.Type,
		MimeType:    mimeType,
		Size:        size,
		Description: f.Description,
	}
}

// SocialLinkForm is a public profile link.
type SocialLinkForm struct {
	Platform string `json:"platform" validate:"required,oneof=linkedin github twitter portfolio other"`
	URL      string `json:"url" validate:"required,url"`
}

// Normalize implements Form.
func (f *SocialLinkForm) Normalize() {
	trim(&f.Platform)
	trim(&f.URL)
}

// SocialLink builds the social link record for userID.
func (f *SocialLinkForm) SocialLink(userID uuid.UUID) *types.SocialLink {
	return &types.SocialLink{UserID: userID, Platform: f.Platform, URL: f.URL}
}
