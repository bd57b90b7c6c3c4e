// Package importer loads a dashboard export file into a user's account.
package importer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pape-dev/Dashboard-Gestion-Candidatures-sub001/internal/forms"
	"github.com/pape-dev/Dashboard-Gestion-Candidatures-sub001/internal/schemas"
	"github.com/pape-dev/Dashboard-Gestion-Candidatures-sub001/internal/types"
)

// Store is the storage written by an import.
type Store interface {
	CreateApplication(ctx context.Context, a *types.Application) error
	CreateInterview(ctx context.Context, iv *types.Interview) error
	CreateContact(ctx context.Context, c *types.Contact) error
	CreateTask(ctx context.Context, t *types.Task) error
}

// File is the export format described by schemas/applications_import.schema.json.
type File struct {
	Version      int                 `json:"version"`
	ExportedAt   string              `json:"exported_at,omitempty"`
	Applications []ApplicationRecord `json:"applications"`
	Contacts     []forms.ContactForm `json:"contacts"`
	Tasks        []forms.TaskForm    `json:"tasks"`
}

// ApplicationRecord is an application with its interviews nested.
type ApplicationRecord struct {
	forms.ApplicationForm
	Interviews []forms.InterviewForm `json:"interviews"`
}

// Result counts the records created.
type Result struct {
	Applications int
	Interviews   int
	Contacts     int
	Tasks        int
}

// Importer validates export files and writes their records.
type Importer struct {
	store Store
	forms *forms.Validator
	now   func() time.Time
}

// New creates an Importer writing to store.
func New(store Store) *Importer {
	return &Importer{store: store, forms: forms.New(), now: time.Now}
}

// Parse checks data against the import schema and the form rules. Nothing is
// written; every invalid record is reported.
func (im *Importer) Parse(data []byte) (*File, error) {
	if err := schemas.ValidateImport(data); err != nil {
		return nil, err
	}

	var file File
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to decode import file: %w", err)
	}

	var errs []error
	check := func(label string, i int, form forms.Form) {
		if err := im.forms.Validate(form); err != nil {
			errs = append(errs, fmt.Errorf("%s[%d]: %w", label, i, err))
		}
	}
	for i := range file.Applications {
		rec := &file.Applications[i]
		check("applications", i, &rec.ApplicationForm)
		for j := range rec.Interviews {
			// Linked to the created application during Import.
			rec.Interviews[j].ApplicationID = uuid.Nil.String()
			check(fmt.Sprintf("applications[%d].interviews", i), j, &rec.Interviews[j])
		}
	}
	for i := range file.Contacts {
		check("contacts", i, &file.Contacts[i])
	}
	for i := range file.Tasks {
		check("tasks", i, &file.Tasks[i])
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return &file, nil
}

// Import parses data and creates its records for userID. Parsing errors
// abort before any write; a storage error stops the import and returns the
// counts of what was already created.
func (im *Importer) Import(ctx context.Context, userID uuid.UUID, data []byte) (Result, error) {
	var res Result
	file, err := im.Parse(data)
	if err != nil {
		return res, err
	}

	for i := range file.Applications {
		rec := &file.Applications[i]
		app := rec.Application(userID)
		if err := im.store.CreateApplication(ctx, app); err != nil {
			return res, fmt.Errorf("failed to import application %q: %w", app.Company, err)
		}
		res.Applications++

		for j := range rec.Interviews {
			rec.Interviews[j].ApplicationID = app.ID.String()
			iv := rec.Interviews[j].Interview(userID)
			if err := im.store.CreateInterview(ctx, iv); err != nil {
				return res, fmt.Errorf("failed to import interview of %q: %w", app.Company, err)
			}
			res.Interviews++
		}
	}

	for i := range file.Contacts {
		c := file.Contacts[i].Contact(userID)
		if err := im.store.CreateContact(ctx, c); err != nil {
			return res, fmt.Errorf("failed to import contact %q: %w", c.Name, err)
		}
		res.Contacts++
	}

	now := im.now()
	for i := range file.Tasks {
		task := file.Tasks[i].Task(userID, now)
		if err := im.store.CreateTask(ctx, task); err != nil {
			return res, fmt.Errorf("failed to import task %q: %w", task.Title, err)
		}
		res.Tasks++
	}
	return res, nil
}
