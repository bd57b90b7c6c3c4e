package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/pape-dev/Dashboard-Gestion-Candidatures-sub001/internal/types"
)

const applicationColumns = `id, user_id, company, position, location, status,
	COALESCE(to_char(applied_date, 'YYYY-MM-DD'), ''), salary, priority, description, tags,
	contact_name, contact_email, contact_phone, created_at, updated_at`

func scanApplication(row scanner) (*types.Application, error) {
	var a types.Application
	var status, priority string
	err := row.Scan(&a.ID, &a.UserID, &a.Company, &a.Position, &a.Location, &status,
		&a.AppliedDate, &a.Salary, &priority, &a.Description, &a.Tags,
		&a.ContactName, &a.ContactEmail, &a.ContactPhone, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	a.Status = types.ApplicationStatus(status)
	a.Priority = types.Priority(priority)
	if a.Tags == nil {
		a.Tags = []string{}
	}
	return &a, nil
}

func tagsOrEmpty(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}

// CreateApplication inserts a new application and fills in its ID and timestamps
func (db *DB) CreateApplication(ctx context.Context, a *types.Application) error {
	err := db.pool.QueryRow(ctx,
		`INSERT INTO applications (user_id, company, position, location, status, applied_date,
		        salary, priority, description, tags, contact_name, contact_email, contact_phone)
		 VALUES ($1, $2, $3, $4, $5, NULLIF($6::text, '')::date, $7, $8, $9, $10, $11, $12, $13)
		 RETURNING id, created_at, updated_at`,
		a.UserID, a.Company, a.Position, a.Location, string(a.Status), a.AppliedDate,
		a.Salary, string(a.Priority), a.Description, tagsOrEmpty(a.Tags),
		a.ContactName, a.ContactEmail, a.ContactPhone,
	).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create application: %w", err)
	}
	a.Tags = tagsOrEmpty(a.Tags)
	return nil
}

// GetApplication retrieves an application of userID. Returns nil, nil when not found.
func (db *DB) GetApplication(ctx context.Context, userID, id uuid.UUID) (*types.Application, error) {
	a, err := scanApplication(db.pool.QueryRow(ctx,
		`SELECT `+applicationColumns+` FROM applications WHERE id = $1 AND user_id = $2`, id, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get application: %w", err)
	}
	return a, nil
}

// ListApplications returns every application of userID, most recent first.
// Applications without a date come last.
func (db *DB) ListApplications(ctx context.Context, userID uuid.UUID) ([]types.Application, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+applicationColumns+` FROM applications
		 WHERE user_id = $1
		 ORDER BY applied_date DESC NULLS LAST, created_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}
	defer rows.Close()

	apps := []types.Application{}
	for rows.Next() {
		a, err := scanApplication(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan application: %w", err)
		}
		apps = append(apps, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate applications: %w", err)
	}
	return apps, nil
}

// UpdateApplication overwrites every editable field of a
func (db *DB) UpdateApplication(ctx context.Context, a *types.Application) error {
	err := db.pool.QueryRow(ctx,
		`UPDATE applications SET company = $1, position = $2, location = $3, status = $4,
		        applied_date = NULLIF($5::text, '')::date, salary = $6, priority = $7, description = $8,
		        tags = $9, contact_name = $10, contact_email = $11, contact_phone = $12,
		        updated_at = NOW()
		 WHERE id = $13 AND user_id = $14
		 RETURNING created_at, updated_at`,
		a.Company, a.Position, a.Location, string(a.Status), a.AppliedDate, a.Salary,
		string(a.Priority), a.Description, tagsOrEmpty(a.Tags),
		a.ContactName, a.ContactEmail, a.ContactPhone, a.ID, a.UserID,
	).Scan(&a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("application %s: %w", a.ID, ErrNotFound)
		}
		return fmt.Errorf("failed to update application: %w", err)
	}
	a.Tags = tagsOrEmpty(a.Tags)
	return nil
}

// UpdateApplicationStatus changes only the status of an application
func (db *DB) UpdateApplicationStatus(ctx context.Context, userID, id uuid.UUID, status types.ApplicationStatus) error {
	result, err := db.pool.Exec(ctx,
		`UPDATE applications SET status = $1, updated_at = NOW() WHERE id = $2 AND user_id = $3`,
		string(status), id, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to update application status: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("application %s: %w", id, ErrNotFound)
	}
	return nil
}

// DeleteApplication deletes an application and its interviews
func (db *DB) DeleteApplication(ctx context.Context, userID, id uuid.UUID) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM applications WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete application: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("application %s: %w", id, ErrNotFound)
	}
	return nil
}
