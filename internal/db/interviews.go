package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/pape-dev/Dashboard-Gestion-Candidatures-sub001/internal/types"
)

const interviewColumns = `id, user_id, application_id, to_char(date, 'YYYY-MM-DD'), time, type,
	location, interviewer, duration, status, notes, meeting_link, created_at`

func scanInterview(row scanner) (*types.Interview, error) {
	var iv types.Interview
	var typ, status string
	err := row.Scan(&iv.ID, &iv.UserID, &iv.ApplicationID, &iv.Date, &iv.Time, &typ,
		&iv.Location, &iv.Interviewer, &iv.Duration, &status, &iv.Notes, &iv.MeetingLink, &iv.CreatedAt)
	if err != nil {
		return nil, err
	}
	iv.Type = types.InterviewType(typ)
	iv.Status = types.InterviewStatus(status)
	return &iv, nil
}

// CreateInterview inserts an interview. The application must belong to the same user.
func (db *DB) CreateInterview(ctx context.Context, iv *types.Interview) error {
	err := db.pool.QueryRow(ctx,
		`INSERT INTO interviews (user_id, application_id, date, time, type, location, interviewer,
		        duration, status, notes, meeting_link)
		 SELECT a.user_id, a.id, $3::text::date, $4::text, $5::text, $6::text, $7::text,
		        $8::int, $9::text, $10::text, $11::text
		 FROM applications a WHERE a.id = $2::uuid AND a.user_id = $1::uuid
		 RETURNING id, created_at`,
		iv.UserID, iv.ApplicationID, iv.Date, iv.Time, string(iv.Type), iv.Location, iv.Interviewer,
		iv.Duration, string(iv.Status), iv.Notes, iv.MeetingLink,
	).Scan(&iv.ID, &iv.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("application %s: %w", iv.ApplicationID, ErrNotFound)
		}
		return fmt.Errorf("failed to create interview: %w", err)
	}
	return nil
}

// GetInterview retrieves an interview of userID. Returns nil, nil when not found.
func (db *DB) GetInterview(ctx context.Context, userID, id uuid.UUID) (*types.Interview, error) {
	iv, err := scanInterview(db.pool.QueryRow(ctx,
		`SELECT `+interviewColumns+` FROM interviews WHERE id = $1 AND user_id = $2`, id, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get interview: %w", err)
	}
	return iv, nil
}

// ListInterviews returns the interviews of userID in chronological order
func (db *DB) ListInterviews(ctx context.Context, userID uuid.UUID) ([]types.Interview, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+interviewColumns+` FROM interviews WHERE user_id = $1 ORDER BY date, time`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list interviews: %w", err)
	}
	defer rows.Close()

	interviews := []types.Interview{}
	for rows.Next() {
		iv, err := scanInterview(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan interview: %w", err)
		}
		interviews = append(interviews, *iv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate interviews: %w", err)
	}
	return interviews, nil
}

// UpdateInterview overwrites every editable field of iv
func (db *DB) UpdateInterview(ctx context.Context, iv *types.Interview) error {
	result, err := db.pool.Exec(ctx,
		`UPDATE interviews SET application_id = $1, date = $2::text::date, time = $3, type = $4,
		        location = $5, interviewer = $6, duration = $7, status = $8, notes = $9,
		        meeting_link = $10
		 WHERE id = $11 AND user_id = $12
		   AND EXISTS (SELECT 1 FROM applications a WHERE a.id = $1 AND a.user_id = $12)`,
		iv.ApplicationID, iv.Date, iv.Time, string(iv.Type), iv.Location, iv.Interviewer,
		iv.Duration, string(iv.Status), iv.Notes, iv.MeetingLink, iv.ID, iv.UserID,
	)
	if err != nil {
		return fmt.Errorf("failed to update interview: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("interview %s: %w", iv.ID, ErrNotFound)
	}
	return nil
}

// DeleteInterview deletes an interview of userID
func (db *DB) DeleteInterview(ctx context.Context, userID, id uuid.UUID) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM interviews WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete interview: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("interview %s: %w", id, ErrNotFound)
	}
	return nil
}
