package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/pape-dev/Dashboard-Gestion-Candidatures-sub001/internal/types"
)

// deleteOwned removes one row of table owned by userID. table is always a constant.
func (db *DB) deleteOwned(ctx context.Context, table, label string, userID, id uuid.UUID) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM `+table+` WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete %s: %w", label, err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("%s %s: %w", label, id, ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Experiences
// ---------------------------------------------------------------------------

// CreateExperience inserts a past position
func (db *DB) CreateExperience(ctx context.Context, e *types.Experience) error {
	err := db.pool.QueryRow(ctx,
		`INSERT INTO experiences (user_id, title, company, location, start_date, end_date, current, description)
		 VALUES ($1, $2, $3, $4, $5::text::date, $6::text::date, $7, $8)
		 RETURNING id, created_at`,
		e.UserID, e.Title, e.Company, e.Location, e.StartDate, e.EndDate, e.Current, e.Description,
	).Scan(&e.ID, &e.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create experience: %w", err)
	}
	return nil
}

// ListExperiences returns the experiences of userID, current and most recent first
func (db *DB) ListExperiences(ctx context.Context, userID uuid.UUID) ([]types.Experience, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, user_id, title, company, location, to_char(start_date, 'YYYY-MM-DD'),
		        to_char(end_date, 'YYYY-MM-DD'), current, description, created_at
		 FROM experiences
		 WHERE user_id = $1
		 ORDER BY current DESC, start_date DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list experiences: %w", err)
	}
	experiences, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (types.Experience, error) {
		var e types.Experience
		err := row.Scan(&e.ID, &e.UserID, &e.Title, &e.Company, &e.Location, &e.StartDate,
			&e.EndDate, &e.Current, &e.Description, &e.CreatedAt)
		return e, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan experience: %w", err)
	}
	return experiences, nil
}

// UpdateExperience overwrites every editable field of e
func (db *DB) UpdateExperience(ctx context.Context, e *types.Experience) error {
	result, err := db.pool.Exec(ctx,
		`UPDATE experiences SET title = $1, company = $2, location = $3, start_date = $4::text::date,
		        end_date = $5::text::date, current = $6, description = $7
		 WHERE id = $8 AND user_id = $9`,
		e.Title, e.Company, e.Location, e.StartDate, e.EndDate, e.Current, e.Description, e.ID, e.UserID,
	)
	if err != nil {
		return fmt.Errorf("failed to update experience: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("experience %s: %w", e.ID, ErrNotFound)
	}
	return nil
}

// DeleteExperience deletes an experience of userID
func (db *DB) DeleteExperience(ctx context.Context, userID, id uuid.UUID) error {
	return db.deleteOwned(ctx, "experiences", "experience", userID, id)
}

// ---------------------------------------------------------------------------
// Skills
// ---------------------------------------------------------------------------

// CreateSkill inserts a skill. Skill names are unique per user.
func (db *DB) CreateSkill(ctx context.Context, s *types.Skill) error {
	err := db.pool.QueryRow(ctx,
		`INSERT INTO skills (user_id, name, level, category)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at`,
		s.UserID, s.Name, s.Level, s.Category,
	).Scan(&s.ID, &s.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create skill: %w", err)
	}
	return nil
}

// ListSkills returns the skills of userID grouped by category, strongest first
func (db *DB) ListSkills(ctx context.Context, userID uuid.UUID) ([]types.Skill, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, user_id, name, level, category, created_at
		 FROM skills
		 WHERE user_id = $1
		 ORDER BY category, level DESC, name`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list skills: %w", err)
	}
	skills, err := pgx.CollectRows(rows, pgx.RowToStructByPos[types.Skill])
	if err != nil {
		return nil, fmt.Errorf("failed to scan skill: %w", err)
	}
	return skills, nil
}

// UpdateSkill overwrites the name, level and category of s
func (db *DB) UpdateSkill(ctx context.Context, s *types.Skill) error {
	result, err := db.pool.Exec(ctx,
		`UPDATE skills SET name = $1, level = $2, category = $3 WHERE id = $4 AND user_id = $5`,
		s.Name, s.Level, s.Category, s.ID, s.UserID,
	)
	if err != nil {
		return fmt.Errorf("failed to update skill: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("skill %s: %w", s.ID, ErrNotFound)
	}
	return nil
}

// DeleteSkill deletes a skill of userID
func (db *DB) DeleteSkill(ctx context.Context, userID, id uuid.UUID) error {
	return db.deleteOwned(ctx, "skills", "skill", userID, id)
}

// ---------------------------------------------------------------------------
// Social links
// ---------------------------------------------------------------------------

// CreateSocialLink inserts a social link
func (db *DB) CreateSocialLink(ctx context.Context, l *types.SocialLink) error {
	err := db.pool.QueryRow(ctx,
		`INSERT INTO social_links (user_id, platform, url) VALUES ($1, $2, $3) RETURNING id, created_at`,
		l.UserID, l.Platform, l.URL,
	).Scan(&l.ID, &l.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create social link: %w", err)
	}
	return nil
}

// ListSocialLinks returns the social links of userID
func (db *DB) ListSocialLinks(ctx context.Context, userID uuid.UUID) ([]types.SocialLink, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, user_id, platform, url, created_at
		 FROM social_links
		 WHERE user_id = $1
		 ORDER BY platform, created_at`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list social links: %w", err)
	}
	links, err := pgx.CollectRows(rows, pgx.RowToStructByPos[types.SocialLink])
	if err != nil {
		return nil, fmt.Errorf("failed to scan social link: %w", err)
	}
	return links, nil
}

// DeleteSocialLink deletes a social link of userID
func (db *DB) DeleteSocialLink(ctx context.Context, userID, id uuid.UUID) error {
	return db.deleteOwned(ctx, "social_links", "social link", userID, id)
}
