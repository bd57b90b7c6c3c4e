package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/pape-dev/Dashboard-Gestion-Candidatures-sub001/internal/types"
)

const contactColumns = `id, user_id, name, email, phone, company, position, notes, linkedin_url,
	to_char(last_contact_date, 'YYYY-MM-DD'), created_at`

func scanContact(row scanner) (*types.Contact, error) {
	var c types.Contact
	err := row.Scan(&c.ID, &c.UserID, &c.Name, &c.Email, &c.Phone, &c.Company, &c.Position,
		&c.Notes, &c.LinkedInURL, &c.LastContactDate, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// CreateContact inserts a contact
func (db *DB) CreateContact(ctx context.Context, c *types.Contact) error {
	err := db.pool.QueryRow(ctx,
		`INSERT INTO contacts (user_id, name, email, phone, company, position, notes, linkedin_url,
		        last_contact_date)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9::text::date)
		 RETURNING id, created_at`,
		c.UserID, c.Name, c.Email, c.Phone, c.Company, c.Position, c.Notes, c.LinkedInURL, c.LastContactDate,
	).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create contact: %w", err)
	}
	return nil
}

// GetContact retrieves a contact of userID. Returns nil, nil when not found.
func (db *DB) GetContact(ctx context.Context, userID, id uuid.UUID) (*types.Contact, error) {
	c, err := scanContact(db.pool.QueryRow(ctx,
		`SELECT `+contactColumns+` FROM contacts WHERE id = $1 AND user_id = $2`, id, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get contact: %w", err)
	}
	return c, nil
}

// ListContacts returns the contacts of userID sorted by name
func (db *DB) ListContacts(ctx context.Context, userID uuid.UUID) ([]types.Contact, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+contactColumns+` FROM contacts WHERE user_id = $1 ORDER BY LOWER(name)`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}
	defer rows.Close()

	contacts := []types.Contact{}
	for rows.Next() {
		c, err := scanContact(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan contact: %w", err)
		}
		contacts = append(contacts, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate contacts: %w", err)
	}
	return contacts, nil
}

// UpdateContact overwrites every editable field of c
func (db *DB) UpdateContact(ctx context.Context, c *types.Contact) error {
	result, err := db.pool.Exec(ctx,
		`UPDATE contacts SET name = $1, email = $2, phone = $3, company = $4, position = $5,
		        notes = $6, linkedin_url = $7, last_contact_date = $8::text::date
		 WHERE id = $9 AND user_id = $10`,
		c.Name, c.Email, c.Phone, c.Company, c.Position, c.Notes, c.LinkedInURL, c.LastContactDate,
		c.ID, c.UserID,
	)
	if err != nil {
		return fmt.Errorf("failed to update contact: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("contact %s: %w", c.ID, ErrNotFound)
	}
	return nil
}

// DeleteContact deletes a contact of userID
func (db *DB) DeleteContact(ctx context.Context, userID, id uuid.UUID) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM contacts WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete contact: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("contact %s: %w", id, ErrNotFound)
	}
	return nil
}
