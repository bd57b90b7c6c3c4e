package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/pape-dev/Dashboard-Gestion-Candidatures-sub001/internal/types"
)

// CreateDocument stores the metadata and content of an uploaded file
func (db *DB) CreateDocument(ctx context.Context, d *types.Document, content []byte) error {
	err := db.pool.QueryRow(ctx,
		`INSERT INTO documents (user_id, name, type, mime_type, size, description, content)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, created_at`,
		d.UserID, d.Name, d.Type, d.MimeType, d.Size, d.Description, content,
	).Scan(&d.ID, &d.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create document: %w", err)
	}
	return nil
}

// ListDocuments returns the document metadata of userID, newest first. Content is not loaded.
func (db *DB) ListDocuments(ctx context.Context, userID uuid.UUID) ([]types.Document, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, user_id, name, type, mime_type, size, description, created_at
		 FROM documents
		 WHERE user_id = $1
		 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	docs, err := pgx.CollectRows(rows, pgx.RowToStructByPos[types.Document])
	if err != nil {
		return nil, fmt.Errorf("failed to scan document: %w", err)
	}
	return docs, nil
}

// GetDocumentContent retrieves a document and its bytes. Returns nil, nil, nil when not found.
func (db *DB) GetDocumentContent(ctx context.Context, userID, id uuid.UUID) (*types.Document, []byte, error) {
	var d types.Document
	var content []byte
	err := db.pool.QueryRow(ctx,
		`SELECT id, user_id, name, type, mime_type, size, description, created_at, content
		 FROM documents
		 WHERE id = $1 AND user_id = $2`, id, userID,
	).Scan(&d.ID, &d.UserID, &d.Name, &d.Type, &d.MimeType, &d.Size, &d.Description, &d.CreatedAt, &content)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, nil
		}
		return nil, nil, fmt.Errorf("failed to get document: %w", err)
	}
	return &d, content, nil
}

// DeleteDocument deletes a document of userID
func (db *DB) DeleteDocument(ctx context.Context, userID, id uuid.UUID) error {
	return db.deleteOwned(ctx, "documents", "document", userID, id)
}
