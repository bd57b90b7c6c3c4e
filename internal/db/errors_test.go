package db

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantCode    string
		wantMessage string
	}{
		{
			name:        "no rows",
			err:         fmt.Errorf("failed to get task: %w", pgx.ErrNoRows),
			wantCode:    CodeNotFound,
			wantMessage: "Élément introuvable",
		},
		{
			name:        "not found sentinel",
			err:         fmt.Errorf("task 42: %w", ErrNotFound),
			wantCode:    CodeNotFound,
			wantMessage: "Élément introuvable",
		},
		{
			name:        "unique violation",
			err:         &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"},
			wantCode:    CodeUniqueViolation,
			wantMessage: "Cet élément existe déjà",
		},
		{
			name:        "foreign key violation",
			err:         fmt.Errorf("failed to create task: %w", &pgconn.PgError{Code: "23503"}),
			wantCode:    CodeForeignKeyViolation,
			wantMessage: "Référence invalide : l'élément lié n'existe pas",
		},
		{
			name:        "missing table",
			err:         &pgconn.PgError{Code: "42P01"},
			wantCode:    CodeUndefinedTable,
			wantMessage: "La base de données n'est pas initialisée (table manquante)",
		},
		{
			name:        "permission denied",
			err:         &pgconn.PgError{Code: "42501"},
			wantCode:    CodeInsufficientPriv,
			wantMessage: "Vous n'avez pas les droits nécessaires pour cette opération",
		},
		{
			name:        "unknown column",
			err:         &pgconn.PgError{Code: "42703"},
			wantCode:    CodeUndefinedColumn,
			wantMessage: "Champ inconnu dans la requête",
		},
		{
			name:        "unknown code keeps raw message",
			err:         &pgconn.PgError{Code: "22001", Message: "value too long for type character varying(10)"},
			wantCode:    "22001",
			wantMessage: "value too long for type character varying(10)",
		},
		{
			name:        "unknown code without message",
			err:         &pgconn.PgError{Code: "XX000"},
			wantCode:    "XX000",
			wantMessage: GenericMessage,
		},
		{
			name:        "plain error",
			err:         errors.New("connection reset by peer"),
			wantMessage: "connection reset by peer",
		},
		{
			name:        "blank error",
			err:         errors.New("  "),
			wantMessage: GenericMessage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mapped := MapError(tt.err)
			var se *StoreError
			require.True(t, errors.As(mapped, &se))
			assert.Equal(t, tt.wantCode, se.Code)
			assert.Equal(t, tt.wantMessage, se.Error())
			assert.ErrorIs(t, mapped, tt.err)
		})
	}
}

func TestMapError_Nil(t *testing.T) {
	assert.NoError(t, MapError(nil))
}

func TestMapError_Idempotent(t *testing.T) {
	first := MapError(&pgconn.PgError{Code: "23505"})
	second := MapError(fmt.Errorf("wrapped: %w", first))
	assert.Same(t, first, second)
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, IsNotFound(ErrNotFound))
	assert.True(t, IsNotFound(fmt.Errorf("x: %w", pgx.ErrNoRows)))
	assert.True(t, IsNotFound(MapError(ErrNotFound)))
	assert.False(t, IsNotFound(MapError(&pgconn.PgError{Code: "23505"})))
	assert.False(t, IsNotFound(errors.New("boom")))
}

func TestMigrationsEmbedded(t *testing.T) {
	sql, err := migrationFiles.ReadFile("migrations/001_init.sql")
	require.NoError(t, err)

	for _, table := range []string{"users", "applications", "interviews", "contacts", "tasks",
		"experiences", "skills", "social_links", "documents"} {
		assert.Contains(t, string(sql), "CREATE TABLE IF NOT EXISTS "+table+" ")
	}
}
