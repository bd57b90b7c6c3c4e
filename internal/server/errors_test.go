package server

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/pape-dev/Dashboard-Gestion-Candidatures-sub001/internal/config"
	"github.com/pape-dev/Dashboard-Gestion-Candidatures-sub001/internal/db"
	"github.com/pape-dev/Dashboard-Gestion-Candidatures-sub001/internal/forms"
	"github.com/pape-dev/Dashboard-Gestion-Candidatures-sub001/internal/uploads"
)

func TestFriendlyAuthMessage(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Invalid login credentials", "Email ou mot de passe incorrect"},
		{"Email not confirmed", "Veuillez confirmer votre adresse email avant de vous connecter"},
		{"User already registered: a@b.c", "Un compte existe déjà avec cette adresse email"},
		{"Password should be at least 6 characters", "Le mot de passe doit contenir au moins 8 caractères"},
		{"network unreachable", "network unreachable"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, FriendlyAuthMessage(tt.in))
		})
	}
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"email exists", &ErrEmailAlreadyExists{Email: "a@b.c"}, http.StatusConflict},
		{"bad credentials", &ErrInvalidCredentials{}, http.StatusUnauthorized},
		{"unconfirmed", &ErrEmailNotConfirmed{}, http.StatusUnauthorized},
		{"password mismatch", &ErrPasswordMismatch{}, http.StatusUnauthorized},
		{"user not found", &ErrUserNotFound{UserID: uuid.New()}, http.StatusNotFound},
		{"bad request", &ErrBadRequest{Message: "x"}, http.StatusBadRequest},
		{"weak password", config.ErrWeakPassword, http.StatusBadRequest},
		{"field errors", forms.FieldErrors{"company": "Ce champ est requis"}, http.StatusBadRequest},
		{"too large", &uploads.FileTooLargeError{Size: 2, Max: 1}, http.StatusRequestEntityTooLarge},
		{"bad type", &uploads.FileTypeError{MimeType: "text/plain"}, http.StatusUnsupportedMediaType},
		{"wrapped not found", fmt.Errorf("task: %w", db.ErrNotFound), http.StatusNotFound},
		{"unique violation", &pgconn.PgError{Code: db.CodeUniqueViolation}, http.StatusConflict},
		{"foreign key", fmt.Errorf("insert: %w", &pgconn.PgError{Code: db.CodeForeignKeyViolation}), http.StatusUnprocessableEntity},
		{"plain", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.err
			if errors.As(err, new(*pgconn.PgError)) {
				err = db.MapError(err)
			}
			assert.Equal(t, tt.want, HTTPStatus(err))
		})
	}
}

func TestUserMessage(t *testing.T) {
	assert.Equal(t, "Email ou mot de passe incorrect", UserMessage(&ErrInvalidCredentials{}))
	assert.Equal(t, "Le mot de passe doit contenir au moins 8 caractères", UserMessage(config.ErrWeakPassword))
	assert.Equal(t, "Utilisateur introuvable", UserMessage(&ErrUserNotFound{}))
	assert.Equal(t, ValidationMessage, UserMessage(forms.FieldErrors{"name": "x"}))
	assert.Equal(t, "Élément introuvable", UserMessage(fmt.Errorf("x: %w", db.ErrNotFound)))
	assert.Equal(t, "Cet élément existe déjà", UserMessage(&pgconn.PgError{Code: db.CodeUniqueViolation}))
	assert.Equal(t, "connection refused", UserMessage(errors.New("connection refused")))

	failed := &uploads.UploadFailedError{Name: "cv.pdf", Err: &pgconn.PgError{Code: db.CodeInsufficientPriv}}
	assert.Equal(t, "Échec du téléversement de cv.pdf : Vous n'avez pas les droits nécessaires pour cette opération", UserMessage(failed))
}
