package server

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/pape-dev/Dashboard-Gestion-Candidatures-sub001/internal/config"
	"github.com/pape-dev/Dashboard-Gestion-Candidatures-sub001/internal/db"
	"github.com/pape-dev/Dashboard-Gestion-Candidatures-sub001/internal/forms"
	"github.com/pape-dev/Dashboard-Gestion-Candidatures-sub001/internal/uploads"
)

// ErrEmailAlreadyExists indicates email is already registered
type ErrEmailAlreadyExists struct {
	Email string
}

func (e *ErrEmailAlreadyExists) Error() string {
	return fmt.Sprintf("user already registered: %s", e.Email)
}

// ErrInvalidCredentials indicates invalid login credentials
type ErrInvalidCredentials struct{}

func (e *ErrInvalidCredentials) Error() string {
	return "invalid login credentials"
}

// ErrEmailNotConfirmed indicates the account has no password yet
type ErrEmailNotConfirmed struct{}

func (e *ErrEmailNotConfirmed) Error() string {
	return "email not confirmed"
}

// ErrUserNotFound indicates user was not found
type ErrUserNotFound struct {
	UserID uuid.UUID
}

func (e *ErrUserNotFound) Error() string {
	return fmt.Sprintf("user not found: %s", e.UserID)
}

// ErrPasswordMismatch indicates current password is incorrect
type ErrPasswordMismatch struct{}

func (e *ErrPasswordMismatch) Error() string {
	return "current password is incorrect"
}

// ErrBadRequest indicates a body or path parameter that cannot be parsed
type ErrBadRequest struct {
	Message string
}

func (e *ErrBadRequest) Error() string {
	return e.Message
}

// authMessages rewrites known authentication failures, matched by substring.
var authMessages = []struct {
	substr string
	text   string
}{
	{"invalid login credentials", "Email ou mot de passe incorrect"},
	{"email not confirmed", "Veuillez confirmer votre adresse email avant de vous connecter"},
	{"user already registered", "Un compte existe déjà avec cette adresse email"},
	{"weak password", "Le mot de passe doit contenir au moins 8 caractères"},
	{"password should be at least", "Le mot de passe doit contenir au moins 8 caractères"},
	{"current password is incorrect", "Le mot de passe actuel est incorrect"},
}

// FriendlyAuthMessage rewrites a known authentication error message into
// localized text. Unknown messages are returned unchanged.
func FriendlyAuthMessage(msg string) string {
	lower := strings.ToLower(msg)
	for _, m := range authMessages {
		if strings.Contains(lower, m.substr) {
			return m.text
		}
	}
	return msg
}

// ValidationMessage is the summary returned alongside per-field errors.
const ValidationMessage = "Certains champs sont invalides"

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		exists     *ErrEmailAlreadyExists
		badCreds   *ErrInvalidCredentials
		unconfirm  *ErrEmailNotConfirmed
		mismatch   *ErrPasswordMismatch
		noUser     *ErrUserNotFound
		badRequest *ErrBadRequest
		tooLarge   *uploads.FileTooLargeError
		badType    *uploads.FileTypeError
		store      *db.StoreError
	)
	switch {
	case errors.As(err, &exists):
		return http.StatusConflict
	case errors.As(err, &badCreds), errors.As(err, &unconfirm), errors.As(err, &mismatch):
		return http.StatusUnauthorized
	case errors.As(err, &noUser):
		return http.StatusNotFound
	case errors.As(err, &badRequest):
		return http.StatusBadRequest
	case errors.Is(err, config.ErrWeakPassword), errors.Is(err, config.ErrPasswordTooLong):
		return http.StatusBadRequest
	case errors.As(err, &tooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.As(err, &badType):
		return http.StatusUnsupportedMediaType
	}
	if _, ok := forms.AsFieldErrors(err); ok {
		return http.StatusBadRequest
	}
	if db.IsNotFound(err) {
		return http.StatusNotFound
	}
	if errors.As(err, &store) {
		switch store.Code {
		case db.CodeUniqueViolation:
			return http.StatusConflict
		case db.CodeForeignKeyViolation:
			return http.StatusUnprocessableEntity
		case db.CodeInsufficientPriv:
			return http.StatusForbidden
		}
	}
	return http.StatusInternalServerError
}

// UserMessage returns the text shown to the user for err.
func UserMessage(err error) string {
	var (
		exists     *ErrEmailAlreadyExists
		badCreds   *ErrInvalidCredentials
		unconfirm  *ErrEmailNotConfirmed
		mismatch   *ErrPasswordMismatch
		noUser     *ErrUserNotFound
		badRequest *ErrBadRequest
		tooLarge   *uploads.FileTooLargeError
		badType    *uploads.FileTypeError
		failed     *uploads.UploadFailedError
	)
	switch {
	case errors.As(err, &exists), errors.As(err, &badCreds), errors.As(err, &unconfirm),
		errors.As(err, &mismatch), errors.Is(err, config.ErrWeakPassword):
		return FriendlyAuthMessage(err.Error())
	case errors.Is(err, config.ErrPasswordTooLong):
		return "Le mot de passe est trop long"
	case errors.As(err, &noUser):
		return "Utilisateur introuvable"
	case errors.As(err, &badRequest):
		return badRequest.Message
	case errors.As(err, &tooLarge):
		return tooLarge.Error()
	case errors.As(err, &badType):
		return badType.Error()
	case errors.As(err, &failed):
		return failed.Error() + " : " + db.MapError(failed.Err).Error()
	}
	if _, ok := forms.AsFieldErrors(err); ok {
		return ValidationMessage
	}
	return db.MapError(err).Error()
}
