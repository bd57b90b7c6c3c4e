package db

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrNotFound is returned when an update or delete matches no row of the user.
var ErrNotFound = errors.New("record not found")

// Known error codes. CodeNotFound is the code the hosted REST layer used for
// "zero rows"; the others are PostgreSQL SQLSTATEs.
const (
	CodeNotFound            = "PGRST116"
	CodeUniqueViolation     = "23505"
	CodeForeignKeyViolation = "23503"
	CodeUndefinedTable      = "42P01"
	CodeInsufficientPriv    = "42501"
	CodeUndefinedColumn     = "42703"
)

// GenericMessage is shown when nothing more specific is known.
const GenericMessage = "Une erreur est survenue"

var codeMessages = map[string]string{
	CodeNotFound:            "Élément introuvable",
	CodeUniqueViolation:     "Cet élément existe déjà",
	CodeForeignKeyViolation: "Référence invalide : l'élément lié n'existe pas",
	CodeUndefinedTable:      "La base de données n'est pas initialisée (table manquante)",
	CodeInsufficientPriv:    "Vous n'avez pas les droits nécessaires pour cette opération",
	CodeUndefinedColumn:     "Champ inconnu dans la requête",
}

// StoreError is a storage failure with a message fit for the user.
type StoreError struct {
	Code    string
	Message string
	Err     error
}

func (e *StoreError) Error() string {
	return e.Message
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// MapError converts a storage error into a *StoreError carrying a user-facing
// message. Known codes get a fixed message; unknown ones keep the raw message,
// or GenericMessage when there is none.
func MapError(err error) error {
	if err == nil {
		return nil
	}
	var se *StoreError
	if errors.As(err, &se) {
		return se
	}

	if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, ErrNotFound) {
		return &StoreError{Code: CodeNotFound, Message: codeMessages[CodeNotFound], Err: err}
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if msg, ok := codeMessages[pgErr.Code]; ok {
			return &StoreError{Code: pgErr.Code, Message: msg, Err: err}
		}
		return &StoreError{Code: pgErr.Code, Message: orGeneric(pgErr.Message), Err: err}
	}

	return &StoreError{Message: orGeneric(err.Error()), Err: err}
}

// IsNotFound reports whether err means the record does not exist.
func IsNotFound(err error) bool {
	var se *StoreError
	if errors.As(err, &se) {
		return se.Code == CodeNotFound
	}
	return errors.Is(err, ErrNotFound) || errors.Is(err, pgx.ErrNoRows)
}

func orGeneric(msg string) string {
	if strings.TrimSpace(msg) == "" {
		return GenericMessage
	}
	return msg
}
