package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Sentinel errors raised by the business layer. Handlers map them onto
// the HTTP envelope with errors.Is; everything else is a 500.
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrInvalidInput = errors.New("invalid input")
	ErrForbidden    = errors.New("forbidden")
)

// ValidationError pins an input failure to one field.
type ValidationError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// ValidationErrors aggregates field failures for one request. It wraps
// ErrInvalidInput so callers can match the kind and still read details.
type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	parts := make([]string, len(v))
	for i, e := range v {
		parts[i] = e.Field + ": " + e.Reason
	}
	return fmt.Sprintf("%v: %s", ErrInvalidInput, strings.Join(parts, "; "))
}

func (v ValidationErrors) Unwrap() error { return ErrInvalidInput }

// isDuplicateKeyError reports a Postgres unique_violation (23505).
func isDuplicateKeyError(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// isForeignKeyViolation reports a Postgres foreign_key_violation (23503),
// raised when a hard delete hits rows that attempts or rules still reference.
func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23503"
}

// isNoRows reports the pgx empty-result sentinel.
func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
