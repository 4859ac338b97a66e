// Package apperr holds the error taxonomy shared by repositories, use cases
// and handlers. Handlers classify with errors.Is and map to HTTP status codes.
package apperr

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrNotFound means a referenced entity id does not exist.
	ErrNotFound = errors.New("not found")

	// ErrValidation means a payload failed schema or field constraints.
	ErrValidation = errors.New("validation failed")
)

// Postgres SQLSTATE codes we translate.
const (
	pgForeignKeyViolation = "23503"
)

// ValidationError carries field-level messages for a rejected payload.
type ValidationError struct {
	Fields map[string]string
}

func NewValidationError(fields map[string]string) *ValidationError {
	return &ValidationError{Fields: fields}
}

// FieldError builds a ValidationError for a single field.
func FieldError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return ErrValidation.Error()
	}

	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	msgs := make([]string, 0, len(keys))
	for _, k := range keys {
		msgs = append(msgs, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(msgs, "; "))
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// NotFoundf wraps ErrNotFound with context.
func NotFoundf(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrNotFound)
}

// FromPg translates driver errors that carry domain meaning. A foreign key
// violation means the referenced row is gone, which callers see as NotFound.
// Anything else is returned unchanged.
func FromPg(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
		return fmt.Errorf("%s: %w", pgErr.ConstraintName, ErrNotFound)
	}
	return err
}
