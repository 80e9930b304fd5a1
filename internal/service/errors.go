package service

import (
	"errors"

	"gorm.io/gorm"
)

// Sentinel domain errors. Services wrap them with fmt.Errorf("... %w", err)
// for context; handlers map them to HTTP status codes via errors.Is.
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("already registered")
	ErrValidation   = errors.New("validation failed")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
)

// storeConflict detects a unique-constraint violation surfaced by the
// driver. Services pre-check uniqueness for friendly messages, but two
// concurrent inserts can race past the pre-check; the constraint is the
// real guard and this maps its failure onto the Conflict taxonomy.
func storeConflict(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
