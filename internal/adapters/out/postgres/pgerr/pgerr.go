// Package pgerr translates Postgres failures into domain errors.
package pgerr

import (
	"errors"

	"marketplace/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE codes that mean the statement lost a race for a lock and the
// caller may retry.
const (
	LockNotAvailable     = "55P03"
	DeadlockDetected     = "40P01"
	SerializationFailure = "40001"
)

const UniqueViolation = "23505"

// Translate maps lock timeouts, deadlocks and serialization failures to a
// ConcurrencyConflictError on resource. Other errors are returned unchanged.
func Translate(resource string, err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case LockNotAvailable, DeadlockDetected, SerializationFailure:
		return errs.NewConcurrencyConflictErrorWithCause(resource, err)
	default:
		return err
	}
}

// IsUniqueViolation reports whether err is a unique constraint violation.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == UniqueViolation
}
