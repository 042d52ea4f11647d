package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/tcpchat/internal/domain"
)

// pgCodes maps SQLSTATE codes to domain errors. A foreign key violation means
// a referenced user or room does not exist.
var pgCodes = map[string]error{
	"23505": domain.ErrAlreadyExists, // unique_violation
	"23503": domain.ErrNotFound,      // foreign_key_violation
	"23514": domain.ErrValidation,    // check_violation
	"23502": domain.ErrValidation,    // not_null_violation
	"57P01": domain.ErrUnavailable,   // admin_shutdown
	"53300": domain.ErrUnavailable,   // too_many_connections
}

// MapError converts pgx errors to domain errors, prefixed with the entity
// and id. Context errors pass through unmapped so callers can tell a
// cancelled request from a failed one.
func MapError(err error, entity string, id uuid.UUID) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %s: %w", entity, id, err)
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if mapped, ok := pgCodes[pgErr.Code]; ok {
			return fmt.Errorf("%s %s: %w", entity, id, mapped)
		}
		return fmt.Errorf("%s %s: %w", entity, id, err)
	}

	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) || pgconn.Timeout(err) {
		return fmt.Errorf("%s %s: %w: %v", entity, id, domain.ErrUnavailable, err)
	}

	return fmt.Errorf("%s %s: %w", entity, id, err)
}
