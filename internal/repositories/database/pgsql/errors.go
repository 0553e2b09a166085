package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/hbowden/practice_manager_app/internal/apperrors"
)

// Postgres error codes the repository layer translates into the apperrors
// taxonomy. Anything unrecognized is downgraded to ErrPersistence; the root
// cause stays inside the wrapped error for server-side logging only.
const (
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
	pgInvalidTextRepr     = "22P02" // bad input for an enum-typed column
)

// mapStoreError translates driver errors into the application error taxonomy.
func mapStoreError(err error, op string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgForeignKeyViolation:
			return fmt.Errorf("%s: %w", op, apperrors.ErrConstraintViolation)
		case pgUniqueViolation:
			return fmt.Errorf("%s: %w", op, apperrors.ErrDuplicate)
		case pgInvalidTextRepr:
			return fmt.Errorf("%s: %w", op, apperrors.ErrInvalidEnumValue)
		}
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s: query timed out: %w", op, apperrors.ErrPersistence)
	}
	return fmt.Errorf("%s: %v: %w", op, err, apperrors.ErrPersistence)
}
