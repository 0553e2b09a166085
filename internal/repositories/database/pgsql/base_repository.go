package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hbowden/practice_manager_app/internal/apperrors"
)

// defaultQueryTimeout bounds every storage call; expiry surfaces as
// apperrors.ErrPersistence rather than blocking the request indefinitely.
const defaultQueryTimeout = 5 * time.Second

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	Pool         *pgxpool.Pool
	QueryTimeout time.Duration
}

// queryCtx derives a bounded context for a single storage call.
func (r *BaseRepository) queryCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	timeout := r.QueryTimeout
	if timeout <= 0 {
		timeout = defaultQueryTimeout
	}
	return context.WithTimeout(ctx, timeout)
}

// Begin starts a new database transaction
func (r *BaseRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	tx, err := r.Pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %v: %w", err, apperrors.ErrPersistence)
	}
	return tx, nil
}

// Commit commits a transaction
func (r *BaseRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %v: %w", err, apperrors.ErrPersistence)
	}
	return nil
}

// Rollback rolls back a transaction
func (r *BaseRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, sql.ErrTxDone) && !errors.Is(err, pgx.ErrTxClosed) {
		return fmt.Errorf("failed to rollback transaction: %v: %w", err, apperrors.ErrPersistence)
	}
	return nil
}
