package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/hbowden/practice_manager_app/internal/apperrors"
	"github.com/hbowden/practice_manager_app/internal/core/domain"
	portsrepo "github.com/hbowden/practice_manager_app/internal/core/ports/repositories"
)

type PgxPeriodRepository struct {
	BaseRepository
}

func newPgxPeriodRepository(base BaseRepository) portsrepo.PeriodRepositoryFacade {
	return &PgxPeriodRepository{BaseRepository: base}
}

// Ensure PgxPeriodRepository implements portsrepo.PeriodRepositoryFacade
var _ portsrepo.PeriodRepositoryFacade = (*PgxPeriodRepository)(nil)

const fullPeriodSelectQuery = `
SELECT
	p.period_id, p.client_id, p.period_label, p.period_ending, p.completed,
	p.created_at, p.created_by, p.last_updated_at, p.last_updated_by
FROM accounting_periods p
`

func (r *PgxPeriodRepository) getPeriods(ctx context.Context, filterQuery string, args ...any) ([]domain.AccountingPeriod, error) {
	qctx, cancel := r.queryCtx(ctx)
	defer cancel()

	rows, err := r.Pool.Query(qctx, fullPeriodSelectQuery+filterQuery, args...)
	if err != nil {
		return nil, mapStoreError(err, "query accounting periods")
	}
	defer rows.Close()

	periods, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.AccountingPeriod])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.AccountingPeriod{}, nil
		}
		return nil, mapStoreError(err, "collect accounting period rows")
	}
	return periods, nil
}

func (r *PgxPeriodRepository) SavePeriod(ctx context.Context, period domain.AccountingPeriod) error {
	query := `
		INSERT INTO accounting_periods (
			period_id, client_id, period_label, period_ending, completed,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	qctx, cancel := r.queryCtx(ctx)
	defer cancel()

	_, err := r.Pool.Exec(qctx, query,
		period.PeriodID,
		period.ClientID,
		period.PeriodLabel,
		period.PeriodEnding,
		period.Completed,
		period.CreatedAt,
		period.CreatedBy,
		period.LastUpdatedAt,
		period.LastUpdatedBy,
	)
	if err != nil {
		return mapStoreError(err, "save accounting period "+period.PeriodID)
	}
	return nil
}

func (r *PgxPeriodRepository) FindPeriodByID(ctx context.Context, periodID string) (*domain.AccountingPeriod, error) {
	periods, err := r.getPeriods(ctx, `WHERE p.period_id = $1`, periodID)
	if err != nil {
		return nil, err
	}
	if len(periods) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &periods[0], nil
}

func (r *PgxPeriodRepository) ListPeriodsByClientID(ctx context.Context, clientID string) ([]domain.AccountingPeriod, error) {
	return r.getPeriods(ctx, `WHERE p.client_id = $1 ORDER BY p.created_at DESC`, clientID)
}

func (r *PgxPeriodRepository) MarkPeriodCompleted(ctx context.Context, periodID, updatedBy string) error {
	query := `
		UPDATE accounting_periods
		SET completed = TRUE, last_updated_at = $1, last_updated_by = $2
		WHERE period_id = $3;
	`
	qctx, cancel := r.queryCtx(ctx)
	defer cancel()

	cmdTag, err := r.Pool.Exec(qctx, query, time.Now(), updatedBy, periodID)
	if err != nil {
		return mapStoreError(err, "complete accounting period "+periodID)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
