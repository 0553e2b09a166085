package pgsql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/hbowden/practice_manager_app/internal/apperrors"
	"github.com/hbowden/practice_manager_app/internal/core/domain"
	portsrepo "github.com/hbowden/practice_manager_app/internal/core/ports/repositories"
)

type PgxBreakdownRepository struct {
	BaseRepository
}

func newPgxBreakdownRepository(base BaseRepository) portsrepo.BreakdownRepositoryFacade {
	return &PgxBreakdownRepository{BaseRepository: base}
}

// Ensure PgxBreakdownRepository implements portsrepo.BreakdownRepositoryFacade
var _ portsrepo.BreakdownRepositoryFacade = (*PgxBreakdownRepository)(nil)

const fullBreakdownSelectQuery = `
SELECT
	b.breakdown_id, b.section_id, b.name, b.amount, b.description,
	b.created_at, b.created_by, b.last_updated_at, b.last_updated_by
FROM section_breakdowns b
`

func (r *PgxBreakdownRepository) getBreakdowns(ctx context.Context, filterQuery string, args ...any) ([]domain.SectionBreakdown, error) {
	qctx, cancel := r.queryCtx(ctx)
	defer cancel()

	rows, err := r.Pool.Query(qctx, fullBreakdownSelectQuery+filterQuery, args...)
	if err != nil {
		return nil, mapStoreError(err, "query section breakdowns")
	}
	defer rows.Close()

	breakdowns, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.SectionBreakdown])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.SectionBreakdown{}, nil
		}
		return nil, mapStoreError(err, "collect section breakdown rows")
	}
	return breakdowns, nil
}

func (r *PgxBreakdownRepository) SaveBreakdown(ctx context.Context, breakdown domain.SectionBreakdown) error {
	query := `
		INSERT INTO section_breakdowns (
			breakdown_id, section_id, name, amount, description,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	qctx, cancel := r.queryCtx(ctx)
	defer cancel()

	_, err := r.Pool.Exec(qctx, query,
		breakdown.BreakdownID,
		breakdown.SectionID,
		breakdown.Name,
		breakdown.Amount,
		breakdown.Description,
		breakdown.CreatedAt,
		breakdown.CreatedBy,
		breakdown.LastUpdatedAt,
		breakdown.LastUpdatedBy,
	)
	if err != nil {
		return mapStoreError(err, "save section breakdown "+breakdown.BreakdownID)
	}
	return nil
}

func (r *PgxBreakdownRepository) FindBreakdownByID(ctx context.Context, breakdownID string) (*domain.SectionBreakdown, error) {
	breakdowns, err := r.getBreakdowns(ctx, `WHERE b.breakdown_id = $1`, breakdownID)
	if err != nil {
		return nil, err
	}
	if len(breakdowns) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &breakdowns[0], nil
}

func (r *PgxBreakdownRepository) ListBreakdownsBySectionID(ctx context.Context, sectionID string) ([]domain.SectionBreakdown, error) {
	return r.getBreakdowns(ctx, `WHERE b.section_id = $1 ORDER BY b.created_at ASC`, sectionID)
}
