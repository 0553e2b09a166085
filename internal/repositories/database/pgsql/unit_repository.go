package pgsql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/hbowden/practice_manager_app/internal/apperrors"
	"github.com/hbowden/practice_manager_app/internal/core/domain"
	portsrepo "github.com/hbowden/practice_manager_app/internal/core/ports/repositories"
)

type PgxUnitRepository struct {
	BaseRepository
}

func newPgxUnitRepository(base BaseRepository) portsrepo.UnitRepositoryFacade {
	return &PgxUnitRepository{BaseRepository: base}
}

// Ensure PgxUnitRepository implements portsrepo.UnitRepositoryFacade
var _ portsrepo.UnitRepositoryFacade = (*PgxUnitRepository)(nil)

const fullUnitSelectQuery = `
SELECT
	u.unit_id, u.breakdown_id, u.charge_kind, u.amount_in_pounds, u.description,
	u.created_at, u.created_by, u.last_updated_at, u.last_updated_by
FROM section_units u
`

func (r *PgxUnitRepository) getUnits(ctx context.Context, filterQuery string, args ...any) ([]domain.SectionUnit, error) {
	qctx, cancel := r.queryCtx(ctx)
	defer cancel()

	rows, err := r.Pool.Query(qctx, fullUnitSelectQuery+filterQuery, args...)
	if err != nil {
		return nil, mapStoreError(err, "query section units")
	}
	defer rows.Close()

	units, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.SectionUnit])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.SectionUnit{}, nil
		}
		return nil, mapStoreError(err, "collect section unit rows")
	}
	return units, nil
}

func (r *PgxUnitRepository) SaveUnit(ctx context.Context, unit domain.SectionUnit) error {
	query := `
		INSERT INTO section_units (
			unit_id, breakdown_id, charge_kind, amount_in_pounds, description,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	qctx, cancel := r.queryCtx(ctx)
	defer cancel()

	_, err := r.Pool.Exec(qctx, query,
		unit.UnitID,
		unit.BreakdownID,
		unit.ChargeKind,
		unit.AmountInPounds,
		unit.Description,
		unit.CreatedAt,
		unit.CreatedBy,
		unit.LastUpdatedAt,
		unit.LastUpdatedBy,
	)
	if err != nil {
		return mapStoreError(err, "save section unit "+unit.UnitID)
	}
	return nil
}

func (r *PgxUnitRepository) FindUnitByID(ctx context.Context, unitID string) (*domain.SectionUnit, error) {
	units, err := r.getUnits(ctx, `WHERE u.unit_id = $1`, unitID)
	if err != nil {
		return nil, err
	}
	if len(units) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &units[0], nil
}

func (r *PgxUnitRepository) ListUnitsByBreakdownID(ctx context.Context, breakdownID string) ([]domain.SectionUnit, error) {
	return r.getUnits(ctx, `WHERE u.breakdown_id = $1 ORDER BY u.created_at ASC`, breakdownID)
}
