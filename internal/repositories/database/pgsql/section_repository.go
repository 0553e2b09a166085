package pgsql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/hbowden/practice_manager_app/internal/apperrors"
	"github.com/hbowden/practice_manager_app/internal/core/domain"
	portsrepo "github.com/hbowden/practice_manager_app/internal/core/ports/repositories"
)

type PgxSectionRepository struct {
	BaseRepository
}

func newPgxSectionRepository(base BaseRepository) portsrepo.SectionRepositoryFacade {
	return &PgxSectionRepository{BaseRepository: base}
}

// Ensure PgxSectionRepository implements portsrepo.SectionRepositoryFacade
var _ portsrepo.SectionRepositoryFacade = (*PgxSectionRepository)(nil)

const fullSectionSelectQuery = `
SELECT
	s.section_id, s.period_id, s.name, s.category, s.amount, s.completed,
	s.created_at, s.created_by, s.last_updated_at, s.last_updated_by
FROM accounts_sections s
`

func (r *PgxSectionRepository) getSections(ctx context.Context, filterQuery string, args ...any) ([]domain.AccountsSection, error) {
	qctx, cancel := r.queryCtx(ctx)
	defer cancel()

	rows, err := r.Pool.Query(qctx, fullSectionSelectQuery+filterQuery, args...)
	if err != nil {
		return nil, mapStoreError(err, "query accounts sections")
	}
	defer rows.Close()

	sections, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.AccountsSection])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.AccountsSection{}, nil
		}
		return nil, mapStoreError(err, "collect accounts section rows")
	}
	return sections, nil
}

func (r *PgxSectionRepository) SaveSection(ctx context.Context, section domain.AccountsSection) error {
	query := `
		INSERT INTO accounts_sections (
			section_id, period_id, name, category, amount, completed,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	qctx, cancel := r.queryCtx(ctx)
	defer cancel()

	_, err := r.Pool.Exec(qctx, query,
		section.SectionID,
		section.PeriodID,
		section.Name,
		section.Category,
		section.Amount,
		section.Completed,
		section.CreatedAt,
		section.CreatedBy,
		section.LastUpdatedAt,
		section.LastUpdatedBy,
	)
	if err != nil {
		return mapStoreError(err, "save accounts section "+section.SectionID)
	}
	return nil
}

func (r *PgxSectionRepository) FindSectionByID(ctx context.Context, sectionID string) (*domain.AccountsSection, error) {
	sections, err := r.getSections(ctx, `WHERE s.section_id = $1`, sectionID)
	if err != nil {
		return nil, err
	}
	if len(sections) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &sections[0], nil
}

func (r *PgxSectionRepository) ListSectionsByPeriodID(ctx context.Context, periodID string) ([]domain.AccountsSection, error) {
	return r.getSections(ctx, `WHERE s.period_id = $1 ORDER BY s.created_at ASC`, periodID)
}

func (r *PgxSectionRepository) SumSectionAmountsByPeriodID(ctx context.Context, periodID string) (int64, error) {
	qctx, cancel := r.queryCtx(ctx)
	defer cancel()

	var total int64
	err := r.Pool.QueryRow(qctx,
		`SELECT COALESCE(SUM(amount), 0) FROM accounts_sections WHERE period_id = $1;`,
		periodID,
	).Scan(&total)
	if err != nil {
		return 0, mapStoreError(err, "sum section amounts for period "+periodID)
	}
	return total, nil
}

func (r *PgxSectionRepository) UpdateSection(ctx context.Context, section domain.AccountsSection) error {
	query := `
		UPDATE accounts_sections
		SET name = $1, amount = $2, completed = $3, last_updated_at = $4, last_updated_by = $5
		WHERE section_id = $6;
	`
	qctx, cancel := r.queryCtx(ctx)
	defer cancel()

	cmdTag, err := r.Pool.Exec(qctx, query,
		section.Name,
		section.Amount,
		section.Completed,
		section.LastUpdatedAt,
		section.LastUpdatedBy,
		section.SectionID,
	)
	if err != nil {
		return mapStoreError(err, "update accounts section "+section.SectionID)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
