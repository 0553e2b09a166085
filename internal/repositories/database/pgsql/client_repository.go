package pgsql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/hbowden/practice_manager_app/internal/apperrors"
	"github.com/hbowden/practice_manager_app/internal/core/domain"
	portsrepo "github.com/hbowden/practice_manager_app/internal/core/ports/repositories"
)

type PgxClientRepository struct {
	BaseRepository
}

func newPgxClientRepository(base BaseRepository) portsrepo.ClientRepositoryFacade {
	return &PgxClientRepository{BaseRepository: base}
}

// Ensure PgxClientRepository implements portsrepo.ClientRepositoryFacade
var _ portsrepo.ClientRepositoryFacade = (*PgxClientRepository)(nil)

const fullClientSelectQuery = `
SELECT
	c.client_id, c.user_id, c.name, c.owner_name, c.notes, c.entity_type, c.active,
	c.created_at, c.created_by, c.last_updated_at, c.last_updated_by
FROM clients c
`

func (r *PgxClientRepository) getClients(ctx context.Context, filterQuery string, args ...any) ([]domain.Client, error) {
	qctx, cancel := r.queryCtx(ctx)
	defer cancel()

	rows, err := r.Pool.Query(qctx, fullClientSelectQuery+filterQuery, args...)
	if err != nil {
		return nil, mapStoreError(err, "query clients")
	}
	defer rows.Close()

	clients, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.Client])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.Client{}, nil
		}
		return nil, mapStoreError(err, "collect client rows")
	}
	return clients, nil
}

func (r *PgxClientRepository) SaveClient(ctx context.Context, client domain.Client) error {
	query := `
		INSERT INTO clients (
			client_id, user_id, name, owner_name, notes, entity_type, active,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	qctx, cancel := r.queryCtx(ctx)
	defer cancel()

	_, err := r.Pool.Exec(qctx, query,
		client.ClientID,
		client.UserID,
		client.Name,
		client.OwnerName,
		client.Notes,
		client.EntityType,
		client.Active,
		client.CreatedAt,
		client.CreatedBy,
		client.LastUpdatedAt,
		client.LastUpdatedBy,
	)
	if err != nil {
		return mapStoreError(err, "save client "+client.ClientID)
	}
	return nil
}

func (r *PgxClientRepository) FindClientByID(ctx context.Context, clientID string) (*domain.Client, error) {
	clients, err := r.getClients(ctx, `WHERE c.client_id = $1`, clientID)
	if err != nil {
		return nil, err
	}
	if len(clients) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &clients[0], nil
}

func (r *PgxClientRepository) ListClientsByUserID(ctx context.Context, userID string) ([]domain.Client, error) {
	return r.getClients(ctx, `WHERE c.user_id = $1 ORDER BY c.name ASC`, userID)
}

func (r *PgxClientRepository) CountClientsByUserID(ctx context.Context, userID string) (int64, error) {
	qctx, cancel := r.queryCtx(ctx)
	defer cancel()

	var count int64
	err := r.Pool.QueryRow(qctx, `SELECT COUNT(*) FROM clients WHERE user_id = $1;`, userID).Scan(&count)
	if err != nil {
		return 0, mapStoreError(err, "count clients for user "+userID)
	}
	return count, nil
}

func (r *PgxClientRepository) UpdateClient(ctx context.Context, client domain.Client) error {
	query := `
		UPDATE clients
		SET name = $1, owner_name = $2, notes = $3, entity_type = $4, active = $5,
			last_updated_at = $6, last_updated_by = $7
		WHERE client_id = $8;
	`
	qctx, cancel := r.queryCtx(ctx)
	defer cancel()

	cmdTag, err := r.Pool.Exec(qctx, query,
		client.Name,
		client.OwnerName,
		client.Notes,
		client.EntityType,
		client.Active,
		client.LastUpdatedAt,
		client.LastUpdatedBy,
		client.ClientID,
	)
	if err != nil {
		return mapStoreError(err, "update client "+client.ClientID)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxClientRepository) DeleteClient(ctx context.Context, clientID string) error {
	qctx, cancel := r.queryCtx(ctx)
	defer cancel()

	cmdTag, err := r.Pool.Exec(qctx, `DELETE FROM clients WHERE client_id = $1;`, clientID)
	if err != nil {
		return mapStoreError(err, "delete client "+clientID)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
