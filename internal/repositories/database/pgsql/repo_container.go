package pgsql

import (
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/hbowden/practice_manager_app/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every pgx repository over a shared pool and
// query timeout.
func NewRepositoryProvider(dbPool *pgxpool.Pool, queryTimeout time.Duration) portsrepo.RepositoryProvider {
	base := BaseRepository{Pool: dbPool, QueryTimeout: queryTimeout}

	return portsrepo.RepositoryProvider{
		UserRepo:      newPgxUserRepository(base),
		ClientRepo:    newPgxClientRepository(base),
		PeriodRepo:    newPgxPeriodRepository(base),
		SectionRepo:   newPgxSectionRepository(base),
		BreakdownRepo: newPgxBreakdownRepository(base),
		UnitRepo:      newPgxUnitRepository(base),
	}
}
