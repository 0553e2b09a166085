package repositories

import (
	"context"

	"github.com/hbowden/practice_manager_app/internal/core/domain"
)

// PeriodReader defines read operations for accounting period data
type PeriodReader interface {
	// FindPeriodByID retrieves a specific accounting period by its ID.
	FindPeriodByID(ctx context.Context, periodID string) (*domain.AccountingPeriod, error)

	// ListPeriodsByClientID retrieves all periods for a client, newest first.
	ListPeriodsByClientID(ctx context.Context, clientID string) ([]domain.AccountingPeriod, error)
}

// PeriodWriter defines write operations for accounting period data
type PeriodWriter interface {
	// SavePeriod persists a new accounting period.
	SavePeriod(ctx context.Context, period domain.AccountingPeriod) error

	// MarkPeriodCompleted flips a period to completed and refreshes the
	// last-updated audit columns.
	MarkPeriodCompleted(ctx context.Context, periodID, updatedBy string) error
}

// PeriodRepositoryFacade combines all period-related repository interfaces
type PeriodRepositoryFacade interface {
	PeriodReader
	PeriodWriter
}
