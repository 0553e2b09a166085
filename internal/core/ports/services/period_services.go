package services

import (
	"context"

	"github.com/hbowden/practice_manager_app/internal/core/domain"
	"github.com/hbowden/practice_manager_app/internal/dto"
)

// PeriodSvcFacade exposes accounting period operations.
type PeriodSvcFacade interface {
	// CreatePeriod opens a new accounting period under a client.
	CreatePeriod(ctx context.Context, caller domain.Caller, clientID string, req dto.CreatePeriodRequest) (*domain.AccountingPeriod, error)

	// ListPeriodsForClient retrieves all periods for a client visible to the caller.
	ListPeriodsForClient(ctx context.Context, caller domain.Caller, clientID string) ([]domain.AccountingPeriod, error)

	// CompletePeriod closes a period. A completed period freezes its child
	// section tree against further edits.
	CompletePeriod(ctx context.Context, caller domain.Caller, periodID string) (*domain.AccountingPeriod, error)

	// GetPeriodSummary totals the period's section amounts in minor units.
	GetPeriodSummary(ctx context.Context, caller domain.Caller, periodID string) (*dto.PeriodSummaryResponse, error)
}
