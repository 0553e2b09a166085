package services

import (
	"context"

	"github.com/hbowden/practice_manager_app/internal/core/domain"
	"github.com/hbowden/practice_manager_app/internal/dto"
)

// SectionSvcFacade exposes accounts section operations.
type SectionSvcFacade interface {
	// CreateSection adds a section to an open accounting period.
	CreateSection(ctx context.Context, caller domain.Caller, periodID string, req dto.CreateSectionRequest) (*domain.AccountsSection, error)

	// ListSectionsForPeriod retrieves all sections within a period.
	ListSectionsForPeriod(ctx context.Context, caller domain.Caller, periodID string) ([]domain.AccountsSection, error)

	// UpdateSection updates a section while its period remains open.
	UpdateSection(ctx context.Context, caller domain.Caller, sectionID string, req dto.UpdateSectionRequest) (*domain.AccountsSection, error)
}

// BreakdownSvcFacade exposes section breakdown operations.
type BreakdownSvcFacade interface {
	// CreateBreakdown adds a line-item grouping to a section.
	CreateBreakdown(ctx context.Context, caller domain.Caller, sectionID string, req dto.CreateBreakdownRequest) (*domain.SectionBreakdown, error)

	// ListBreakdownsForSection retrieves all breakdowns within a section.
	ListBreakdownsForSection(ctx context.Context, caller domain.Caller, sectionID string) ([]domain.SectionBreakdown, error)
}

// UnitSvcFacade exposes section unit operations.
type UnitSvcFacade interface {
	// CreateUnit adds a charge record to a breakdown.
	CreateUnit(ctx context.Context, caller domain.Caller, breakdownID string, req dto.CreateUnitRequest) (*domain.SectionUnit, error)

	// ListUnitsForBreakdown retrieves all units within a breakdown.
	ListUnitsForBreakdown(ctx context.Context, caller domain.Caller, breakdownID string) ([]domain.SectionUnit, error)
}
