package repositories

import (
	"context"

	"github.com/hbowden/practice_manager_app/internal/core/domain"
)

// UnitReader defines read operations for section unit data
type UnitReader interface {
	// FindUnitByID retrieves a specific section unit by its ID.
	FindUnitByID(ctx context.Context, unitID string) (*domain.SectionUnit, error)

	// ListUnitsByBreakdownID retrieves all units within a breakdown.
	ListUnitsByBreakdownID(ctx context.Context, breakdownID string) ([]domain.SectionUnit, error)
}

// UnitWriter defines write operations for section unit data
type UnitWriter interface {
	// SaveUnit persists a new section unit.
	SaveUnit(ctx context.Context, unit domain.SectionUnit) error
}

// UnitRepositoryFacade combines all unit-related repository interfaces
type UnitRepositoryFacade interface {
	UnitReader
	UnitWriter
}
