package repositories

import (
	"context"

	"github.com/hbowden/practice_manager_app/internal/core/domain"
)

// BreakdownReader defines read operations for section breakdown data
type BreakdownReader interface {
	// FindBreakdownByID retrieves a specific breakdown by its ID.
	FindBreakdownByID(ctx context.Context, breakdownID string) (*domain.SectionBreakdown, error)

	// ListBreakdownsBySectionID retrieves all breakdowns within a section.
	ListBreakdownsBySectionID(ctx context.Context, sectionID string) ([]domain.SectionBreakdown, error)
}

// BreakdownWriter defines write operations for section breakdown data
type BreakdownWriter interface {
	// SaveBreakdown persists a new section breakdown.
	SaveBreakdown(ctx context.Context, breakdown domain.SectionBreakdown) error
}

// BreakdownRepositoryFacade combines all breakdown-related repository interfaces
type BreakdownRepositoryFacade interface {
	BreakdownReader
	BreakdownWriter
}
