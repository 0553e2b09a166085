package repositories

import (
	"context"

	"github.com/hbowden/practice_manager_app/internal/core/domain"
)

// SectionReader defines read operations for accounts section data
type SectionReader interface {
	// FindSectionByID retrieves a specific accounts section by its ID.
	FindSectionByID(ctx context.Context, sectionID string) (*domain.AccountsSection, error)

	// ListSectionsByPeriodID retrieves all sections within a period.
	ListSectionsByPeriodID(ctx context.Context, periodID string) ([]domain.AccountsSection, error)

	// SumSectionAmountsByPeriodID totals section amounts for a period in
	// minor currency units.
	SumSectionAmountsByPeriodID(ctx context.Context, periodID string) (int64, error)
}

// SectionWriter defines write operations for accounts section data
type SectionWriter interface {
	// SaveSection persists a new accounts section.
	SaveSection(ctx context.Context, section domain.AccountsSection) error

	// UpdateSection updates an existing section's details.
	UpdateSection(ctx context.Context, section domain.AccountsSection) error
}

// SectionRepositoryFacade combines all section-related repository interfaces
type SectionRepositoryFacade interface {
	SectionReader
	SectionWriter
}
