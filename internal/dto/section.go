package dto

import (
	"time"

	"github.com/hbowden/practice_manager_app/internal/core/domain"
)

// CreateSectionRequest defines the data needed to add a section to a period.
// Amount is an integer in minor currency units.
type CreateSectionRequest struct {
	Name     string `json:"name" binding:"required,min=1"`
	Category string `json:"category" binding:"required,min=1"`
	Amount   int64  `json:"amount"`
}

// UpdateSectionRequest defines the data allowed for updating a section.
type UpdateSectionRequest struct {
	Name      *string `json:"name"`
	Amount    *int64  `json:"amount"`
	Completed *bool   `json:"completed"`
}

// SectionResponse defines the data returned for an accounts section.
type SectionResponse struct {
	SectionID     string    `json:"sectionID"`
	PeriodID      string    `json:"periodID"`
	Name          string    `json:"name"`
	Category      string    `json:"category"`
	Amount        int64     `json:"amount"`
	Completed     bool      `json:"completed"`
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// ToSectionResponse converts a domain.AccountsSection to SectionResponse DTO
func ToSectionResponse(s *domain.AccountsSection) SectionResponse {
	return SectionResponse{
		SectionID:     s.SectionID,
		PeriodID:      s.PeriodID,
		Name:          s.Name,
		Category:      s.Category,
		Amount:        s.Amount,
		Completed:     s.Completed,
		CreatedAt:     s.CreatedAt,
		LastUpdatedAt: s.LastUpdatedAt,
	}
}

// ListSectionsResponse wraps the list of sections.
type ListSectionsResponse struct {
	Sections []SectionResponse `json:"sections"`
}

// ToListSectionsResponse converts a slice of domain.AccountsSection to DTO.
func ToListSectionsResponse(sections []domain.AccountsSection) ListSectionsResponse {
	res := make([]SectionResponse, len(sections))
	for i, s := range sections {
		res[i] = ToSectionResponse(&s)
	}
	return ListSectionsResponse{Sections: res}
}
