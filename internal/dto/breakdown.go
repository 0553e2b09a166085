package dto

import (
	"time"

	"github.com/hbowden/practice_manager_app/internal/core/domain"
)

// CreateBreakdownRequest defines the data needed to add a breakdown line.
type CreateBreakdownRequest struct {
	Name        string  `json:"name" binding:"required,min=1"`
	Amount      int64   `json:"amount"`
	Description *string `json:"description"`
}

// BreakdownResponse defines the data returned for a section breakdown.
type BreakdownResponse struct {
	BreakdownID   string    `json:"breakdownID"`
	SectionID     string    `json:"sectionID"`
	Name          string    `json:"name"`
	Amount        int64     `json:"amount"`
	Description   *string   `json:"description,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// ToBreakdownResponse converts a domain.SectionBreakdown to BreakdownResponse DTO
func ToBreakdownResponse(b *domain.SectionBreakdown) BreakdownResponse {
	return BreakdownResponse{
		BreakdownID:   b.BreakdownID,
		SectionID:     b.SectionID,
		Name:          b.Name,
		Amount:        b.Amount,
		Description:   b.Description,
		CreatedAt:     b.CreatedAt,
		LastUpdatedAt: b.LastUpdatedAt,
	}
}

// ListBreakdownsResponse wraps the list of breakdowns.
type ListBreakdownsResponse struct {
	Breakdowns []BreakdownResponse `json:"breakdowns"`
}

// ToListBreakdownsResponse converts a slice of domain.SectionBreakdown to DTO.
func ToListBreakdownsResponse(breakdowns []domain.SectionBreakdown) ListBreakdownsResponse {
	res := make([]BreakdownResponse, len(breakdowns))
	for i, b := range breakdowns {
		res[i] = ToBreakdownResponse(&b)
	}
	return ListBreakdownsResponse{Breakdowns: res}
}
