package dto

import (
	"time"

	"github.com/hbowden/practice_manager_app/internal/core/domain"
)

// CreatePeriodRequest defines the data needed to open a new accounting period.
type CreatePeriodRequest struct {
	PeriodLabel  string `json:"periodLabel" binding:"required,min=1"`
	PeriodEnding string `json:"periodEnding" binding:"required,min=1"`
}

// PeriodResponse defines the data returned for an accounting period.
type PeriodResponse struct {
	PeriodID      string    `json:"periodID"`
	ClientID      string    `json:"clientID"`
	PeriodLabel   string    `json:"periodLabel"`
	PeriodEnding  string    `json:"periodEnding"`
	Completed     bool      `json:"completed"`
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// ToPeriodResponse converts a domain.AccountingPeriod to PeriodResponse DTO
func ToPeriodResponse(p *domain.AccountingPeriod) PeriodResponse {
	return PeriodResponse{
		PeriodID:      p.PeriodID,
		ClientID:      p.ClientID,
		PeriodLabel:   p.PeriodLabel,
		PeriodEnding:  p.PeriodEnding,
		Completed:     p.Completed,
		CreatedAt:     p.CreatedAt,
		LastUpdatedAt: p.LastUpdatedAt,
	}
}

// ListPeriodsResponse wraps the list of accounting periods.
type ListPeriodsResponse struct {
	Periods []PeriodResponse `json:"periods"`
}

// ToListPeriodsResponse converts a slice of domain.AccountingPeriod to DTO.
func ToListPeriodsResponse(periods []domain.AccountingPeriod) ListPeriodsResponse {
	res := make([]PeriodResponse, len(periods))
	for i, p := range periods {
		res[i] = ToPeriodResponse(&p)
	}
	return ListPeriodsResponse{Periods: res}
}

// PeriodSummaryResponse totals a period's sections. TotalAmount stays in
// minor units; TotalFormatted is a display string derived from it.
type PeriodSummaryResponse struct {
	PeriodID       string `json:"periodID"`
	TotalAmount    int64  `json:"totalAmount"`
	TotalFormatted string `json:"totalFormatted"`
}
