package dto

import (
	"time"

	"github.com/hbowden/practice_manager_app/internal/core/domain"
)

// CreateUnitRequest defines the data needed to add a charge record to a
// breakdown. ChargeKind is parsed against the closed enumeration at the
// service boundary rather than coerced here.
type CreateUnitRequest struct {
	ChargeKind     string  `json:"chargeKind" binding:"required"`
	AmountInPounds int64   `json:"amountInPounds"`
	Description    *string `json:"description"`
}

// UnitResponse defines the data returned for a section unit.
type UnitResponse struct {
	UnitID         string            `json:"unitID"`
	BreakdownID    string            `json:"breakdownID"`
	ChargeKind     domain.ChargeKind `json:"chargeKind"`
	AmountInPounds int64             `json:"amountInPounds"`
	Description    *string           `json:"description,omitempty"`
	CreatedAt      time.Time         `json:"createdAt"`
	LastUpdatedAt  time.Time         `json:"lastUpdatedAt"`
}

// ToUnitResponse converts a domain.SectionUnit to UnitResponse DTO
func ToUnitResponse(u *domain.SectionUnit) UnitResponse {
	return UnitResponse{
		UnitID:         u.UnitID,
		BreakdownID:    u.BreakdownID,
		ChargeKind:     u.ChargeKind,
		AmountInPounds: u.AmountInPounds,
		Description:    u.Description,
		CreatedAt:      u.CreatedAt,
		LastUpdatedAt:  u.LastUpdatedAt,
	}
}

// ListUnitsResponse wraps the list of units.
type ListUnitsResponse struct {
	Units []UnitResponse `json:"units"`
}

// ToListUnitsResponse converts a slice of domain.SectionUnit to DTO.
func ToListUnitsResponse(units []domain.SectionUnit) ListUnitsResponse {
	res := make([]UnitResponse, len(units))
	for i, u := range units {
		res[i] = ToUnitResponse(&u)
	}
	return ListUnitsResponse{Units: res}
}
