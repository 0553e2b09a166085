package domain

import (
	"fmt"

	"github.com/hbowden/practice_manager_app/internal/apperrors"
)

// ChargeKind classifies the finest-grained charge records. The set is
// closed; unrecognized kinds are rejected at the boundary, never coerced.
type ChargeKind string

const (
	ChargeCostRevenue              ChargeKind = "cost_revenue"
	ChargeWDVBroughtForward        ChargeKind = "wdv_b_fwd"
	ChargeWriteOff                 ChargeKind = "write_off"
	ChargeDepreciationPeriodCharge ChargeKind = "depreciation_period_charge"
)

// ParseChargeKind validates a raw charge kind string against the closed set.
func ParseChargeKind(s string) (ChargeKind, error) {
	switch ChargeKind(s) {
	case ChargeCostRevenue, ChargeWDVBroughtForward, ChargeWriteOff, ChargeDepreciationPeriodCharge:
		return ChargeKind(s), nil
	default:
		return "", fmt.Errorf("charge kind %q: %w", s, apperrors.ErrInvalidEnumValue)
	}
}

// SectionUnit is the finest-grained charge record within a breakdown.
type SectionUnit struct {
	UnitID         string     `json:"unitID" db:"unit_id"`
	BreakdownID    string     `json:"breakdownID" db:"breakdown_id"` // FK -> section_breakdowns.breakdown_id (restrict)
	ChargeKind     ChargeKind `json:"chargeKind" db:"charge_kind"`
	AmountInPounds int64      `json:"amountInPounds" db:"amount_in_pounds"` // Integer pounds, per source ledger convention
	Description    *string    `json:"description,omitempty" db:"description"`
	AuditFields
}
