package domain

import (
	"fmt"

	"github.com/hbowden/practice_manager_app/internal/apperrors"
)

// EntityType classifies the legal form of a client. New clients start as
// Unassigned until a user explicitly sets the type.
type EntityType string

const (
	EntityUnassigned           EntityType = "unassigned"
	EntitySoleTrader           EntityType = "sole_trader"
	EntityPartnership          EntityType = "partnership"
	EntitySmallLimitedCompany  EntityType = "small_limited_company"
	EntityMediumLimitedCompany EntityType = "medium_limited_company"
)

// ParseEntityType validates a raw entity type string against the closed set.
func ParseEntityType(s string) (EntityType, error) {
	switch EntityType(s) {
	case EntityUnassigned, EntitySoleTrader, EntityPartnership,
		EntitySmallLimitedCompany, EntityMediumLimitedCompany:
		return EntityType(s), nil
	default:
		return "", fmt.Errorf("entity type %q: %w", s, apperrors.ErrInvalidEnumValue)
	}
}

// Client is a billable entity (company or individual) managed by a
// fee-earning user. A client is owned by its creating user for its whole
// life; the user row cannot be deleted while clients reference it.
type Client struct {
	ClientID   string     `json:"clientID" db:"client_id"`
	UserID     string     `json:"userID" db:"user_id"` // FK -> users.user_id (restrict)
	Name       string     `json:"name" db:"name"`
	OwnerName  string     `json:"ownerName" db:"owner_name"` // Fee earner display name
	Notes      *string    `json:"notes,omitempty" db:"notes"`
	EntityType EntityType `json:"entityType" db:"entity_type"`
	Active     bool       `json:"active" db:"active"`
	AuditFields
}
