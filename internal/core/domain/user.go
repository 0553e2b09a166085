package domain

import (
	"fmt"
	"time"

	"github.com/hbowden/practice_manager_app/internal/apperrors"
)

// Role is the application-wide role of a user. It is a closed enumeration;
// elevation only happens through an explicit admin action on the user row.
type Role string

const (
	RoleMember Role = "member"
	RoleAdmin  Role = "admin"
	RoleOwner  Role = "owner"
)

// ParseRole validates a raw role string against the closed set.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleMember, RoleAdmin, RoleOwner:
		return Role(s), nil
	default:
		return "", fmt.Errorf("role %q: %w", s, apperrors.ErrInvalidEnumValue)
	}
}

// User represents an authenticated user of the practice.
type User struct {
	UserID        string  `json:"userID" db:"user_id"`
	Name          string  `json:"name" db:"name"`
	Email         string  `json:"email" db:"email"`
	PasswordHash  string  `json:"-" db:"password_hash"`
	Role          Role    `json:"role" db:"role"`
	EmailVerified bool    `json:"emailVerified" db:"email_verified"`
	Image         *string `json:"image,omitempty" db:"image"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty" db:"deleted_at"` // Soft delete marker
}
