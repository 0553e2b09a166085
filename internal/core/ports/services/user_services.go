package services

import (
	"context"

	"github.com/hbowden/practice_manager_app/internal/core/domain"
	"github.com/hbowden/practice_manager_app/internal/dto"
)

// UserReaderSvc defines read operations for user data
type UserReaderSvc interface {
	// GetUserByID retrieves a user by ID. Callers may read their own row;
	// reading another user's row requires the admin role.
	GetUserByID(ctx context.Context, caller domain.Caller, userID string) (*domain.User, error)

	// FindAllUsers retrieves every user ordered by name. Admin only.
	FindAllUsers(ctx context.Context, caller domain.Caller) ([]domain.User, error)
}

// UserWriterSvc defines write operations for user data
type UserWriterSvc interface {
	// UpdateUser updates a user's own details (or any user's, for admins).
	UpdateUser(ctx context.Context, caller domain.Caller, userID string, req dto.UpdateUserRequest) (*domain.User, error)

	// UpdateUserRole performs the explicit role elevation action. Admin only.
	UpdateUserRole(ctx context.Context, caller domain.Caller, userID string, role domain.Role) (*domain.User, error)

	// ChangePassword verifies the current password and replaces it.
	ChangePassword(ctx context.Context, caller domain.Caller, currentPassword, newPassword string) error
}

// UserLifecycleSvc defines operations for removing users
type UserLifecycleSvc interface {
	// DeleteUser hard-deletes a user. Admin only; self-deletion is blocked,
	// and a user who still owns clients cannot be removed.
	DeleteUser(ctx context.Context, caller domain.Caller, targetID string) error
}

// UserAuthSvc defines operations for user authentication
type UserAuthSvc interface {
	// Register creates a new user account from a sign-up request.
	Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error)

	// AuthenticateUser authenticates a user with email and password.
	AuthenticateUser(ctx context.Context, email, password string) (*domain.User, error)
}

// UserSvcFacade combines all user-related service interfaces
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
	UserLifecycleSvc
	UserAuthSvc
}
