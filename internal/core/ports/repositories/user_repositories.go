package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/hbowden/practice_manager_app/internal/core/domain"
)

// UserReader defines read operations for user data
type UserReader interface {
	// FindUserByID retrieves a specific user by their ID.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByEmail retrieves a user by their unique email.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// FindUsers retrieves all users ordered by name ascending.
	FindUsers(ctx context.Context) ([]domain.User, error)
}

// UserWriter defines write operations for user data
type UserWriter interface {
	// SaveUser persists a new user.
	SaveUser(ctx context.Context, user domain.User) error

	// UpdateUser updates an existing user's details and refreshes the
	// last-updated audit columns.
	UpdateUser(ctx context.Context, user domain.User) error

	// UpdatePassword replaces the stored password hash for a user.
	UpdatePassword(ctx context.Context, userID, passwordHash, updatedBy string) error
}

// UserLifecycleManager defines operations for removing users
type UserLifecycleManager interface {
	// DeleteUserTx hard-deletes a user inside the supplied transaction.
	// The store's restrict rule on clients.user_id surfaces as
	// apperrors.ErrConstraintViolation.
	DeleteUserTx(ctx context.Context, tx pgx.Tx, userID string) error
}

// UserRepositoryFacade combines all user-related repository interfaces
type UserRepositoryFacade interface {
	UserReader
	UserWriter
	UserLifecycleManager
	TransactionManager
}
