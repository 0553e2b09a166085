package repositories

import (
	"context"

	"github.com/hbowden/practice_manager_app/internal/core/domain"
)

// ClientReader defines read operations for client data
type ClientReader interface {
	// FindClientByID retrieves a specific client by its ID.
	FindClientByID(ctx context.Context, clientID string) (*domain.Client, error)

	// ListClientsByUserID retrieves all clients owned by a user, ordered by name.
	ListClientsByUserID(ctx context.Context, userID string) ([]domain.Client, error)

	// CountClientsByUserID counts the clients owned by a user.
	CountClientsByUserID(ctx context.Context, userID string) (int64, error)
}

// ClientWriter defines write operations for client data
type ClientWriter interface {
	// SaveClient persists a new client.
	SaveClient(ctx context.Context, client domain.Client) error

	// UpdateClient updates an existing client's details.
	UpdateClient(ctx context.Context, client domain.Client) error
}

// ClientLifecycleManager defines operations for removing clients
type ClientLifecycleManager interface {
	// DeleteClient removes a client. The restrict rule on
	// accounting_periods.client_id surfaces as apperrors.ErrConstraintViolation.
	DeleteClient(ctx context.Context, clientID string) error
}

// ClientRepositoryFacade combines all client-related repository interfaces
type ClientRepositoryFacade interface {
	ClientReader
	ClientWriter
	ClientLifecycleManager
}
