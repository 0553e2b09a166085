package services

import (
	"context"

	"github.com/hbowden/practice_manager_app/internal/core/domain"
	"github.com/hbowden/practice_manager_app/internal/dto"
)

// ClientReaderSvc defines read operations for client data
type ClientReaderSvc interface {
	// GetClientByID retrieves a client visible to the caller (owner or admin).
	GetClientByID(ctx context.Context, caller domain.Caller, clientID string) (*domain.Client, error)

	// ListClientsForUser retrieves the caller's own clients ordered by name.
	ListClientsForUser(ctx context.Context, caller domain.Caller) ([]domain.Client, error)
}

// ClientWriterSvc defines write operations for client data
type ClientWriterSvc interface {
	// CreateClient creates a new client owned by the caller.
	CreateClient(ctx context.Context, caller domain.Caller, req dto.CreateClientRequest) (*domain.Client, error)

	// UpdateClient updates a client owned by the caller (or any, for admins).
	UpdateClient(ctx context.Context, caller domain.Caller, clientID string, req dto.UpdateClientRequest) (*domain.Client, error)
}

// ClientLifecycleSvc defines operations for removing clients
type ClientLifecycleSvc interface {
	// DeleteClient removes a client with no accounting periods.
	DeleteClient(ctx context.Context, caller domain.Caller, clientID string) error
}

// ClientSvcFacade combines all client-related service interfaces
type ClientSvcFacade interface {
	ClientReaderSvc
	ClientWriterSvc
	ClientLifecycleSvc
}
