package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hbowden/practice_manager_app/internal/apperrors"
	"github.com/hbowden/practice_manager_app/internal/core/domain"
	portsrepo "github.com/hbowden/practice_manager_app/internal/core/ports/repositories"
	portssvc "github.com/hbowden/practice_manager_app/internal/core/ports/services"
	"github.com/hbowden/practice_manager_app/internal/dto"
)

// clientService implements the portssvc.ClientSvcFacade interface
type clientService struct {
	BaseService
	treeResolver
	clientRepo portsrepo.ClientRepositoryFacade
}

var _ portssvc.ClientSvcFacade = (*clientService)(nil)

// NewClientService creates a new instance of clientService.
func NewClientService(clientRepo portsrepo.ClientRepositoryFacade, periodRepo portsrepo.PeriodReader) *clientService {
	return &clientService{
		treeResolver: treeResolver{
			clientRepo: clientRepo,
			periodRepo: periodRepo,
		},
		clientRepo: clientRepo,
	}
}

// CreateClient creates a new client owned by the caller. New clients start
// as active with an unassigned entity type until someone classifies them.
func (s *clientService) CreateClient(ctx context.Context, caller domain.Caller, req dto.CreateClientRequest) (*domain.Client, error) {
	if err := s.RequireAuthenticated(caller); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	ownerName := strings.TrimSpace(req.OwnerName)
	if name == "" || ownerName == "" {
		return nil, fmt.Errorf("client name and owner name are required: %w", apperrors.ErrValidation)
	}

	var notes *string
	if trimmed := strings.TrimSpace(req.Notes); trimmed != "" {
		notes = &trimmed
	}

	now := time.Now()
	client := domain.Client{
		ClientID:   uuid.NewString(),
		UserID:     caller.UserID,
		Name:       name,
		OwnerName:  ownerName,
		Notes:      notes,
		EntityType: domain.EntityUnassigned,
		Active:     true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     caller.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: caller.UserID,
		},
	}

	if err := s.clientRepo.SaveClient(ctx, client); err != nil {
		s.LogError(ctx, err, "Failed to save client", slog.String("client_name", name))
		return nil, err
	}

	s.LogInfo(ctx, "Client created", slog.String("client_id", client.ClientID))
	return &client, nil
}

// GetClientByID retrieves a single client visible to the caller.
func (s *clientService) GetClientByID(ctx context.Context, caller domain.Caller, clientID string) (*domain.Client, error) {
	return s.clientForCaller(ctx, caller, clientID)
}

// ListClientsForUser lists the caller's own clients ordered by name.
func (s *clientService) ListClientsForUser(ctx context.Context, caller domain.Caller) ([]domain.Client, error) {
	if err := s.RequireAuthenticated(caller); err != nil {
		return nil, err
	}
	return s.clientRepo.ListClientsByUserID(ctx, caller.UserID)
}

// UpdateClient applies partial updates to a client the caller may act on.
// The entity type is parsed against the closed enumeration before any write.
func (s *clientService) UpdateClient(ctx context.Context, caller domain.Caller, clientID string, req dto.UpdateClientRequest) (*domain.Client, error) {
	client, err := s.clientForCaller(ctx, caller, clientID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, fmt.Errorf("client name cannot be empty: %w", apperrors.ErrValidation)
		}
		client.Name = name
	}
	if req.OwnerName != nil {
		ownerName := strings.TrimSpace(*req.OwnerName)
		if ownerName == "" {
			return nil, fmt.Errorf("owner name cannot be empty: %w", apperrors.ErrValidation)
		}
		client.OwnerName = ownerName
	}
	if req.Notes != nil {
		client.Notes = req.Notes
	}
	if req.EntityType != nil {
		entityType, err := domain.ParseEntityType(*req.EntityType)
		if err != nil {
			return nil, err
		}
		client.EntityType = entityType
	}
	if req.Active != nil {
		client.Active = *req.Active
	}

	client.LastUpdatedAt = time.Now()
	client.LastUpdatedBy = caller.UserID
	if err := s.clientRepo.UpdateClient(ctx, *client); err != nil {
		s.LogError(ctx, err, "Failed to update client", slog.String("client_id", clientID))
		return nil, err
	}
	return client, nil
}

// DeleteClient removes a client. The period count check runs first so the
// common case gets a clear message; the store's restrict rule on
// accounting_periods backs it up against races.
func (s *clientService) DeleteClient(ctx context.Context, caller domain.Caller, clientID string) error {
	client, err := s.clientForCaller(ctx, caller, clientID)
	if err != nil {
		return err
	}

	periods, err := s.periodRepo.ListPeriodsByClientID(ctx, client.ClientID)
	if err != nil {
		return err
	}
	if len(periods) > 0 {
		return fmt.Errorf("client has %d accounting period(s) and cannot be deleted: %w", len(periods), apperrors.ErrConstraintViolation)
	}

	if err := s.clientRepo.DeleteClient(ctx, client.ClientID); err != nil {
		if errors.Is(err, apperrors.ErrConstraintViolation) {
			return fmt.Errorf("client still has accounting periods: %w", apperrors.ErrConstraintViolation)
		}
		s.LogError(ctx, err, "Failed to delete client", slog.String("client_id", clientID))
		return err
	}

	s.LogInfo(ctx, "Client deleted", slog.String("client_id", clientID))
	return nil
}
