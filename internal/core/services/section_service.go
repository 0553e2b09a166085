package services

import (
	"context"
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

// sectionService implements the portssvc.SectionSvcFacade interface
type sectionService struct {
	BaseService
	treeResolver
	sectionRepo portsrepo.SectionRepositoryFacade
}

var _ portssvc.SectionSvcFacade = (*sectionService)(nil)

// NewSectionService creates a new instance of sectionService.
func NewSectionService(sectionRepo portsrepo.SectionRepositoryFacade, periodRepo portsrepo.PeriodReader, clientRepo portsrepo.ClientReader) *sectionService {
	return &sectionService{
		treeResolver: treeResolver{
			clientRepo:  clientRepo,
			periodRepo:  periodRepo,
			sectionRepo: sectionRepo,
		},
		sectionRepo: sectionRepo,
	}
}

// CreateSection adds a section to an open accounting period.
func (s *sectionService) CreateSection(ctx context.Context, caller domain.Caller, periodID string, req dto.CreateSectionRequest) (*domain.AccountsSection, error) {
	period, err := s.openPeriodForCaller(ctx, caller, periodID)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	category := strings.TrimSpace(req.Category)
	if name == "" || category == "" {
		return nil, fmt.Errorf("section name and category are required: %w", apperrors.ErrValidation)
	}

	now := time.Now()
	section := domain.AccountsSection{
		SectionID: uuid.NewString(),
		PeriodID:  period.PeriodID,
		Name:      name,
		Category:  category,
		Amount:    req.Amount,
		Completed: false,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     caller.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: caller.UserID,
		},
	}

	if err := s.sectionRepo.SaveSection(ctx, section); err != nil {
		s.LogError(ctx, err, "Failed to save accounts section", slog.String("period_id", periodID))
		return nil, err
	}

	s.LogInfo(ctx, "Accounts section created", slog.String("section_id", section.SectionID))
	return &section, nil
}

// ListSectionsForPeriod lists all sections within a period the caller may see.
func (s *sectionService) ListSectionsForPeriod(ctx context.Context, caller domain.Caller, periodID string) ([]domain.AccountsSection, error) {
	if _, err := s.periodForCaller(ctx, caller, periodID); err != nil {
		return nil, err
	}
	return s.sectionRepo.ListSectionsByPeriodID(ctx, periodID)
}

// UpdateSection applies partial updates to a section while its period
// remains open.
func (s *sectionService) UpdateSection(ctx context.Context, caller domain.Caller, sectionID string, req dto.UpdateSectionRequest) (*domain.AccountsSection, error) {
	section, err := s.sectionForCaller(ctx, caller, sectionID)
	if err != nil {
		return nil, err
	}
	if err := s.periodIsOpen(ctx, section.PeriodID); err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, fmt.Errorf("section name cannot be empty: %w", apperrors.ErrValidation)
		}
		section.Name = name
	}
	if req.Amount != nil {
		section.Amount = *req.Amount
	}
	if req.Completed != nil {
		section.Completed = *req.Completed
	}

	section.LastUpdatedAt = time.Now()
	section.LastUpdatedBy = caller.UserID
	if err := s.sectionRepo.UpdateSection(ctx, *section); err != nil {
		s.LogError(ctx, err, "Failed to update accounts section", slog.String("section_id", sectionID))
		return nil, err
	}
	return section, nil
}
