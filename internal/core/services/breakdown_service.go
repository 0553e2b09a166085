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

// breakdownService implements the portssvc.BreakdownSvcFacade interface
type breakdownService struct {
	BaseService
	treeResolver
	breakdownRepo portsrepo.BreakdownRepositoryFacade
}

var _ portssvc.BreakdownSvcFacade = (*breakdownService)(nil)

// NewBreakdownService creates a new instance of breakdownService.
func NewBreakdownService(breakdownRepo portsrepo.BreakdownRepositoryFacade, sectionRepo portsrepo.SectionReader, periodRepo portsrepo.PeriodReader, clientRepo portsrepo.ClientReader) *breakdownService {
	return &breakdownService{
		treeResolver: treeResolver{
			clientRepo:    clientRepo,
			periodRepo:    periodRepo,
			sectionRepo:   sectionRepo,
			breakdownRepo: breakdownRepo,
		},
		breakdownRepo: breakdownRepo,
	}
}

// CreateBreakdown adds a line-item grouping to a section whose period is
// still open.
func (s *breakdownService) CreateBreakdown(ctx context.Context, caller domain.Caller, sectionID string, req dto.CreateBreakdownRequest) (*domain.SectionBreakdown, error) {
	section, err := s.sectionForCaller(ctx, caller, sectionID)
	if err != nil {
		return nil, err
	}
	if err := s.periodIsOpen(ctx, section.PeriodID); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("breakdown name is required: %w", apperrors.ErrValidation)
	}

	now := time.Now()
	breakdown := domain.SectionBreakdown{
		BreakdownID: uuid.NewString(),
		SectionID:   section.SectionID,
		Name:        name,
		Amount:      req.Amount,
		Description: req.Description,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     caller.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: caller.UserID,
		},
	}

	if err := s.breakdownRepo.SaveBreakdown(ctx, breakdown); err != nil {
		s.LogError(ctx, err, "Failed to save section breakdown", slog.String("section_id", sectionID))
		return nil, err
	}

	s.LogInfo(ctx, "Section breakdown created", slog.String("breakdown_id", breakdown.BreakdownID))
	return &breakdown, nil
}

// ListBreakdownsForSection lists all breakdowns within a section the caller
// may see.
func (s *breakdownService) ListBreakdownsForSection(ctx context.Context, caller domain.Caller, sectionID string) ([]domain.SectionBreakdown, error) {
	if _, err := s.sectionForCaller(ctx, caller, sectionID); err != nil {
		return nil, err
	}
	return s.breakdownRepo.ListBreakdownsBySectionID(ctx, sectionID)
}
