package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/hbowden/practice_manager_app/internal/core/domain"
	portsrepo "github.com/hbowden/practice_manager_app/internal/core/ports/repositories"
	portssvc "github.com/hbowden/practice_manager_app/internal/core/ports/services"
	"github.com/hbowden/practice_manager_app/internal/dto"
)

// unitService implements the portssvc.UnitSvcFacade interface
type unitService struct {
	BaseService
	treeResolver
	unitRepo    portsrepo.UnitRepositoryFacade
	sectionRepo portsrepo.SectionReader
}

var _ portssvc.UnitSvcFacade = (*unitService)(nil)

// NewUnitService creates a new instance of unitService.
func NewUnitService(unitRepo portsrepo.UnitRepositoryFacade, breakdownRepo portsrepo.BreakdownReader, sectionRepo portsrepo.SectionReader, periodRepo portsrepo.PeriodReader, clientRepo portsrepo.ClientReader) *unitService {
	return &unitService{
		treeResolver: treeResolver{
			clientRepo:    clientRepo,
			periodRepo:    periodRepo,
			sectionRepo:   sectionRepo,
			breakdownRepo: breakdownRepo,
		},
		unitRepo:    unitRepo,
		sectionRepo: sectionRepo,
	}
}

// CreateUnit adds a charge record to a breakdown. The charge kind is parsed
// against the closed enumeration before any write is attempted; an
// unrecognized kind leaves the store untouched.
func (s *unitService) CreateUnit(ctx context.Context, caller domain.Caller, breakdownID string, req dto.CreateUnitRequest) (*domain.SectionUnit, error) {
	chargeKind, err := domain.ParseChargeKind(req.ChargeKind)
	if err != nil {
		return nil, err
	}

	breakdown, err := s.breakdownForCaller(ctx, caller, breakdownID)
	if err != nil {
		return nil, err
	}

	section, err := s.sectionRepo.FindSectionByID(ctx, breakdown.SectionID)
	if err != nil {
		return nil, err
	}
	if err := s.periodIsOpen(ctx, section.PeriodID); err != nil {
		return nil, err
	}

	now := time.Now()
	unit := domain.SectionUnit{
		UnitID:         uuid.NewString(),
		BreakdownID:    breakdown.BreakdownID,
		ChargeKind:     chargeKind,
		AmountInPounds: req.AmountInPounds,
		Description:    req.Description,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     caller.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: caller.UserID,
		},
	}

	if err := s.unitRepo.SaveUnit(ctx, unit); err != nil {
		s.LogError(ctx, err, "Failed to save section unit", slog.String("breakdown_id", breakdownID))
		return nil, err
	}

	s.LogInfo(ctx, "Section unit created", slog.String("unit_id", unit.UnitID))
	return &unit, nil
}

// ListUnitsForBreakdown lists all units within a breakdown the caller may see.
func (s *unitService) ListUnitsForBreakdown(ctx context.Context, caller domain.Caller, breakdownID string) ([]domain.SectionUnit, error) {
	if _, err := s.breakdownForCaller(ctx, caller, breakdownID); err != nil {
		return nil, err
	}
	return s.unitRepo.ListUnitsByBreakdownID(ctx, breakdownID)
}
