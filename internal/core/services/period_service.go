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
	"github.com/hbowden/practice_manager_app/internal/utils"
)

// currencySymbol prefixes formatted period totals. Amounts are sterling
// throughout, matching the source ledgers.
const currencySymbol = "£"

// periodService implements the portssvc.PeriodSvcFacade interface
type periodService struct {
	BaseService
	treeResolver
	periodRepo  portsrepo.PeriodRepositoryFacade
	sectionRepo portsrepo.SectionReader
}

var _ portssvc.PeriodSvcFacade = (*periodService)(nil)

// NewPeriodService creates a new instance of periodService.
func NewPeriodService(periodRepo portsrepo.PeriodRepositoryFacade, clientRepo portsrepo.ClientReader, sectionRepo portsrepo.SectionReader) *periodService {
	return &periodService{
		treeResolver: treeResolver{
			clientRepo: clientRepo,
			periodRepo: periodRepo,
		},
		periodRepo:  periodRepo,
		sectionRepo: sectionRepo,
	}
}

// CreatePeriod opens a new accounting period under a client the caller may
// act on.
func (s *periodService) CreatePeriod(ctx context.Context, caller domain.Caller, clientID string, req dto.CreatePeriodRequest) (*domain.AccountingPeriod, error) {
	client, err := s.clientForCaller(ctx, caller, clientID)
	if err != nil {
		return nil, err
	}

	label := strings.TrimSpace(req.PeriodLabel)
	ending := strings.TrimSpace(req.PeriodEnding)
	if label == "" || ending == "" {
		return nil, fmt.Errorf("period label and period ending are required: %w", apperrors.ErrValidation)
	}

	now := time.Now()
	period := domain.AccountingPeriod{
		PeriodID:     uuid.NewString(),
		ClientID:     client.ClientID,
		PeriodLabel:  label,
		PeriodEnding: ending,
		Completed:    false,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     caller.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: caller.UserID,
		},
	}

	if err := s.periodRepo.SavePeriod(ctx, period); err != nil {
		s.LogError(ctx, err, "Failed to save accounting period", slog.String("client_id", clientID))
		return nil, err
	}

	s.LogInfo(ctx, "Accounting period created", slog.String("period_id", period.PeriodID))
	return &period, nil
}

// ListPeriodsForClient lists a client's periods, newest first.
func (s *periodService) ListPeriodsForClient(ctx context.Context, caller domain.Caller, clientID string) ([]domain.AccountingPeriod, error) {
	if _, err := s.clientForCaller(ctx, caller, clientID); err != nil {
		return nil, err
	}
	return s.periodRepo.ListPeriodsByClientID(ctx, clientID)
}

// CompletePeriod closes a period. Completing an already-completed period is
// rejected rather than treated as a no-op so callers notice stale state.
func (s *periodService) CompletePeriod(ctx context.Context, caller domain.Caller, periodID string) (*domain.AccountingPeriod, error) {
	period, err := s.periodForCaller(ctx, caller, periodID)
	if err != nil {
		return nil, err
	}
	if period.Completed {
		return nil, fmt.Errorf("accounting period %s is already completed: %w", periodID, apperrors.ErrValidation)
	}

	if err := s.periodRepo.MarkPeriodCompleted(ctx, periodID, caller.UserID); err != nil {
		s.LogError(ctx, err, "Failed to complete accounting period", slog.String("period_id", periodID))
		return nil, err
	}

	period.Completed = true
	period.LastUpdatedAt = time.Now()
	period.LastUpdatedBy = caller.UserID

	s.LogInfo(ctx, "Accounting period completed", slog.String("period_id", periodID))
	return period, nil
}

// GetPeriodSummary totals the period's section amounts. The sum stays in
// integer minor units; formatting happens only at the display boundary.
func (s *periodService) GetPeriodSummary(ctx context.Context, caller domain.Caller, periodID string) (*dto.PeriodSummaryResponse, error) {
	period, err := s.periodForCaller(ctx, caller, periodID)
	if err != nil {
		return nil, err
	}

	total, err := s.sectionRepo.SumSectionAmountsByPeriodID(ctx, period.PeriodID)
	if err != nil {
		s.LogError(ctx, err, "Failed to sum section amounts", slog.String("period_id", periodID))
		return nil, err
	}

	return &dto.PeriodSummaryResponse{
		PeriodID:       period.PeriodID,
		TotalAmount:    total,
		TotalFormatted: utils.FormatMinorUnits(total, currencySymbol),
	}, nil
}
