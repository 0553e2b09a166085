package services

import (
	"context"
	"fmt"

	"github.com/hbowden/practice_manager_app/internal/apperrors"
	"github.com/hbowden/practice_manager_app/internal/core/domain"
	portsrepo "github.com/hbowden/practice_manager_app/internal/core/ports/repositories"
)

// treeResolver walks the ownership chain (client -> period -> section ->
// breakdown) and enforces that the caller owns the root client or is an
// admin. Every nested operation authorizes through it before touching
// storage.
type treeResolver struct {
	clientRepo    portsrepo.ClientReader
	periodRepo    portsrepo.PeriodReader
	sectionRepo   portsrepo.SectionReader
	breakdownRepo portsrepo.BreakdownReader
}

// clientForCaller fetches a client and verifies the caller may act on it.
func (t *treeResolver) clientForCaller(ctx context.Context, caller domain.Caller, clientID string) (*domain.Client, error) {
	if caller.UserID == "" {
		return nil, apperrors.ErrUnauthenticated
	}

	client, err := t.clientRepo.FindClientByID(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if client.UserID != caller.UserID && !caller.IsAdmin() {
		return nil, apperrors.ErrForbidden
	}
	return client, nil
}

// periodForCaller fetches a period and authorizes via its owning client.
func (t *treeResolver) periodForCaller(ctx context.Context, caller domain.Caller, periodID string) (*domain.AccountingPeriod, error) {
	period, err := t.periodRepo.FindPeriodByID(ctx, periodID)
	if err != nil {
		return nil, err
	}
	if _, err := t.clientForCaller(ctx, caller, period.ClientID); err != nil {
		return nil, err
	}
	return period, nil
}

// openPeriodForCaller is periodForCaller plus the completion gate: a
// completed period freezes its child tree against further edits.
func (t *treeResolver) openPeriodForCaller(ctx context.Context, caller domain.Caller, periodID string) (*domain.AccountingPeriod, error) {
	period, err := t.periodForCaller(ctx, caller, periodID)
	if err != nil {
		return nil, err
	}
	if period.Completed {
		return nil, fmt.Errorf("accounting period %s is completed and frozen: %w", period.PeriodID, apperrors.ErrValidation)
	}
	return period, nil
}

// sectionForCaller fetches a section and authorizes via its period chain.
func (t *treeResolver) sectionForCaller(ctx context.Context, caller domain.Caller, sectionID string) (*domain.AccountsSection, error) {
	section, err := t.sectionRepo.FindSectionByID(ctx, sectionID)
	if err != nil {
		return nil, err
	}
	if _, err := t.periodForCaller(ctx, caller, section.PeriodID); err != nil {
		return nil, err
	}
	return section, nil
}

// breakdownForCaller fetches a breakdown and authorizes via its section chain.
func (t *treeResolver) breakdownForCaller(ctx context.Context, caller domain.Caller, breakdownID string) (*domain.SectionBreakdown, error) {
	breakdown, err := t.breakdownRepo.FindBreakdownByID(ctx, breakdownID)
	if err != nil {
		return nil, err
	}
	if _, err := t.sectionForCaller(ctx, caller, breakdown.SectionID); err != nil {
		return nil, err
	}
	return breakdown, nil
}

// periodIsOpen re-checks the completion gate for a period already resolved
// through the chain.
func (t *treeResolver) periodIsOpen(ctx context.Context, periodID string) error {
	period, err := t.periodRepo.FindPeriodByID(ctx, periodID)
	if err != nil {
		return err
	}
	if period.Completed {
		return fmt.Errorf("accounting period %s is completed and frozen: %w", period.PeriodID, apperrors.ErrValidation)
	}
	return nil
}
