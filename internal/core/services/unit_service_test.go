package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/hbowden/practice_manager_app/internal/apperrors"
	"github.com/hbowden/practice_manager_app/internal/core/domain"
	portssvc "github.com/hbowden/practice_manager_app/internal/core/ports/services"
	"github.com/hbowden/practice_manager_app/internal/core/services"
	"github.com/hbowden/practice_manager_app/internal/dto"
)

// --- Test Suite Setup ---

type UnitServiceTestSuite struct {
	suite.Suite
	mockUnitRepo      *MockUnitRepository
	mockBreakdownRepo *MockBreakdownRepository
	mockSectionRepo   *MockSectionRepository
	mockPeriodRepo    *MockPeriodRepository
	mockClientRepo    *MockClientRepository
	service           portssvc.UnitSvcFacade

	owner     domain.Caller
	client    *domain.Client
	period    *domain.AccountingPeriod
	section   *domain.AccountsSection
	breakdown *domain.SectionBreakdown
}

func (suite *UnitServiceTestSuite) SetupTest() {
	suite.mockUnitRepo = new(MockUnitRepository)
	suite.mockBreakdownRepo = new(MockBreakdownRepository)
	suite.mockSectionRepo = new(MockSectionRepository)
	suite.mockPeriodRepo = new(MockPeriodRepository)
	suite.mockClientRepo = new(MockClientRepository)
	suite.service = services.NewUnitService(suite.mockUnitRepo, suite.mockBreakdownRepo, suite.mockSectionRepo, suite.mockPeriodRepo, suite.mockClientRepo)

	suite.owner = domain.Caller{UserID: uuid.NewString(), Role: domain.RoleMember}
	suite.client = &domain.Client{
		ClientID:   uuid.NewString(),
		UserID:     suite.owner.UserID,
		Name:       "Acme Ltd",
		OwnerName:  "Jo Fee-Earner",
		EntityType: domain.EntitySoleTrader,
		Active:     true,
	}
	suite.period = &domain.AccountingPeriod{
		PeriodID:     uuid.NewString(),
		ClientID:     suite.client.ClientID,
		PeriodLabel:  "FY 2025",
		PeriodEnding: "2025-03-31",
	}
	suite.section = &domain.AccountsSection{
		SectionID: uuid.NewString(),
		PeriodID:  suite.period.PeriodID,
		Name:      "Fixed Assets",
		Category:  "assets",
	}
	suite.breakdown = &domain.SectionBreakdown{
		BreakdownID: uuid.NewString(),
		SectionID:   suite.section.SectionID,
		Name:        "Plant & Machinery",
	}
}

func (suite *UnitServiceTestSuite) expectChainToClient() {
	ctx := context.Background()
	suite.mockBreakdownRepo.On("FindBreakdownByID", ctx, suite.breakdown.BreakdownID).Return(suite.breakdown, nil)
	suite.mockSectionRepo.On("FindSectionByID", ctx, suite.section.SectionID).Return(suite.section, nil)
	suite.mockPeriodRepo.On("FindPeriodByID", ctx, suite.period.PeriodID).Return(suite.period, nil)
	suite.mockClientRepo.On("FindClientByID", ctx, suite.client.ClientID).Return(suite.client, nil)
}

// --- CreateUnit ---

func (suite *UnitServiceTestSuite) TestCreateUnit_Success() {
	ctx := context.Background()
	req := dto.CreateUnitRequest{ChargeKind: "depreciation_period_charge", AmountInPounds: 1200}

	suite.expectChainToClient()
	suite.mockUnitRepo.On("SaveUnit", ctx, mock.MatchedBy(func(u domain.SectionUnit) bool {
		return u.ChargeKind == domain.ChargeDepreciationPeriodCharge && u.AmountInPounds == 1200
	})).Return(nil).Once()

	created, err := suite.service.CreateUnit(ctx, suite.owner, suite.breakdown.BreakdownID, req)

	suite.Require().NoError(err)
	suite.NotEmpty(created.UnitID)
	suite.Equal(suite.breakdown.BreakdownID, created.BreakdownID)
	suite.mockUnitRepo.AssertExpectations(suite.T())
}

func (suite *UnitServiceTestSuite) TestCreateUnit_UnknownChargeKindWritesNothing() {
	ctx := context.Background()
	req := dto.CreateUnitRequest{ChargeKind: "goodwill_amortisation", AmountInPounds: 1200}

	_, err := suite.service.CreateUnit(ctx, suite.owner, suite.breakdown.BreakdownID, req)

	// The kind is parsed before any lookup or write happens.
	suite.ErrorIs(err, apperrors.ErrInvalidEnumValue)
	suite.mockBreakdownRepo.AssertNotCalled(suite.T(), "FindBreakdownByID", mock.Anything, mock.Anything)
	suite.mockUnitRepo.AssertNotCalled(suite.T(), "SaveUnit", mock.Anything, mock.Anything)
}

func (suite *UnitServiceTestSuite) TestCreateUnit_FrozenPeriodRejected() {
	ctx := context.Background()
	suite.period.Completed = true
	req := dto.CreateUnitRequest{ChargeKind: "cost_revenue", AmountInPounds: 500}

	suite.expectChainToClient()

	_, err := suite.service.CreateUnit(ctx, suite.owner, suite.breakdown.BreakdownID, req)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockUnitRepo.AssertNotCalled(suite.T(), "SaveUnit", mock.Anything, mock.Anything)
}

func (suite *UnitServiceTestSuite) TestCreateUnit_NonOwnerForbidden() {
	ctx := context.Background()
	intruder := domain.Caller{UserID: uuid.NewString(), Role: domain.RoleMember}
	req := dto.CreateUnitRequest{ChargeKind: "write_off", AmountInPounds: 100}

	suite.expectChainToClient()

	_, err := suite.service.CreateUnit(ctx, intruder, suite.breakdown.BreakdownID, req)

	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockUnitRepo.AssertNotCalled(suite.T(), "SaveUnit", mock.Anything, mock.Anything)
}

// --- ListUnitsForBreakdown ---

func (suite *UnitServiceTestSuite) TestListUnitsForBreakdown() {
	ctx := context.Background()
	units := []domain.SectionUnit{{
		UnitID:         uuid.NewString(),
		BreakdownID:    suite.breakdown.BreakdownID,
		ChargeKind:     domain.ChargeWDVBroughtForward,
		AmountInPounds: 9000,
	}}

	suite.expectChainToClient()
	suite.mockUnitRepo.On("ListUnitsByBreakdownID", ctx, suite.breakdown.BreakdownID).Return(units, nil).Once()

	got, err := suite.service.ListUnitsForBreakdown(ctx, suite.owner, suite.breakdown.BreakdownID)

	suite.Require().NoError(err)
	suite.Len(got, 1)
	suite.Equal(domain.ChargeWDVBroughtForward, got[0].ChargeKind)
}

func TestUnitServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UnitServiceTestSuite))
}
