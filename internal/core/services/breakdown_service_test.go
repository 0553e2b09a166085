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

type BreakdownServiceTestSuite struct {
	suite.Suite
	mockBreakdownRepo *MockBreakdownRepository
	mockSectionRepo   *MockSectionRepository
	mockPeriodRepo    *MockPeriodRepository
	mockClientRepo    *MockClientRepository
	service           portssvc.BreakdownSvcFacade

	owner   domain.Caller
	client  *domain.Client
	period  *domain.AccountingPeriod
	section *domain.AccountsSection
}

func (suite *BreakdownServiceTestSuite) SetupTest() {
	suite.mockBreakdownRepo = new(MockBreakdownRepository)
	suite.mockSectionRepo = new(MockSectionRepository)
	suite.mockPeriodRepo = new(MockPeriodRepository)
	suite.mockClientRepo = new(MockClientRepository)
	suite.service = services.NewBreakdownService(suite.mockBreakdownRepo, suite.mockSectionRepo, suite.mockPeriodRepo, suite.mockClientRepo)

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
}

func (suite *BreakdownServiceTestSuite) expectChainToClient() {
	ctx := context.Background()
	suite.mockSectionRepo.On("FindSectionByID", ctx, suite.section.SectionID).Return(suite.section, nil)
	suite.mockPeriodRepo.On("FindPeriodByID", ctx, suite.period.PeriodID).Return(suite.period, nil)
	suite.mockClientRepo.On("FindClientByID", ctx, suite.client.ClientID).Return(suite.client, nil)
}

// --- CreateBreakdown ---

func (suite *BreakdownServiceTestSuite) TestCreateBreakdown_Success() {
	ctx := context.Background()
	req := dto.CreateBreakdownRequest{Name: "Plant & Machinery", Amount: 20000}

	suite.expectChainToClient()
	suite.mockBreakdownRepo.On("SaveBreakdown", ctx, mock.MatchedBy(func(b domain.SectionBreakdown) bool {
		return b.SectionID == suite.section.SectionID && b.Amount == 20000
	})).Return(nil).Once()

	created, err := suite.service.CreateBreakdown(ctx, suite.owner, suite.section.SectionID, req)

	suite.Require().NoError(err)
	suite.NotEmpty(created.BreakdownID)
	suite.Equal(suite.owner.UserID, created.CreatedBy)
	suite.mockBreakdownRepo.AssertExpectations(suite.T())
}

func (suite *BreakdownServiceTestSuite) TestCreateBreakdown_EmptyNameWritesNothing() {
	ctx := context.Background()
	req := dto.CreateBreakdownRequest{Name: "  "}

	suite.expectChainToClient()

	_, err := suite.service.CreateBreakdown(ctx, suite.owner, suite.section.SectionID, req)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockBreakdownRepo.AssertNotCalled(suite.T(), "SaveBreakdown", mock.Anything, mock.Anything)
}

func (suite *BreakdownServiceTestSuite) TestCreateBreakdown_FrozenPeriodRejected() {
	ctx := context.Background()
	suite.period.Completed = true
	req := dto.CreateBreakdownRequest{Name: "Plant & Machinery"}

	suite.expectChainToClient()

	_, err := suite.service.CreateBreakdown(ctx, suite.owner, suite.section.SectionID, req)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockBreakdownRepo.AssertNotCalled(suite.T(), "SaveBreakdown", mock.Anything, mock.Anything)
}

// --- ListBreakdownsForSection ---

func (suite *BreakdownServiceTestSuite) TestListBreakdownsForSection() {
	ctx := context.Background()
	breakdowns := []domain.SectionBreakdown{{
		BreakdownID: uuid.NewString(),
		SectionID:   suite.section.SectionID,
		Name:        "Plant & Machinery",
	}}

	suite.expectChainToClient()
	suite.mockBreakdownRepo.On("ListBreakdownsBySectionID", ctx, suite.section.SectionID).Return(breakdowns, nil).Once()

	got, err := suite.service.ListBreakdownsForSection(ctx, suite.owner, suite.section.SectionID)

	suite.Require().NoError(err)
	suite.Len(got, 1)
}

func TestBreakdownServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BreakdownServiceTestSuite))
}
