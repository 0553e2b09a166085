package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/hbowden/practice_manager_app/internal/apperrors"
	"github.com/hbowden/practice_manager_app/internal/core/domain"
	portssvc "github.com/hbowden/practice_manager_app/internal/core/ports/services"
	"github.com/hbowden/practice_manager_app/internal/dto"
	"github.com/hbowden/practice_manager_app/internal/handlers"
	"github.com/hbowden/practice_manager_app/internal/platform/config"
	"github.com/hbowden/practice_manager_app/internal/utils"
)

// --- Mock ClientService ---

type MockClientService struct {
	mock.Mock
}

func (m *MockClientService) CreateClient(ctx context.Context, caller domain.Caller, req dto.CreateClientRequest) (*domain.Client, error) {
	args := m.Called(ctx, caller, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

func (m *MockClientService) GetClientByID(ctx context.Context, caller domain.Caller, clientID string) (*domain.Client, error) {
	args := m.Called(ctx, caller, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

func (m *MockClientService) ListClientsForUser(ctx context.Context, caller domain.Caller) ([]domain.Client, error) {
	args := m.Called(ctx, caller)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Client), args.Error(1)
}

func (m *MockClientService) UpdateClient(ctx context.Context, caller domain.Caller, clientID string, req dto.UpdateClientRequest) (*domain.Client, error) {
	args := m.Called(ctx, caller, clientID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

func (m *MockClientService) DeleteClient(ctx context.Context, caller domain.Caller, clientID string) error {
	args := m.Called(ctx, caller, clientID)
	return args.Error(0)
}

var _ portssvc.ClientSvcFacade = (*MockClientService)(nil)

// --- Mock PeriodService ---

type MockPeriodService struct {
	mock.Mock
}

func (m *MockPeriodService) CreatePeriod(ctx context.Context, caller domain.Caller, clientID string, req dto.CreatePeriodRequest) (*domain.AccountingPeriod, error) {
	args := m.Called(ctx, caller, clientID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AccountingPeriod), args.Error(1)
}

func (m *MockPeriodService) ListPeriodsForClient(ctx context.Context, caller domain.Caller, clientID string) ([]domain.AccountingPeriod, error) {
	args := m.Called(ctx, caller, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AccountingPeriod), args.Error(1)
}

func (m *MockPeriodService) CompletePeriod(ctx context.Context, caller domain.Caller, periodID string) (*domain.AccountingPeriod, error) {
	args := m.Called(ctx, caller, periodID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AccountingPeriod), args.Error(1)
}

func (m *MockPeriodService) GetPeriodSummary(ctx context.Context, caller domain.Caller, periodID string) (*dto.PeriodSummaryResponse, error) {
	args := m.Called(ctx, caller, periodID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.PeriodSummaryResponse), args.Error(1)
}

var _ portssvc.PeriodSvcFacade = (*MockPeriodService)(nil)

// --- Test Suite ---

type ClientHandlerTestSuite struct {
	suite.Suite
	router            *gin.Engine
	mockClientService *MockClientService
	mockPeriodService *MockPeriodService
	jwtSecret         string
}

func (suite *ClientHandlerTestSuite) generateTestToken(userID string, role domain.Role) string {
	token, err := utils.GenerateJWT(userID, string(role), suite.jwtSecret, time.Hour, "pma-test")
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return token
}

func (suite *ClientHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.mockClientService = new(MockClientService)
	suite.mockPeriodService = new(MockPeriodService)

	cfg := &config.Config{
		JWTSecret:         suite.jwtSecret,
		JWTExpiryDuration: time.Hour,
		JWTIssuer:         "pma-test",
	}
	services := &portssvc.ServiceContainer{
		Client: suite.mockClientService,
		Period: suite.mockPeriodService,
	}
	handlers.RegisterRoutes(suite.router, cfg, services)
}

func (suite *ClientHandlerTestSuite) do(req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *ClientHandlerTestSuite) TestListClients_Success() {
	userID := uuid.NewString()
	expected := []domain.Client{{
		ClientID:   uuid.NewString(),
		UserID:     userID,
		Name:       "Acme Ltd",
		OwnerName:  "Jo Fee-Earner",
		EntityType: domain.EntitySoleTrader,
		Active:     true,
	}}

	suite.mockClientService.On("ListClientsForUser",
		mock.Anything,
		domain.Caller{UserID: userID, Role: domain.RoleMember},
	).Return(expected, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/clients", nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID, domain.RoleMember))

	w := suite.do(req)

	suite.Equal(http.StatusOK, w.Code)
	var res dto.Result
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	suite.True(res.Success)
	suite.mockClientService.AssertExpectations(suite.T())
}

func (suite *ClientHandlerTestSuite) TestListClients_MissingToken() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/clients", nil)

	w := suite.do(req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	var res dto.Result
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	suite.False(res.Success)
	suite.mockClientService.AssertNotCalled(suite.T(), "ListClientsForUser", mock.Anything, mock.Anything)
}

func (suite *ClientHandlerTestSuite) TestGetClient_ForbiddenMapsTo403() {
	userID := uuid.NewString()
	clientID := uuid.NewString()

	suite.mockClientService.On("GetClientByID", mock.Anything, mock.Anything, clientID).
		Return(nil, apperrors.ErrForbidden).Once()

	req, _ := http.NewRequest(http.MethodGet, fmt.Sprintf("/api/v1/clients/%s", clientID), nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID, domain.RoleMember))

	w := suite.do(req)

	suite.Equal(http.StatusForbidden, w.Code)
	var res dto.Result
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	suite.False(res.Success)
}

func (suite *ClientHandlerTestSuite) TestGetClient_NotFoundMapsTo404() {
	userID := uuid.NewString()
	clientID := uuid.NewString()

	suite.mockClientService.On("GetClientByID", mock.Anything, mock.Anything, clientID).
		Return(nil, apperrors.ErrNotFound).Once()

	req, _ := http.NewRequest(http.MethodGet, fmt.Sprintf("/api/v1/clients/%s", clientID), nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID, domain.RoleMember))

	w := suite.do(req)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *ClientHandlerTestSuite) TestCreateClient_ValidationMapsTo400() {
	userID := uuid.NewString()

	suite.mockClientService.On("CreateClient", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("client name and owner name are required: %w", apperrors.ErrValidation)).Once()

	body, _ := json.Marshal(dto.CreateClientRequest{Name: " ", OwnerName: "Jo"})
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/clients", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID, domain.RoleMember))

	w := suite.do(req)

	suite.Equal(http.StatusBadRequest, w.Code)
	var res dto.Result
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	suite.False(res.Success)
	suite.NotEmpty(res.Message)
}

func (suite *ClientHandlerTestSuite) TestDeleteClient_ConstraintMapsTo409() {
	userID := uuid.NewString()
	clientID := uuid.NewString()

	suite.mockClientService.On("DeleteClient", mock.Anything, mock.Anything, clientID).
		Return(fmt.Errorf("client has 2 accounting period(s) and cannot be deleted: %w", apperrors.ErrConstraintViolation)).Once()

	req, _ := http.NewRequest(http.MethodDelete, fmt.Sprintf("/api/v1/clients/%s", clientID), nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID, domain.RoleMember))

	w := suite.do(req)

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *ClientHandlerTestSuite) TestCreatePeriod_Success() {
	userID := uuid.NewString()
	clientID := uuid.NewString()
	expected := &domain.AccountingPeriod{
		PeriodID:     uuid.NewString(),
		ClientID:     clientID,
		PeriodLabel:  "FY 2026",
		PeriodEnding: "2026-03-31",
	}

	suite.mockPeriodService.On("CreatePeriod", mock.Anything, mock.Anything, clientID,
		mock.MatchedBy(func(r dto.CreatePeriodRequest) bool {
			return r.PeriodLabel == "FY 2026"
		}),
	).Return(expected, nil).Once()

	body, _ := json.Marshal(dto.CreatePeriodRequest{PeriodLabel: "FY 2026", PeriodEnding: "2026-03-31"})
	req, _ := http.NewRequest(http.MethodPost, fmt.Sprintf("/api/v1/clients/%s/periods", clientID), bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID, domain.RoleMember))

	w := suite.do(req)

	suite.Equal(http.StatusCreated, w.Code)
	suite.mockPeriodService.AssertExpectations(suite.T())
}

func TestClientHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ClientHandlerTestSuite))
}
