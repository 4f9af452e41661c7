package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/household_budget_app/internal/apperrors"
	"github.com/SscSPs/household_budget_app/internal/core/domain"
	portssvc "github.com/SscSPs/household_budget_app/internal/core/ports/services"
	"github.com/SscSPs/household_budget_app/internal/dto"
	"github.com/SscSPs/household_budget_app/internal/handlers"
	"github.com/SscSPs/household_budget_app/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock BudgetService ---
type MockBudgetService struct {
	mock.Mock
}

func (m *MockBudgetService) GetBudget(ctx context.Context, year int, month time.Month) (*domain.BudgetView, error) {
	args := m.Called(ctx, year, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BudgetView), args.Error(1)
}

func (m *MockBudgetService) ApplyBudgetEdits(ctx context.Context, year int, month time.Month, req dto.UpdateBudgetRequest) (*domain.BudgetView, error) {
	args := m.Called(ctx, year, month, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BudgetView), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.BudgetSvcFacade = (*MockBudgetService)(nil)

// --- Test Suite ---
type BudgetHandlerTestSuite struct {
	suite.Suite
	router            *gin.Engine
	mockBudgetService *MockBudgetService
}

func (suite *BudgetHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.mockBudgetService = new(MockBudgetService)

	cfg := &config.Config{IsProduction: true}
	handlers.RegisterRoutes(suite.router, cfg, &portssvc.ServiceContainer{
		Budget: suite.mockBudgetService,
	})
}

func (suite *BudgetHandlerTestSuite) sampleView() *domain.BudgetView {
	return &domain.BudgetView{
		Budget: domain.Budget{
			BudgetID:        uuid.NewString(),
			CycleStart:      time.Date(2026, time.March, 25, 0, 0, 0, 0, time.UTC),
			EstimatedIncome: decimal.NewFromInt(1500),
		},
		Lines: []domain.BudgetLineDetail{
			{
				BudgetLine: domain.BudgetLine{
					BudgetLineID: uuid.NewString(),
					CategoryID:   uuid.NewString(),
					Amount:       decimal.NewFromInt(300),
				},
				CategoryName: "Supermercado",
			},
		},
	}
}

// --- Test Cases ---

func (suite *BudgetHandlerTestSuite) TestGetBudget_Success() {
	view := suite.sampleView()
	suite.mockBudgetService.On("GetBudget", mock.Anything, 2026, time.March).Return(view, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/budgets?year=2026&month=3", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var body dto.BudgetResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal("2026-03-25", body.CycleStart)
	suite.True(body.EstimatedIncome.Equal(decimal.NewFromInt(1500)))
	suite.Require().Len(body.Lines, 1)
	suite.Equal("Supermercado", body.Lines[0].CategoryName)
	suite.mockBudgetService.AssertExpectations(suite.T())
}

func (suite *BudgetHandlerTestSuite) TestGetBudget_DefaultsToCurrentCycle() {
	view := suite.sampleView()
	suite.mockBudgetService.On("GetBudget", mock.Anything, 0, time.Month(0)).Return(view, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/budgets", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockBudgetService.AssertExpectations(suite.T())
}

func (suite *BudgetHandlerTestSuite) TestGetBudget_BadCycleParams() {
	for _, query := range []string{"?year=2026", "?month=3", "?year=abc&month=3", "?year=2026&month=13"} {
		req, _ := http.NewRequest(http.MethodGet, "/api/v1/budgets"+query, nil)
		w := httptest.NewRecorder()
		suite.router.ServeHTTP(w, req)

		suite.Equal(http.StatusBadRequest, w.Code, "query %q should be rejected", query)
	}
	suite.mockBudgetService.AssertNotCalled(suite.T(), "GetBudget", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *BudgetHandlerTestSuite) TestGetBudget_ServiceError() {
	suite.mockBudgetService.On("GetBudget", mock.Anything, 2026, time.March).Return(nil, apperrors.ErrConflict).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/budgets?year=2026&month=3", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusInternalServerError, w.Code)
}

func (suite *BudgetHandlerTestSuite) TestUpdateBudget_Success() {
	view := suite.sampleView()
	categoryID := view.Lines[0].CategoryID

	suite.mockBudgetService.On("ApplyBudgetEdits", mock.Anything, 2026, time.March, mock.MatchedBy(func(r dto.UpdateBudgetRequest) bool {
		return r.EstimatedIncome != nil && *r.EstimatedIncome == "1500" && r.Lines[categoryID] == "300"
	})).Return(view, nil).Once()

	payload := `{"estimatedIncome":"1500","lines":{"` + categoryID + `":"300"}}`
	req, _ := http.NewRequest(http.MethodPut, "/api/v1/budgets?year=2026&month=3", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockBudgetService.AssertExpectations(suite.T())
}

func (suite *BudgetHandlerTestSuite) TestUpdateBudget_ValidationError() {
	suite.mockBudgetService.On("ApplyBudgetEdits", mock.Anything, 2026, time.March, mock.AnythingOfType("dto.UpdateBudgetRequest")).
		Return(nil, apperrors.ErrValidation).Once()

	req, _ := http.NewRequest(http.MethodPut, "/api/v1/budgets?year=2026&month=3", strings.NewReader(`{"lines":{"x":"100"}}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *BudgetHandlerTestSuite) TestUpdateBudget_MalformedBody() {
	req, _ := http.NewRequest(http.MethodPut, "/api/v1/budgets", strings.NewReader(`{not json`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockBudgetService.AssertNotCalled(suite.T(), "ApplyBudgetEdits", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// --- Run Test Suite ---
func TestBudgetHandler(t *testing.T) {
	suite.Run(t, new(BudgetHandlerTestSuite))
}
