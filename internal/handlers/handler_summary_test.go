package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
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

// --- Mock SummaryService ---
type MockSummaryService struct {
	mock.Mock
}

func (m *MockSummaryService) GetCycleSummary(ctx context.Context, year int, month time.Month) (*domain.CycleSummary, error) {
	args := m.Called(ctx, year, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CycleSummary), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.SummarySvcFacade = (*MockSummaryService)(nil)

// --- Test Suite ---
type SummaryHandlerTestSuite struct {
	suite.Suite
	router             *gin.Engine
	mockSummaryService *MockSummaryService
}

func (suite *SummaryHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.mockSummaryService = new(MockSummaryService)

	cfg := &config.Config{IsProduction: true}
	handlers.RegisterRoutes(suite.router, cfg, &portssvc.ServiceContainer{
		Summary: suite.mockSummaryService,
	})
}

func (suite *SummaryHandlerTestSuite) sampleSummary() *domain.CycleSummary {
	start := time.Date(2023, time.December, 25, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.January, 25, 0, 0, 0, 0, time.UTC)
	return &domain.CycleSummary{
		Start: start,
		End:   end,
		Totals: domain.CycleTotals{
			Income:  decimal.NewFromInt(1000),
			Expense: decimal.NewFromInt(200),
			Balance: decimal.NewFromInt(800),
		},
		AccountBalances: []domain.AccountBalance{
			{Account: domain.Account{AccountID: uuid.NewString(), Name: "Banco"}, Balance: decimal.NewFromInt(850)},
		},
		ExpenseRanking: []domain.CategoryAmount{
			{CategoryID: uuid.NewString(), Name: "Supermercado", Total: decimal.NewFromInt(200)},
		},
		Previous: domain.CycleRef{Year: 2023, Month: time.November},
		Next:     domain.CycleRef{Year: 2024, Month: time.January},
	}
}

// --- Test Cases ---

func (suite *SummaryHandlerTestSuite) TestGetCycleSummary_Success() {
	suite.mockSummaryService.On("GetCycleSummary", mock.Anything, 2023, time.December).
		Return(suite.sampleSummary(), nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/summary?year=2023&month=12", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var body dto.CycleSummaryResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal("2023-12-25", body.Start)
	suite.Equal("2024-01-25", body.End)
	suite.Equal("2024-01-24", body.EndInclusive)
	suite.True(body.Totals.Balance.Equal(decimal.NewFromInt(800)))
	suite.Require().Len(body.AccountBalances, 1)
	suite.Equal("Banco", body.AccountBalances[0].Name)
	suite.Equal(dto.CycleRefResponse{Year: 2023, Month: 11}, body.Previous)
	suite.Equal(dto.CycleRefResponse{Year: 2024, Month: 1}, body.Next)
	suite.mockSummaryService.AssertExpectations(suite.T())
}

func (suite *SummaryHandlerTestSuite) TestGetCycleSummary_DefaultsToCurrentCycle() {
	suite.mockSummaryService.On("GetCycleSummary", mock.Anything, 0, time.Month(0)).
		Return(suite.sampleSummary(), nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/summary", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockSummaryService.AssertExpectations(suite.T())
}

func (suite *SummaryHandlerTestSuite) TestGetCycleSummary_BadCycleParams() {
	for _, query := range []string{"?year=2023", "?month=12", "?year=0&month=12", "?year=2023&month=0"} {
		req, _ := http.NewRequest(http.MethodGet, "/api/v1/summary"+query, nil)
		w := httptest.NewRecorder()
		suite.router.ServeHTTP(w, req)

		suite.Equal(http.StatusBadRequest, w.Code, "query %q should be rejected", query)
	}
	suite.mockSummaryService.AssertNotCalled(suite.T(), "GetCycleSummary", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *SummaryHandlerTestSuite) TestGetCycleSummary_ValidationError() {
	suite.mockSummaryService.On("GetCycleSummary", mock.Anything, 2023, time.December).
		Return(nil, apperrors.ErrValidation).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/summary?year=2023&month=12", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *SummaryHandlerTestSuite) TestGetCycleSummary_ServiceError() {
	suite.mockSummaryService.On("GetCycleSummary", mock.Anything, 2023, time.December).
		Return(nil, apperrors.ErrConflict).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/summary?year=2023&month=12", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusInternalServerError, w.Code)
}

// --- Run Test Suite ---
func TestSummaryHandler(t *testing.T) {
	suite.Run(t, new(SummaryHandlerTestSuite))
}
