package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/household_budget_app/internal/apperrors"
	"github.com/SscSPs/household_budget_app/internal/core/domain"
	portssvc "github.com/SscSPs/household_budget_app/internal/core/ports/services"
	"github.com/SscSPs/household_budget_app/internal/core/services"
	"github.com/SscSPs/household_budget_app/internal/utils/cycle"
	"github.com/bxcodec/faker/v3"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
type SummaryServiceTestSuite struct {
	suite.Suite
	mockTransactionRepo *MockTransactionRepository
	mockAccountRepo     *MockAccountRepository
	mockCategoryRepo    *MockCategoryRepository
	mockBudgetRepo      *MockBudgetRepository
	service             portssvc.SummarySvcFacade

	accountID   string
	salaryID    string
	groceriesID string
	categories  []domain.Category
}

func (suite *SummaryServiceTestSuite) SetupTest() {
	suite.mockTransactionRepo = new(MockTransactionRepository)
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.mockCategoryRepo = new(MockCategoryRepository)
	suite.mockBudgetRepo = new(MockBudgetRepository)
	suite.service = services.NewSummaryService(suite.mockTransactionRepo, suite.mockAccountRepo, suite.mockCategoryRepo, suite.mockBudgetRepo, cycle.DefaultStartDay)

	suite.accountID = uuid.NewString()
	suite.salaryID = uuid.NewString()
	suite.groceriesID = uuid.NewString()
	suite.categories = []domain.Category{
		{CategoryID: suite.salaryID, Name: "Salario", Type: domain.CategoryTypeIncome},
		{CategoryID: suite.groceriesID, Name: "Supermercado", Type: domain.CategoryTypeExpense},
	}
}

func (suite *SummaryServiceTestSuite) txn(categoryID string, amount string, date time.Time) domain.Transaction {
	return domain.Transaction{
		TransactionID: uuid.NewString(),
		Date:          date,
		Description:   faker.Sentence(),
		Amount:        decimal.RequireFromString(amount),
		AccountID:     suite.accountID,
		CategoryID:    categoryID,
	}
}

// --- Test Cases ---

func (suite *SummaryServiceTestSuite) TestGetCycleSummary_ExplicitCycle() {
	ctx := context.Background()
	start := time.Date(2023, time.December, 25, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.January, 25, 0, 0, 0, 0, time.UTC)

	cycleTxns := []domain.Transaction{
		suite.txn(suite.salaryID, "1000", start),
		suite.txn(suite.groceriesID, "200", time.Date(2024, time.January, 2, 0, 0, 0, 0, time.UTC)),
	}
	accounts := []domain.Account{{AccountID: suite.accountID, Name: "Banco", InitialBalance: decimal.NewFromInt(50)}}
	budget := &domain.Budget{BudgetID: uuid.NewString(), CycleStart: start}
	lines := []domain.BudgetLine{{BudgetLineID: uuid.NewString(), BudgetID: budget.BudgetID, CategoryID: suite.groceriesID, Amount: decimal.NewFromInt(300)}}

	suite.mockTransactionRepo.On("ListTransactionsInRange", ctx, start, end).Return(cycleTxns, nil).Once()
	suite.mockTransactionRepo.On("ListAllTransactions", ctx).Return(cycleTxns, nil).Once()
	suite.mockAccountRepo.On("ListAccounts", ctx).Return(accounts, nil).Once()
	suite.mockCategoryRepo.On("ListCategories", ctx).Return(suite.categories, nil).Once()
	suite.mockBudgetRepo.On("FindBudgetByCycleStart", ctx, start).Return(budget, nil).Once()
	suite.mockBudgetRepo.On("ListBudgetLines", ctx, budget.BudgetID).Return(lines, nil).Once()

	summary, err := suite.service.GetCycleSummary(ctx, 2023, time.December)

	suite.Require().NoError(err)
	suite.Equal(start, summary.Start)
	suite.Equal(end, summary.End)

	suite.True(summary.Totals.Income.Equal(decimal.NewFromInt(1000)))
	suite.True(summary.Totals.Expense.Equal(decimal.NewFromInt(200)))
	suite.True(summary.Totals.Balance.Equal(decimal.NewFromInt(800)))

	// 50 initial + 1000 income - 200 expense
	suite.Require().Len(summary.AccountBalances, 1)
	suite.True(summary.AccountBalances[0].Balance.Equal(decimal.NewFromInt(850)))

	suite.Require().Len(summary.BudgetVsActual, 1)
	suite.Equal("Supermercado", summary.BudgetVsActual[0].Name)
	suite.True(summary.BudgetVsActual[0].Planned.Equal(decimal.NewFromInt(300)))
	suite.True(summary.BudgetVsActual[0].Actual.Equal(decimal.NewFromInt(200)))

	suite.Require().Len(summary.ExpenseRanking, 1)
	suite.Equal(suite.groceriesID, summary.ExpenseRanking[0].CategoryID)

	// One point per day of [2023-12-25, 2024-01-25)
	suite.Len(summary.DailySeries, 31)

	suite.Equal(domain.CycleRef{Year: 2023, Month: time.November}, summary.Previous)
	suite.Equal(domain.CycleRef{Year: 2024, Month: time.January}, summary.Next)

	suite.mockTransactionRepo.AssertExpectations(suite.T())
	suite.mockBudgetRepo.AssertExpectations(suite.T())
}

func (suite *SummaryServiceTestSuite) TestGetCycleSummary_YearBoundaryNavigation() {
	ctx := context.Background()
	start := time.Date(2024, time.January, 25, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.February, 25, 0, 0, 0, 0, time.UTC)

	suite.mockTransactionRepo.On("ListTransactionsInRange", ctx, start, end).Return([]domain.Transaction{}, nil).Once()
	suite.mockTransactionRepo.On("ListAllTransactions", ctx).Return([]domain.Transaction{}, nil).Once()
	suite.mockAccountRepo.On("ListAccounts", ctx).Return([]domain.Account{}, nil).Once()
	suite.mockCategoryRepo.On("ListCategories", ctx).Return(suite.categories, nil).Once()
	suite.mockBudgetRepo.On("FindBudgetByCycleStart", ctx, start).Return(nil, apperrors.ErrNotFound).Once()

	summary, err := suite.service.GetCycleSummary(ctx, 2024, time.January)

	suite.Require().NoError(err)
	suite.Equal(domain.CycleRef{Year: 2023, Month: time.December}, summary.Previous)
	suite.Equal(domain.CycleRef{Year: 2024, Month: time.February}, summary.Next)
}

func (suite *SummaryServiceTestSuite) TestGetCycleSummary_MissingBudgetTolerated() {
	ctx := context.Background()
	start := time.Date(2026, time.March, 25, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, time.April, 25, 0, 0, 0, 0, time.UTC)

	cycleTxns := []domain.Transaction{
		suite.txn(suite.groceriesID, "75.50", start),
	}

	suite.mockTransactionRepo.On("ListTransactionsInRange", ctx, start, end).Return(cycleTxns, nil).Once()
	suite.mockTransactionRepo.On("ListAllTransactions", ctx).Return(cycleTxns, nil).Once()
	suite.mockAccountRepo.On("ListAccounts", ctx).Return([]domain.Account{}, nil).Once()
	suite.mockCategoryRepo.On("ListCategories", ctx).Return(suite.categories, nil).Once()
	suite.mockBudgetRepo.On("FindBudgetByCycleStart", ctx, start).Return(nil, apperrors.ErrNotFound).Once()

	summary, err := suite.service.GetCycleSummary(ctx, 2026, time.March)

	suite.Require().NoError(err)
	// Unplanned spend still shows up in the comparison with a zero plan.
	suite.Require().Len(summary.BudgetVsActual, 1)
	suite.True(summary.BudgetVsActual[0].Planned.IsZero())
	suite.True(summary.BudgetVsActual[0].Actual.Equal(decimal.RequireFromString("75.50")))
	suite.mockBudgetRepo.AssertNotCalled(suite.T(), "ListBudgetLines", mock.Anything, mock.Anything)
}

func (suite *SummaryServiceTestSuite) TestGetCycleSummary_ManyTransactionsBalanceInvariant() {
	ctx := context.Background()
	start := time.Date(2026, time.May, 25, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, time.June, 25, 0, 0, 0, 0, time.UTC)

	var cycleTxns []domain.Transaction
	for i := 0; i < 40; i++ {
		categoryID := suite.groceriesID
		if i%4 == 0 {
			categoryID = suite.salaryID
		}
		cycleTxns = append(cycleTxns, suite.txn(categoryID, "10.10", start.AddDate(0, 0, i%30)))
	}

	suite.mockTransactionRepo.On("ListTransactionsInRange", ctx, start, end).Return(cycleTxns, nil).Once()
	suite.mockTransactionRepo.On("ListAllTransactions", ctx).Return(cycleTxns, nil).Once()
	suite.mockAccountRepo.On("ListAccounts", ctx).Return([]domain.Account{}, nil).Once()
	suite.mockCategoryRepo.On("ListCategories", ctx).Return(suite.categories, nil).Once()
	suite.mockBudgetRepo.On("FindBudgetByCycleStart", ctx, start).Return(nil, apperrors.ErrNotFound).Once()

	summary, err := suite.service.GetCycleSummary(ctx, 2026, time.May)

	suite.Require().NoError(err)
	suite.True(summary.Totals.Income.Equal(decimal.RequireFromString("101.00")), "got %s", summary.Totals.Income)
	suite.True(summary.Totals.Expense.Equal(decimal.RequireFromString("303.00")), "got %s", summary.Totals.Expense)
	suite.True(summary.Totals.Balance.Equal(summary.Totals.Income.Sub(summary.Totals.Expense)))

	last := summary.DailySeries[len(summary.DailySeries)-1]
	suite.True(last.CumulativeIncome.Equal(summary.Totals.Income))
	suite.True(last.CumulativeExpense.Equal(summary.Totals.Expense))
}

func (suite *SummaryServiceTestSuite) TestGetCycleSummary_InvalidMonth() {
	ctx := context.Background()

	summary, err := suite.service.GetCycleSummary(ctx, 2026, time.Month(13))

	suite.Require().Error(err)
	suite.Nil(summary)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockTransactionRepo.AssertNotCalled(suite.T(), "ListTransactionsInRange", mock.Anything, mock.Anything, mock.Anything)
}

func TestSummaryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SummaryServiceTestSuite))
}
