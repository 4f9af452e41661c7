package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/household_budget_app/internal/apperrors"
	"github.com/SscSPs/household_budget_app/internal/core/domain"
	portsrepo "github.com/SscSPs/household_budget_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/household_budget_app/internal/core/ports/services"
	"github.com/SscSPs/household_budget_app/internal/core/services"
	"github.com/SscSPs/household_budget_app/internal/dto"
	"github.com/SscSPs/household_budget_app/internal/utils"
	"github.com/SscSPs/household_budget_app/internal/utils/cycle"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
type TransactionServiceTestSuite struct {
	suite.Suite
	mockTransactionRepo *MockTransactionRepository
	mockAccountRepo     *MockAccountRepository
	mockCategoryRepo    *MockCategoryRepository
	service             portssvc.TransactionSvcFacade
}

func (suite *TransactionServiceTestSuite) SetupTest() {
	suite.mockTransactionRepo = new(MockTransactionRepository)
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.mockCategoryRepo = new(MockCategoryRepository)
	suite.service = services.NewTransactionService(suite.mockTransactionRepo, suite.mockAccountRepo, suite.mockCategoryRepo, cycle.DefaultStartDay)
}

// --- Test Cases ---

func (suite *TransactionServiceTestSuite) TestCreateTransaction_Success() {
	ctx := context.Background()
	accountID := uuid.NewString()
	categoryID := uuid.NewString()
	req := dto.CreateTransactionRequest{
		Date:        "2026-03-10",
		Description: "Compra semanal",
		Amount:      "45,30",
		AccountID:   accountID,
		CategoryID:  categoryID,
	}

	suite.mockAccountRepo.On("FindAccountByID", ctx, accountID).Return(&domain.Account{AccountID: accountID}, nil).Once()
	suite.mockCategoryRepo.On("FindCategoryByID", ctx, categoryID).Return(&domain.Category{CategoryID: categoryID, Type: domain.CategoryTypeExpense}, nil).Once()
	suite.mockTransactionRepo.On("SaveTransaction", ctx, mock.MatchedBy(func(t domain.Transaction) bool {
		return t.Amount.Equal(decimal.RequireFromString("45.30")) &&
			t.Date.Format("2006-01-02") == "2026-03-10" &&
			t.AccountID == accountID && t.CategoryID == categoryID
	})).Return(nil).Once()

	txn, err := suite.service.CreateTransaction(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(txn)
	suite.Equal("Compra semanal", txn.Description)
	suite.mockTransactionRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_DateDefaultsToToday() {
	ctx := context.Background()
	accountID := uuid.NewString()
	categoryID := uuid.NewString()
	req := dto.CreateTransactionRequest{Description: "Cafe", Amount: "2", AccountID: accountID, CategoryID: categoryID}

	suite.mockAccountRepo.On("FindAccountByID", ctx, accountID).Return(&domain.Account{AccountID: accountID}, nil).Once()
	suite.mockCategoryRepo.On("FindCategoryByID", ctx, categoryID).Return(&domain.Category{CategoryID: categoryID}, nil).Once()
	suite.mockTransactionRepo.On("SaveTransaction", ctx, mock.MatchedBy(func(t domain.Transaction) bool {
		return t.Date.Equal(utils.Today())
	})).Return(nil).Once()

	_, err := suite.service.CreateTransaction(ctx, req)

	suite.Require().NoError(err)
	suite.mockTransactionRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_NonPositiveAmount() {
	ctx := context.Background()

	for _, amount := range []string{"0", "-12", "nope"} {
		req := dto.CreateTransactionRequest{Description: "Bad", Amount: amount, AccountID: uuid.NewString(), CategoryID: uuid.NewString()}
		txn, err := suite.service.CreateTransaction(ctx, req)
		suite.Require().Error(err, "amount %q should be rejected", amount)
		suite.Nil(txn)
		suite.ErrorIs(err, apperrors.ErrValidation)
	}
	suite.mockTransactionRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_UnknownAccount() {
	ctx := context.Background()
	accountID := uuid.NewString()
	req := dto.CreateTransactionRequest{Description: "Compra", Amount: "10", AccountID: accountID, CategoryID: uuid.NewString()}

	suite.mockAccountRepo.On("FindAccountByID", ctx, accountID).Return(nil, apperrors.ErrNotFound).Once()

	txn, err := suite.service.CreateTransaction(ctx, req)

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockTransactionRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_UnknownCategory() {
	ctx := context.Background()
	accountID := uuid.NewString()
	categoryID := uuid.NewString()
	req := dto.CreateTransactionRequest{Description: "Compra", Amount: "10", AccountID: accountID, CategoryID: categoryID}

	suite.mockAccountRepo.On("FindAccountByID", ctx, accountID).Return(&domain.Account{AccountID: accountID}, nil).Once()
	suite.mockCategoryRepo.On("FindCategoryByID", ctx, categoryID).Return(nil, apperrors.ErrNotFound).Once()

	txn, err := suite.service.CreateTransaction(ctx, req)

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *TransactionServiceTestSuite) TestListTransactions_DefaultsToCurrentCycle() {
	ctx := context.Background()
	start, end := cycle.Bounds(utils.Today(), cycle.DefaultStartDay)
	lastDay := end.AddDate(0, 0, -1)

	suite.mockTransactionRepo.On("ListTransactions", ctx, mock.MatchedBy(func(f portsrepo.TransactionFilter) bool {
		return f.From != nil && f.From.Equal(start) &&
			f.To != nil && f.To.Equal(lastDay) &&
			f.AccountID == "" && f.CategoryID == "" && f.DescriptionLike == ""
	})).Return([]domain.Transaction{}, nil).Once()
	suite.mockAccountRepo.On("ListAccounts", ctx).Return([]domain.Account{}, nil).Once()
	suite.mockCategoryRepo.On("FindCategoriesByIDs", ctx, mock.AnythingOfType("[]string")).Return(map[string]domain.Category{}, nil).Once()

	resp, err := suite.service.ListTransactions(ctx, dto.ListTransactionsParams{})

	suite.Require().NoError(err)
	suite.True(resp.DefaultCycle)
	suite.Equal(start.Format("2006-01-02"), resp.From)
	suite.Equal(lastDay.Format("2006-01-02"), resp.To)
	suite.mockTransactionRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestListTransactions_ExplicitRangeAndFilters() {
	ctx := context.Background()
	accountID := uuid.NewString()
	categoryID := uuid.NewString()

	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		Date:          time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC),
		Description:   "Gasolina",
		Amount:        decimal.NewFromInt(40),
		AccountID:     accountID,
		CategoryID:    categoryID,
	}

	suite.mockTransactionRepo.On("ListTransactions", ctx, mock.MatchedBy(func(f portsrepo.TransactionFilter) bool {
		return f.From != nil && f.From.Format("2006-01-02") == "2026-01-25" &&
			f.To != nil && f.To.Format("2006-01-02") == "2026-02-24" &&
			f.AccountID == accountID && f.DescriptionLike == "gas"
	})).Return([]domain.Transaction{txn}, nil).Once()
	suite.mockAccountRepo.On("ListAccounts", ctx).Return([]domain.Account{{AccountID: accountID, Name: "Banco"}}, nil).Once()
	suite.mockCategoryRepo.On("FindCategoriesByIDs", ctx, []string{categoryID}).
		Return(map[string]domain.Category{categoryID: {CategoryID: categoryID, Name: "Transporte", Type: domain.CategoryTypeExpense}}, nil).Once()

	params := dto.ListTransactionsParams{From: "2026-01-25", To: "2026-02-24", AccountID: accountID, Query: "gas"}
	resp, err := suite.service.ListTransactions(ctx, params)

	suite.Require().NoError(err)
	suite.False(resp.DefaultCycle)
	suite.Require().Len(resp.Transactions, 1)
	suite.Equal("Banco", resp.Transactions[0].AccountName)
	suite.Equal("Transporte", resp.Transactions[0].CategoryName)
	// Expense amounts come back negated in the signed column.
	suite.True(resp.Transactions[0].SignedAmount.Equal(decimal.NewFromInt(-40)))
}

func (suite *TransactionServiceTestSuite) TestListTransactions_BadDateRejected() {
	ctx := context.Background()

	resp, err := suite.service.ListTransactions(ctx, dto.ListTransactionsParams{From: "25/01/2026"})

	suite.Require().Error(err)
	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockTransactionRepo.AssertNotCalled(suite.T(), "ListTransactions", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestUpdateTransaction_RevalidatesReferences() {
	ctx := context.Background()
	transactionID := uuid.NewString()
	accountID := uuid.NewString()
	categoryID := uuid.NewString()
	existing := &domain.Transaction{TransactionID: transactionID, Amount: decimal.NewFromInt(10), AccountID: accountID, CategoryID: categoryID}

	req := dto.UpdateTransactionRequest{
		Date:        "2026-03-01",
		Description: "Actualizada",
		Amount:      "99,99",
		AccountID:   accountID,
		CategoryID:  categoryID,
	}

	suite.mockTransactionRepo.On("FindTransactionByID", ctx, transactionID).Return(existing, nil).Once()
	suite.mockAccountRepo.On("FindAccountByID", ctx, accountID).Return(&domain.Account{AccountID: accountID}, nil).Once()
	suite.mockCategoryRepo.On("FindCategoryByID", ctx, categoryID).Return(&domain.Category{CategoryID: categoryID}, nil).Once()
	suite.mockTransactionRepo.On("UpdateTransaction", ctx, mock.MatchedBy(func(t domain.Transaction) bool {
		return t.TransactionID == transactionID &&
			t.Description == "Actualizada" &&
			t.Amount.Equal(decimal.RequireFromString("99.99"))
	})).Return(nil).Once()

	updated, err := suite.service.UpdateTransaction(ctx, transactionID, req)

	suite.Require().NoError(err)
	suite.Equal("Actualizada", updated.Description)
	suite.mockTransactionRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestUpdateTransaction_NotFound() {
	ctx := context.Background()
	transactionID := uuid.NewString()

	suite.mockTransactionRepo.On("FindTransactionByID", ctx, transactionID).Return(nil, apperrors.ErrNotFound).Once()

	updated, err := suite.service.UpdateTransaction(ctx, transactionID, dto.UpdateTransactionRequest{Amount: "10", Date: "2026-01-01"})

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *TransactionServiceTestSuite) TestDeleteTransaction_Success() {
	ctx := context.Background()
	transactionID := uuid.NewString()

	suite.mockTransactionRepo.On("FindTransactionByID", ctx, transactionID).Return(&domain.Transaction{TransactionID: transactionID}, nil).Once()
	suite.mockTransactionRepo.On("DeleteTransaction", ctx, transactionID).Return(nil).Once()

	err := suite.service.DeleteTransaction(ctx, transactionID)

	suite.Require().NoError(err)
	suite.mockTransactionRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestDeleteTransaction_NotFound() {
	ctx := context.Background()
	transactionID := uuid.NewString()

	suite.mockTransactionRepo.On("FindTransactionByID", ctx, transactionID).Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.DeleteTransaction(ctx, transactionID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockTransactionRepo.AssertNotCalled(suite.T(), "DeleteTransaction", mock.Anything, mock.Anything)
}

func TestTransactionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}
