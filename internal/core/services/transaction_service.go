package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/household_budget_app/internal/apperrors"
	"github.com/SscSPs/household_budget_app/internal/core/domain"
	portsrepo "github.com/SscSPs/household_budget_app/internal/core/ports/repositories"
	"github.com/SscSPs/household_budget_app/internal/dto"
	"github.com/SscSPs/household_budget_app/internal/utils"
	"github.com/SscSPs/household_budget_app/internal/utils/accounting"
	"github.com/SscSPs/household_budget_app/internal/utils/cycle"
	"github.com/google/uuid"
)

type transactionService struct {
	BaseService
	transactionRepo portsrepo.TransactionRepositoryFacade
	accountRepo     portsrepo.AccountReader
	categoryRepo    portsrepo.CategoryReader
	cycleStartDay   int
}

// NewTransactionService creates a new transaction service. cycleStartDay
// drives the default listing range when no bounds are requested.
func NewTransactionService(transactionRepo portsrepo.TransactionRepositoryFacade, accountRepo portsrepo.AccountReader, categoryRepo portsrepo.CategoryReader, cycleStartDay int) *transactionService {
	return &transactionService{
		transactionRepo: transactionRepo,
		accountRepo:     accountRepo,
		categoryRepo:    categoryRepo,
		cycleStartDay:   cycleStartDay,
	}
}

// CreateTransaction validates and persists a new transaction. The amount is
// stored positive; rejecting non-positive input here keeps the sign
// derivation sound everywhere else.
func (s *transactionService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	amount, err := utils.ParsePositiveAmount(req.Amount)
	if err != nil {
		return nil, err
	}
	date := utils.ParseDateOrDefault(req.Date, utils.Today())

	if _, err := s.accountRepo.FindAccountByID(ctx, req.AccountID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: account %s does not exist", apperrors.ErrValidation, req.AccountID)
		}
		return nil, err
	}
	if _, err := s.categoryRepo.FindCategoryByID(ctx, req.CategoryID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: category %s does not exist", apperrors.ErrValidation, req.CategoryID)
		}
		return nil, err
	}

	now := time.Now()
	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		Date:          date,
		Description:   req.Description,
		Amount:        amount,
		AccountID:     req.AccountID,
		CategoryID:    req.CategoryID,
		Notes:         req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.transactionRepo.SaveTransaction(ctx, txn); err != nil {
		s.LogError(ctx, err, "Failed to save transaction in repository", slog.String("transaction_id", txn.TransactionID))
		return nil, err
	}

	s.LogInfo(ctx, "Transaction created",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("amount", utils.FormatMoney(txn.Amount)),
	)
	return &txn, nil
}

// GetTransactionByID retrieves a single transaction.
func (s *transactionService) GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	txn, err := s.transactionRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find transaction by ID in repository", slog.String("transaction_id", transactionID))
		}
		return nil, err
	}
	return txn, nil
}

// ListTransactions retrieves transactions matching the query, newest first.
// When neither bound is supplied the current cycle is substituted and the
// response flags that it did so.
func (s *transactionService) ListTransactions(ctx context.Context, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error) {
	var from, to time.Time
	defaultCycle := false
	if params.From == "" && params.To == "" {
		start, end := cycle.Bounds(utils.Today(), s.cycleStartDay)
		from, to = start, end.AddDate(0, 0, -1)
		defaultCycle = true
	} else {
		if params.From != "" {
			parsed, err := utils.ParseDate(params.From)
			if err != nil {
				return nil, err
			}
			from = parsed
		}
		if params.To != "" {
			parsed, err := utils.ParseDate(params.To)
			if err != nil {
				return nil, err
			}
			to = parsed
		}
	}

	filter := portsrepo.TransactionFilter{
		AccountID:       params.AccountID,
		CategoryID:      params.CategoryID,
		DescriptionLike: params.Query,
	}
	if !from.IsZero() {
		filter.From = &from
	}
	if !to.IsZero() {
		filter.To = &to
	}

	txns, err := s.transactionRepo.ListTransactions(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions from repository")
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	accounts, err := s.accountRepo.ListAccounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	accountsByID := make(map[string]domain.Account, len(accounts))
	for _, acc := range accounts {
		accountsByID[acc.AccountID] = acc
	}

	categories, err := s.categoryRepo.FindCategoriesByIDs(ctx, categoryIDsOf(txns))
	if err != nil {
		return nil, fmt.Errorf("failed to resolve categories: %w", err)
	}

	resp := &dto.ListTransactionsResponse{
		Transactions: make([]dto.TransactionResponse, len(txns)),
		DefaultCycle: defaultCycle,
	}
	if !from.IsZero() {
		resp.From = from.Format(utils.DateLayout)
	}
	if !to.IsZero() {
		resp.To = to.Format(utils.DateLayout)
	}
	for i := range txns {
		signed := accounting.SignedAmount(txns[i], categories)
		resp.Transactions[i] = dto.ToTransactionResponse(&txns[i], accountsByID, categories, signed)
	}

	s.LogDebug(ctx, "Transactions listed", slog.Int("count", len(txns)), slog.Bool("default_cycle", defaultCycle))
	return resp, nil
}

// UpdateTransaction overwrites an existing transaction after re-running the
// creation validations.
func (s *transactionService) UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error) {
	existing, err := s.transactionRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}

	amount, err := utils.ParsePositiveAmount(req.Amount)
	if err != nil {
		return nil, err
	}
	date, err := utils.ParseDate(req.Date)
	if err != nil {
		return nil, err
	}

	if _, err := s.accountRepo.FindAccountByID(ctx, req.AccountID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: account %s does not exist", apperrors.ErrValidation, req.AccountID)
		}
		return nil, err
	}
	if _, err := s.categoryRepo.FindCategoryByID(ctx, req.CategoryID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: category %s does not exist", apperrors.ErrValidation, req.CategoryID)
		}
		return nil, err
	}

	updated := *existing
	updated.Date = date
	updated.Description = req.Description
	updated.Amount = amount
	updated.AccountID = req.AccountID
	updated.CategoryID = req.CategoryID
	updated.Notes = req.Notes
	updated.LastUpdatedAt = time.Now()

	if err := s.transactionRepo.UpdateTransaction(ctx, updated); err != nil {
		s.LogError(ctx, err, "Failed to update transaction in repository", slog.String("transaction_id", transactionID))
		return nil, err
	}

	s.LogInfo(ctx, "Transaction updated", slog.String("transaction_id", transactionID))
	return &updated, nil
}

// DeleteTransaction removes a transaction.
func (s *transactionService) DeleteTransaction(ctx context.Context, transactionID string) error {
	if _, err := s.transactionRepo.FindTransactionByID(ctx, transactionID); err != nil {
		return err
	}
	if err := s.transactionRepo.DeleteTransaction(ctx, transactionID); err != nil {
		s.LogError(ctx, err, "Failed to delete transaction in repository", slog.String("transaction_id", transactionID))
		return err
	}
	s.LogInfo(ctx, "Transaction deleted", slog.String("transaction_id", transactionID))
	return nil
}
