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
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// accountService implements the account operations. It also needs the
// transaction and category repositories because current balances are derived
// from the full transaction history.
type accountService struct {
	BaseService
	accountRepo     portsrepo.AccountRepositoryFacade
	transactionRepo portsrepo.TransactionReader
	categoryRepo    portsrepo.CategoryReader
}

// NewAccountService creates a new account service.
func NewAccountService(accountRepo portsrepo.AccountRepositoryFacade, transactionRepo portsrepo.TransactionReader, categoryRepo portsrepo.CategoryReader) *accountService {
	return &accountService{
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
	}
}

// CreateAccount validates and persists a new account. An empty or unparsable
// initial balance falls back to zero.
func (s *accountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error) {
	initialBalance := decimal.Zero
	if req.InitialBalance != "" {
		if parsed, err := utils.ParseAmount(req.InitialBalance); err == nil {
			initialBalance = parsed
		}
	}

	now := time.Now()
	account := domain.Account{
		AccountID:      uuid.NewString(),
		Name:           req.Name,
		InitialBalance: initialBalance,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to save account in repository", slog.String("account_name", req.Name))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Account created", slog.String("account_id", account.AccountID))
	return &account, nil
}

// GetAccountByID retrieves a single account.
func (s *accountService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find account by ID in repository", slog.String("account_id", accountID))
		}
		return nil, err
	}
	return account, nil
}

// ListAccounts retrieves every account with its current balance: the initial
// balance plus the signed sum over the account's full transaction history,
// independent of any cycle.
func (s *accountService) ListAccounts(ctx context.Context) ([]domain.AccountBalance, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts from repository")
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	txns, err := s.transactionRepo.ListAllTransactions(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions for account balances")
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	categories, err := s.categoryRepo.FindCategoriesByIDs(ctx, categoryIDsOf(txns))
	if err != nil {
		s.LogError(ctx, err, "Failed to resolve categories for account balances")
		return nil, fmt.Errorf("failed to resolve categories: %w", err)
	}

	balances := accounting.AccountBalances(accounts, txns, categories)
	s.LogDebug(ctx, "Accounts listed with balances", slog.Int("count", len(balances)))
	return balances, nil
}

// DeleteAccount removes an account unless it still owns transactions.
func (s *accountService) DeleteAccount(ctx context.Context, accountID string) error {
	if _, err := s.accountRepo.FindAccountByID(ctx, accountID); err != nil {
		return err
	}

	count, err := s.transactionRepo.CountTransactionsByAccount(ctx, accountID)
	if err != nil {
		s.LogError(ctx, err, "Failed to count account transactions", slog.String("account_id", accountID))
		return fmt.Errorf("failed to count account transactions: %w", err)
	}
	if count > 0 {
		return fmt.Errorf("%w: account still owns %d transaction(s)", apperrors.ErrConflict, count)
	}

	if err := s.accountRepo.DeleteAccount(ctx, accountID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrConflict) {
			s.LogError(ctx, err, "Failed to delete account in repository", slog.String("account_id", accountID))
		}
		return err
	}

	s.LogInfo(ctx, "Account deleted", slog.String("account_id", accountID))
	return nil
}

// categoryIDsOf collects the distinct category IDs referenced by a
// transaction slice.
func categoryIDsOf(txns []domain.Transaction) []string {
	seen := make(map[string]bool, len(txns))
	ids := make([]string, 0, len(txns))
	for _, txn := range txns {
		if txn.CategoryID != "" && !seen[txn.CategoryID] {
			seen[txn.CategoryID] = true
			ids = append(ids, txn.CategoryID)
		}
	}
	return ids
}
