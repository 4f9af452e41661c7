package services

import (
	"context"

	"github.com/SscSPs/household_budget_app/internal/core/domain"
	"github.com/SscSPs/household_budget_app/internal/dto"
)

// AccountSvcFacade exposes every account operation the handlers need.
type AccountSvcFacade interface {
	// CreateAccount persists a new account.
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error)

	// GetAccountByID retrieves a specific account.
	GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// ListAccounts retrieves every account with its current balance,
	// ordered by name.
	ListAccounts(ctx context.Context) ([]domain.AccountBalance, error)

	// DeleteAccount removes an account; rejected with ErrConflict while
	// the account still owns transactions.
	DeleteAccount(ctx context.Context, accountID string) error
}
