package repositories

import (
	"context"

	"github.com/SscSPs/household_budget_app/internal/core/domain"
)

// AccountReader defines read operations for account data
type AccountReader interface {
	// FindAccountByID retrieves a specific account by its unique identifier.
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// ListAccounts retrieves every account ordered by name.
	ListAccounts(ctx context.Context) ([]domain.Account, error)

	// CountAccounts returns the number of accounts; used to decide whether
	// the default seed data is needed.
	CountAccounts(ctx context.Context) (int64, error)
}

// AccountWriter defines write operations for account data
type AccountWriter interface {
	// SaveAccount persists a new account.
	SaveAccount(ctx context.Context, account domain.Account) error

	// DeleteAccount removes an account. Callers must first verify the
	// account owns no transactions.
	DeleteAccount(ctx context.Context, accountID string) error
}

// AccountRepositoryFacade combines all account-related repository interfaces
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
}
