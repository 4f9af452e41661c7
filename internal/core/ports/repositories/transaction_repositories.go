package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/household_budget_app/internal/core/domain"
)

// TransactionFilter narrows a transaction listing. Zero-valued fields are
// ignored. From and To are inclusive day bounds; DescriptionLike matches as
// a case-insensitive substring.
type TransactionFilter struct {
	From            *time.Time
	To              *time.Time
	AccountID       string
	CategoryID      string
	DescriptionLike string
}

// TransactionReader defines read operations for transaction data
type TransactionReader interface {
	// FindTransactionByID retrieves a specific transaction by its unique identifier.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactions retrieves transactions matching the filter, newest
	// first (date, then creation time).
	ListTransactions(ctx context.Context, filter TransactionFilter) ([]domain.Transaction, error)

	// ListTransactionsInRange retrieves transactions dated within
	// [start, end), the shape every cycle-scoped aggregation consumes.
	ListTransactionsInRange(ctx context.Context, start, end time.Time) ([]domain.Transaction, error)

	// ListAllTransactions retrieves the full transaction history; account
	// balances must be computed over all of it regardless of the cycle
	// being viewed.
	ListAllTransactions(ctx context.Context) ([]domain.Transaction, error)

	// CountTransactionsByAccount returns how many transactions an account
	// owns. A non-zero count blocks account deletion.
	CountTransactionsByAccount(ctx context.Context, accountID string) (int64, error)
}

// TransactionWriter defines write operations for transaction data
type TransactionWriter interface {
	// SaveTransaction persists a new transaction.
	SaveTransaction(ctx context.Context, txn domain.Transaction) error

	// UpdateTransaction overwrites an existing transaction's fields.
	UpdateTransaction(ctx context.Context, txn domain.Transaction) error

	// DeleteTransaction removes a transaction.
	DeleteTransaction(ctx context.Context, transactionID string) error
}

// TransactionRepositoryFacade combines all transaction-related repository interfaces
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
