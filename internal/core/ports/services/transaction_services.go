package services

import (
	"context"

	"github.com/SscSPs/household_budget_app/internal/core/domain"
	"github.com/SscSPs/household_budget_app/internal/dto"
)

// TransactionSvcFacade exposes every transaction operation the handlers need.
type TransactionSvcFacade interface {
	// CreateTransaction validates and persists a new transaction.
	CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error)

	// GetTransactionByID retrieves a specific transaction.
	GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactions retrieves transactions matching the query, newest
	// first, enriched with account and category names. When no date bounds
	// are supplied the current cycle is used and flagged in the response.
	ListTransactions(ctx context.Context, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error)

	// UpdateTransaction overwrites an existing transaction.
	UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error)

	// DeleteTransaction removes a transaction.
	DeleteTransaction(ctx context.Context, transactionID string) error
}
