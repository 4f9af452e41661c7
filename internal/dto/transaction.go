package dto

import (
	"time"

	"github.com/SscSPs/household_budget_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines the data needed to record a transaction.
// Amount is a decimal string (comma separator accepted) and must be strictly
// positive; the sign is always derived from the category. Date defaults to
// today when omitted.
type CreateTransactionRequest struct {
	Date        string `json:"date"` // YYYY-MM-DD, optional
	Description string `json:"description" binding:"required"`
	Amount      string `json:"amount" binding:"required,amountstr"`
	AccountID   string `json:"accountID" binding:"required"`
	CategoryID  string `json:"categoryID" binding:"required"`
	Notes       string `json:"notes"`
}

// UpdateTransactionRequest defines the data allowed when editing a
// transaction. All fields are required; editing re-validates the same rules
// as creation.
type UpdateTransactionRequest struct {
	Date        string `json:"date" binding:"required"`
	Description string `json:"description" binding:"required"`
	Amount      string `json:"amount" binding:"required,amountstr"`
	AccountID   string `json:"accountID" binding:"required"`
	CategoryID  string `json:"categoryID" binding:"required"`
	Notes       string `json:"notes"`
}

// ListTransactionsParams defines query parameters for listing transactions.
// From and To are inclusive day bounds; when both are absent the current
// cycle is used.
type ListTransactionsParams struct {
	From       string `form:"from"`
	To         string `form:"to"`
	AccountID  string `form:"accountID"`
	CategoryID string `form:"categoryID"`
	Query      string `form:"q"` // Case-insensitive substring on description
}

// TransactionResponse defines the data returned for a transaction, enriched
// with the referenced account and category names for display.
type TransactionResponse struct {
	TransactionID string              `json:"transactionID"`
	Date          string              `json:"date"`
	Description   string              `json:"description"`
	Amount        decimal.Decimal     `json:"amount"`
	SignedAmount  decimal.Decimal     `json:"signedAmount"`
	AccountID     string              `json:"accountID"`
	AccountName   string              `json:"accountName,omitempty"`
	CategoryID    string              `json:"categoryID"`
	CategoryName  string              `json:"categoryName,omitempty"`
	CategoryType  domain.CategoryType `json:"categoryType,omitempty"`
	Notes         string              `json:"notes"`
	CreatedAt     time.Time           `json:"createdAt"`
	LastUpdatedAt time.Time           `json:"lastUpdatedAt"`
}

// ListTransactionsResponse wraps a transaction listing together with the
// date range it covers. DefaultCycle is true when no explicit bounds were
// requested and the current cycle was substituted.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	From         string                `json:"from"`
	To           string                `json:"to"`
	DefaultCycle bool                  `json:"defaultCycle"`
}

// ToBareTransactionResponse converts a domain.Transaction to its DTO without
// resolving account or category names; used where a single transaction is
// returned right after a write.
func ToBareTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: txn.TransactionID,
		Date:          txn.Date.Format("2006-01-02"),
		Description:   txn.Description,
		Amount:        txn.Amount,
		AccountID:     txn.AccountID,
		CategoryID:    txn.CategoryID,
		Notes:         txn.Notes,
		CreatedAt:     txn.CreatedAt,
		LastUpdatedAt: txn.LastUpdatedAt,
	}
}

// ToTransactionResponse converts a domain.Transaction to its DTO, resolving
// names through the supplied catalogs.
func ToTransactionResponse(txn *domain.Transaction, accounts map[string]domain.Account, categories map[string]domain.Category, signed decimal.Decimal) TransactionResponse {
	resp := TransactionResponse{
		TransactionID: txn.TransactionID,
		Date:          txn.Date.Format("2006-01-02"),
		Description:   txn.Description,
		Amount:        txn.Amount,
		SignedAmount:  signed,
		AccountID:     txn.AccountID,
		CategoryID:    txn.CategoryID,
		Notes:         txn.Notes,
		CreatedAt:     txn.CreatedAt,
		LastUpdatedAt: txn.LastUpdatedAt,
	}
	if acc, ok := accounts[txn.AccountID]; ok {
		resp.AccountName = acc.Name
	}
	if cat, ok := categories[txn.CategoryID]; ok {
		resp.CategoryName = cat.Name
		resp.CategoryType = cat.Type
	}
	return resp
}
