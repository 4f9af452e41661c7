package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction records a single money movement against an account and a category.
// Amount is always stored positive; the sign is derived from the category type.
type Transaction struct {
	TransactionID string          `json:"transactionID"` // Primary Key (UUID)
	Date          time.Time       `json:"date"`          // Day granularity, UTC midnight
	Description   string          `json:"description"`
	Amount        decimal.Decimal `json:"amount"` // Invariant: > 0
	AccountID     string          `json:"accountID"`
	CategoryID    string          `json:"categoryID"`
	Notes         string          `json:"notes"` // Optional
	AuditFields
}
