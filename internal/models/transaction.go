package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction represents a row of the transactions table. Amount is stored
// positive; its sign is derived from the referenced category's type.
type Transaction struct {
	TransactionID string          `db:"transaction_id"`
	Date          time.Time       `db:"txn_date"`
	Description   string          `db:"description"`
	Amount        decimal.Decimal `db:"amount"`
	AccountID     string          `db:"account_id"`
	CategoryID    string          `db:"category_id"`
	Notes         string          `db:"notes"`
	AuditFields
}
