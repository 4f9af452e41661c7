package models

import (
	"github.com/shopspring/decimal"
)

// Account represents a money holding as stored in the accounts table.
// The current balance is never persisted; it is derived from the initial
// balance and the account's transactions.
type Account struct {
	AccountID      string          `db:"account_id"`
	Name           string          `db:"name"`
	InitialBalance decimal.Decimal `db:"initial_balance"`
	AuditFields
}
