package domain

import (
	"github.com/shopspring/decimal"
)

// Account represents a money holding (bank account, cash, ...) within the core domain.
// This is the primary representation used by services.
type Account struct {
	AccountID      string          `json:"accountID"`      // Primary Key (UUID)
	Name           string          `json:"name"`           // User-defined name, unique
	InitialBalance decimal.Decimal `json:"initialBalance"` // Opening balance; current balance is always derived
	AuditFields
}
