package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Budget is the envelope plan for one cycle, keyed by the cycle's start date.
type Budget struct {
	BudgetID        string          `json:"budgetID"`   // Primary Key (UUID)
	CycleStart      time.Time       `json:"cycleStart"` // Unique, always the cycle start day
	EstimatedIncome decimal.Decimal `json:"estimatedIncome"`
	Notes           string          `json:"notes"` // Optional
	AuditFields
}

// BudgetLineDetail joins a budget line with its category's name for display.
type BudgetLineDetail struct {
	BudgetLine
	CategoryName string `json:"categoryName"`
}

// BudgetView is a budget with its lines joined to category names, ordered by
// category name. Cycles without a stored budget row are represented by a
// zero-income view with no lines.
type BudgetView struct {
	Budget Budget             `json:"budget"`
	Lines  []BudgetLineDetail `json:"lines"`
}

// BudgetLine is the planned spending ceiling for one expense category within
// one budget. At most one line exists per (budget, category) pair, and a line
// is deleted rather than stored once its amount drops to zero.
type BudgetLine struct {
	BudgetLineID string          `json:"budgetLineID"` // Primary Key (UUID)
	BudgetID     string          `json:"budgetID"`
	CategoryID   string          `json:"categoryID"`
	Amount       decimal.Decimal `json:"amount"` // Invariant: > 0
	AuditFields
}
