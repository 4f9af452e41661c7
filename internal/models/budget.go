package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Budget represents a row of the budgets table, one per cycle.
type Budget struct {
	BudgetID        string          `db:"budget_id"`
	CycleStart      time.Time       `db:"cycle_start"` // Unique
	EstimatedIncome decimal.Decimal `db:"estimated_income"`
	Notes           string          `db:"notes"`
	AuditFields
}

// BudgetLine represents a row of the budget_lines table. A unique index on
// (budget_id, category_id) guarantees at most one line per pair; rows
// cascade-delete with their budget.
type BudgetLine struct {
	BudgetLineID string          `db:"budget_line_id"`
	BudgetID     string          `db:"budget_id"`
	CategoryID   string          `db:"category_id"`
	Amount       decimal.Decimal `db:"amount"`
	AuditFields
}
