package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// The types below are the derived, read-only views produced by the summary
// aggregation. They are recomputed from freshly queried data on every request.

// CycleTotals partitions a cycle's transactions by category type.
// Balance is always Income minus Expense, exactly.
type CycleTotals struct {
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Balance decimal.Decimal `json:"balance"`
}

// AccountBalance pairs an account with its current balance: initial balance
// plus the signed sum of every transaction it owns, across all cycles.
type AccountBalance struct {
	Account Account         `json:"account"`
	Balance decimal.Decimal `json:"balance"`
}

// CategoryTotal is one row of the flat per-category summary table.
type CategoryTotal struct {
	Name  string          `json:"name"`
	Type  CategoryType    `json:"type"`
	Total decimal.Decimal `json:"total"`
}

// CategoryAmount is a (category, amount) pair used by the expense ranking.
type CategoryAmount struct {
	CategoryID string          `json:"categoryID"`
	Name       string          `json:"name"`
	Total      decimal.Decimal `json:"total"`
}

// BudgetComparison reports planned versus actually-spent amounts for one
// expense category within a cycle.
type BudgetComparison struct {
	CategoryID string          `json:"categoryID"`
	Name       string          `json:"name"`
	Planned    decimal.Decimal `json:"planned"`
	Actual     decimal.Decimal `json:"actual"`
}

// DailyPoint is one day of the cycle's income/expense series, together with
// the running cumulative totals up to and including that day.
type DailyPoint struct {
	Date              time.Time       `json:"date"`
	Income            decimal.Decimal `json:"income"`
	Expense           decimal.Decimal `json:"expense"`
	CumulativeIncome  decimal.Decimal `json:"cumulativeIncome"`
	CumulativeExpense decimal.Decimal `json:"cumulativeExpense"`
}

// CycleRef identifies a cycle by the year and month of its start day,
// the shape callers feed back into the cycle calculator when navigating.
type CycleRef struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
}

// CycleSummary bundles every aggregate the dashboard needs for one cycle.
type CycleSummary struct {
	Start           time.Time          `json:"start"` // Inclusive
	End             time.Time          `json:"end"`   // Exclusive
	Totals          CycleTotals        `json:"totals"`
	AccountBalances []AccountBalance   `json:"accountBalances"`
	CategoryTotals  []CategoryTotal    `json:"categoryTotals"`
	ExpenseRanking  []CategoryAmount   `json:"expenseRanking"`
	BudgetVsActual  []BudgetComparison `json:"budgetVsActual"`
	DailySeries     []DailyPoint       `json:"dailySeries"`
	Previous        CycleRef           `json:"previous"`
	Next            CycleRef           `json:"next"`
}
