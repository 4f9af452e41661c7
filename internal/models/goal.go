package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Goal represents a row of the goals table.
type Goal struct {
	GoalID       string          `db:"goal_id"`
	Name         string          `db:"name"`
	TargetAmount decimal.Decimal `db:"target_amount"`
	Deadline     *time.Time      `db:"deadline"` // Nullable
	Notes        string          `db:"notes"`
	AuditFields
}

// GoalContribution represents a row of the goal_contributions table.
// Rows cascade-delete with their goal.
type GoalContribution struct {
	ContributionID string          `db:"contribution_id"`
	GoalID         string          `db:"goal_id"`
	Date           time.Time       `db:"contribution_date"`
	Amount         decimal.Decimal `db:"amount"`
	Comment        string          `db:"comment"`
	AuditFields
}
