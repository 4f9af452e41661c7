package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Goal is a savings target with an optional deadline. Its progress is always
// derived from the attached contributions, never stored.
type Goal struct {
	GoalID       string          `json:"goalID"` // Primary Key (UUID)
	Name         string          `json:"name"`
	TargetAmount decimal.Decimal `json:"targetAmount"` // Invariant: > 0
	Deadline     *time.Time      `json:"deadline"`     // Optional
	Notes        string          `json:"notes"`        // Optional
	AuditFields
}

// GoalContribution is a single deposit towards a goal.
type GoalContribution struct {
	ContributionID string          `json:"contributionID"` // Primary Key (UUID)
	GoalID         string          `json:"goalID"`
	Date           time.Time       `json:"date"`
	Amount         decimal.Decimal `json:"amount"` // Invariant: > 0
	Comment        string          `json:"comment"`
	AuditFields
}

// TotalContributed sums the contribution amounts, zero when there are none.
func TotalContributed(contributions []GoalContribution) decimal.Decimal {
	total := decimal.Zero
	for _, c := range contributions {
		total = total.Add(c.Amount)
	}
	return total
}

// GoalProgress is a goal together with its derived progress figures and the
// contributions they were computed from, ordered by date.
type GoalProgress struct {
	Goal             Goal               `json:"goal"`
	TotalContributed decimal.Decimal    `json:"totalContributed"`
	PercentComplete  float64            `json:"percentComplete"`
	Contributions    []GoalContribution `json:"contributions"`
}

// PercentComplete returns 100*total/target as a float for display.
// A zero or negative target yields 0.0. The result is deliberately not
// clamped to 100 so overshoot remains visible.
func (g Goal) PercentComplete(totalContributed decimal.Decimal) float64 {
	if g.TargetAmount.LessThanOrEqual(decimal.Zero) {
		return 0.0
	}
	percent, _ := totalContributed.Div(g.TargetAmount).Mul(decimal.NewFromInt(100)).Float64()
	return percent
}
