package dto

import (
	"time"

	"github.com/SscSPs/household_budget_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateGoalRequest defines the data needed to create a savings goal.
// TargetAmount is a decimal string and must be strictly positive.
type CreateGoalRequest struct {
	Name         string `json:"name" binding:"required"`
	TargetAmount string `json:"targetAmount" binding:"required,amountstr"`
	Deadline     string `json:"deadline"` // YYYY-MM-DD, optional
	Notes        string `json:"notes"`
}

// AddContributionRequest defines the data needed to record a contribution.
// Date defaults to today when omitted.
type AddContributionRequest struct {
	Date    string `json:"date"` // YYYY-MM-DD, optional
	Amount  string `json:"amount" binding:"required,amountstr"`
	Comment string `json:"comment"`
}

// ContributionResponse defines the data returned for a contribution.
type ContributionResponse struct {
	ContributionID string          `json:"contributionID"`
	Date           string          `json:"date"`
	Amount         decimal.Decimal `json:"amount"`
	Comment        string          `json:"comment"`
}

// GoalResponse defines the data returned for a goal, including the derived
// progress figures.
type GoalResponse struct {
	GoalID           string                 `json:"goalID"`
	Name             string                 `json:"name"`
	TargetAmount     decimal.Decimal        `json:"targetAmount"`
	Deadline         *string                `json:"deadline"`
	Notes            string                 `json:"notes"`
	TotalContributed decimal.Decimal        `json:"totalContributed"`
	PercentComplete  float64                `json:"percentComplete"`
	Contributions    []ContributionResponse `json:"contributions"`
	CreatedAt        time.Time              `json:"createdAt"`
	LastUpdatedAt    time.Time              `json:"lastUpdatedAt"`
}

// ListGoalsResponse wraps the list of goals with progress.
type ListGoalsResponse struct {
	Goals []GoalResponse `json:"goals"`
}

// ToContributionResponse converts a domain.GoalContribution to its DTO.
func ToContributionResponse(c *domain.GoalContribution) ContributionResponse {
	return ContributionResponse{
		ContributionID: c.ContributionID,
		Date:           c.Date.Format("2006-01-02"),
		Amount:         c.Amount,
		Comment:        c.Comment,
	}
}

// ToGoalResponse converts a domain.GoalProgress to its DTO.
func ToGoalResponse(gp *domain.GoalProgress) GoalResponse {
	contributions := make([]ContributionResponse, len(gp.Contributions))
	for i, c := range gp.Contributions {
		contributions[i] = ToContributionResponse(&c)
	}

	var deadline *string
	if gp.Goal.Deadline != nil {
		d := gp.Goal.Deadline.Format("2006-01-02")
		deadline = &d
	}

	return GoalResponse{
		GoalID:           gp.Goal.GoalID,
		Name:             gp.Goal.Name,
		TargetAmount:     gp.Goal.TargetAmount,
		Deadline:         deadline,
		Notes:            gp.Goal.Notes,
		TotalContributed: gp.TotalContributed,
		PercentComplete:  gp.PercentComplete,
		Contributions:    contributions,
		CreatedAt:        gp.Goal.CreatedAt,
		LastUpdatedAt:    gp.Goal.LastUpdatedAt,
	}
}

// ToListGoalsResponse converts goal progress rows to the list DTO.
func ToListGoalsResponse(goals []domain.GoalProgress) ListGoalsResponse {
	res := make([]GoalResponse, len(goals))
	for i := range goals {
		res[i] = ToGoalResponse(&goals[i])
	}
	return ListGoalsResponse{Goals: res}
}
