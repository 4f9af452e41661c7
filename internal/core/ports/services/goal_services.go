package services

import (
	"context"

	"github.com/SscSPs/household_budget_app/internal/core/domain"
	"github.com/SscSPs/household_budget_app/internal/dto"
)

// GoalSvcFacade exposes every savings-goal operation the handlers need.
type GoalSvcFacade interface {
	// CreateGoal persists a new savings goal.
	CreateGoal(ctx context.Context, req dto.CreateGoalRequest) (*domain.Goal, error)

	// GetGoalByID retrieves a goal with its contributions and derived
	// progress figures.
	GetGoalByID(ctx context.Context, goalID string) (*domain.GoalProgress, error)

	// ListGoals retrieves every goal with progress, ordered by deadline
	// ascending, goals without a deadline last.
	ListGoals(ctx context.Context) ([]domain.GoalProgress, error)

	// DeleteGoal removes a goal together with its contributions.
	DeleteGoal(ctx context.Context, goalID string) error

	// AddContribution records a deposit towards a goal.
	AddContribution(ctx context.Context, goalID string, req dto.AddContributionRequest) (*domain.GoalContribution, error)

	// DeleteContribution removes a single contribution from a goal.
	DeleteContribution(ctx context.Context, goalID, contributionID string) error
}
