package repositories

import (
	"context"

	"github.com/SscSPs/household_budget_app/internal/core/domain"
)

// GoalReader defines read operations for goal data
type GoalReader interface {
	// FindGoalByID retrieves a specific goal by its unique identifier.
	FindGoalByID(ctx context.Context, goalID string) (*domain.Goal, error)

	// ListGoals retrieves every goal ordered by deadline ascending, goals
	// without a deadline last.
	ListGoals(ctx context.Context) ([]domain.Goal, error)
}

// GoalWriter defines write operations for goal data
type GoalWriter interface {
	// SaveGoal persists a new goal.
	SaveGoal(ctx context.Context, goal domain.Goal) error

	// DeleteGoal removes a goal together with its contributions.
	DeleteGoal(ctx context.Context, goalID string) error
}

// GoalContributionReader defines read operations for contribution data
type GoalContributionReader interface {
	// FindContributionByID retrieves a specific contribution.
	FindContributionByID(ctx context.Context, contributionID string) (*domain.GoalContribution, error)

	// ListContributionsByGoal retrieves a goal's contributions ordered by date.
	ListContributionsByGoal(ctx context.Context, goalID string) ([]domain.GoalContribution, error)

	// ListContributionsByGoalIDs retrieves contributions for several goals
	// at once, keyed by goal ID and ordered by date within each goal.
	ListContributionsByGoalIDs(ctx context.Context, goalIDs []string) (map[string][]domain.GoalContribution, error)
}

// GoalContributionWriter defines write operations for contribution data
type GoalContributionWriter interface {
	// SaveContribution persists a new contribution.
	SaveContribution(ctx context.Context, contribution domain.GoalContribution) error

	// DeleteContribution removes a contribution.
	DeleteContribution(ctx context.Context, contributionID string) error
}

// GoalRepositoryFacade combines all goal-related repository interfaces
type GoalRepositoryFacade interface {
	GoalReader
	GoalWriter
	GoalContributionReader
	GoalContributionWriter
}
