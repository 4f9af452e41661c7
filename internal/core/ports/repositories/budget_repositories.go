package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/household_budget_app/internal/core/domain"
)

// BudgetReader defines read operations for budget data
type BudgetReader interface {
	// FindBudgetByCycleStart retrieves the budget keyed by a cycle's start
	// date, apperrors.ErrNotFound when no budget exists for that cycle.
	FindBudgetByCycleStart(ctx context.Context, cycleStart time.Time) (*domain.Budget, error)

	// ListBudgetLines retrieves a budget's lines.
	ListBudgetLines(ctx context.Context, budgetID string) ([]domain.BudgetLine, error)
}

// BudgetWriter defines write operations for budget data
type BudgetWriter interface {
	// SaveBudgetEdits persists one budget edit set atomically: the budget
	// row itself (inserted when the cycle has none yet, its income and
	// notes overwritten otherwise), the line upserts and the line
	// deletions all commit or roll back as one unit. Deleting a line that
	// does not exist is a no-op.
	SaveBudgetEdits(ctx context.Context, budget domain.Budget, upserts []domain.BudgetLine, deleteCategoryIDs []string) error
}

// BudgetRepositoryFacade combines all budget-related repository interfaces
type BudgetRepositoryFacade interface {
	BudgetReader
	BudgetWriter
}
