package services

import (
	"context"
	"time"

	"github.com/SscSPs/household_budget_app/internal/core/domain"
	"github.com/SscSPs/household_budget_app/internal/dto"
)

// BudgetSvcFacade exposes the per-cycle budget operations.
type BudgetSvcFacade interface {
	// GetBudget retrieves the budget of the cycle starting in the given
	// year and month, as an empty view when none has been stored yet. A
	// zero year selects the cycle containing today.
	GetBudget(ctx context.Context, year int, month time.Month) (*domain.BudgetView, error)

	// ApplyBudgetEdits applies a sparse set of per-category amount edits
	// to the cycle's budget: blank submissions are skipped, positive
	// amounts upsert a line and everything else deletes the line if it
	// exists. Categories absent from the submission stay untouched.
	ApplyBudgetEdits(ctx context.Context, year int, month time.Month, req dto.UpdateBudgetRequest) (*domain.BudgetView, error)
}
