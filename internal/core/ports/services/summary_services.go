package services

import (
	"context"
	"time"

	"github.com/SscSPs/household_budget_app/internal/core/domain"
)

// SummarySvcFacade exposes the cycle dashboard aggregation.
type SummarySvcFacade interface {
	// GetCycleSummary computes every dashboard aggregate for the cycle
	// starting in the given year and month. A zero year selects the cycle
	// containing today.
	GetCycleSummary(ctx context.Context, year int, month time.Month) (*domain.CycleSummary, error)
}
