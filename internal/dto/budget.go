package dto

import (
	"github.com/SscSPs/household_budget_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// UpdateBudgetRequest carries a sparse budget edit for one cycle. Lines maps
// category IDs to submitted amount strings: a blank string leaves the
// existing line untouched, a positive amount upserts the line and anything
// else (zero, negative, unparsable) deletes it. Categories absent from the
// map are never touched.
type UpdateBudgetRequest struct {
	EstimatedIncome *string           `json:"estimatedIncome"` // Optional decimal string
	Notes           *string           `json:"notes"`           // Optional
	Lines           map[string]string `json:"lines"`
}

// BudgetLineResponse defines the data returned for one budget line.
type BudgetLineResponse struct {
	CategoryID   string          `json:"categoryID"`
	CategoryName string          `json:"categoryName"`
	Amount       decimal.Decimal `json:"amount"`
}

// BudgetResponse defines the data returned for one cycle's budget.
type BudgetResponse struct {
	CycleStart      string               `json:"cycleStart"`
	EstimatedIncome decimal.Decimal      `json:"estimatedIncome"`
	Notes           string               `json:"notes"`
	Lines           []BudgetLineResponse `json:"lines"`
}

// ToBudgetResponse converts a domain.BudgetView to its DTO.
func ToBudgetResponse(view *domain.BudgetView) BudgetResponse {
	lines := make([]BudgetLineResponse, len(view.Lines))
	for i, line := range view.Lines {
		lines[i] = BudgetLineResponse{
			CategoryID:   line.CategoryID,
			CategoryName: line.CategoryName,
			Amount:       line.Amount,
		}
	}
	return BudgetResponse{
		CycleStart:      view.Budget.CycleStart.Format("2006-01-02"),
		EstimatedIncome: view.Budget.EstimatedIncome,
		Notes:           view.Budget.Notes,
		Lines:           lines,
	}
}
