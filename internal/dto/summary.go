package dto

import (
	"github.com/SscSPs/household_budget_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CycleRefResponse identifies a cycle by the year and month of its start
// day; it is what the summary endpoint accepts back for navigation.
type CycleRefResponse struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

// TotalsResponse carries the cycle's headline figures.
type TotalsResponse struct {
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Balance decimal.Decimal `json:"balance"`
}

// CategoryTotalResponse is one row of the per-category summary table.
type CategoryTotalResponse struct {
	Name  string              `json:"name"`
	Type  domain.CategoryType `json:"type"`
	Total decimal.Decimal     `json:"total"`
}

// ExpenseRankResponse is one entry of the descending expense ranking.
type ExpenseRankResponse struct {
	CategoryID string          `json:"categoryID"`
	Name       string          `json:"name"`
	Total      decimal.Decimal `json:"total"`
}

// BudgetComparisonResponse pairs a category's planned and actual spend.
type BudgetComparisonResponse struct {
	CategoryID string          `json:"categoryID"`
	Name       string          `json:"name"`
	Planned    decimal.Decimal `json:"planned"`
	Actual     decimal.Decimal `json:"actual"`
}

// DailyPointResponse is one day of the cycle series; values are rounded to
// two decimal places.
type DailyPointResponse struct {
	Date              string          `json:"date"`
	Income            decimal.Decimal `json:"income"`
	Expense           decimal.Decimal `json:"expense"`
	CumulativeIncome  decimal.Decimal `json:"cumulativeIncome"`
	CumulativeExpense decimal.Decimal `json:"cumulativeExpense"`
}

// CycleSummaryResponse is the full dashboard payload for one cycle.
type CycleSummaryResponse struct {
	Start           string                     `json:"start"`        // Inclusive
	End             string                     `json:"end"`          // Exclusive
	EndInclusive    string                     `json:"endInclusive"` // Last day of the cycle
	Totals          TotalsResponse             `json:"totals"`
	AccountBalances []AccountBalanceResponse   `json:"accountBalances"`
	CategoryTotals  []CategoryTotalResponse    `json:"categoryTotals"`
	ExpenseRanking  []ExpenseRankResponse      `json:"expenseRanking"`
	BudgetVsActual  []BudgetComparisonResponse `json:"budgetVsActual"`
	DailySeries     []DailyPointResponse       `json:"dailySeries"`
	Previous        CycleRefResponse           `json:"previous"`
	Next            CycleRefResponse           `json:"next"`
}

// ToCycleSummaryResponse converts a domain.CycleSummary to its DTO.
func ToCycleSummaryResponse(s *domain.CycleSummary) CycleSummaryResponse {
	accountBalances := make([]AccountBalanceResponse, len(s.AccountBalances))
	for i, ab := range s.AccountBalances {
		accountBalances[i] = ToAccountBalanceResponse(ab)
	}

	categoryTotals := make([]CategoryTotalResponse, len(s.CategoryTotals))
	for i, ct := range s.CategoryTotals {
		categoryTotals[i] = CategoryTotalResponse{Name: ct.Name, Type: ct.Type, Total: ct.Total}
	}

	ranking := make([]ExpenseRankResponse, len(s.ExpenseRanking))
	for i, r := range s.ExpenseRanking {
		ranking[i] = ExpenseRankResponse{CategoryID: r.CategoryID, Name: r.Name, Total: r.Total}
	}

	budgetVsActual := make([]BudgetComparisonResponse, len(s.BudgetVsActual))
	for i, bc := range s.BudgetVsActual {
		budgetVsActual[i] = BudgetComparisonResponse{
			CategoryID: bc.CategoryID,
			Name:       bc.Name,
			Planned:    bc.Planned,
			Actual:     bc.Actual,
		}
	}

	series := make([]DailyPointResponse, len(s.DailySeries))
	for i, p := range s.DailySeries {
		series[i] = DailyPointResponse{
			Date:              p.Date.Format("2006-01-02"),
			Income:            p.Income,
			Expense:           p.Expense,
			CumulativeIncome:  p.CumulativeIncome,
			CumulativeExpense: p.CumulativeExpense,
		}
	}

	return CycleSummaryResponse{
		Start:           s.Start.Format("2006-01-02"),
		End:             s.End.Format("2006-01-02"),
		EndInclusive:    s.End.AddDate(0, 0, -1).Format("2006-01-02"),
		Totals:          TotalsResponse{Income: s.Totals.Income, Expense: s.Totals.Expense, Balance: s.Totals.Balance},
		AccountBalances: accountBalances,
		CategoryTotals:  categoryTotals,
		ExpenseRanking:  ranking,
		BudgetVsActual:  budgetVsActual,
		DailySeries:     series,
		Previous:        CycleRefResponse{Year: s.Previous.Year, Month: int(s.Previous.Month)},
		Next:            CycleRefResponse{Year: s.Next.Year, Month: int(s.Next.Month)},
	}
}
