package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/household_budget_app/internal/apperrors"
	"github.com/SscSPs/household_budget_app/internal/core/domain"
	portsrepo "github.com/SscSPs/household_budget_app/internal/core/ports/repositories"
	"github.com/SscSPs/household_budget_app/internal/utils"
	"github.com/SscSPs/household_budget_app/internal/utils/accounting"
	"github.com/SscSPs/household_budget_app/internal/utils/cycle"
)

// summaryService assembles the dashboard aggregates. Every call recomputes
// from freshly queried data; there is no cache to invalidate, so reads
// always reflect the latest writes.
type summaryService struct {
	BaseService
	transactionRepo portsrepo.TransactionReader
	accountRepo     portsrepo.AccountReader
	categoryRepo    portsrepo.CategoryReader
	budgetRepo      portsrepo.BudgetReader
	cycleStartDay   int
}

// NewSummaryService creates a new summary service.
func NewSummaryService(transactionRepo portsrepo.TransactionReader, accountRepo portsrepo.AccountReader, categoryRepo portsrepo.CategoryReader, budgetRepo portsrepo.BudgetReader, cycleStartDay int) *summaryService {
	return &summaryService{
		transactionRepo: transactionRepo,
		accountRepo:     accountRepo,
		categoryRepo:    categoryRepo,
		budgetRepo:      budgetRepo,
		cycleStartDay:   cycleStartDay,
	}
}

// GetCycleSummary computes every dashboard aggregate for one cycle. A zero
// year selects the cycle containing today; otherwise (year, month) names
// the month the cycle starts in.
func (s *summaryService) GetCycleSummary(ctx context.Context, year int, month time.Month) (*domain.CycleSummary, error) {
	var start, end time.Time
	if year == 0 {
		start, end = cycle.Bounds(utils.Today(), s.cycleStartDay)
	} else {
		if month < time.January || month > time.December {
			return nil, fmt.Errorf("%w: invalid month %d", apperrors.ErrValidation, month)
		}
		start, end = cycle.FromYearMonth(year, month, s.cycleStartDay)
	}

	cycleTxns, err := s.transactionRepo.ListTransactionsInRange(ctx, start, end)
	if err != nil {
		s.LogError(ctx, err, "Failed to list cycle transactions")
		return nil, fmt.Errorf("failed to list cycle transactions: %w", err)
	}

	// Account balances deliberately scan the full history: they must match
	// regardless of which cycle is on screen.
	allTxns, err := s.transactionRepo.ListAllTransactions(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list all transactions")
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	accounts, err := s.accountRepo.ListAccounts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts")
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	categoryList, err := s.categoryRepo.ListCategories(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list categories")
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	categories := make(map[string]domain.Category, len(categoryList))
	for _, cat := range categoryList {
		categories[cat.CategoryID] = cat
	}

	lines, err := s.budgetLinesForCycle(ctx, start)
	if err != nil {
		return nil, err
	}

	prevStart, _ := cycle.Bounds(cycle.PreviousAnchor(start), s.cycleStartDay)
	nextStart, _ := cycle.Bounds(cycle.NextAnchor(end), s.cycleStartDay)

	summary := &domain.CycleSummary{
		Start:           start,
		End:             end,
		Totals:          accounting.Totals(cycleTxns, categories),
		AccountBalances: accounting.AccountBalances(accounts, allTxns, categories),
		CategoryTotals:  accounting.CategoryTotals(cycleTxns, categories),
		ExpenseRanking:  accounting.ExpenseRanking(cycleTxns, categories),
		BudgetVsActual:  accounting.BudgetVsActual(lines, cycleTxns, categories),
		DailySeries:     accounting.DailySeries(start, end, cycleTxns, categories),
		Previous:        domain.CycleRef{Year: prevStart.Year(), Month: prevStart.Month()},
		Next:            domain.CycleRef{Year: nextStart.Year(), Month: nextStart.Month()},
	}

	s.LogDebug(ctx, "Cycle summary computed",
		slog.String("start", start.Format(utils.DateLayout)),
		slog.String("end", end.Format(utils.DateLayout)),
		slog.Int("transactions", len(cycleTxns)),
	)
	return summary, nil
}

// budgetLinesForCycle fetches the budget lines of the cycle starting at
// start, empty when no budget row exists yet.
func (s *summaryService) budgetLinesForCycle(ctx context.Context, start time.Time) ([]domain.BudgetLine, error) {
	budget, err := s.budgetRepo.FindBudgetByCycleStart(ctx, start)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil
		}
		s.LogError(ctx, err, "Failed to find budget for cycle")
		return nil, fmt.Errorf("failed to find budget: %w", err)
	}
	lines, err := s.budgetRepo.ListBudgetLines(ctx, budget.BudgetID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list budget lines", slog.String("budget_id", budget.BudgetID))
		return nil, fmt.Errorf("failed to list budget lines: %w", err)
	}
	return lines, nil
}
