package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/SscSPs/household_budget_app/internal/apperrors"
	"github.com/SscSPs/household_budget_app/internal/core/domain"
	portsrepo "github.com/SscSPs/household_budget_app/internal/core/ports/repositories"
	"github.com/SscSPs/household_budget_app/internal/dto"
	"github.com/SscSPs/household_budget_app/internal/utils"
	"github.com/SscSPs/household_budget_app/internal/utils/cycle"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type budgetService struct {
	BaseService
	budgetRepo    portsrepo.BudgetRepositoryFacade
	categoryRepo  portsrepo.CategoryReader
	cycleStartDay int
}

// NewBudgetService creates a new budget service.
func NewBudgetService(budgetRepo portsrepo.BudgetRepositoryFacade, categoryRepo portsrepo.CategoryReader, cycleStartDay int) *budgetService {
	return &budgetService{
		budgetRepo:    budgetRepo,
		categoryRepo:  categoryRepo,
		cycleStartDay: cycleStartDay,
	}
}

// cycleStartFor resolves the start date of the cycle named by (year, month);
// a zero year names the cycle containing today.
func (s *budgetService) cycleStartFor(year int, month time.Month) time.Time {
	if year == 0 {
		start, _ := cycle.Bounds(utils.Today(), s.cycleStartDay)
		return start
	}
	start, _ := cycle.FromYearMonth(year, month, s.cycleStartDay)
	return start
}

// GetBudget retrieves the budget for the cycle starting in (year, month).
// A cycle without a stored budget row yields an empty view rather than an
// error: to the user every cycle has a budget, possibly an all-zero one.
func (s *budgetService) GetBudget(ctx context.Context, year int, month time.Month) (*domain.BudgetView, error) {
	start := s.cycleStartFor(year, month)

	budget, err := s.budgetRepo.FindBudgetByCycleStart(ctx, start)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return &domain.BudgetView{
				Budget: domain.Budget{CycleStart: start, EstimatedIncome: decimal.Zero},
				Lines:  []domain.BudgetLineDetail{},
			}, nil
		}
		s.LogError(ctx, err, "Failed to find budget by cycle start")
		return nil, err
	}

	return s.buildView(ctx, budget)
}

// ApplyBudgetEdits applies a sparse per-category edit set to the cycle's
// budget. For each submitted category: a blank string is skipped, a parsed
// amount greater than zero upserts the line, and anything else (zero,
// negative or unparsable, coerced to zero) deletes the line when present.
// Delete-by-zero is the only line-removal path. The whole set is validated
// first and then persisted in a single commit, so a rejected or failed edit
// leaves the stored budget exactly as it was.
func (s *budgetService) ApplyBudgetEdits(ctx context.Context, year int, month time.Month, req dto.UpdateBudgetRequest) (*domain.BudgetView, error) {
	start := s.cycleStartFor(year, month)

	budget, err := s.loadOrNewBudget(ctx, start)
	if err != nil {
		return nil, err
	}

	if req.EstimatedIncome != nil {
		income, err := utils.ParseAmount(*req.EstimatedIncome)
		if err != nil {
			return nil, err
		}
		if income.IsNegative() {
			return nil, fmt.Errorf("%w: estimated income must not be negative", apperrors.ErrValidation)
		}
		budget.EstimatedIncome = income
	}
	if req.Notes != nil {
		budget.Notes = *req.Notes
	}
	budget.LastUpdatedAt = time.Now()

	var upserts []domain.BudgetLine
	var deletes []string
	for categoryID, raw := range req.Lines {
		if raw == "" {
			// Blank means "no change", not "zero".
			continue
		}

		category, err := s.categoryRepo.FindCategoryByID(ctx, categoryID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: category %s does not exist", apperrors.ErrValidation, categoryID)
			}
			return nil, err
		}
		if category.Type != domain.CategoryTypeExpense {
			return nil, fmt.Errorf("%w: budget lines are only allowed on expense categories, %s is %s", apperrors.ErrValidation, category.Name, category.Type)
		}

		amount, err := utils.ParseAmount(raw)
		if err != nil {
			amount = decimal.Zero
		}

		if amount.GreaterThan(decimal.Zero) {
			now := time.Now()
			upserts = append(upserts, domain.BudgetLine{
				BudgetLineID: uuid.NewString(),
				BudgetID:     budget.BudgetID,
				CategoryID:   categoryID,
				Amount:       amount,
				AuditFields: domain.AuditFields{
					CreatedAt:     now,
					LastUpdatedAt: now,
				},
			})
		} else {
			deletes = append(deletes, categoryID)
		}
	}

	if err := s.budgetRepo.SaveBudgetEdits(ctx, *budget, upserts, deletes); err != nil {
		s.LogError(ctx, err, "Failed to save budget edits", slog.String("budget_id", budget.BudgetID))
		return nil, err
	}

	s.LogInfo(ctx, "Budget edits applied", slog.String("budget_id", budget.BudgetID), slog.Int("edits", len(req.Lines)))
	return s.buildView(ctx, budget)
}

// loadOrNewBudget fetches the cycle's budget row, or builds an unsaved empty
// one for a cycle edited for the first time.
func (s *budgetService) loadOrNewBudget(ctx context.Context, start time.Time) (*domain.Budget, error) {
	budget, err := s.budgetRepo.FindBudgetByCycleStart(ctx, start)
	if err == nil {
		return budget, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to find budget by cycle start")
		return nil, err
	}

	now := time.Now()
	return &domain.Budget{
		BudgetID:        uuid.NewString(),
		CycleStart:      start,
		EstimatedIncome: decimal.Zero,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}, nil
}

// buildView joins a budget's lines with category names, ordered by name.
func (s *budgetService) buildView(ctx context.Context, budget *domain.Budget) (*domain.BudgetView, error) {
	lines, err := s.budgetRepo.ListBudgetLines(ctx, budget.BudgetID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list budget lines", slog.String("budget_id", budget.BudgetID))
		return nil, err
	}

	categoryIDs := make([]string, len(lines))
	for i, line := range lines {
		categoryIDs[i] = line.CategoryID
	}
	categories, err := s.categoryRepo.FindCategoriesByIDs(ctx, categoryIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve categories: %w", err)
	}

	details := make([]domain.BudgetLineDetail, len(lines))
	for i, line := range lines {
		details[i] = domain.BudgetLineDetail{
			BudgetLine:   line,
			CategoryName: categories[line.CategoryID].Name,
		}
	}
	sort.Slice(details, func(i, j int) bool { return details[i].CategoryName < details[j].CategoryName })

	return &domain.BudgetView{Budget: *budget, Lines: details}, nil
}
