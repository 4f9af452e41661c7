package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/household_budget_app/internal/apperrors"
	"github.com/SscSPs/household_budget_app/internal/core/domain"
	portsrepo "github.com/SscSPs/household_budget_app/internal/core/ports/repositories"
	"github.com/SscSPs/household_budget_app/internal/models"
	"github.com/SscSPs/household_budget_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxBudgetRepository struct {
	BaseRepository
}

// newPgxBudgetRepository creates a new repository for budget data.
func newPgxBudgetRepository(pool *pgxpool.Pool) portsrepo.BudgetRepositoryFacade {
	return &PgxBudgetRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.BudgetRepositoryFacade = (*PgxBudgetRepository)(nil)

// SaveBudgetEdits persists one budget edit set within a DB transaction, so a
// failing line write never leaves the income update or earlier lines behind.
// The budget row is keyed by cycle_start: inserted when the cycle has none
// yet, its income and notes overwritten otherwise.
func (r *PgxBudgetRepository) SaveBudgetEdits(ctx context.Context, budget domain.Budget, upserts []domain.BudgetLine, deleteCategoryIDs []string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	// Ignored if the transaction commits.
	defer r.Rollback(ctx, tx)

	modelBudget := mapping.ToModelBudget(budget)
	budgetQuery := `
		INSERT INTO budgets (budget_id, cycle_start, estimated_income, notes, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (cycle_start) DO UPDATE SET
			estimated_income = EXCLUDED.estimated_income,
			notes = EXCLUDED.notes,
			last_updated_at = EXCLUDED.last_updated_at;
	`
	_, err = tx.Exec(ctx, budgetQuery,
		modelBudget.BudgetID,
		modelBudget.CycleStart,
		modelBudget.EstimatedIncome,
		modelBudget.Notes,
		modelBudget.CreatedAt,
		modelBudget.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save budget %s: %w", modelBudget.BudgetID, err)
	}

	lineQuery := `
		INSERT INTO budget_lines (budget_line_id, budget_id, category_id, amount, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (budget_id, category_id) DO UPDATE SET
			amount = EXCLUDED.amount,
			last_updated_at = EXCLUDED.last_updated_at;
	`
	for _, line := range upserts {
		modelLine := mapping.ToModelBudgetLine(line)
		_, err = tx.Exec(ctx, lineQuery,
			modelLine.BudgetLineID,
			modelLine.BudgetID,
			modelLine.CategoryID,
			modelLine.Amount,
			modelLine.CreatedAt,
			modelLine.LastUpdatedAt,
		)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) {
				if pgErr.Code == "23503" { // Foreign key violation
					return fmt.Errorf("budget or category does not exist: %w", apperrors.ErrValidation)
				}
			}
			return fmt.Errorf("failed to upsert budget line for category %s: %w", modelLine.CategoryID, err)
		}
	}

	if len(deleteCategoryIDs) > 0 {
		_, err = tx.Exec(ctx,
			`DELETE FROM budget_lines WHERE budget_id = $1 AND category_id = ANY($2);`,
			modelBudget.BudgetID, deleteCategoryIDs,
		)
		if err != nil {
			return fmt.Errorf("failed to delete budget lines: %w", err)
		}
	}

	return r.Commit(ctx, tx)
}

// FindBudgetByCycleStart retrieves the budget keyed by a cycle's start date.
func (r *PgxBudgetRepository) FindBudgetByCycleStart(ctx context.Context, cycleStart time.Time) (*domain.Budget, error) {
	query := `
		SELECT budget_id, cycle_start, estimated_income, notes, created_at, last_updated_at
		FROM budgets
		WHERE cycle_start = $1;
	`
	var modelBudget models.Budget
	err := r.Pool.QueryRow(ctx, query, cycleStart).Scan(
		&modelBudget.BudgetID,
		&modelBudget.CycleStart,
		&modelBudget.EstimatedIncome,
		&modelBudget.Notes,
		&modelBudget.CreatedAt,
		&modelBudget.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find budget by cycle start %s: %w", cycleStart.Format("2006-01-02"), err)
	}

	domainBudget := mapping.ToDomainBudget(modelBudget)
	return &domainBudget, nil
}

// ListBudgetLines retrieves a budget's lines.
func (r *PgxBudgetRepository) ListBudgetLines(ctx context.Context, budgetID string) ([]domain.BudgetLine, error) {
	query := `
		SELECT budget_line_id, budget_id, category_id, amount, created_at, last_updated_at
		FROM budget_lines
		WHERE budget_id = $1;
	`
	rows, err := r.Pool.Query(ctx, query, budgetID)
	if err != nil {
		return nil, fmt.Errorf("failed to query budget lines: %w", err)
	}
	defer rows.Close()

	modelLines, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.BudgetLine, error) {
		var line models.BudgetLine
		err := row.Scan(
			&line.BudgetLineID,
			&line.BudgetID,
			&line.CategoryID,
			&line.Amount,
			&line.CreatedAt,
			&line.LastUpdatedAt,
		)
		return line, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan budget lines: %w", err)
	}

	return mapping.ToDomainBudgetLineSlice(modelLines), nil
}

