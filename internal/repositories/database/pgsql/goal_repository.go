package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/household_budget_app/internal/apperrors"
	"github.com/SscSPs/household_budget_app/internal/core/domain"
	portsrepo "github.com/SscSPs/household_budget_app/internal/core/ports/repositories"
	"github.com/SscSPs/household_budget_app/internal/models"
	"github.com/SscSPs/household_budget_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const contributionColumns = `contribution_id, goal_id, contribution_date, amount, comment, created_at, last_updated_at`

type PgxGoalRepository struct {
	BaseRepository
}

// newPgxGoalRepository creates a new repository for goal and contribution data.
func newPgxGoalRepository(pool *pgxpool.Pool) portsrepo.GoalRepositoryFacade {
	return &PgxGoalRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.GoalRepositoryFacade = (*PgxGoalRepository)(nil)

// SaveGoal inserts a new goal.
func (r *PgxGoalRepository) SaveGoal(ctx context.Context, goal domain.Goal) error {
	modelGoal := mapping.ToModelGoal(goal)

	query := `
		INSERT INTO goals (goal_id, name, target_amount, deadline, notes, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelGoal.GoalID,
		modelGoal.Name,
		modelGoal.TargetAmount,
		modelGoal.Deadline,
		modelGoal.Notes,
		modelGoal.CreatedAt,
		modelGoal.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save goal %s: %w", modelGoal.GoalID, err)
	}
	return nil
}

// FindGoalByID retrieves a goal by its ID.
func (r *PgxGoalRepository) FindGoalByID(ctx context.Context, goalID string) (*domain.Goal, error) {
	query := `
		SELECT goal_id, name, target_amount, deadline, notes, created_at, last_updated_at
		FROM goals
		WHERE goal_id = $1;
	`
	var modelGoal models.Goal
	err := r.Pool.QueryRow(ctx, query, goalID).Scan(
		&modelGoal.GoalID,
		&modelGoal.Name,
		&modelGoal.TargetAmount,
		&modelGoal.Deadline,
		&modelGoal.Notes,
		&modelGoal.CreatedAt,
		&modelGoal.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find goal by ID %s: %w", goalID, err)
	}

	domainGoal := mapping.ToDomainGoal(modelGoal)
	return &domainGoal, nil
}

// ListGoals retrieves all goals, earliest deadline first, undated goals last.
func (r *PgxGoalRepository) ListGoals(ctx context.Context) ([]domain.Goal, error) {
	query := `
		SELECT goal_id, name, target_amount, deadline, notes, created_at, last_updated_at
		FROM goals
		ORDER BY deadline ASC NULLS LAST, name;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query goals: %w", err)
	}
	defer rows.Close()

	modelGoals, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Goal, error) {
		var goal models.Goal
		err := row.Scan(
			&goal.GoalID,
			&goal.Name,
			&goal.TargetAmount,
			&goal.Deadline,
			&goal.Notes,
			&goal.CreatedAt,
			&goal.LastUpdatedAt,
		)
		return goal, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan goals: %w", err)
	}

	return mapping.ToDomainGoalSlice(modelGoals), nil
}

// DeleteGoal removes a goal row; its contributions cascade at the database level.
func (r *PgxGoalRepository) DeleteGoal(ctx context.Context, goalID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM goals WHERE goal_id = $1;`, goalID)
	if err != nil {
		return fmt.Errorf("failed to delete goal %s: %w", goalID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// SaveContribution inserts a new contribution.
func (r *PgxGoalRepository) SaveContribution(ctx context.Context, contribution domain.GoalContribution) error {
	modelContrib := mapping.ToModelContribution(contribution)

	query := `
		INSERT INTO goal_contributions (` + contributionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelContrib.ContributionID,
		modelContrib.GoalID,
		modelContrib.Date,
		modelContrib.Amount,
		modelContrib.Comment,
		modelContrib.CreatedAt,
		modelContrib.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save contribution %s: %w", modelContrib.ContributionID, err)
	}
	return nil
}

// FindContributionByID retrieves a contribution by its ID.
func (r *PgxGoalRepository) FindContributionByID(ctx context.Context, contributionID string) (*domain.GoalContribution, error) {
	query := `SELECT ` + contributionColumns + ` FROM goal_contributions WHERE contribution_id = $1;`

	var modelContrib models.GoalContribution
	err := r.Pool.QueryRow(ctx, query, contributionID).Scan(
		&modelContrib.ContributionID,
		&modelContrib.GoalID,
		&modelContrib.Date,
		&modelContrib.Amount,
		&modelContrib.Comment,
		&modelContrib.CreatedAt,
		&modelContrib.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find contribution by ID %s: %w", contributionID, err)
	}

	domainContrib := mapping.ToDomainContribution(modelContrib)
	return &domainContrib, nil
}

// ListContributionsByGoal retrieves a goal's contributions ordered by date.
func (r *PgxGoalRepository) ListContributionsByGoal(ctx context.Context, goalID string) ([]domain.GoalContribution, error) {
	query := `
		SELECT ` + contributionColumns + `
		FROM goal_contributions
		WHERE goal_id = $1
		ORDER BY contribution_date, created_at;
	`
	return r.queryContributions(ctx, query, goalID)
}

// ListContributionsByGoalIDs retrieves contributions for several goals at
// once, keyed by goal ID.
func (r *PgxGoalRepository) ListContributionsByGoalIDs(ctx context.Context, goalIDs []string) (map[string][]domain.GoalContribution, error) {
	result := make(map[string][]domain.GoalContribution, len(goalIDs))
	if len(goalIDs) == 0 {
		return result, nil
	}

	query := `
		SELECT ` + contributionColumns + `
		FROM goal_contributions
		WHERE goal_id = ANY($1)
		ORDER BY contribution_date, created_at;
	`
	contributions, err := r.queryContributions(ctx, query, goalIDs)
	if err != nil {
		return nil, err
	}
	for _, contrib := range contributions {
		result[contrib.GoalID] = append(result[contrib.GoalID], contrib)
	}
	return result, nil
}

// DeleteContribution removes a contribution row.
func (r *PgxGoalRepository) DeleteContribution(ctx context.Context, contributionID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM goal_contributions WHERE contribution_id = $1;`, contributionID)
	if err != nil {
		return fmt.Errorf("failed to delete contribution %s: %w", contributionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxGoalRepository) queryContributions(ctx context.Context, query string, args ...any) ([]domain.GoalContribution, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query contributions: %w", err)
	}
	defer rows.Close()

	modelContribs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.GoalContribution, error) {
		var contrib models.GoalContribution
		err := row.Scan(
			&contrib.ContributionID,
			&contrib.GoalID,
			&contrib.Date,
			&contrib.Amount,
			&contrib.Comment,
			&contrib.CreatedAt,
			&contrib.LastUpdatedAt,
		)
		return contrib, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan contributions: %w", err)
	}

	return mapping.ToDomainContributionSlice(modelContribs), nil
}
