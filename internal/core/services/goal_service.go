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
	"github.com/SscSPs/household_budget_app/internal/dto"
	"github.com/SscSPs/household_budget_app/internal/utils"
	"github.com/google/uuid"
)

type goalService struct {
	BaseService
	goalRepo portsrepo.GoalRepositoryFacade
}

// NewGoalService creates a new goal service.
func NewGoalService(goalRepo portsrepo.GoalRepositoryFacade) *goalService {
	return &goalService{goalRepo: goalRepo}
}

// CreateGoal validates and persists a new savings goal.
func (s *goalService) CreateGoal(ctx context.Context, req dto.CreateGoalRequest) (*domain.Goal, error) {
	target, err := utils.ParsePositiveAmount(req.TargetAmount)
	if err != nil {
		return nil, err
	}

	var deadline *time.Time
	if req.Deadline != "" {
		parsed, err := utils.ParseDate(req.Deadline)
		if err != nil {
			return nil, err
		}
		deadline = &parsed
	}

	now := time.Now()
	goal := domain.Goal{
		GoalID:       uuid.NewString(),
		Name:         req.Name,
		TargetAmount: target,
		Deadline:     deadline,
		Notes:        req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.goalRepo.SaveGoal(ctx, goal); err != nil {
		s.LogError(ctx, err, "Failed to save goal in repository", slog.String("goal_name", req.Name))
		return nil, err
	}

	s.LogInfo(ctx, "Goal created", slog.String("goal_id", goal.GoalID))
	return &goal, nil
}

// GetGoalByID retrieves a goal with its contributions and progress.
func (s *goalService) GetGoalByID(ctx context.Context, goalID string) (*domain.GoalProgress, error) {
	goal, err := s.goalRepo.FindGoalByID(ctx, goalID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find goal by ID in repository", slog.String("goal_id", goalID))
		}
		return nil, err
	}

	contributions, err := s.goalRepo.ListContributionsByGoal(ctx, goalID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list goal contributions", slog.String("goal_id", goalID))
		return nil, fmt.Errorf("failed to list goal contributions: %w", err)
	}

	return progressOf(*goal, contributions), nil
}

// ListGoals retrieves every goal with its derived progress, ordered by
// deadline ascending with undated goals last.
func (s *goalService) ListGoals(ctx context.Context) ([]domain.GoalProgress, error) {
	goals, err := s.goalRepo.ListGoals(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list goals from repository")
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}

	goalIDs := make([]string, len(goals))
	for i, g := range goals {
		goalIDs[i] = g.GoalID
	}
	contributionsByGoal, err := s.goalRepo.ListContributionsByGoalIDs(ctx, goalIDs)
	if err != nil {
		s.LogError(ctx, err, "Failed to list contributions for goals")
		return nil, fmt.Errorf("failed to list contributions: %w", err)
	}

	progress := make([]domain.GoalProgress, len(goals))
	for i, g := range goals {
		progress[i] = *progressOf(g, contributionsByGoal[g.GoalID])
	}
	return progress, nil
}

// DeleteGoal removes a goal; its contributions cascade with it.
func (s *goalService) DeleteGoal(ctx context.Context, goalID string) error {
	if _, err := s.goalRepo.FindGoalByID(ctx, goalID); err != nil {
		return err
	}
	if err := s.goalRepo.DeleteGoal(ctx, goalID); err != nil {
		s.LogError(ctx, err, "Failed to delete goal in repository", slog.String("goal_id", goalID))
		return err
	}
	s.LogInfo(ctx, "Goal deleted", slog.String("goal_id", goalID))
	return nil
}

// AddContribution records a deposit towards a goal. Date defaults to today.
func (s *goalService) AddContribution(ctx context.Context, goalID string, req dto.AddContributionRequest) (*domain.GoalContribution, error) {
	if _, err := s.goalRepo.FindGoalByID(ctx, goalID); err != nil {
		return nil, err
	}

	amount, err := utils.ParsePositiveAmount(req.Amount)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	contribution := domain.GoalContribution{
		ContributionID: uuid.NewString(),
		GoalID:         goalID,
		Date:           utils.ParseDateOrDefault(req.Date, utils.Today()),
		Amount:         amount,
		Comment:        req.Comment,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.goalRepo.SaveContribution(ctx, contribution); err != nil {
		s.LogError(ctx, err, "Failed to save contribution in repository", slog.String("goal_id", goalID))
		return nil, err
	}

	s.LogInfo(ctx, "Contribution recorded",
		slog.String("goal_id", goalID),
		slog.String("contribution_id", contribution.ContributionID),
		slog.String("amount", utils.FormatMoney(contribution.Amount)),
	)
	return &contribution, nil
}

// DeleteContribution removes a contribution, verifying it belongs to the
// goal named in the request.
func (s *goalService) DeleteContribution(ctx context.Context, goalID, contributionID string) error {
	contribution, err := s.goalRepo.FindContributionByID(ctx, contributionID)
	if err != nil {
		return err
	}
	if contribution.GoalID != goalID {
		return fmt.Errorf("%w: contribution %s does not belong to goal %s", apperrors.ErrNotFound, contributionID, goalID)
	}

	if err := s.goalRepo.DeleteContribution(ctx, contributionID); err != nil {
		s.LogError(ctx, err, "Failed to delete contribution in repository", slog.String("contribution_id", contributionID))
		return err
	}
	s.LogInfo(ctx, "Contribution deleted", slog.String("goal_id", goalID), slog.String("contribution_id", contributionID))
	return nil
}

// progressOf bundles a goal with its derived progress figures.
func progressOf(goal domain.Goal, contributions []domain.GoalContribution) *domain.GoalProgress {
	if contributions == nil {
		contributions = []domain.GoalContribution{}
	}
	total := domain.TotalContributed(contributions)
	return &domain.GoalProgress{
		Goal:             goal,
		TotalContributed: total,
		PercentComplete:  goal.PercentComplete(total),
		Contributions:    contributions,
	}
}
