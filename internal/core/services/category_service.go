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
	"github.com/google/uuid"
)

type categoryService struct {
	BaseService
	categoryRepo portsrepo.CategoryRepositoryFacade
}

// NewCategoryService creates a new category service.
func NewCategoryService(categoryRepo portsrepo.CategoryRepositoryFacade) *categoryService {
	return &categoryService{categoryRepo: categoryRepo}
}

// CreateCategory validates and persists a new category. The submitted type
// string is normalized here, once; downstream code only ever sees the
// two-valued enumeration.
func (s *categoryService) CreateCategory(ctx context.Context, req dto.CreateCategoryRequest) (*domain.Category, error) {
	categoryType, err := domain.ParseCategoryType(req.Type)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	category := domain.Category{
		CategoryID: uuid.NewString(),
		Name:       req.Name,
		Type:       categoryType,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.categoryRepo.SaveCategory(ctx, category); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to save category in repository", slog.String("category_name", req.Name))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Category created", slog.String("category_id", category.CategoryID), slog.String("type", string(category.Type)))
	return &category, nil
}

// GetCategoryByID retrieves a single category.
func (s *categoryService) GetCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	category, err := s.categoryRepo.FindCategoryByID(ctx, categoryID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find category by ID in repository", slog.String("category_id", categoryID))
		}
		return nil, err
	}
	return category, nil
}

// ListCategories retrieves every category, income first, then by name.
func (s *categoryService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	categories, err := s.categoryRepo.ListCategories(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list categories from repository")
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	if categories == nil {
		return []domain.Category{}, nil
	}
	return categories, nil
}

// DeleteCategory removes a category unless transactions or budget lines
// still reference it.
func (s *categoryService) DeleteCategory(ctx context.Context, categoryID string) error {
	if _, err := s.categoryRepo.FindCategoryByID(ctx, categoryID); err != nil {
		return err
	}

	refs, err := s.categoryRepo.CountCategoryReferences(ctx, categoryID)
	if err != nil {
		s.LogError(ctx, err, "Failed to count category references", slog.String("category_id", categoryID))
		return fmt.Errorf("failed to count category references: %w", err)
	}
	if refs > 0 {
		return fmt.Errorf("%w: category is still referenced by %d record(s)", apperrors.ErrConflict, refs)
	}

	if err := s.categoryRepo.DeleteCategory(ctx, categoryID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrConflict) {
			s.LogError(ctx, err, "Failed to delete category in repository", slog.String("category_id", categoryID))
		}
		return err
	}

	s.LogInfo(ctx, "Category deleted", slog.String("category_id", categoryID))
	return nil
}
