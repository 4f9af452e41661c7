package services

import (
	"context"

	"github.com/SscSPs/household_budget_app/internal/core/domain"
	"github.com/SscSPs/household_budget_app/internal/dto"
)

// CategorySvcFacade exposes every category operation the handlers need.
type CategorySvcFacade interface {
	// CreateCategory persists a new category, normalizing the submitted
	// type to the income/expense enumeration.
	CreateCategory(ctx context.Context, req dto.CreateCategoryRequest) (*domain.Category, error)

	// GetCategoryByID retrieves a specific category.
	GetCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error)

	// ListCategories retrieves every category, income first, then by name.
	ListCategories(ctx context.Context) ([]domain.Category, error)

	// DeleteCategory removes a category; rejected with ErrConflict while
	// transactions or budget lines still reference it.
	DeleteCategory(ctx context.Context, categoryID string) error
}
