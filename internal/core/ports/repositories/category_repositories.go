package repositories

import (
	"context"

	"github.com/SscSPs/household_budget_app/internal/core/domain"
)

// CategoryReader defines read operations for category data
type CategoryReader interface {
	// FindCategoryByID retrieves a specific category by its unique identifier.
	FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error)

	// FindCategoriesByIDs retrieves multiple categories keyed by ID.
	FindCategoriesByIDs(ctx context.Context, categoryIDs []string) (map[string]domain.Category, error)

	// ListCategories retrieves every category, income categories first,
	// then ordered by name.
	ListCategories(ctx context.Context) ([]domain.Category, error)

	// CountCategories returns the number of categories; used to decide
	// whether the default seed data is needed.
	CountCategories(ctx context.Context) (int64, error)

	// CountCategoryReferences returns how many transactions and budget
	// lines reference the category. A non-zero count blocks deletion.
	CountCategoryReferences(ctx context.Context, categoryID string) (int64, error)
}

// CategoryWriter defines write operations for category data
type CategoryWriter interface {
	// SaveCategory persists a new category.
	SaveCategory(ctx context.Context, category domain.Category) error

	// DeleteCategory removes a category. Callers must first verify nothing
	// references it.
	DeleteCategory(ctx context.Context, categoryID string) error
}

// CategoryRepositoryFacade combines all category-related repository interfaces
type CategoryRepositoryFacade interface {
	CategoryReader
	CategoryWriter
}
