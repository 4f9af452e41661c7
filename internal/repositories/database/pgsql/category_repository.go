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
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxCategoryRepository struct {
	BaseRepository
}

// newPgxCategoryRepository creates a new repository for category data.
func newPgxCategoryRepository(pool *pgxpool.Pool) portsrepo.CategoryRepositoryFacade {
	return &PgxCategoryRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.CategoryRepositoryFacade = (*PgxCategoryRepository)(nil)

// SaveCategory inserts a new category.
func (r *PgxCategoryRepository) SaveCategory(ctx context.Context, category domain.Category) error {
	modelCat := mapping.ToModelCategory(category)

	query := `
		INSERT INTO categories (category_id, name, category_type, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelCat.CategoryID,
		modelCat.Name,
		modelCat.Type,
		modelCat.CreatedAt,
		modelCat.LastUpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" { // Unique violation
				return fmt.Errorf("category named %q: %w", category.Name, apperrors.ErrDuplicate)
			}
		}
		return fmt.Errorf("failed to save category %s: %w", modelCat.CategoryID, err)
	}
	return nil
}

// FindCategoryByID retrieves a category by its ID.
func (r *PgxCategoryRepository) FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	query := `
		SELECT category_id, name, category_type, created_at, last_updated_at
		FROM categories
		WHERE category_id = $1;
	`
	var modelCat models.Category
	err := r.Pool.QueryRow(ctx, query, categoryID).Scan(
		&modelCat.CategoryID,
		&modelCat.Name,
		&modelCat.Type,
		&modelCat.CreatedAt,
		&modelCat.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find category by ID %s: %w", categoryID, err)
	}

	domainCat := mapping.ToDomainCategory(modelCat)
	return &domainCat, nil
}

// FindCategoriesByIDs retrieves multiple categories keyed by ID. Missing IDs
// are simply absent from the result.
func (r *PgxCategoryRepository) FindCategoriesByIDs(ctx context.Context, categoryIDs []string) (map[string]domain.Category, error) {
	result := make(map[string]domain.Category, len(categoryIDs))
	if len(categoryIDs) == 0 {
		return result, nil
	}

	query := `
		SELECT category_id, name, category_type, created_at, last_updated_at
		FROM categories
		WHERE category_id = ANY($1);
	`
	rows, err := r.Pool.Query(ctx, query, categoryIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories by IDs: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var modelCat models.Category
		if err := rows.Scan(
			&modelCat.CategoryID,
			&modelCat.Name,
			&modelCat.Type,
			&modelCat.CreatedAt,
			&modelCat.LastUpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		result[modelCat.CategoryID] = mapping.ToDomainCategory(modelCat)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate categories: %w", err)
	}
	return result, nil
}

// ListCategories retrieves all categories, income first, then by name.
func (r *PgxCategoryRepository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	query := `
		SELECT category_id, name, category_type, created_at, last_updated_at
		FROM categories
		ORDER BY CASE WHEN category_type = 'INCOME' THEN 0 ELSE 1 END, name;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	modelCategories, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Category, error) {
		var cat models.Category
		err := row.Scan(
			&cat.CategoryID,
			&cat.Name,
			&cat.Type,
			&cat.CreatedAt,
			&cat.LastUpdatedAt,
		)
		return cat, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan categories: %w", err)
	}

	return mapping.ToDomainCategorySlice(modelCategories), nil
}

// CountCategories returns the number of category rows.
func (r *PgxCategoryRepository) CountCategories(ctx context.Context) (int64, error) {
	var count int64
	err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM categories;`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count categories: %w", err)
	}
	return count, nil
}

// CountCategoryReferences returns how many transactions and budget lines
// still reference the category.
func (r *PgxCategoryRepository) CountCategoryReferences(ctx context.Context, categoryID string) (int64, error) {
	query := `
		SELECT (SELECT COUNT(*) FROM transactions WHERE category_id = $1)
		     + (SELECT COUNT(*) FROM budget_lines WHERE category_id = $1);
	`
	var count int64
	err := r.Pool.QueryRow(ctx, query, categoryID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count category references for %s: %w", categoryID, err)
	}
	return count, nil
}

// DeleteCategory removes a category row. Both referencing foreign keys are
// RESTRICT, so a delete racing a new reference still fails cleanly.
func (r *PgxCategoryRepository) DeleteCategory(ctx context.Context, categoryID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM categories WHERE category_id = $1;`, categoryID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23503" { // Foreign key violation
				return fmt.Errorf("category is still referenced: %w", apperrors.ErrConflict)
			}
		}
		return fmt.Errorf("failed to delete category %s: %w", categoryID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
