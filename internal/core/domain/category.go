package domain

import (
	"fmt"
	"strings"

	"github.com/SscSPs/household_budget_app/internal/apperrors"
)

// CategoryType partitions categories into the two kinds the ledger knows about.
// It is normalized once at the model boundary; nothing downstream compares raw strings.
type CategoryType string

const (
	CategoryTypeIncome  CategoryType = "INCOME"
	CategoryTypeExpense CategoryType = "EXPENSE"
)

// UncategorizedName is the sentinel bucket for transactions whose category
// reference cannot be resolved. Such rows are treated as expenses.
const UncategorizedName = "Sin categoría"

// ParseCategoryType normalizes free-form input ("income", "Expense", " EXPENSE ")
// into a CategoryType. Anything outside the two known values is a validation error.
func ParseCategoryType(s string) (CategoryType, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case string(CategoryTypeIncome):
		return CategoryTypeIncome, nil
	case string(CategoryTypeExpense):
		return CategoryTypeExpense, nil
	default:
		return "", fmt.Errorf("%w: invalid category type %q", apperrors.ErrValidation, s)
	}
}

// Category labels transactions and drives the sign convention for every
// transaction referencing it.
type Category struct {
	CategoryID string       `json:"categoryID"` // Primary Key (UUID)
	Name       string       `json:"name"`       // User-defined name, unique
	Type       CategoryType `json:"type"`       // INCOME or EXPENSE
	AuditFields
}
