package models

// CategoryType mirrors the two-valued type column on categories.
type CategoryType string

const (
	Income  CategoryType = "INCOME"
	Expense CategoryType = "EXPENSE"
)

// Category represents a row of the categories table.
type Category struct {
	CategoryID string       `db:"category_id"`
	Name       string       `db:"name"`
	Type       CategoryType `db:"category_type"`
	AuditFields
}
