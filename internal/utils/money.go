package utils

import (
	"fmt"
	"strings"

	"github.com/SscSPs/household_budget_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

// ParseAmount parses a user-submitted monetary string into a decimal.
// A comma decimal separator is accepted ("12,50" reads as "12.50").
func ParseAmount(s string) (decimal.Decimal, error) {
	normalized := strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	amount, err := decimal.NewFromString(normalized)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: invalid amount %q", apperrors.ErrValidation, s)
	}
	return amount, nil
}

// ParsePositiveAmount parses a monetary string and rejects anything that is
// not strictly greater than zero.
func ParsePositiveAmount(s string) (decimal.Decimal, error) {
	amount, err := ParseAmount(s)
	if err != nil {
		return decimal.Zero, err
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, fmt.Errorf("%w: amount must be greater than zero, got %q", apperrors.ErrValidation, s)
	}
	return amount, nil
}

// FormatMoney renders an amount with the two fraction digits used everywhere
// in the app.
func FormatMoney(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}
