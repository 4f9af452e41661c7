package dto

import (
	"time"

	"github.com/SscSPs/household_budget_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest defines the data needed to create a new account.
// InitialBalance is submitted as a string so a comma decimal separator can
// be accepted; when empty or unparsable it defaults to zero.
type CreateAccountRequest struct {
	Name           string `json:"name" binding:"required"`
	InitialBalance string `json:"initialBalance"` // Optional decimal string
}

// AccountResponse defines the data returned for an account.
// Mirrors domain.Account.
type AccountResponse struct {
	AccountID      string          `json:"accountID"`
	Name           string          `json:"name"`
	InitialBalance decimal.Decimal `json:"initialBalance"`
	CreatedAt      time.Time       `json:"createdAt"`
	LastUpdatedAt  time.Time       `json:"lastUpdatedAt"`
}

// AccountBalanceResponse extends AccountResponse with the derived current
// balance: initial balance plus the signed sum of all the account's
// transactions.
type AccountBalanceResponse struct {
	AccountResponse
	Balance decimal.Decimal `json:"balance"`
}

// ListAccountsResponse wraps the list of accounts with balances.
type ListAccountsResponse struct {
	Accounts []AccountBalanceResponse `json:"accounts"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:      acc.AccountID,
		Name:           acc.Name,
		InitialBalance: acc.InitialBalance,
		CreatedAt:      acc.CreatedAt,
		LastUpdatedAt:  acc.LastUpdatedAt,
	}
}

// ToAccountBalanceResponse converts a domain.AccountBalance to its DTO.
func ToAccountBalanceResponse(ab domain.AccountBalance) AccountBalanceResponse {
	return AccountBalanceResponse{
		AccountResponse: ToAccountResponse(&ab.Account),
		Balance:         ab.Balance,
	}
}

// ToListAccountsResponse converts account balances to the list DTO.
func ToListAccountsResponse(balances []domain.AccountBalance) ListAccountsResponse {
	accounts := make([]AccountBalanceResponse, len(balances))
	for i, ab := range balances {
		accounts[i] = ToAccountBalanceResponse(ab)
	}
	return ListAccountsResponse{Accounts: accounts}
}
