// Package mapping converts between persistence models and domain types.
package mapping

import (
	"github.com/SscSPs/household_budget_app/internal/core/domain"
	"github.com/SscSPs/household_budget_app/internal/models"
)

func toDomainAudit(m models.AuditFields) domain.AuditFields {
	return domain.AuditFields{CreatedAt: m.CreatedAt, LastUpdatedAt: m.LastUpdatedAt}
}

func toModelAudit(d domain.AuditFields) models.AuditFields {
	return models.AuditFields{CreatedAt: d.CreatedAt, LastUpdatedAt: d.LastUpdatedAt}
}

// ToDomainAccount converts a persistence model Account to a domain Account.
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountID:      m.AccountID,
		Name:           m.Name,
		InitialBalance: m.InitialBalance,
		AuditFields:    toDomainAudit(m.AuditFields),
	}
}

// ToModelAccount converts a domain Account to a persistence model Account.
func ToModelAccount(d domain.Account) models.Account {
	return models.Account{
		AccountID:      d.AccountID,
		Name:           d.Name,
		InitialBalance: d.InitialBalance,
		AuditFields:    toModelAudit(d.AuditFields),
	}
}

// ToDomainAccountSlice converts a slice of model Accounts.
func ToDomainAccountSlice(ms []models.Account) []domain.Account {
	out := make([]domain.Account, len(ms))
	for i, m := range ms {
		out[i] = ToDomainAccount(m)
	}
	return out
}

// ToDomainCategory converts a persistence model Category to a domain Category.
func ToDomainCategory(m models.Category) domain.Category {
	return domain.Category{
		CategoryID:  m.CategoryID,
		Name:        m.Name,
		Type:        domain.CategoryType(m.Type),
		AuditFields: toDomainAudit(m.AuditFields),
	}
}

// ToModelCategory converts a domain Category to a persistence model Category.
func ToModelCategory(d domain.Category) models.Category {
	return models.Category{
		CategoryID:  d.CategoryID,
		Name:        d.Name,
		Type:        models.CategoryType(d.Type),
		AuditFields: toModelAudit(d.AuditFields),
	}
}

// ToDomainCategorySlice converts a slice of model Categories.
func ToDomainCategorySlice(ms []models.Category) []domain.Category {
	out := make([]domain.Category, len(ms))
	for i, m := range ms {
		out[i] = ToDomainCategory(m)
	}
	return out
}

// ToDomainTransaction converts a persistence model Transaction to a domain Transaction.
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID: m.TransactionID,
		Date:          m.Date,
		Description:   m.Description,
		Amount:        m.Amount,
		AccountID:     m.AccountID,
		CategoryID:    m.CategoryID,
		Notes:         m.Notes,
		AuditFields:   toDomainAudit(m.AuditFields),
	}
}

// ToModelTransaction converts a domain Transaction to a persistence model Transaction.
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID: d.TransactionID,
		Date:          d.Date,
		Description:   d.Description,
		Amount:        d.Amount,
		AccountID:     d.AccountID,
		CategoryID:    d.CategoryID,
		Notes:         d.Notes,
		AuditFields:   toModelAudit(d.AuditFields),
	}
}

// ToDomainTransactionSlice converts a slice of model Transactions.
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	out := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		out[i] = ToDomainTransaction(m)
	}
	return out
}

// ToDomainGoal converts a persistence model Goal to a domain Goal.
func ToDomainGoal(m models.Goal) domain.Goal {
	return domain.Goal{
		GoalID:       m.GoalID,
		Name:         m.Name,
		TargetAmount: m.TargetAmount,
		Deadline:     m.Deadline,
		Notes:        m.Notes,
		AuditFields:  toDomainAudit(m.AuditFields),
	}
}

// ToModelGoal converts a domain Goal to a persistence model Goal.
func ToModelGoal(d domain.Goal) models.Goal {
	return models.Goal{
		GoalID:       d.GoalID,
		Name:         d.Name,
		TargetAmount: d.TargetAmount,
		Deadline:     d.Deadline,
		Notes:        d.Notes,
		AuditFields:  toModelAudit(d.AuditFields),
	}
}

// ToDomainGoalSlice converts a slice of model Goals.
func ToDomainGoalSlice(ms []models.Goal) []domain.Goal {
	out := make([]domain.Goal, len(ms))
	for i, m := range ms {
		out[i] = ToDomainGoal(m)
	}
	return out
}

// ToDomainContribution converts a persistence model GoalContribution to its domain type.
func ToDomainContribution(m models.GoalContribution) domain.GoalContribution {
	return domain.GoalContribution{
		ContributionID: m.ContributionID,
		GoalID:         m.GoalID,
		Date:           m.Date,
		Amount:         m.Amount,
		Comment:        m.Comment,
		AuditFields:    toDomainAudit(m.AuditFields),
	}
}

// ToModelContribution converts a domain GoalContribution to its persistence model.
func ToModelContribution(d domain.GoalContribution) models.GoalContribution {
	return models.GoalContribution{
		ContributionID: d.ContributionID,
		GoalID:         d.GoalID,
		Date:           d.Date,
		Amount:         d.Amount,
		Comment:        d.Comment,
		AuditFields:    toModelAudit(d.AuditFields),
	}
}

// ToDomainContributionSlice converts a slice of model GoalContributions.
func ToDomainContributionSlice(ms []models.GoalContribution) []domain.GoalContribution {
	out := make([]domain.GoalContribution, len(ms))
	for i, m := range ms {
		out[i] = ToDomainContribution(m)
	}
	return out
}

// ToDomainBudget converts a persistence model Budget to a domain Budget.
func ToDomainBudget(m models.Budget) domain.Budget {
	return domain.Budget{
		BudgetID:        m.BudgetID,
		CycleStart:      m.CycleStart,
		EstimatedIncome: m.EstimatedIncome,
		Notes:           m.Notes,
		AuditFields:     toDomainAudit(m.AuditFields),
	}
}

// ToModelBudget converts a domain Budget to a persistence model Budget.
func ToModelBudget(d domain.Budget) models.Budget {
	return models.Budget{
		BudgetID:        d.BudgetID,
		CycleStart:      d.CycleStart,
		EstimatedIncome: d.EstimatedIncome,
		Notes:           d.Notes,
		AuditFields:     toModelAudit(d.AuditFields),
	}
}

// ToDomainBudgetLine converts a persistence model BudgetLine to its domain type.
func ToDomainBudgetLine(m models.BudgetLine) domain.BudgetLine {
	return domain.BudgetLine{
		BudgetLineID: m.BudgetLineID,
		BudgetID:     m.BudgetID,
		CategoryID:   m.CategoryID,
		Amount:       m.Amount,
		AuditFields:  toDomainAudit(m.AuditFields),
	}
}

// ToModelBudgetLine converts a domain BudgetLine to its persistence model.
func ToModelBudgetLine(d domain.BudgetLine) models.BudgetLine {
	return models.BudgetLine{
		BudgetLineID: d.BudgetLineID,
		BudgetID:     d.BudgetID,
		CategoryID:   d.CategoryID,
		Amount:       d.Amount,
		AuditFields:  toModelAudit(d.AuditFields),
	}
}

// ToDomainBudgetLineSlice converts a slice of model BudgetLines.
func ToDomainBudgetLineSlice(ms []models.BudgetLine) []domain.BudgetLine {
	out := make([]domain.BudgetLine, len(ms))
	for i, m := range ms {
		out[i] = ToDomainBudgetLine(m)
	}
	return out
}
