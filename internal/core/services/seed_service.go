package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/household_budget_app/internal/core/domain"
	portsrepo "github.com/SscSPs/household_budget_app/internal/core/ports/repositories"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type seedService struct {
	BaseService
	accountRepo  portsrepo.AccountRepositoryFacade
	categoryRepo portsrepo.CategoryRepositoryFacade
}

// NewSeedService creates a new seed service.
func NewSeedService(accountRepo portsrepo.AccountRepositoryFacade, categoryRepo portsrepo.CategoryRepositoryFacade) *seedService {
	return &seedService{accountRepo: accountRepo, categoryRepo: categoryRepo}
}

// EnsureDefaultData inserts the default accounts and categories. Each
// collection is seeded only while still empty, so user-created (or
// user-deleted) data is never touched on later startups.
func (s *seedService) EnsureDefaultData(ctx context.Context) error {
	accountCount, err := s.accountRepo.CountAccounts(ctx)
	if err != nil {
		return fmt.Errorf("failed to count accounts: %w", err)
	}
	if accountCount == 0 {
		now := time.Now()
		for _, name := range []string{"Banco", "Efectivo"} {
			account := domain.Account{
				AccountID:      uuid.NewString(),
				Name:           name,
				InitialBalance: decimal.Zero,
				AuditFields: domain.AuditFields{
					CreatedAt:     now,
					LastUpdatedAt: now,
				},
			}
			if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
				return fmt.Errorf("failed to seed account %s: %w", name, err)
			}
		}
		s.LogInfo(ctx, "Seeded default accounts", slog.Int("count", 2))
	}

	categoryCount, err := s.categoryRepo.CountCategories(ctx)
	if err != nil {
		return fmt.Errorf("failed to count categories: %w", err)
	}
	if categoryCount == 0 {
		defaults := []struct {
			name string
			kind domain.CategoryType
		}{
			{"Salario", domain.CategoryTypeIncome},
			{"Otros ingresos", domain.CategoryTypeIncome},
			{"Supermercado", domain.CategoryTypeExpense},
			{"Transporte", domain.CategoryTypeExpense},
			{"Otros gastos", domain.CategoryTypeExpense},
		}
		now := time.Now()
		for _, def := range defaults {
			category := domain.Category{
				CategoryID: uuid.NewString(),
				Name:       def.name,
				Type:       def.kind,
				AuditFields: domain.AuditFields{
					CreatedAt:     now,
					LastUpdatedAt: now,
				},
			}
			if err := s.categoryRepo.SaveCategory(ctx, category); err != nil {
				return fmt.Errorf("failed to seed category %s: %w", def.name, err)
			}
		}
		s.LogInfo(ctx, "Seeded default categories", slog.Int("count", len(defaults)))
	}

	return nil
}
