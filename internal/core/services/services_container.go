package services

import (
	portsrepo "github.com/SscSPs/household_budget_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/household_budget_app/internal/core/ports/services"
	"github.com/SscSPs/household_budget_app/internal/platform/config"
)

// Compile-time checks that every service satisfies its facade.
var (
	_ portssvc.AccountSvcFacade     = (*accountService)(nil)
	_ portssvc.CategorySvcFacade    = (*categoryService)(nil)
	_ portssvc.TransactionSvcFacade = (*transactionService)(nil)
	_ portssvc.GoalSvcFacade        = (*goalService)(nil)
	_ portssvc.BudgetSvcFacade      = (*budgetService)(nil)
	_ portssvc.SummarySvcFacade     = (*summaryService)(nil)
	_ portssvc.SeederSvcFacade      = (*seedService)(nil)
)

// NewServiceContainer wires every service with its repository dependencies.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Account:     NewAccountService(repos.AccountRepo, repos.TransactionRepo, repos.CategoryRepo),
		Category:    NewCategoryService(repos.CategoryRepo),
		Transaction: NewTransactionService(repos.TransactionRepo, repos.AccountRepo, repos.CategoryRepo, cfg.CycleStartDay),
		Goal:        NewGoalService(repos.GoalRepo),
		Budget:      NewBudgetService(repos.BudgetRepo, repos.CategoryRepo, cfg.CycleStartDay),
		Summary:     NewSummaryService(repos.TransactionRepo, repos.AccountRepo, repos.CategoryRepo, repos.BudgetRepo, cfg.CycleStartDay),
		Seeder:      NewSeedService(repos.AccountRepo, repos.CategoryRepo),
	}
}
