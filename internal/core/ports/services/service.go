package services

import "context"

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	Account     AccountSvcFacade
	Category    CategorySvcFacade
	Transaction TransactionSvcFacade
	Goal        GoalSvcFacade
	Budget      BudgetSvcFacade
	Summary     SummarySvcFacade
	Seeder      SeederSvcFacade
}

// SeederSvcFacade creates the default accounts and categories on first use.
type SeederSvcFacade interface {
	// EnsureDefaultData inserts the default accounts and categories, each
	// collection only when it is still empty.
	EnsureDefaultData(ctx context.Context) error
}
