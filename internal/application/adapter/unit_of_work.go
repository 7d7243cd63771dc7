package adapter

import "context"

// Repositories is the set of repositories bound to one unit of work.
type Repositories struct {
	Users        UserRepository
	Categories   CategoryRepository
	Transactions TransactionRepository
	Budgets      BudgetRepository
}

// UnitOfWork runs fn atomically. Every write made through the supplied repositories
// commits when fn returns nil and rolls back otherwise.
type UnitOfWork interface {
	Do(ctx context.Context, fn func(ctx context.Context, repos Repositories) error) error
}
