package persistence

import (
	"context"
)

// UnitOfWork coordinates repository operations inside one atomic database
// transaction. Every ledger engine operation runs its reads, balance
// mutations and log append within a single unit of work: they all commit
// together or none of them do. Partial application (a debit without its
// credit, or either without the log entry) must never be observable.
type UnitOfWork interface {
	// Begin starts a new transaction and returns a transactional context
	Begin(ctx context.Context) (context.Context, error)

	// Commit commits the transaction in the given context
	Commit(ctx context.Context) error

	// Rollback rolls back the transaction in the given context
	Rollback(ctx context.Context) error

	// UserRepository returns a user repository bound to the context's
	// transaction, or to the base connection when no transaction is open
	UserRepository(ctx context.Context) UserRepository

	// BalanceRepository returns a balance repository bound to the context's
	// transaction, or to the base connection when no transaction is open
	BalanceRepository(ctx context.Context) BalanceRepository

	// TransactionRepository returns a transaction repository bound to the
	// context's transaction, or to the base connection when none is open
	TransactionRepository(ctx context.Context) TransactionRepository
}
