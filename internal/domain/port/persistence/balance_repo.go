package persistence

import (
	"context"

	"github.com/Ginu5952/Goldenia-Backend/internal/domain/entity"
)

// BalanceRepository defines methods to interact with per-(user, currency)
// balance rows. Balance rows are mutated only by the ledger engine, inside
// a unit of work.
type BalanceRepository interface {
	// Get retrieves the balance row for (userID, currency), or nil if the
	// user has never held that currency. Read-only callers use this.
	//
	// Possible errors:
	// - ErrDatabaseConnection: if the database is unreachable
	Get(ctx context.Context, userID uint64, currency string) (*entity.Balance, error)

	// LockOrCreate returns the balance row for (userID, currency) with a
	// row-level write lock held for the remainder of the surrounding unit
	// of work. If no row exists yet, a zero-initialized one is created
	// first (create-if-absent contract; at most one row per pair).
	//
	// Callers that lock more than one row must acquire locks in ascending
	// (user ID, currency) order to avoid deadlocks under concurrent
	// opposite-direction transfers.
	//
	// Possible errors:
	// - ErrDatabaseConnection: if the database is unreachable
	LockOrCreate(ctx context.Context, userID uint64, currency string) (*entity.Balance, error)

	// Save persists the mutated amount of a previously locked balance row.
	//
	// Possible errors:
	// - ErrDatabaseConnection: if the database is unreachable
	Save(ctx context.Context, balance *entity.Balance) error

	// ListByUser returns all balance rows held by a user, ordered by currency.
	ListByUser(ctx context.Context, userID uint64) ([]*entity.Balance, error)
}
