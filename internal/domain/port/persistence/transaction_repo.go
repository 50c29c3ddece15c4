package persistence

import (
	"context"

	"github.com/Ginu5952/Goldenia-Backend/internal/domain/entity"
)

// TransactionRepository defines methods to interact with the append-only
// transaction log. Rows are created exactly once and never updated or
// deleted; they are the system of record that balances and displayed
// history must agree with.
type TransactionRepository interface {
	// Create appends a transaction to the log and assigns its ID
	//
	// Possible errors:
	// - ErrUserNotFound: if a referenced user does not exist
	// - ErrDatabaseConnection: if the database is unreachable
	Create(ctx context.Context, transaction *entity.Transaction) error

	// ListForUser returns every transaction where the user is actor or
	// transfer counterparty, ordered by creation time ascending with ID
	// ascending as the tiebreak. This is the replay input for history
	// reconstruction.
	ListForUser(ctx context.Context, userID uint64) ([]*entity.Transaction, error)

	// ListAll returns the full transaction log ordered by creation time
	// ascending. Used by admin listings.
	ListAll(ctx context.Context) ([]*entity.Transaction, error)
}
