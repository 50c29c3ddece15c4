package history

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Ginu5952/Goldenia-Backend/internal/domain/entity"
	coreport "github.com/Ginu5952/Goldenia-Backend/internal/domain/port/core"
	"github.com/Ginu5952/Goldenia-Backend/internal/domain/port/persistence"
)

// Entry is one display row of a user's transaction history. The running
// Balance is reconstructed from the log alone, so it shows the balance as
// of that transaction rather than current state.
type Entry struct {
	ID              uint64
	Kind            entity.Kind
	Amount          decimal.Decimal
	Currency        string
	CurrencySymbol  string
	CurrencyFrom    string
	CurrencyTo      string
	ConvertedAmount *decimal.Decimal
	TargetUserID    *uint64
	TargetUsername  string
	Counterparty    string
	Balance         decimal.Decimal
	Status          entity.Status
	Timestamp       time.Time
}

// Reconstructor replays a user's transaction log in chronological order to
// produce a running per-currency balance trail for presentation. It is a
// pure read-side projection: it never mutates balances or the log, and it
// never reads the live balance store.
type Reconstructor struct {
	transactionRepo persistence.TransactionRepository
	userRepo        persistence.UserRepository
	logger          coreport.Logger
}

// NewReconstructor creates a history reconstructor.
func NewReconstructor(
	transactionRepo persistence.TransactionRepository,
	userRepo persistence.UserRepository,
	logger coreport.Logger,
) *Reconstructor {
	return &Reconstructor{
		transactionRepo: transactionRepo,
		userRepo:        userRepo,
		logger:          logger,
	}
}

// GetHistory returns the user's transaction views, most recent first.
// The per-currency accumulator is seeded at zero for every currency and
// updated by the same per-transaction effect function the ledger engine
// applies, so the trail is self-consistent with the log by construction.
// A user with no transactions gets an empty list.
func (r *Reconstructor) GetHistory(ctx context.Context, userID uint64) ([]Entry, error) {
	transactions, err := r.transactionRepo.ListForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	usernames := r.resolveUsernames(ctx, transactions)

	balances := make(map[string]decimal.Decimal)
	entries := make([]Entry, 0, len(transactions))

	for _, txn := range transactions {
		effects, status := txn.EffectsFor(userID)
		for _, effect := range effects {
			balances[effect.Currency] = balances[effect.Currency].Add(effect.Delta)
		}

		entry := Entry{
			ID:             txn.ID,
			Kind:           txn.Kind,
			Amount:         entity.Round2(txn.Amount),
			Currency:       txn.Currency,
			CurrencySymbol: txn.CurrencySymbol,
			CurrencyFrom:   txn.CurrencyFrom,
			CurrencyTo:     txn.CurrencyTo,
			Balance:        entity.Round2(balances[txn.Currency]),
			Status:         status,
			Timestamp:      txn.CreatedAt,
			Counterparty:   "-",
		}

		if txn.Kind == entity.KindExchange {
			converted := entity.Round2(txn.ConvertedAmount)
			entry.ConvertedAmount = &converted
		}

		if txn.Kind == entity.KindTransfer {
			if txn.IsCounterparty(userID) {
				entry.Counterparty = usernames[txn.UserID]
			} else {
				entry.TargetUserID = txn.TargetUserID
				if txn.TargetUserID != nil {
					entry.TargetUsername = usernames[*txn.TargetUserID]
					entry.Counterparty = entry.TargetUsername
				}
			}
		}

		entries = append(entries, entry)
	}

	// Present most recent first
	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}

	return entries, nil
}

// resolveUsernames builds a username cache for every user referenced by the
// replayed set. A missing user leaves an empty name rather than failing the
// whole projection.
func (r *Reconstructor) resolveUsernames(ctx context.Context, transactions []*entity.Transaction) map[uint64]string {
	usernames := make(map[uint64]string)
	for _, txn := range transactions {
		ids := []uint64{txn.UserID}
		if txn.TargetUserID != nil {
			ids = append(ids, *txn.TargetUserID)
		}
		for _, id := range ids {
			if _, seen := usernames[id]; seen {
				continue
			}
			user, err := r.userRepo.GetByID(ctx, id)
			if err != nil {
				r.logger.Warn("Could not resolve username for history", map[string]any{
					"user_id": id,
					"error":   err.Error(),
				})
				usernames[id] = ""
				continue
			}
			usernames[id] = user.Username
		}
	}
	return usernames
}
