package history

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Ginu5952/Goldenia-Backend/internal/domain/entity"
	errs "github.com/Ginu5952/Goldenia-Backend/internal/domain/error"
	"github.com/Ginu5952/Goldenia-Backend/internal/infrastructure/adapter/logger"
	persistencemocks "github.com/Ginu5952/Goldenia-Backend/mocks/port/persistence"
)

func newReconstructorWithMocks(t *testing.T) (*Reconstructor, *persistencemocks.MockTransactionRepository, *persistencemocks.MockUserRepository) {
	txns := persistencemocks.NewMockTransactionRepository(t)
	users := persistencemocks.NewMockUserRepository(t)
	return NewReconstructor(txns, users, logger.NewNoopLogger()), txns, users
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func uintPtr(v uint64) *uint64 {
	return &v
}

func TestGetHistory(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	t.Run("Replays a mixed log with a running per-currency balance", func(t *testing.T) {
		reconstructor, txnRepo, userRepo := newReconstructorWithMocks(t)

		// Chronological log: top up 200 USD, exchange 100 USD into EUR,
		// send 30 USD to mia, receive 15 USD back from her.
		log := []*entity.Transaction{
			{
				ID: 1, UserID: 1, Kind: entity.KindTopUp,
				Amount: dec("200"), Currency: "USD", CurrencySymbol: "$",
				CreatedAt: base,
			},
			{
				ID: 2, UserID: 1, Kind: entity.KindExchange,
				Amount: dec("100"), Currency: "USD", CurrencySymbol: "$",
				CurrencyFrom: "USD", CurrencyTo: "EUR", ConvertedAmount: dec("87.896"),
				CreatedAt: base.Add(time.Minute),
			},
			{
				ID: 3, UserID: 1, Kind: entity.KindTransfer,
				Amount: dec("30"), Currency: "USD", CurrencySymbol: "$",
				TargetUserID: uintPtr(2),
				CreatedAt:    base.Add(2 * time.Minute),
			},
			{
				ID: 4, UserID: 2, Kind: entity.KindTransfer,
				Amount: dec("15"), Currency: "USD", CurrencySymbol: "$",
				TargetUserID: uintPtr(1),
				CreatedAt:    base.Add(3 * time.Minute),
			},
		}
		txnRepo.EXPECT().ListForUser(mock.Anything, uint64(1)).Return(log, nil).Once()
		userRepo.EXPECT().GetByID(mock.Anything, uint64(1)).Return(&entity.User{ID: 1, Username: "jinu"}, nil).Once()
		userRepo.EXPECT().GetByID(mock.Anything, uint64(2)).Return(&entity.User{ID: 2, Username: "mia"}, nil).Once()

		entries, err := reconstructor.GetHistory(ctx, 1)

		require.NoError(t, err)
		require.Len(t, entries, 4)

		// Most recent first
		assert.Equal(t, uint64(4), entries[0].ID)
		assert.Equal(t, uint64(3), entries[1].ID)
		assert.Equal(t, uint64(2), entries[2].ID)
		assert.Equal(t, uint64(1), entries[3].ID)

		topUp := entries[3]
		assert.Equal(t, entity.KindTopUp, topUp.Kind)
		assert.Equal(t, entity.StatusCredited, topUp.Status)
		assert.Equal(t, "200", topUp.Balance.String())
		assert.Equal(t, "-", topUp.Counterparty)

		exchange := entries[2]
		assert.Equal(t, entity.StatusDebited, exchange.Status)
		assert.Equal(t, "100", exchange.Balance.String())
		require.NotNil(t, exchange.ConvertedAmount)
		assert.Equal(t, "87.9", exchange.ConvertedAmount.String())
		assert.Equal(t, "USD", exchange.CurrencyFrom)
		assert.Equal(t, "EUR", exchange.CurrencyTo)

		sent := entries[1]
		assert.Equal(t, entity.StatusDebited, sent.Status)
		assert.Equal(t, "70", sent.Balance.String())
		require.NotNil(t, sent.TargetUserID)
		assert.Equal(t, uint64(2), *sent.TargetUserID)
		assert.Equal(t, "mia", sent.TargetUsername)
		assert.Equal(t, "mia", sent.Counterparty)

		received := entries[0]
		assert.Equal(t, entity.StatusCredited, received.Status)
		assert.Equal(t, "85", received.Balance.String())
		assert.Nil(t, received.TargetUserID)
		assert.Equal(t, "mia", received.Counterparty)
	})

	t.Run("Accumulator starts at zero, not at the live balance", func(t *testing.T) {
		reconstructor, txnRepo, userRepo := newReconstructorWithMocks(t)

		log := []*entity.Transaction{
			{
				ID: 7, UserID: 1, Kind: entity.KindTopUp,
				Amount: dec("50"), Currency: "EUR", CurrencySymbol: "€",
				CreatedAt: base,
			},
		}
		txnRepo.EXPECT().ListForUser(mock.Anything, uint64(1)).Return(log, nil).Once()
		userRepo.EXPECT().GetByID(mock.Anything, uint64(1)).Return(&entity.User{ID: 1, Username: "jinu"}, nil).Once()

		entries, err := reconstructor.GetHistory(ctx, 1)

		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "50", entries[0].Balance.String())
	})

	t.Run("Replaying the same log twice yields identical output", func(t *testing.T) {
		reconstructor, txnRepo, userRepo := newReconstructorWithMocks(t)

		log := []*entity.Transaction{
			{
				ID: 1, UserID: 1, Kind: entity.KindTopUp,
				Amount: dec("200"), Currency: "USD", CurrencySymbol: "$",
				CreatedAt: base,
			},
			{
				ID: 2, UserID: 1, Kind: entity.KindTransfer,
				Amount: dec("30"), Currency: "USD", CurrencySymbol: "$",
				TargetUserID: uintPtr(2),
				CreatedAt:    base.Add(time.Minute),
			},
		}
		txnRepo.EXPECT().ListForUser(mock.Anything, uint64(1)).Return(log, nil).Times(2)
		userRepo.EXPECT().GetByID(mock.Anything, uint64(1)).Return(&entity.User{ID: 1, Username: "jinu"}, nil).Times(2)
		userRepo.EXPECT().GetByID(mock.Anything, uint64(2)).Return(&entity.User{ID: 2, Username: "mia"}, nil).Times(2)

		first, err := reconstructor.GetHistory(ctx, 1)
		require.NoError(t, err)
		second, err := reconstructor.GetHistory(ctx, 1)
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("Empty log yields an empty list", func(t *testing.T) {
		reconstructor, txnRepo, _ := newReconstructorWithMocks(t)

		txnRepo.EXPECT().ListForUser(mock.Anything, uint64(1)).Return([]*entity.Transaction{}, nil).Once()

		entries, err := reconstructor.GetHistory(ctx, 1)

		require.NoError(t, err)
		assert.NotNil(t, entries)
		assert.Empty(t, entries)
	})

	t.Run("Unresolvable counterparty leaves an empty name", func(t *testing.T) {
		reconstructor, txnRepo, userRepo := newReconstructorWithMocks(t)

		log := []*entity.Transaction{
			{
				ID: 9, UserID: 1, Kind: entity.KindTransfer,
				Amount: dec("10"), Currency: "USD", CurrencySymbol: "$",
				TargetUserID: uintPtr(42),
				CreatedAt:    base,
			},
		}
		txnRepo.EXPECT().ListForUser(mock.Anything, uint64(1)).Return(log, nil).Once()
		userRepo.EXPECT().GetByID(mock.Anything, uint64(1)).Return(&entity.User{ID: 1, Username: "jinu"}, nil).Once()
		userRepo.EXPECT().GetByID(mock.Anything, uint64(42)).Return(nil, errs.ErrUserNotFound).Once()

		entries, err := reconstructor.GetHistory(ctx, 1)

		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "", entries[0].TargetUsername)
	})

	t.Run("Log read failure is returned", func(t *testing.T) {
		reconstructor, txnRepo, _ := newReconstructorWithMocks(t)

		txnRepo.EXPECT().ListForUser(mock.Anything, uint64(1)).Return(nil, errs.ErrDatabaseConnection).Once()

		entries, err := reconstructor.GetHistory(ctx, 1)

		assert.Nil(t, entries)
		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
	})
}
