package ledger

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Ginu5952/Goldenia-Backend/internal/domain/entity"
	errs "github.com/Ginu5952/Goldenia-Backend/internal/domain/error"
)

func TestTransfer(t *testing.T) {
	ctx := context.Background()
	actor := &entity.User{ID: 5, Username: "jinu", Currency: "USD"}
	target := &entity.User{ID: 2, Username: "mia", Currency: "USD"}

	t.Run("Successful transfer debits actor and credits target", func(t *testing.T) {
		service, m := newServiceWithMocks(t, DefaultRateTable())
		m.expectCommit()

		balances := map[uint64]*entity.Balance{
			5: balanceWith(5, "USD", "100"),
			2: balanceWith(2, "USD", "10"),
		}
		var lockOrder []uint64
		m.userRepo.EXPECT().GetByID(mock.Anything, uint64(5)).Return(actor, nil).Once()
		m.userRepo.EXPECT().GetByID(mock.Anything, uint64(2)).Return(target, nil).Once()
		m.balances.EXPECT().LockOrCreate(mock.Anything, mock.Anything, "USD").RunAndReturn(
			func(_ context.Context, userID uint64, _ string) (*entity.Balance, error) {
				lockOrder = append(lockOrder, userID)
				return balances[userID], nil
			}).Times(2)
		m.balances.EXPECT().Save(mock.Anything, mock.MatchedBy(func(b *entity.Balance) bool {
			return b.UserID == 5 && b.Amount.Equal(decimal.RequireFromString("70"))
		})).Return(nil).Once()
		m.balances.EXPECT().Save(mock.Anything, mock.MatchedBy(func(b *entity.Balance) bool {
			return b.UserID == 2 && b.Amount.Equal(decimal.RequireFromString("40"))
		})).Return(nil).Once()
		m.txns.EXPECT().Create(mock.Anything, mock.MatchedBy(func(txn *entity.Transaction) bool {
			return txn.Kind == entity.KindTransfer &&
				txn.UserID == 5 &&
				txn.TargetUserID != nil && *txn.TargetUserID == 2 &&
				txn.Amount.Equal(decimal.RequireFromString("30"))
		})).Return(nil).Once()

		result, err := service.Transfer(ctx, 5, 2, decimal.RequireFromString("30"), "USD")

		require.NoError(t, err)
		assert.Equal(t, "70", result.NewBalance.String())
		assert.Equal(t, "USD", result.Currency)
		assert.Equal(t, uint64(2), result.TargetUserID)
		assert.Equal(t, "mia", result.TargetUsername)

		// Lower user ID locked first even though the actor's ID is higher
		assert.Equal(t, []uint64{2, 5}, lockOrder)
	})

	t.Run("Insufficient funds leaves both balances untouched", func(t *testing.T) {
		service, m := newServiceWithMocks(t, DefaultRateTable())
		m.expectRollback()

		actorBalance := balanceWith(5, "USD", "20")
		targetBalance := balanceWith(2, "USD", "10")
		m.userRepo.EXPECT().GetByID(mock.Anything, uint64(5)).Return(actor, nil).Once()
		m.userRepo.EXPECT().GetByID(mock.Anything, uint64(2)).Return(target, nil).Once()
		m.balances.EXPECT().LockOrCreate(mock.Anything, uint64(2), "USD").Return(targetBalance, nil).Once()
		m.balances.EXPECT().LockOrCreate(mock.Anything, uint64(5), "USD").Return(actorBalance, nil).Once()

		result, err := service.Transfer(ctx, 5, 2, decimal.RequireFromString("30"), "USD")

		assert.Nil(t, result)
		require.ErrorIs(t, err, errs.ErrInsufficientFunds)

		var detailed *errs.InsufficientFundsError
		require.ErrorAs(t, err, &detailed)
		assert.Equal(t, uint64(5), detailed.UserID)
		assert.Equal(t, "USD", detailed.Currency)
		assert.Equal(t, "20.00", detailed.CurrBalance)

		assert.Equal(t, "20", actorBalance.Amount.String())
		assert.Equal(t, "10", targetBalance.Amount.String())
	})

	t.Run("Missing fields rejected", func(t *testing.T) {
		service, _ := newServiceWithMocks(t, DefaultRateTable())

		tests := []struct {
			name     string
			targetID uint64
			amount   decimal.Decimal
			currency string
		}{
			{"Zero target", 0, decimal.RequireFromString("10"), "USD"},
			{"Empty currency", 2, decimal.RequireFromString("10"), ""},
			{"Zero amount", 2, decimal.Zero, "USD"},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				result, err := service.Transfer(ctx, 5, tt.targetID, tt.amount, tt.currency)
				assert.Nil(t, result)
				assert.ErrorIs(t, err, errs.ErrMissingField)
			})
		}
	})

	t.Run("Negative amount rejected", func(t *testing.T) {
		service, _ := newServiceWithMocks(t, DefaultRateTable())

		result, err := service.Transfer(ctx, 5, 2, decimal.RequireFromString("-5"), "USD")

		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})

	t.Run("Self transfer rejected", func(t *testing.T) {
		service, _ := newServiceWithMocks(t, DefaultRateTable())

		result, err := service.Transfer(ctx, 5, 5, decimal.RequireFromString("10"), "USD")

		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrSelfTransfer)
	})

	t.Run("Unknown target user rolls the unit back", func(t *testing.T) {
		service, m := newServiceWithMocks(t, DefaultRateTable())
		m.expectRollback()

		m.userRepo.EXPECT().GetByID(mock.Anything, uint64(5)).Return(actor, nil).Once()
		m.userRepo.EXPECT().GetByID(mock.Anything, uint64(99)).Return(nil, errs.ErrUserNotFound).Once()

		result, err := service.Transfer(ctx, 5, 99, decimal.RequireFromString("10"), "USD")

		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrUserNotFound)
	})
}
