package entity

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/Ginu5952/Goldenia-Backend/internal/domain/error"
	coremocks "github.com/Ginu5952/Goldenia-Backend/mocks/port/core"
)

func fixedTimeProvider(t *testing.T, at time.Time) *coremocks.MockTimeProvider {
	tp := coremocks.NewMockTimeProvider(t)
	tp.EXPECT().Now().Return(at).Maybe()
	return tp
}

func TestNewTopUpTransaction(t *testing.T) {
	fixedTime := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	t.Run("Valid top-up", func(t *testing.T) {
		tp := fixedTimeProvider(t, fixedTime)

		txn, err := NewTopUpTransaction(7, decimal.RequireFromString("100"), "USD", tp)

		require.NoError(t, err)
		assert.Equal(t, KindTopUp, txn.Kind)
		assert.Equal(t, uint64(7), txn.UserID)
		assert.Equal(t, "USD", txn.Currency)
		assert.Equal(t, "$", txn.CurrencySymbol)
		assert.Nil(t, txn.TargetUserID)
		assert.Equal(t, fixedTime, txn.CreatedAt)
	})

	t.Run("Zero amount rejected", func(t *testing.T) {
		tp := fixedTimeProvider(t, fixedTime)

		txn, err := NewTopUpTransaction(7, decimal.Zero, "USD", tp)

		assert.Nil(t, txn)
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})
}

func TestNewTransferTransaction(t *testing.T) {
	fixedTime := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	t.Run("Valid transfer", func(t *testing.T) {
		tp := fixedTimeProvider(t, fixedTime)

		txn, err := NewTransferTransaction(1, 2, decimal.RequireFromString("25"), "EUR", tp)

		require.NoError(t, err)
		assert.Equal(t, KindTransfer, txn.Kind)
		require.NotNil(t, txn.TargetUserID)
		assert.Equal(t, uint64(2), *txn.TargetUserID)
		assert.Equal(t, "€", txn.CurrencySymbol)
	})

	t.Run("Self-transfer rejected", func(t *testing.T) {
		tp := fixedTimeProvider(t, fixedTime)

		txn, err := NewTransferTransaction(1, 1, decimal.RequireFromString("25"), "EUR", tp)

		assert.Nil(t, txn)
		assert.ErrorIs(t, err, errs.ErrSelfTransfer)
	})

	t.Run("Negative amount rejected", func(t *testing.T) {
		tp := fixedTimeProvider(t, fixedTime)

		txn, err := NewTransferTransaction(1, 2, decimal.RequireFromString("-5"), "EUR", tp)

		assert.Nil(t, txn)
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})
}

func TestNewExchangeTransaction(t *testing.T) {
	fixedTime := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	t.Run("Valid exchange", func(t *testing.T) {
		tp := fixedTimeProvider(t, fixedTime)

		txn, err := NewExchangeTransaction(3,
			decimal.RequireFromString("100"), decimal.RequireFromString("87.896"),
			"USD", "EUR", tp)

		require.NoError(t, err)
		assert.Equal(t, KindExchange, txn.Kind)
		// The transaction currency is the source currency
		assert.Equal(t, "USD", txn.Currency)
		assert.Equal(t, "$", txn.CurrencySymbol)
		assert.Equal(t, "USD", txn.CurrencyFrom)
		assert.Equal(t, "EUR", txn.CurrencyTo)
		assert.Equal(t, "87.896", txn.ConvertedAmount.String())
	})

	t.Run("Same currency rejected", func(t *testing.T) {
		tp := fixedTimeProvider(t, fixedTime)

		txn, err := NewExchangeTransaction(3,
			decimal.RequireFromString("100"), decimal.RequireFromString("100"),
			"USD", "USD", tp)

		assert.Nil(t, txn)
		assert.ErrorIs(t, err, errs.ErrSameCurrency)
	})
}

func TestEffectsFor(t *testing.T) {
	fixedTime := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	t.Run("Top-up credits the currency", func(t *testing.T) {
		tp := fixedTimeProvider(t, fixedTime)
		txn, err := NewTopUpTransaction(1, decimal.RequireFromString("100"), "USD", tp)
		require.NoError(t, err)

		effects, status := txn.EffectsFor(1)

		require.Len(t, effects, 1)
		assert.Equal(t, "USD", effects[0].Currency)
		assert.Equal(t, "100", effects[0].Delta.String())
		assert.Equal(t, StatusCredited, status)
	})

	t.Run("Exchange debits source and credits target", func(t *testing.T) {
		tp := fixedTimeProvider(t, fixedTime)
		txn, err := NewExchangeTransaction(1,
			decimal.RequireFromString("100"), decimal.RequireFromString("87.896"),
			"USD", "EUR", tp)
		require.NoError(t, err)

		effects, status := txn.EffectsFor(1)

		require.Len(t, effects, 2)
		assert.Equal(t, "USD", effects[0].Currency)
		assert.Equal(t, "-100", effects[0].Delta.String())
		assert.Equal(t, "EUR", effects[1].Currency)
		assert.Equal(t, "87.896", effects[1].Delta.String())
		assert.Equal(t, StatusDebited, status)
	})

	t.Run("Transfer from the sender's side", func(t *testing.T) {
		tp := fixedTimeProvider(t, fixedTime)
		txn, err := NewTransferTransaction(1, 2, decimal.RequireFromString("30"), "USD", tp)
		require.NoError(t, err)

		effects, status := txn.EffectsFor(1)

		require.Len(t, effects, 1)
		assert.Equal(t, "-30", effects[0].Delta.String())
		assert.Equal(t, StatusDebited, status)
	})

	t.Run("Transfer from the recipient's side", func(t *testing.T) {
		tp := fixedTimeProvider(t, fixedTime)
		txn, err := NewTransferTransaction(1, 2, decimal.RequireFromString("30"), "USD", tp)
		require.NoError(t, err)

		effects, status := txn.EffectsFor(2)

		require.Len(t, effects, 1)
		assert.Equal(t, "30", effects[0].Delta.String())
		assert.Equal(t, StatusCredited, status)
	})

	t.Run("Sender and recipient effects conserve the total", func(t *testing.T) {
		tp := fixedTimeProvider(t, fixedTime)
		txn, err := NewTransferTransaction(1, 2, decimal.RequireFromString("30"), "USD", tp)
		require.NoError(t, err)

		senderEffects, _ := txn.EffectsFor(1)
		recipientEffects, _ := txn.EffectsFor(2)

		total := senderEffects[0].Delta.Add(recipientEffects[0].Delta)
		assert.True(t, total.IsZero())
	})
}

func TestIsCounterparty(t *testing.T) {
	fixedTime := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	tp := fixedTimeProvider(t, fixedTime)

	transfer, err := NewTransferTransaction(1, 2, decimal.RequireFromString("10"), "USD", tp)
	require.NoError(t, err)
	topUp, err := NewTopUpTransaction(2, decimal.RequireFromString("10"), "USD", tp)
	require.NoError(t, err)

	assert.True(t, transfer.IsCounterparty(2))
	assert.False(t, transfer.IsCounterparty(1))
	assert.False(t, topUp.IsCounterparty(2))
}
