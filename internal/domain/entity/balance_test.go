package entity

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/Ginu5952/Goldenia-Backend/internal/domain/error"
)

func TestNewBalance(t *testing.T) {
	balance := NewBalance(42, "EUR")

	assert.Equal(t, uint64(42), balance.UserID)
	assert.Equal(t, "EUR", balance.Currency)
	assert.True(t, balance.Amount.IsZero())
}

func TestBalanceCredit(t *testing.T) {
	balance := NewBalance(1, "USD")

	balance.Credit(decimal.RequireFromString("100.50"))
	balance.Credit(decimal.RequireFromString("0.25"))

	assert.Equal(t, "100.75", balance.Amount.String())
}

func TestBalanceDebit(t *testing.T) {
	t.Run("Sufficient funds", func(t *testing.T) {
		balance := NewBalance(1, "USD")
		balance.Credit(decimal.RequireFromString("100"))

		err := balance.Debit(decimal.RequireFromString("40.50"))

		require.NoError(t, err)
		assert.Equal(t, "59.5", balance.Amount.String())
	})

	t.Run("Exact balance drains to zero", func(t *testing.T) {
		balance := NewBalance(1, "USD")
		balance.Credit(decimal.RequireFromString("25"))

		err := balance.Debit(decimal.RequireFromString("25"))

		require.NoError(t, err)
		assert.True(t, balance.Amount.IsZero())
	})

	t.Run("Insufficient funds leaves balance untouched", func(t *testing.T) {
		balance := NewBalance(1, "USD")
		balance.Credit(decimal.RequireFromString("10"))

		err := balance.Debit(decimal.RequireFromString("10.01"))

		assert.ErrorIs(t, err, errs.ErrInsufficientFunds)
		assert.Equal(t, "10", balance.Amount.String())
	})
}

func TestBalanceCanDeduct(t *testing.T) {
	balance := NewBalance(1, "USD")
	balance.Credit(decimal.RequireFromString("50"))

	assert.True(t, balance.CanDeduct(decimal.RequireFromString("50")))
	assert.True(t, balance.CanDeduct(decimal.RequireFromString("0.01")))
	assert.False(t, balance.CanDeduct(decimal.RequireFromString("50.01")))
}

func TestBalanceDisplayAmount(t *testing.T) {
	balance := NewBalance(1, "EUR")
	balance.Credit(decimal.RequireFromString("87.896"))

	assert.Equal(t, "87.90", balance.DisplayAmount())
	// Full precision survives underneath the display rounding
	assert.Equal(t, "87.896", balance.Amount.String())
}
