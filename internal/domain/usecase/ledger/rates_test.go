package ledger

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateTable(t *testing.T) {
	t.Run("Configured pair resolves", func(t *testing.T) {
		table := DefaultRateTable()

		rate, ok := table.Rate("USD", "EUR")

		require.True(t, ok)
		assert.Equal(t, "0.87896", rate.String())
	})

	t.Run("Reverse direction is its own entry, not the inverse", func(t *testing.T) {
		table := DefaultRateTable()

		forward, ok := table.Rate("USD", "EUR")
		require.True(t, ok)
		backward, ok := table.Rate("EUR", "USD")
		require.True(t, ok)

		assert.Equal(t, "1.1379", backward.String())
		// 0.87896 * 1.1379 != 1, the table is deliberately asymmetric
		assert.False(t, forward.Mul(backward).Equal(decimal.NewFromInt(1)))
	})

	t.Run("Unconfigured pair is unsupported", func(t *testing.T) {
		table := DefaultRateTable()

		_, ok := table.Rate("USD", "GBP")
		assert.False(t, ok)

		_, ok = table.Rate("EUR", "EUR")
		assert.False(t, ok)
	})

	t.Run("Malformed entries are skipped", func(t *testing.T) {
		table := NewRateTable([]RateEntry{
			{From: "USD", To: "USD", Rate: decimal.NewFromInt(1)},
			{From: "USD", To: "GBP", Rate: decimal.Zero},
			{From: "GBP", To: "USD", Rate: decimal.RequireFromString("-2")},
			{From: "USD", To: "JPY", Rate: decimal.RequireFromString("155.31")},
		})

		_, ok := table.Rate("USD", "USD")
		assert.False(t, ok)
		_, ok = table.Rate("USD", "GBP")
		assert.False(t, ok)
		_, ok = table.Rate("GBP", "USD")
		assert.False(t, ok)

		rate, ok := table.Rate("USD", "JPY")
		require.True(t, ok)
		assert.Equal(t, "155.31", rate.String())
	})
}
