package ledger

import (
	"github.com/shopspring/decimal"
)

// currencyPair is an ordered (from, to) currency pair. Ordering matters:
// USD→EUR and EUR→USD are independent entries and the table is not assumed
// to be reciprocal.
type currencyPair struct {
	From string
	To   string
}

// RateEntry is one configured conversion rate for an ordered currency pair.
type RateEntry struct {
	From string
	To   string
	Rate decimal.Decimal
}

// RateTable holds the static exchange rates the engine converts with.
// It is built once at engine construction from configuration; the table is
// the single source of truth for conversion and is never inverse-derived.
type RateTable struct {
	rates map[currencyPair]decimal.Decimal
}

// NewRateTable builds a rate table from configured entries. Entries with a
// non-positive rate or an identical from/to pair are skipped.
func NewRateTable(entries []RateEntry) *RateTable {
	rates := make(map[currencyPair]decimal.Decimal, len(entries))
	for _, e := range entries {
		if e.From == e.To || e.Rate.LessThanOrEqual(decimal.Zero) {
			continue
		}
		rates[currencyPair{From: e.From, To: e.To}] = e.Rate
	}
	return &RateTable{rates: rates}
}

// DefaultRateTable returns the rates used when no configuration overrides them.
func DefaultRateTable() *RateTable {
	return NewRateTable([]RateEntry{
		{From: "USD", To: "EUR", Rate: decimal.RequireFromString("0.87896")},
		{From: "EUR", To: "USD", Rate: decimal.RequireFromString("1.1379")},
	})
}

// Rate returns the multiplier for converting from one currency to another.
// The second return is false when the ordered pair has no configured rate.
func (t *RateTable) Rate(from, to string) (decimal.Decimal, bool) {
	rate, ok := t.rates[currencyPair{From: from, To: to}]
	return rate, ok
}
