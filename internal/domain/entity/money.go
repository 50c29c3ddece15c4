package entity

import (
	"github.com/shopspring/decimal"

	errs "github.com/Ginu5952/Goldenia-Backend/internal/domain/error"
)

// DisplayDecimalPlaces is the precision used for amounts at presentation
// boundaries. Stored amounts keep full precision so repeated exchanges do
// not compound rounding error.
const DisplayDecimalPlaces = 2

// ValidateAmount checks that an amount is present and strictly positive.
// Zero and negative amounts are both rejected with ErrInvalidAmount.
func ValidateAmount(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return errs.ErrInvalidAmount
	}
	return nil
}

// Round2 rounds a monetary value to 2 decimal places for display.
// Internal balances are never stored rounded.
func Round2(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(DisplayDecimalPlaces)
}

// FormatAmount renders a monetary value with exactly 2 decimal places,
// e.g. 87.896 becomes "87.90" and 100 becomes "100.00".
func FormatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(DisplayDecimalPlaces)
}
