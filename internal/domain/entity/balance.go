package entity

import (
	"github.com/shopspring/decimal"

	errs "github.com/Ginu5952/Goldenia-Backend/internal/domain/error"
)

// Balance is a user's held quantity of one currency. There is at most one
// Balance per (user, currency) pair; rows are created lazily with a zero
// amount the first time a user touches a currency and are never deleted.
type Balance struct {
	ID       uint64          // Row identifier
	UserID   uint64          // Owning user
	Currency string          // 3-letter currency code
	Amount   decimal.Decimal // Held quantity, full precision, never negative after commit
}

// NewBalance creates a zero-initialized balance for the given user and currency.
func NewBalance(userID uint64, currency string) *Balance {
	return &Balance{
		UserID:   userID,
		Currency: currency,
		Amount:   decimal.Zero,
	}
}

// Credit adds a positive amount to the balance.
func (b *Balance) Credit(amount decimal.Decimal) {
	b.Amount = b.Amount.Add(amount)
}

// Debit subtracts the amount from the balance. Returns ErrInsufficientFunds
// if the balance would go negative; the balance is left untouched in that case.
func (b *Balance) Debit(amount decimal.Decimal) error {
	if b.Amount.LessThan(amount) {
		return errs.ErrInsufficientFunds
	}
	b.Amount = b.Amount.Sub(amount)
	return nil
}

// CanDeduct reports whether the balance covers the given amount.
func (b *Balance) CanDeduct(amount decimal.Decimal) bool {
	return b.Amount.GreaterThanOrEqual(amount)
}

// DisplayAmount returns the amount formatted with 2 decimal places.
func (b *Balance) DisplayAmount() string {
	return FormatAmount(b.Amount)
}
