package entity

import (
	"time"

	"github.com/shopspring/decimal"

	errs "github.com/Ginu5952/Goldenia-Backend/internal/domain/error"
	coreport "github.com/Ginu5952/Goldenia-Backend/internal/domain/port/core"
)

// Kind identifies the type of a ledger transaction
type Kind string

// Transaction kinds
const (
	KindTopUp    Kind = "top_up"
	KindTransfer Kind = "transfer"
	KindExchange Kind = "exchange"
)

// Status tags a transaction from one user's point of view when replaying
// history: credited if the row increased their balance, debited otherwise
type Status string

// History statuses
const (
	StatusCredited Status = "credited"
	StatusDebited  Status = "debited"
)

// Transaction is an immutable record of a balance-affecting event. It carries
// enough denormalized detail (currency symbol, counterparty, conversion data)
// that history can be re-rendered from the log alone, without re-deriving
// business rules. Rows are never updated or deleted once created.
type Transaction struct {
	ID              uint64          // Monotonic identifier, assigned at creation
	UserID          uint64          // Acting user
	Kind            Kind            // top_up, transfer or exchange
	Amount          decimal.Decimal // Always positive, in the source currency
	Currency        string          // Source currency code
	CurrencySymbol  string          // Display glyph for Currency
	CurrencyFrom    string          // Exchange only: source currency
	CurrencyTo      string          // Exchange only: target currency
	ConvertedAmount decimal.Decimal // Exchange only: amount credited in CurrencyTo
	TargetUserID    *uint64         // Transfer only: receiving user
	CreatedAt       time.Time       // Sole ordering key for history replay
}

// NewTopUpTransaction records a top-up of amount into the user's currency balance.
func NewTopUpTransaction(userID uint64, amount decimal.Decimal, currency string, timeProvider coreport.TimeProvider) (*Transaction, error) {
	if err := ValidateAmount(amount); err != nil {
		return nil, err
	}

	return &Transaction{
		UserID:         userID,
		Kind:           KindTopUp,
		Amount:         amount,
		Currency:       currency,
		CurrencySymbol: CurrencySymbol(currency),
		CreatedAt:      timeProvider.Now(),
	}, nil
}

// NewTransferTransaction records a same-currency transfer from userID to targetID.
func NewTransferTransaction(userID, targetID uint64, amount decimal.Decimal, currency string, timeProvider coreport.TimeProvider) (*Transaction, error) {
	if err := ValidateAmount(amount); err != nil {
		return nil, err
	}
	if targetID == userID {
		return nil, errs.ErrSelfTransfer
	}

	return &Transaction{
		UserID:         userID,
		Kind:           KindTransfer,
		Amount:         amount,
		Currency:       currency,
		CurrencySymbol: CurrencySymbol(currency),
		TargetUserID:   &targetID,
		CreatedAt:      timeProvider.Now(),
	}, nil
}

// NewExchangeTransaction records a conversion of amount currencyFrom into
// convertedAmount currencyTo for one user. The transaction currency is the
// source currency, matching the convention that Amount is always expressed
// in the source currency.
func NewExchangeTransaction(userID uint64, amount, convertedAmount decimal.Decimal, currencyFrom, currencyTo string, timeProvider coreport.TimeProvider) (*Transaction, error) {
	if err := ValidateAmount(amount); err != nil {
		return nil, err
	}
	if err := ValidateAmount(convertedAmount); err != nil {
		return nil, err
	}
	if currencyFrom == currencyTo {
		return nil, errs.ErrSameCurrency
	}

	return &Transaction{
		UserID:          userID,
		Kind:            KindExchange,
		Amount:          amount,
		Currency:        currencyFrom,
		CurrencySymbol:  CurrencySymbol(currencyFrom),
		CurrencyFrom:    currencyFrom,
		CurrencyTo:      currencyTo,
		ConvertedAmount: convertedAmount,
		CreatedAt:       timeProvider.Now(),
	}, nil
}

// BalanceEffect is one currency movement caused by a transaction.
type BalanceEffect struct {
	Currency string
	Delta    decimal.Decimal // Positive for credits, negative for debits
}

// EffectsFor returns the balance movements this transaction causes from the
// point of view of the given user, plus the credited/debited status tag.
// Both the live ledger engine and the history reconstructor are backed by
// this single function, so the two interpretations of a transaction kind
// cannot drift apart.
func (t *Transaction) EffectsFor(userID uint64) ([]BalanceEffect, Status) {
	switch t.Kind {
	case KindTopUp:
		return []BalanceEffect{
			{Currency: t.Currency, Delta: t.Amount},
		}, StatusCredited

	case KindExchange:
		return []BalanceEffect{
			{Currency: t.CurrencyFrom, Delta: t.Amount.Neg()},
			{Currency: t.CurrencyTo, Delta: t.ConvertedAmount},
		}, StatusDebited

	case KindTransfer:
		if t.TargetUserID != nil && *t.TargetUserID == userID {
			return []BalanceEffect{
				{Currency: t.Currency, Delta: t.Amount},
			}, StatusCredited
		}
		return []BalanceEffect{
			{Currency: t.Currency, Delta: t.Amount.Neg()},
		}, StatusDebited
	}

	return nil, StatusDebited
}

// IsCounterparty reports whether the given user is the receiving side of a transfer.
func (t *Transaction) IsCounterparty(userID uint64) bool {
	return t.Kind == KindTransfer && t.TargetUserID != nil && *t.TargetUserID == userID
}
