package ledger

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/Ginu5952/Goldenia-Backend/internal/domain/entity"
	coreport "github.com/Ginu5952/Goldenia-Backend/internal/domain/port/core"
	"github.com/Ginu5952/Goldenia-Backend/internal/domain/port/persistence"
)

// Service is the ledger engine. It validates and applies top-up, transfer
// and exchange operations, mutating balance rows and appending to the
// transaction log inside one atomic unit of work per operation.
//
// The service holds no mutable state of its own and is safe to invoke
// concurrently from many request-handling goroutines; the backing store's
// row locks serialize racing operations on the same balance rows.
type Service struct {
	uow          persistence.UnitOfWork
	rates        *RateTable
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewService creates a ledger engine with an injected rate table.
func NewService(
	uow persistence.UnitOfWork,
	rates *RateTable,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Service {
	return &Service{
		uow:          uow,
		rates:        rates,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// TopUpResult is the outcome of a successful top-up. Monetary fields are
// rounded to 2 decimal places for the caller.
type TopUpResult struct {
	NewBalance     decimal.Decimal
	Currency       string
	CurrencySymbol string
}

// TransferResult is the outcome of a successful transfer.
type TransferResult struct {
	NewBalance     decimal.Decimal // Actor's post-operation balance in Currency
	Currency       string
	CurrencySymbol string
	Amount         decimal.Decimal
	TargetUserID   uint64
	TargetUsername string
}

// ExchangeResult is the outcome of a successful exchange.
type ExchangeResult struct {
	ConvertedAmount decimal.Decimal
	BalanceFrom     decimal.Decimal
	BalanceTo       decimal.Decimal
	CurrencyFrom    string
	CurrencyTo      string
	CurrencySymbol  string // Symbol of the target currency
}

// runInUnitOfWork begins a transaction, runs fn inside it and commits on
// success. Any error from fn or from the commit itself rolls the whole
// unit back, so a transaction record is never persisted without its
// balance effects or vice versa.
func (s *Service) runInUnitOfWork(ctx context.Context, fn func(txCtx context.Context) error) error {
	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin unit of work: %w", err)
	}

	if err := fn(txCtx); err != nil {
		if rbErr := s.uow.Rollback(txCtx); rbErr != nil {
			s.logger.Error("Failed to roll back unit of work", map[string]any{
				"error": rbErr.Error(),
			})
		}
		return err
	}

	if err := s.uow.Commit(txCtx); err != nil {
		if rbErr := s.uow.Rollback(txCtx); rbErr != nil {
			s.logger.Error("Failed to roll back unit of work after commit failure", map[string]any{
				"error": rbErr.Error(),
			})
		}
		return fmt.Errorf("failed to commit unit of work: %w", err)
	}

	return nil
}

// applyEffect applies one balance movement to a locked balance row:
// positive deltas credit, negative deltas debit. Debits fail with
// ErrInsufficientFunds instead of driving the row negative.
func applyEffect(balance *entity.Balance, delta decimal.Decimal) error {
	if delta.IsNegative() {
		return balance.Debit(delta.Neg())
	}
	balance.Credit(delta)
	return nil
}
