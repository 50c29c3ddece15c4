package ledger

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/Ginu5952/Goldenia-Backend/internal/domain/entity"
	errs "github.com/Ginu5952/Goldenia-Backend/internal/domain/error"
)

// TopUp adds funds to a user's balance in the given currency. When currency
// is empty, the user's default currency is used. The balance row is created
// zero-initialized if the user has never held the currency.
func (s *Service) TopUp(ctx context.Context, userID uint64, amount decimal.Decimal, currency string) (*TopUpResult, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	if err := entity.ValidateAmount(amount); err != nil {
		return nil, err
	}

	var result *TopUpResult
	err := s.runInUnitOfWork(ctx, func(txCtx context.Context) error {
		user, err := s.uow.UserRepository(txCtx).GetByID(txCtx, userID)
		if err != nil {
			return err
		}

		if currency == "" {
			currency = user.Currency
		}

		balanceRepo := s.uow.BalanceRepository(txCtx)
		balance, err := balanceRepo.LockOrCreate(txCtx, user.ID, currency)
		if err != nil {
			return err
		}

		txn, err := entity.NewTopUpTransaction(user.ID, amount, currency, s.timeProvider)
		if err != nil {
			return err
		}

		effects, _ := txn.EffectsFor(user.ID)
		if err := applyEffect(balance, effects[0].Delta); err != nil {
			return err
		}

		if err := balanceRepo.Save(txCtx, balance); err != nil {
			return err
		}
		if err := s.uow.TransactionRepository(txCtx).Create(txCtx, txn); err != nil {
			return err
		}

		result = &TopUpResult{
			NewBalance:     entity.Round2(balance.Amount),
			Currency:       currency,
			CurrencySymbol: entity.CurrencySymbol(currency),
		}
		return nil
	})
	if err != nil {
		s.logger.Warn("Top-up rejected", map[string]any{
			"user_id":  userID,
			"amount":   amount.String(),
			"currency": currency,
			"error":    err.Error(),
		})
		return nil, err
	}

	s.logger.Info("Top-up applied", map[string]any{
		"user_id":     userID,
		"amount":      amount.String(),
		"currency":    result.Currency,
		"new_balance": result.NewBalance.String(),
	})
	return result, nil
}
