package ledger

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/Ginu5952/Goldenia-Backend/internal/domain/entity"
	errs "github.com/Ginu5952/Goldenia-Backend/internal/domain/error"
)

// Exchange converts amount of the user's currencyFrom balance into
// currencyTo at the configured rate. The converted amount is computed
// exactly (amount × rate, full precision); results are rounded to 2
// decimal places only for presentation.
func (s *Service) Exchange(ctx context.Context, userID uint64, amount decimal.Decimal, currencyFrom, currencyTo string) (*ExchangeResult, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	if currencyFrom == "" || currencyTo == "" {
		return nil, errs.ErrMissingField
	}
	if err := entity.ValidateAmount(amount); err != nil {
		return nil, err
	}
	if currencyFrom == currencyTo {
		return nil, errs.ErrSameCurrency
	}

	var result *ExchangeResult
	err := s.runInUnitOfWork(ctx, func(txCtx context.Context) error {
		user, err := s.uow.UserRepository(txCtx).GetByID(txCtx, userID)
		if err != nil {
			return err
		}

		// Resolve the user before the pair so an unknown caller reports
		// user-not-found rather than an unsupported pair
		rate, ok := s.rates.Rate(currencyFrom, currencyTo)
		if !ok {
			return errs.ErrUnsupportedPair
		}
		convertedAmount := amount.Mul(rate)

		// Both rows belong to the same user; lock in ascending currency
		// order for a consistent acquisition order across operations.
		balanceRepo := s.uow.BalanceRepository(txCtx)
		firstCurrency, secondCurrency := currencyFrom, currencyTo
		if secondCurrency < firstCurrency {
			firstCurrency, secondCurrency = secondCurrency, firstCurrency
		}
		locked := make(map[string]*entity.Balance, 2)
		for _, c := range []string{firstCurrency, secondCurrency} {
			balance, err := balanceRepo.LockOrCreate(txCtx, user.ID, c)
			if err != nil {
				return err
			}
			locked[c] = balance
		}

		balanceFrom := locked[currencyFrom]
		balanceTo := locked[currencyTo]

		if !balanceFrom.CanDeduct(amount) {
			return errs.NewInsufficientFundsError(
				user.ID, currencyFrom, entity.FormatAmount(amount), balanceFrom.DisplayAmount())
		}

		txn, err := entity.NewExchangeTransaction(user.ID, amount, convertedAmount, currencyFrom, currencyTo, s.timeProvider)
		if err != nil {
			return err
		}

		effects, _ := txn.EffectsFor(user.ID)
		for _, effect := range effects {
			if err := applyEffect(locked[effect.Currency], effect.Delta); err != nil {
				return err
			}
		}
		if err := balanceRepo.Save(txCtx, balanceFrom); err != nil {
			return err
		}
		if err := balanceRepo.Save(txCtx, balanceTo); err != nil {
			return err
		}

		if err := s.uow.TransactionRepository(txCtx).Create(txCtx, txn); err != nil {
			return err
		}

		result = &ExchangeResult{
			ConvertedAmount: entity.Round2(convertedAmount),
			BalanceFrom:     entity.Round2(balanceFrom.Amount),
			BalanceTo:       entity.Round2(balanceTo.Amount),
			CurrencyFrom:    currencyFrom,
			CurrencyTo:      currencyTo,
			CurrencySymbol:  entity.CurrencySymbol(currencyTo),
		}
		return nil
	})
	if err != nil {
		s.logger.Warn("Exchange rejected", map[string]any{
			"user_id":       userID,
			"amount":        amount.String(),
			"currency_from": currencyFrom,
			"currency_to":   currencyTo,
			"error":         err.Error(),
		})
		return nil, err
	}

	s.logger.Info("Exchange applied", map[string]any{
		"user_id":          userID,
		"amount":           amount.String(),
		"currency_from":    currencyFrom,
		"currency_to":      currencyTo,
		"converted_amount": result.ConvertedAmount.String(),
	})
	return result, nil
}
