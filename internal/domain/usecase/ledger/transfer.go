package ledger

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/Ginu5952/Goldenia-Backend/internal/domain/entity"
	errs "github.com/Ginu5952/Goldenia-Backend/internal/domain/error"
)

// Transfer moves amount from the actor to the target user in the same
// currency. The debit, the credit and the log append commit as one unit;
// no fee is taken and the amount moved is exact.
func (s *Service) Transfer(ctx context.Context, actorID, targetID uint64, amount decimal.Decimal, currency string) (*TransferResult, error) {
	if actorID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	if targetID == 0 || currency == "" || amount.IsZero() {
		return nil, errs.ErrMissingField
	}
	if err := entity.ValidateAmount(amount); err != nil {
		return nil, err
	}
	if targetID == actorID {
		return nil, errs.ErrSelfTransfer
	}

	var result *TransferResult
	err := s.runInUnitOfWork(ctx, func(txCtx context.Context) error {
		userRepo := s.uow.UserRepository(txCtx)

		actor, err := userRepo.GetByID(txCtx, actorID)
		if err != nil {
			return err
		}
		target, err := userRepo.GetByID(txCtx, targetID)
		if err != nil {
			return err
		}

		// Lock both rows in ascending user ID order so that concurrent
		// opposite-direction transfers cannot deadlock.
		balanceRepo := s.uow.BalanceRepository(txCtx)
		first, second := actor.ID, target.ID
		if second < first {
			first, second = second, first
		}
		locked := make(map[uint64]*entity.Balance, 2)
		for _, id := range []uint64{first, second} {
			balance, err := balanceRepo.LockOrCreate(txCtx, id, currency)
			if err != nil {
				return err
			}
			locked[id] = balance
		}

		actorBalance := locked[actor.ID]
		targetBalance := locked[target.ID]

		if !actorBalance.CanDeduct(amount) {
			return errs.NewInsufficientFundsError(
				actor.ID, currency, entity.FormatAmount(amount), actorBalance.DisplayAmount())
		}

		txn, err := entity.NewTransferTransaction(actor.ID, target.ID, amount, currency, s.timeProvider)
		if err != nil {
			return err
		}

		for _, side := range []struct {
			userID  uint64
			balance *entity.Balance
		}{
			{actor.ID, actorBalance},
			{target.ID, targetBalance},
		} {
			effects, _ := txn.EffectsFor(side.userID)
			for _, effect := range effects {
				if err := applyEffect(side.balance, effect.Delta); err != nil {
					return err
				}
			}
			if err := balanceRepo.Save(txCtx, side.balance); err != nil {
				return err
			}
		}

		if err := s.uow.TransactionRepository(txCtx).Create(txCtx, txn); err != nil {
			return err
		}

		result = &TransferResult{
			NewBalance:     entity.Round2(actorBalance.Amount),
			Currency:       currency,
			CurrencySymbol: entity.CurrencySymbol(currency),
			Amount:         entity.Round2(amount),
			TargetUserID:   target.ID,
			TargetUsername: target.Username,
		}
		return nil
	})
	if err != nil {
		s.logger.Warn("Transfer rejected", map[string]any{
			"actor_id":  actorID,
			"target_id": targetID,
			"amount":    amount.String(),
			"currency":  currency,
			"error":     err.Error(),
		})
		return nil, err
	}

	s.logger.Info("Transfer applied", map[string]any{
		"actor_id":    actorID,
		"target_id":   targetID,
		"amount":      amount.String(),
		"currency":    currency,
		"new_balance": result.NewBalance.String(),
	})
	return result, nil
}
