package user

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/Ginu5952/Goldenia-Backend/internal/domain/entity"
)

// BalanceView is one currency holding for presentation, rounded to 2
// decimal places.
type BalanceView struct {
	Currency string
	Amount   decimal.Decimal
	Symbol   string
}

// Profile is a user's identity plus all per-currency balances.
type Profile struct {
	ID       uint64
	Username string
	Balances []BalanceView
}

// GetProfile returns the user's profile with every balance they hold.
func (u *UserUseCase) GetProfile(ctx context.Context, userID uint64) (*Profile, error) {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	balances, err := u.balanceRepo.ListByUser(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	views := make([]BalanceView, 0, len(balances))
	for _, b := range balances {
		views = append(views, BalanceView{
			Currency: b.Currency,
			Amount:   entity.Round2(b.Amount),
			Symbol:   entity.CurrencySymbol(b.Currency),
		})
	}

	return &Profile{
		ID:       user.ID,
		Username: user.Username,
		Balances: views,
	}, nil
}
