package user

import (
	"context"
	"time"

	"github.com/Ginu5952/Goldenia-Backend/internal/domain/entity"
	errs "github.com/Ginu5952/Goldenia-Backend/internal/domain/error"
)

// AdminUserView is one user row in the admin listing.
type AdminUserView struct {
	ID        uint64
	Username  string
	Email     string
	IsAdmin   bool
	CreatedAt time.Time
	Balances  []BalanceView
}

// RequireAdmin resolves the caller and fails with ErrForbidden unless the
// user has the admin flag.
func (u *UserUseCase) RequireAdmin(ctx context.Context, userID uint64) (*entity.User, error) {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !user.IsAdmin {
		u.logger.Warn("Non-admin attempted admin access", map[string]any{
			"user_id": userID,
		})
		return nil, errs.ErrForbidden
	}
	return user, nil
}

// ListUsers returns every user with their balances. Admin only; callers
// gate with RequireAdmin first.
func (u *UserUseCase) ListUsers(ctx context.Context) ([]AdminUserView, error) {
	users, err := u.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]AdminUserView, 0, len(users))
	for _, usr := range users {
		balances, err := u.balanceRepo.ListByUser(ctx, usr.ID)
		if err != nil {
			return nil, err
		}
		balanceViews := make([]BalanceView, 0, len(balances))
		for _, b := range balances {
			balanceViews = append(balanceViews, BalanceView{
				Currency: b.Currency,
				Amount:   entity.Round2(b.Amount),
				Symbol:   entity.CurrencySymbol(b.Currency),
			})
		}
		views = append(views, AdminUserView{
			ID:        usr.ID,
			Username:  usr.Username,
			Email:     usr.Email,
			IsAdmin:   usr.IsAdmin,
			CreatedAt: usr.CreatedAt,
			Balances:  balanceViews,
		})
	}
	return views, nil
}

// ListTransactions returns the full transaction log in chronological order.
// Admin only; callers gate with RequireAdmin first.
func (u *UserUseCase) ListTransactions(ctx context.Context) ([]*entity.Transaction, error) {
	return u.transactionRepo.ListAll(ctx)
}

// GetUser returns a single user's admin view by ID.
func (u *UserUseCase) GetUser(ctx context.Context, id uint64) (*AdminUserView, error) {
	usr, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	balances, err := u.balanceRepo.ListByUser(ctx, usr.ID)
	if err != nil {
		return nil, err
	}
	balanceViews := make([]BalanceView, 0, len(balances))
	for _, b := range balances {
		balanceViews = append(balanceViews, BalanceView{
			Currency: b.Currency,
			Amount:   entity.Round2(b.Amount),
			Symbol:   entity.CurrencySymbol(b.Currency),
		})
	}
	return &AdminUserView{
		ID:        usr.ID,
		Username:  usr.Username,
		Email:     usr.Email,
		IsAdmin:   usr.IsAdmin,
		CreatedAt: usr.CreatedAt,
		Balances:  balanceViews,
	}, nil
}
