package user

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Ginu5952/Goldenia-Backend/internal/domain/entity"
	errs "github.com/Ginu5952/Goldenia-Backend/internal/domain/error"
)

func TestRequireAdmin(t *testing.T) {
	ctx := context.Background()

	t.Run("Admin user passes", func(t *testing.T) {
		useCase, m := newUseCaseWithMocks(t)

		m.userRepo.EXPECT().GetByID(mock.Anything, uint64(1)).
			Return(&entity.User{ID: 1, Username: "admin", IsAdmin: true}, nil).Once()

		user, err := useCase.RequireAdmin(ctx, 1)

		require.NoError(t, err)
		assert.True(t, user.IsAdmin)
	})

	t.Run("Regular user is forbidden", func(t *testing.T) {
		useCase, m := newUseCaseWithMocks(t)

		m.userRepo.EXPECT().GetByID(mock.Anything, uint64(2)).
			Return(&entity.User{ID: 2, Username: "jinu"}, nil).Once()

		user, err := useCase.RequireAdmin(ctx, 2)

		assert.Nil(t, user)
		assert.ErrorIs(t, err, errs.ErrForbidden)
	})

	t.Run("Unknown user propagates not found", func(t *testing.T) {
		useCase, m := newUseCaseWithMocks(t)

		m.userRepo.EXPECT().GetByID(mock.Anything, uint64(9)).Return(nil, errs.ErrUserNotFound).Once()

		user, err := useCase.RequireAdmin(ctx, 9)

		assert.Nil(t, user)
		assert.ErrorIs(t, err, errs.ErrUserNotFound)
	})
}

func TestGetProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("Profile lists every held currency rounded for display", func(t *testing.T) {
		useCase, m := newUseCaseWithMocks(t)

		m.userRepo.EXPECT().GetByID(mock.Anything, uint64(1)).
			Return(&entity.User{ID: 1, Username: "jinu"}, nil).Once()
		m.balanceRepo.EXPECT().ListByUser(mock.Anything, uint64(1)).Return([]*entity.Balance{
			{UserID: 1, Currency: "USD", Amount: decimal.RequireFromString("50")},
			{UserID: 1, Currency: "EUR", Amount: decimal.RequireFromString("87.896")},
		}, nil).Once()

		profile, err := useCase.GetProfile(ctx, 1)

		require.NoError(t, err)
		assert.Equal(t, "jinu", profile.Username)
		require.Len(t, profile.Balances, 2)
		assert.Equal(t, "USD", profile.Balances[0].Currency)
		assert.Equal(t, "$", profile.Balances[0].Symbol)
		assert.Equal(t, "87.9", profile.Balances[1].Amount.String())
		assert.Equal(t, "€", profile.Balances[1].Symbol)
	})

	t.Run("User with no balances gets an empty list", func(t *testing.T) {
		useCase, m := newUseCaseWithMocks(t)

		m.userRepo.EXPECT().GetByID(mock.Anything, uint64(1)).
			Return(&entity.User{ID: 1, Username: "jinu"}, nil).Once()
		m.balanceRepo.EXPECT().ListByUser(mock.Anything, uint64(1)).Return([]*entity.Balance{}, nil).Once()

		profile, err := useCase.GetProfile(ctx, 1)

		require.NoError(t, err)
		assert.Empty(t, profile.Balances)
	})
}

func TestListUsers(t *testing.T) {
	ctx := context.Background()
	createdAt := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	t.Run("Every user comes back with their balances", func(t *testing.T) {
		useCase, m := newUseCaseWithMocks(t)

		m.userRepo.EXPECT().List(mock.Anything).Return([]*entity.User{
			{ID: 1, Username: "admin", Email: "admin@goldenia.com", IsAdmin: true, CreatedAt: createdAt},
			{ID: 2, Username: "jinu", Email: "jinu@example.com", CreatedAt: createdAt},
		}, nil).Once()
		m.balanceRepo.EXPECT().ListByUser(mock.Anything, uint64(1)).Return([]*entity.Balance{}, nil).Once()
		m.balanceRepo.EXPECT().ListByUser(mock.Anything, uint64(2)).Return([]*entity.Balance{
			{UserID: 2, Currency: "USD", Amount: decimal.RequireFromString("25")},
		}, nil).Once()

		views, err := useCase.ListUsers(ctx)

		require.NoError(t, err)
		require.Len(t, views, 2)
		assert.True(t, views[0].IsAdmin)
		assert.Empty(t, views[0].Balances)
		assert.Equal(t, "jinu", views[1].Username)
		require.Len(t, views[1].Balances, 1)
		assert.Equal(t, "25", views[1].Balances[0].Amount.String())
	})
}

func TestGetUser(t *testing.T) {
	ctx := context.Background()

	t.Run("Unknown ID propagates not found", func(t *testing.T) {
		useCase, m := newUseCaseWithMocks(t)

		m.userRepo.EXPECT().GetByID(mock.Anything, uint64(404)).Return(nil, errs.ErrUserNotFound).Once()

		view, err := useCase.GetUser(ctx, 404)

		assert.Nil(t, view)
		assert.ErrorIs(t, err, errs.ErrUserNotFound)
	})
}
