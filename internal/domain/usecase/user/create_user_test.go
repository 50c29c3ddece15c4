package user

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/Ginu5952/Goldenia-Backend/internal/domain/entity"
	errs "github.com/Ginu5952/Goldenia-Backend/internal/domain/error"
	"github.com/Ginu5952/Goldenia-Backend/internal/infrastructure/adapter/logger"
	coremocks "github.com/Ginu5952/Goldenia-Backend/mocks/port/core"
	persistencemocks "github.com/Ginu5952/Goldenia-Backend/mocks/port/persistence"
)

type userMocks struct {
	userRepo    *persistencemocks.MockUserRepository
	balanceRepo *persistencemocks.MockBalanceRepository
	txnRepo     *persistencemocks.MockTransactionRepository
}

func newUseCaseWithMocks(t *testing.T) (*UserUseCase, *userMocks) {
	m := &userMocks{
		userRepo:    persistencemocks.NewMockUserRepository(t),
		balanceRepo: persistencemocks.NewMockBalanceRepository(t),
		txnRepo:     persistencemocks.NewMockTransactionRepository(t),
	}
	timeProvider := coremocks.NewMockTimeProvider(t)
	timeProvider.EXPECT().Now().Return(time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)).Maybe()

	return NewUserUseCase(m.userRepo, m.balanceRepo, m.txnRepo, timeProvider, logger.NewNoopLogger()), m
}

func TestCreateUser(t *testing.T) {
	ctx := context.Background()

	t.Run("Successful signup stores a hashed password", func(t *testing.T) {
		useCase, m := newUseCaseWithMocks(t)

		m.userRepo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
			return u.Username == "jinu" &&
				u.Email == "jinu@example.com" &&
				u.PasswordHash != "" &&
				u.PasswordHash != "secret123"
		})).Return(nil).Once()

		user, err := useCase.CreateUser(ctx, "jinu", "jinu@example.com", "secret123")

		require.NoError(t, err)
		assert.Equal(t, "jinu", user.Username)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret123")))
	})

	t.Run("Missing fields rejected", func(t *testing.T) {
		useCase, _ := newUseCaseWithMocks(t)

		tests := []struct {
			name     string
			username string
			email    string
			password string
		}{
			{"No username", "", "jinu@example.com", "secret123"},
			{"No email", "jinu", "", "secret123"},
			{"No password", "jinu", "jinu@example.com", ""},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				user, err := useCase.CreateUser(ctx, tt.username, tt.email, tt.password)
				assert.Nil(t, user)
				assert.ErrorIs(t, err, errs.ErrMissingField)
			})
		}
	})

	t.Run("Duplicate username or email surfaces as conflict", func(t *testing.T) {
		useCase, m := newUseCaseWithMocks(t)

		m.userRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(errs.ErrDuplicateUser).Once()

		user, err := useCase.CreateUser(ctx, "jinu", "jinu@example.com", "secret123")

		assert.Nil(t, user)
		assert.ErrorIs(t, err, errs.ErrDuplicateUser)
	})
}

func TestAuthenticate(t *testing.T) {
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)
	stored := &entity.User{
		ID:           1,
		Username:     "jinu",
		Email:        "jinu@example.com",
		PasswordHash: string(hash),
	}

	t.Run("Valid credentials return the user", func(t *testing.T) {
		useCase, m := newUseCaseWithMocks(t)

		m.userRepo.EXPECT().GetByEmail(mock.Anything, "jinu@example.com").Return(stored, nil).Once()

		user, err := useCase.Authenticate(ctx, "jinu@example.com", "secret123")

		require.NoError(t, err)
		assert.Equal(t, uint64(1), user.ID)
	})

	t.Run("Unknown email looks like bad credentials", func(t *testing.T) {
		useCase, m := newUseCaseWithMocks(t)

		m.userRepo.EXPECT().GetByEmail(mock.Anything, "ghost@example.com").Return(nil, errs.ErrUserNotFound).Once()

		user, err := useCase.Authenticate(ctx, "ghost@example.com", "secret123")

		assert.Nil(t, user)
		assert.ErrorIs(t, err, errs.ErrInvalidCredentials)
	})

	t.Run("Wrong password rejected", func(t *testing.T) {
		useCase, m := newUseCaseWithMocks(t)

		m.userRepo.EXPECT().GetByEmail(mock.Anything, "jinu@example.com").Return(stored, nil).Once()

		user, err := useCase.Authenticate(ctx, "jinu@example.com", "wrong")

		assert.Nil(t, user)
		assert.ErrorIs(t, err, errs.ErrInvalidCredentials)
	})

	t.Run("Missing credentials rejected without a lookup", func(t *testing.T) {
		useCase, _ := newUseCaseWithMocks(t)

		user, err := useCase.Authenticate(ctx, "", "secret123")

		assert.Nil(t, user)
		assert.ErrorIs(t, err, errs.ErrMissingField)
	})
}
