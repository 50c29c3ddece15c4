package ledger

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
	"github.com/Ginu5952/Goldenia-Backend/internal/infrastructure/adapter/logger"
	coremocks "github.com/Ginu5952/Goldenia-Backend/mocks/port/core"
	persistencemocks "github.com/Ginu5952/Goldenia-Backend/mocks/port/persistence"
)

// ledgerMocks bundles every mock a ledger engine test needs
type ledgerMocks struct {
	uow      *persistencemocks.MockUnitOfWork
	userRepo *persistencemocks.MockUserRepository
	balances *persistencemocks.MockBalanceRepository
	txns     *persistencemocks.MockTransactionRepository
	timeProv *coremocks.MockTimeProvider
}

// newServiceWithMocks builds an engine whose unit of work hands back the
// bundled repository mocks. Time is fixed and log output discarded;
// Begin/Commit/Rollback are left to each test so commit-versus-rollback
// behavior stays observable.
func newServiceWithMocks(t *testing.T, rates *RateTable) (*Service, *ledgerMocks) {
	m := &ledgerMocks{
		uow:      persistencemocks.NewMockUnitOfWork(t),
		userRepo: persistencemocks.NewMockUserRepository(t),
		balances: persistencemocks.NewMockBalanceRepository(t),
		txns:     persistencemocks.NewMockTransactionRepository(t),
		timeProv: coremocks.NewMockTimeProvider(t),
	}

	m.uow.EXPECT().UserRepository(mock.Anything).Return(m.userRepo).Maybe()
	m.uow.EXPECT().BalanceRepository(mock.Anything).Return(m.balances).Maybe()
	m.uow.EXPECT().TransactionRepository(mock.Anything).Return(m.txns).Maybe()

	m.timeProv.EXPECT().Now().Return(time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)).Maybe()

	return NewService(m.uow, rates, m.timeProv, logger.NewNoopLogger()), m
}

// expectCommit wires a successful Begin/Commit pair
func (m *ledgerMocks) expectCommit() {
	m.uow.EXPECT().Begin(mock.Anything).Return(context.Background(), nil).Once()
	m.uow.EXPECT().Commit(mock.Anything).Return(nil).Once()
}

// expectRollback wires Begin followed by a rollback instead of a commit
func (m *ledgerMocks) expectRollback() {
	m.uow.EXPECT().Begin(mock.Anything).Return(context.Background(), nil).Once()
	m.uow.EXPECT().Rollback(mock.Anything).Return(nil).Once()
}

func balanceWith(userID uint64, currency, amount string) *entity.Balance {
	return &entity.Balance{
		ID:       userID*100 + 1,
		UserID:   userID,
		Currency: currency,
		Amount:   decimal.RequireFromString(amount),
	}
}

func TestTopUp(t *testing.T) {
	ctx := context.Background()
	user := &entity.User{ID: 1, Username: "jinu", Currency: "USD"}

	t.Run("Successful top-up into the default currency", func(t *testing.T) {
		service, m := newServiceWithMocks(t, DefaultRateTable())
		m.expectCommit()

		balance := balanceWith(1, "USD", "50")
		m.userRepo.EXPECT().GetByID(mock.Anything, uint64(1)).Return(user, nil).Once()
		m.balances.EXPECT().LockOrCreate(mock.Anything, uint64(1), "USD").Return(balance, nil).Once()
		m.balances.EXPECT().Save(mock.Anything, mock.MatchedBy(func(b *entity.Balance) bool {
			return b.Amount.Equal(decimal.RequireFromString("150.25"))
		})).Return(nil).Once()
		m.txns.EXPECT().Create(mock.Anything, mock.MatchedBy(func(txn *entity.Transaction) bool {
			return txn.Kind == entity.KindTopUp &&
				txn.UserID == 1 &&
				txn.Currency == "USD" &&
				txn.Amount.Equal(decimal.RequireFromString("100.25"))
		})).Return(nil).Once()

		result, err := service.TopUp(ctx, 1, decimal.RequireFromString("100.25"), "")

		require.NoError(t, err)
		assert.Equal(t, "150.25", result.NewBalance.String())
		assert.Equal(t, "USD", result.Currency)
		assert.Equal(t, "$", result.CurrencySymbol)
	})

	t.Run("Explicit currency creates a fresh balance row", func(t *testing.T) {
		service, m := newServiceWithMocks(t, DefaultRateTable())
		m.expectCommit()

		balance := entity.NewBalance(1, "EUR")
		m.userRepo.EXPECT().GetByID(mock.Anything, uint64(1)).Return(user, nil).Once()
		m.balances.EXPECT().LockOrCreate(mock.Anything, uint64(1), "EUR").Return(balance, nil).Once()
		m.balances.EXPECT().Save(mock.Anything, mock.Anything).Return(nil).Once()
		m.txns.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Once()

		result, err := service.TopUp(ctx, 1, decimal.RequireFromString("20"), "EUR")

		require.NoError(t, err)
		assert.Equal(t, "20", result.NewBalance.String())
		assert.Equal(t, "EUR", result.Currency)
		assert.Equal(t, "€", result.CurrencySymbol)
	})

	t.Run("Zero amount rejected before any work", func(t *testing.T) {
		service, _ := newServiceWithMocks(t, DefaultRateTable())

		result, err := service.TopUp(ctx, 1, decimal.Zero, "USD")

		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})

	t.Run("Negative amount rejected", func(t *testing.T) {
		service, _ := newServiceWithMocks(t, DefaultRateTable())

		result, err := service.TopUp(ctx, 1, decimal.RequireFromString("-10"), "USD")

		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})

	t.Run("Invalid user ID rejected", func(t *testing.T) {
		service, _ := newServiceWithMocks(t, DefaultRateTable())

		result, err := service.TopUp(ctx, 0, decimal.RequireFromString("10"), "USD")

		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrInvalidUserID)
	})

	t.Run("Unknown user rolls the unit back", func(t *testing.T) {
		service, m := newServiceWithMocks(t, DefaultRateTable())
		m.expectRollback()

		m.userRepo.EXPECT().GetByID(mock.Anything, uint64(9)).Return(nil, errs.ErrUserNotFound).Once()

		result, err := service.TopUp(ctx, 9, decimal.RequireFromString("10"), "USD")

		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrUserNotFound)
	})

	t.Run("Failed log append rolls the whole unit back", func(t *testing.T) {
		service, m := newServiceWithMocks(t, DefaultRateTable())
		m.expectRollback()

		balance := balanceWith(1, "USD", "50")
		m.userRepo.EXPECT().GetByID(mock.Anything, uint64(1)).Return(user, nil).Once()
		m.balances.EXPECT().LockOrCreate(mock.Anything, uint64(1), "USD").Return(balance, nil).Once()
		m.balances.EXPECT().Save(mock.Anything, mock.Anything).Return(nil).Once()
		m.txns.EXPECT().Create(mock.Anything, mock.Anything).Return(errs.ErrConstraintViolation).Once()

		result, err := service.TopUp(ctx, 1, decimal.RequireFromString("10"), "USD")

		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrConstraintViolation)
	})
}
