package user

import (
	coreport "github.com/Ginu5952/Goldenia-Backend/internal/domain/port/core"
	"github.com/Ginu5952/Goldenia-Backend/internal/domain/port/persistence"
)

// UserUseCase implements signup, login and profile/admin lookups.
// Ledger mutations live in the ledger package; this usecase only ever
// reads balance and transaction data.
type UserUseCase struct {
	userRepo        persistence.UserRepository
	balanceRepo     persistence.BalanceRepository
	transactionRepo persistence.TransactionRepository
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
}

// NewUserUseCase creates a new user usecase with its dependencies.
func NewUserUseCase(
	userRepo persistence.UserRepository,
	balanceRepo persistence.BalanceRepository,
	transactionRepo persistence.TransactionRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *UserUseCase {
	return &UserUseCase{
		userRepo:        userRepo,
		balanceRepo:     balanceRepo,
		transactionRepo: transactionRepo,
		timeProvider:    timeProvider,
		logger:          logger,
	}
}
