package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Ginu5952/Goldenia-Backend/internal/domain/entity"
	errs "github.com/Ginu5952/Goldenia-Backend/internal/domain/error"
	coreport "github.com/Ginu5952/Goldenia-Backend/internal/domain/port/core"
	"github.com/Ginu5952/Goldenia-Backend/internal/infrastructure/adapter/model"
)

// BalanceRepository implements the BalanceRepository port using GORM
type BalanceRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewBalanceRepository creates a new BalanceRepository instance
func NewBalanceRepository(db *gorm.DB, logger coreport.Logger) *BalanceRepository {
	return &BalanceRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// modelToBalanceEntity converts a balance model to a domain entity
func modelToBalanceEntity(balanceModel *model.Balance) *entity.Balance {
	return &entity.Balance{
		ID:       balanceModel.ID,
		UserID:   balanceModel.UserID,
		Currency: balanceModel.Currency,
		Amount:   balanceModel.Amount,
	}
}

// Get retrieves the balance row for (userID, currency), or nil if the user
// has never held that currency
func (r *BalanceRepository) Get(ctx context.Context, userID uint64, currency string) (*entity.Balance, error) {
	var balanceModel model.Balance
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND currency = ?", userID, currency).
		First(&balanceModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	return modelToBalanceEntity(&balanceModel), nil
}

// LockOrCreate returns the (userID, currency) row with a row-level write
// lock held until the surrounding transaction ends. A missing row is first
// created zero-initialized; the ON CONFLICT DO NOTHING insert keeps the
// create-if-absent race between concurrent operations harmless, and the
// second locked select picks up whichever row won.
func (r *BalanceRepository) LockOrCreate(ctx context.Context, userID uint64, currency string) (*entity.Balance, error) {
	balanceModel, err := r.selectForUpdate(ctx, userID, currency)
	if err == nil {
		return modelToBalanceEntity(balanceModel), nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}

	r.logger.Debug("Creating zero-initialized balance row", map[string]any{
		"user_id":  userID,
		"currency": currency,
	})
	fresh := model.Balance{UserID: userID, Currency: currency, Amount: decimal.Zero}
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&fresh)
	if result.Error != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	balanceModel, err = r.selectForUpdate(ctx, userID, currency)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}
	return modelToBalanceEntity(balanceModel), nil
}

// selectForUpdate fetches the row under FOR UPDATE
func (r *BalanceRepository) selectForUpdate(ctx context.Context, userID uint64, currency string) (*model.Balance, error) {
	var balanceModel model.Balance
	result := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("user_id = ? AND currency = ?", userID, currency).
		First(&balanceModel)
	if result.Error != nil {
		return nil, result.Error
	}
	return &balanceModel, nil
}

// Save persists the mutated amount of a previously locked balance row
func (r *BalanceRepository) Save(ctx context.Context, balance *entity.Balance) error {
	result := r.db.WithContext(ctx).
		Model(&model.Balance{}).
		Where("id = ?", balance.ID).
		Update("amount", balance.Amount)
	if result.Error != nil {
		r.logger.Error("Failed to save balance", map[string]any{
			"user_id":  balance.UserID,
			"currency": balance.Currency,
			"error":    result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	return nil
}

// ListByUser returns all balance rows held by a user, ordered by currency
func (r *BalanceRepository) ListByUser(ctx context.Context, userID uint64) ([]*entity.Balance, error) {
	var balanceModels []model.Balance
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("currency asc").
		Find(&balanceModels)
	if result.Error != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	balances := make([]*entity.Balance, 0, len(balanceModels))
	for i := range balanceModels {
		balances = append(balances, modelToBalanceEntity(&balanceModels[i]))
	}
	return balances, nil
}
