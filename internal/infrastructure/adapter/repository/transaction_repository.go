package repository

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Ginu5952/Goldenia-Backend/internal/domain/entity"
	errs "github.com/Ginu5952/Goldenia-Backend/internal/domain/error"
	coreport "github.com/Ginu5952/Goldenia-Backend/internal/domain/port/core"
	"github.com/Ginu5952/Goldenia-Backend/internal/infrastructure/adapter/model"
)

// TransactionRepository implements the TransactionRepository port using GORM
type TransactionRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewTransactionRepository creates a new TransactionRepository instance
func NewTransactionRepository(db *gorm.DB, logger coreport.Logger) *TransactionRepository {
	return &TransactionRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// entityToModel converts a transaction entity to a database model
func (r *TransactionRepository) entityToModel(transaction *entity.Transaction) model.Transaction {
	txnModel := model.Transaction{
		UserID:         transaction.UserID,
		Kind:           string(transaction.Kind),
		Amount:         transaction.Amount,
		Currency:       transaction.Currency,
		CurrencySymbol: transaction.CurrencySymbol,
		CurrencyFrom:   transaction.CurrencyFrom,
		CurrencyTo:     transaction.CurrencyTo,
		TargetUserID:   transaction.TargetUserID,
		CreatedAt:      transaction.CreatedAt,
	}
	if transaction.Kind == entity.KindExchange {
		txnModel.ConvertedAmount = decimal.NewNullDecimal(transaction.ConvertedAmount)
	}
	return txnModel
}

// modelToEntity converts a database model to a transaction entity
func (r *TransactionRepository) modelToEntity(txnModel *model.Transaction) *entity.Transaction {
	transaction := &entity.Transaction{
		ID:             txnModel.ID,
		UserID:         txnModel.UserID,
		Kind:           entity.Kind(txnModel.Kind),
		Amount:         txnModel.Amount,
		Currency:       txnModel.Currency,
		CurrencySymbol: txnModel.CurrencySymbol,
		CurrencyFrom:   txnModel.CurrencyFrom,
		CurrencyTo:     txnModel.CurrencyTo,
		TargetUserID:   txnModel.TargetUserID,
		CreatedAt:      txnModel.CreatedAt,
	}
	if txnModel.ConvertedAmount.Valid {
		transaction.ConvertedAmount = txnModel.ConvertedAmount.Decimal
	}
	return transaction
}

// Create appends a transaction to the log and assigns its ID
func (r *TransactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	txnModel := r.entityToModel(transaction)

	result := r.db.WithContext(ctx).Create(&txnModel)
	if result.Error != nil {
		if r.errorClassifier.IsConstraintError(result.Error) {
			r.logger.Warn("Transaction insert violated a constraint", map[string]any{
				"user_id": transaction.UserID,
				"kind":    transaction.Kind,
				"error":   result.Error.Error(),
			})
			return fmt.Errorf("%w: %s", errs.ErrConstraintViolation, result.Error.Error())
		}
		r.logger.Error("Failed to create transaction", map[string]any{
			"user_id": transaction.UserID,
			"kind":    transaction.Kind,
			"error":   result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	transaction.ID = txnModel.ID
	return nil
}

// ListForUser returns every transaction where the user is actor or transfer
// counterparty, in replay order (creation time ascending, ID tiebreak)
func (r *TransactionRepository) ListForUser(ctx context.Context, userID uint64) ([]*entity.Transaction, error) {
	var txnModels []model.Transaction
	result := r.db.WithContext(ctx).
		Where("user_id = ? OR target_user_id = ?", userID, userID).
		Order("created_at asc").
		Order("id asc").
		Find(&txnModels)
	if result.Error != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	return r.modelsToEntities(txnModels), nil
}

// ListAll returns the full transaction log in chronological order
func (r *TransactionRepository) ListAll(ctx context.Context) ([]*entity.Transaction, error) {
	var txnModels []model.Transaction
	result := r.db.WithContext(ctx).
		Order("created_at asc").
		Order("id asc").
		Find(&txnModels)
	if result.Error != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	return r.modelsToEntities(txnModels), nil
}

func (r *TransactionRepository) modelsToEntities(txnModels []model.Transaction) []*entity.Transaction {
	transactions := make([]*entity.Transaction, 0, len(txnModels))
	for i := range txnModels {
		transactions = append(transactions, r.modelToEntity(&txnModels[i]))
	}
	return transactions
}
