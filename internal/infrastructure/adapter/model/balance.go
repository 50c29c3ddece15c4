package model

import (
	"github.com/shopspring/decimal"
)

// Balance represents the database model for per-(user, currency) balances.
// The composite unique index enforces at most one row per pair; the amount
// column keeps full precision so repeated exchanges don't accumulate
// rounding error.
type Balance struct {
	ID       uint64          `gorm:"primaryKey;autoIncrement"`
	UserID   uint64          `gorm:"not null;uniqueIndex:idx_user_currency"`
	Currency string          `gorm:"not null;size:3;uniqueIndex:idx_user_currency"`
	Amount   decimal.Decimal `gorm:"type:numeric(30,10);not null;default:0"`

	User User `gorm:"foreignKey:UserID;references:ID"`
}

// TableName specifies the table name for Balance
func (Balance) TableName() string {
	return "user_balances"
}
