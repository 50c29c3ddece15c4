package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction represents the database model for the append-only transaction
// log. Rows are inserted once and never updated or deleted.
type Transaction struct {
	ID              uint64               `gorm:"primaryKey;autoIncrement"`
	UserID          uint64               `gorm:"not null;index"`
	Kind            string               `gorm:"not null;size:50"`
	Amount          decimal.Decimal      `gorm:"type:numeric(30,10);not null"`
	Currency        string               `gorm:"not null;size:3"`
	CurrencySymbol  string               `gorm:"not null;size:5"`
	CurrencyFrom    string               `gorm:"size:3"`
	CurrencyTo      string               `gorm:"size:3"`
	ConvertedAmount decimal.NullDecimal  `gorm:"type:numeric(30,10)"`
	TargetUserID    *uint64              `gorm:"index"`
	CreatedAt       time.Time            `gorm:"not null;index"`

	User       User  `gorm:"foreignKey:UserID;references:ID"`
	TargetUser *User `gorm:"foreignKey:TargetUserID;references:ID"`
}

// TableName specifies the table name for Transaction
func (Transaction) TableName() string {
	return "transactions"
}
