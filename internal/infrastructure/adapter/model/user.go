package model

import (
	"time"
)

// User represents the database model for users
type User struct {
	ID           uint64    `gorm:"primaryKey;autoIncrement"`
	Username     string    `gorm:"uniqueIndex;not null;size:180"`
	Email        string    `gorm:"uniqueIndex;not null;size:120"`
	PasswordHash string    `gorm:"not null;size:256"`
	IsAdmin      bool      `gorm:"not null;default:false"`
	Currency     string    `gorm:"not null;size:3;default:'USD'"`
	CreatedAt    time.Time `gorm:"not null"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}
