package entity

import (
	"time"

	errs "github.com/Ginu5952/Goldenia-Backend/internal/domain/error"
	coreport "github.com/Ginu5952/Goldenia-Backend/internal/domain/port/core"
)

// User represents an account holder. The default currency is assigned at
// signup and immutable afterwards; balances in other currencies appear as
// the user receives or exchanges into them.
type User struct {
	ID           uint64    // Unique identifier for the user
	Username     string    // Display name, unique across the system
	Email        string    // Login email, unique across the system
	PasswordHash string    // bcrypt hash of the password
	IsAdmin      bool      // Whether the user may call admin endpoints
	Currency     string    // Default currency for top-ups without an explicit currency
	CreatedAt    time.Time // When the user was created
}

// NewUser creates a new user with the given identity fields.
// The password hash is set separately by the signup flow.
func NewUser(username, email string, timeProvider coreport.TimeProvider) (*User, error) {
	if username == "" || email == "" {
		return nil, errs.ErrMissingField
	}

	return &User{
		Username:  username,
		Email:     email,
		Currency:  DefaultCurrency,
		CreatedAt: timeProvider.Now(),
	}, nil
}
