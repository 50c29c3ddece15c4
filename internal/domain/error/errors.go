package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInsufficientFunds   = 4001
	CodeInvalidAmount       = 4002
	CodeInvalidUserID       = 4003
	CodeMissingField        = 4004
	CodeSameCurrency        = 4005
	CodeUnsupportedPair     = 4006
	CodeSelfTransfer        = 4007
	CodeDuplicateUser       = 4008
	CodeConstraintViolation = 4009
	CodeInvalidCredentials  = 4010
	CodeForbidden           = 4030
	CodeUserNotFound        = 4040

	// 5xxx - Server errors
	CodeInternalServer = 5000
)

// Base error types
var (
	// ErrInsufficientFunds is returned when a user's balance in the source
	// currency is missing or smaller than the requested amount
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrInvalidAmount is returned when an amount is missing, zero or negative
	ErrInvalidAmount = errors.New("amount must be greater than zero")

	// ErrMissingField is returned when a required request field is absent
	ErrMissingField = errors.New("required field is missing")

	// ErrSameCurrency is returned when an exchange names the same source and
	// target currency
	ErrSameCurrency = errors.New("currencies must be different")

	// ErrUnsupportedPair is returned when no rate is configured for the
	// ordered currency pair
	ErrUnsupportedPair = errors.New("currency pair not supported")

	// ErrSelfTransfer is returned when a user attempts to transfer to themselves
	ErrSelfTransfer = errors.New("cannot transfer to yourself")

	// ErrInvalidUserID is returned when the user ID is not a positive integer
	ErrInvalidUserID = errors.New("user ID must be positive")

	// ErrUserNotFound is returned when the requested user doesn't exist
	ErrUserNotFound = errors.New("user not found")

	// ErrTransactionNotFound is returned when the requested transaction doesn't exist
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrDuplicateUser is returned when a username or email is already taken
	ErrDuplicateUser = errors.New("user already exists")

	// ErrInvalidCredentials is returned when login email/password don't match
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrForbidden is returned when a non-admin calls an admin endpoint
	ErrForbidden = errors.New("access forbidden")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrConstraintViolation is returned when a database constraint is violated
	ErrConstraintViolation = errors.New("database constraint violation")

	// ErrDatabaseConnection is returned when there's a problem talking to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInsufficientFunds):
		return CodeInsufficientFunds
	case errors.Is(err, ErrInvalidAmount):
		return CodeInvalidAmount
	case errors.Is(err, ErrMissingField):
		return CodeMissingField
	case errors.Is(err, ErrSameCurrency):
		return CodeSameCurrency
	case errors.Is(err, ErrUnsupportedPair):
		return CodeUnsupportedPair
	case errors.Is(err, ErrSelfTransfer):
		return CodeSelfTransfer
	case errors.Is(err, ErrInvalidUserID):
		return CodeInvalidUserID
	case errors.Is(err, ErrUserNotFound):
		return CodeUserNotFound
	case errors.Is(err, ErrDuplicateUser):
		return CodeDuplicateUser
	case errors.Is(err, ErrInvalidCredentials):
		return CodeInvalidCredentials
	case errors.Is(err, ErrForbidden):
		return CodeForbidden
	case errors.Is(err, ErrConstraintViolation):
		return CodeConstraintViolation
	default:
		return CodeInternalServer
	}
}

// InsufficientFundsError provides detailed error information for a rejected
// debit, including the currency the user was short in
type InsufficientFundsError struct {
	UserID      uint64
	Currency    string
	Amount      string
	CurrBalance string
}

// Error implements the error interface
func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient balance in %s for user %d: required %s, available %s",
		e.Currency, e.UserID, e.Amount, e.CurrBalance)
}

// Is checks if the target error is an ErrInsufficientFunds
func (e *InsufficientFundsError) Is(target error) bool {
	return target == ErrInsufficientFunds
}

// LogFields returns a map of fields for structured logging
func (e *InsufficientFundsError) LogFields() map[string]any {
	return map[string]any{
		"error_type":      "insufficient_funds",
		"user_id":         e.UserID,
		"currency":        e.Currency,
		"amount":          e.Amount,
		"current_balance": e.CurrBalance,
		"error_code":      CodeInsufficientFunds,
	}
}

// NewInsufficientFundsError creates a new detailed insufficient funds error
func NewInsufficientFundsError(userID uint64, currency, amount, currentBalance string) error {
	return &InsufficientFundsError{
		UserID:      userID,
		Currency:    currency,
		Amount:      amount,
		CurrBalance: currentBalance,
	}
}

// LedgerError represents a failure while applying a ledger operation
type LedgerError struct {
	UserID    uint64
	Operation string
	Currency  string
	Amount    string
	Err       error
}

// Error implements the error interface for LedgerError
func (e *LedgerError) Error() string {
	return fmt.Sprintf("%s failed for user %d (amount: %s %s): %v",
		e.Operation, e.UserID, e.Amount, e.Currency, e.Err)
}

// Unwrap returns the underlying error
func (e *LedgerError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *LedgerError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "ledger_error",
		"operation":  e.Operation,
		"user_id":    e.UserID,
		"currency":   e.Currency,
		"amount":     e.Amount,
		"error":      e.Err.Error(),
		"error_code": ErrorCode(e.Err),
	}
}

// NewLedgerError creates a detailed ledger operation error
func NewLedgerError(operation string, userID uint64, currency, amount string, err error) error {
	return &LedgerError{
		UserID:    userID,
		Operation: operation,
		Currency:  currency,
		Amount:    amount,
		Err:       err,
	}
}

// IsInsufficientFundsError checks if the error is related to insufficient funds
func IsInsufficientFundsError(err error) bool {
	return errors.Is(err, ErrInsufficientFunds)
}

// IsUserNotFoundError checks if the error is a user not found error
func IsUserNotFoundError(err error) bool {
	return errors.Is(err, ErrUserNotFound)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrTransactionNotFound)
}

// IsValidationError checks if the error is a caller input failure rather than
// a storage or server failure
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidAmount) ||
		errors.Is(err, ErrMissingField) ||
		errors.Is(err, ErrSameCurrency) ||
		errors.Is(err, ErrUnsupportedPair) ||
		errors.Is(err, ErrSelfTransfer) ||
		errors.Is(err, ErrInvalidUserID)
}
