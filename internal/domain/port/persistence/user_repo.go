package persistence

import (
	"context"

	"github.com/Ginu5952/Goldenia-Backend/internal/domain/entity"
)

// UserRepository defines methods to interact with user records
type UserRepository interface {
	// Create persists a new user and assigns its ID
	//
	// Possible errors:
	// - ErrDuplicateUser: if the username or email is already taken
	// - ErrDatabaseConnection: if the database is unreachable
	Create(ctx context.Context, user *entity.User) error

	// GetByID retrieves a user by ID
	//
	// Possible errors:
	// - ErrUserNotFound: if no user has the given ID
	// - ErrDatabaseConnection: if the database is unreachable
	GetByID(ctx context.Context, id uint64) (*entity.User, error)

	// GetByEmail retrieves a user by login email
	//
	// Possible errors:
	// - ErrUserNotFound: if no user has the given email
	// - ErrDatabaseConnection: if the database is unreachable
	GetByEmail(ctx context.Context, email string) (*entity.User, error)

	// List returns all users ordered by ID ascending. Used by admin listings.
	List(ctx context.Context) ([]*entity.User, error)
}
