package user

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/Ginu5952/Goldenia-Backend/internal/domain/entity"
	errs "github.com/Ginu5952/Goldenia-Backend/internal/domain/error"
)

// CreateUser registers a new user with a bcrypt-hashed password and the
// default currency. Username and email must be unique.
func (u *UserUseCase) CreateUser(ctx context.Context, username, email, password string) (*entity.User, error) {
	if username == "" || email == "" || password == "" {
		return nil, errs.ErrMissingField
	}

	user, err := entity.NewUser(username, email, u.timeProvider)
	if err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		u.logger.Error("Failed to hash password", map[string]any{
			"username": username,
			"error":    err.Error(),
		})
		return nil, errs.ErrInternalServer
	}
	user.PasswordHash = string(hash)

	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	u.logger.Info("User created", map[string]any{
		"user_id":  user.ID,
		"username": user.Username,
		"currency": user.Currency,
	})
	return user, nil
}

// Authenticate verifies email/password credentials and returns the matching
// user. A missing user and a wrong password are indistinguishable to the
// caller: both yield ErrInvalidCredentials.
func (u *UserUseCase) Authenticate(ctx context.Context, email, password string) (*entity.User, error) {
	if email == "" || password == "" {
		return nil, errs.ErrMissingField
	}

	user, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errs.IsUserNotFoundError(err) {
			return nil, errs.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		u.logger.Warn("Failed login attempt", map[string]any{
			"user_id": user.ID,
		})
		return nil, errs.ErrInvalidCredentials
	}

	return user, nil
}
