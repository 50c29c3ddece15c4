package migration

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/Ginu5952/Goldenia-Backend/internal/domain/entity"
	errs "github.com/Ginu5952/Goldenia-Backend/internal/domain/error"
	coreport "github.com/Ginu5952/Goldenia-Backend/internal/domain/port/core"
	"github.com/Ginu5952/Goldenia-Backend/internal/domain/port/persistence"
)

// Default admin credentials, meant for local development only
const (
	defaultAdminUsername = "admin"
	defaultAdminEmail    = "admin@goldenia.com"
	defaultAdminPassword = "admin123"
)

// SeedDefaultAdmin creates the default admin account if it does not exist yet
func SeedDefaultAdmin(ctx context.Context, userRepo persistence.UserRepository, timeProvider coreport.TimeProvider, logger coreport.Logger) error {
	existing, err := userRepo.GetByEmail(ctx, defaultAdminEmail)
	if err != nil && !errs.IsUserNotFoundError(err) {
		return err
	}
	if existing != nil {
		return nil
	}

	admin, err := entity.NewUser(defaultAdminUsername, defaultAdminEmail, timeProvider)
	if err != nil {
		return err
	}
	admin.IsAdmin = true

	hash, err := bcrypt.GenerateFromPassword([]byte(defaultAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin.PasswordHash = string(hash)

	if err := userRepo.Create(ctx, admin); err != nil {
		return err
	}

	logger.Info("Default admin account created", map[string]any{
		"user_id":  admin.ID,
		"username": admin.Username,
	})
	return nil
}
