package user

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/user-leveling/internal/domain/entity"
	errs "github.com/amirhossein-jamali/user-leveling/internal/domain/error"
)

// Add stores a new user. A missing ID is generated, a missing level becomes
// BASIC and missing timestamps are set to now.
func (u *UserUseCase) Add(ctx context.Context, user *entity.User) error {
	if user == nil {
		return fmt.Errorf("%w: user is required", errs.ErrInvalidUserData)
	}

	if user.ID == "" {
		user.ID = u.newID()
	}
	if user.Level == 0 {
		user.Level = entity.LevelBasic
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = u.timeProvider.Now()
	}
	if user.LastUpgraded.IsZero() {
		user.LastUpgraded = user.CreatedAt
	}

	if err := user.Validate(); err != nil {
		return err
	}

	if user.Email != "" {
		if err := u.validate.Var(user.Email, "email"); err != nil {
			return fmt.Errorf("%w: invalid email %q", errs.ErrInvalidUserData, user.Email)
		}
	}

	if err := u.userRepo.Add(ctx, user); err != nil {
		u.logger.Error("Failed to add user", map[string]any{
			"userId": user.ID,
			"error":  err.Error(),
		})
		return err
	}

	u.logger.Info("User added", map[string]any{
		"userId":     user.ID,
		"user_level": user.Level.String(),
	})

	return nil
}

// UserExists checks if a user exists with the given ID
func (u *UserUseCase) UserExists(ctx context.Context, id string) (bool, error) {
	if id == "" {
		return false, errs.ErrInvalidUserID
	}

	_, err := u.userRepo.Get(ctx, id)
	if err != nil {
		if errs.IsUserNotFoundError(err) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}
