package user

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/user-leveling/internal/domain/entity"
	errs "github.com/amirhossein-jamali/user-leveling/internal/domain/error"
	"github.com/amirhossein-jamali/user-leveling/internal/domain/port/usecase"
)

var _ usecase.UserUseCase = (*UserUseCase)(nil)

// Get retrieves a user by ID
func (u *UserUseCase) Get(ctx context.Context, id string) (*entity.User, error) {
	if id == "" {
		return nil, errs.ErrInvalidUserID
	}

	user, err := u.userRepo.Get(ctx, id)
	if err != nil {
		if !errs.IsUserNotFoundError(err) {
			u.logger.Error("Failed to get user", map[string]any{
				"userId": id,
				"error":  err.Error(),
			})
		}
		return nil, err
	}

	return user, nil
}

// GetAll retrieves every user
func (u *UserUseCase) GetAll(ctx context.Context) ([]*entity.User, error) {
	return u.userRepo.GetAll(ctx)
}

// Update overwrites an existing user. The stored row is read under lock in the
// caller's transaction: a level below the stored one is refused, the creation
// time is kept and the upgrade stamp only moves when the level rises.
func (u *UserUseCase) Update(ctx context.Context, user *entity.User) error {
	if user == nil {
		return errs.ErrInvalidUserData
	}
	if err := user.Validate(); err != nil {
		return err
	}

	stored, err := u.userRepo.GetForUpdate(ctx, user.ID)
	if err != nil {
		if !errs.IsUserNotFoundError(err) {
			u.logger.Error("Failed to load user for update", map[string]any{
				"userId": user.ID,
				"error":  err.Error(),
			})
		}
		return err
	}

	if user.Level < stored.Level {
		u.logger.Warn("Level downgrade refused", map[string]any{
			"userId":     user.ID,
			"from_level": stored.Level.String(),
			"to_level":   user.Level.String(),
		})
		return fmt.Errorf("%w: user %s is %s, requested %s",
			errs.ErrLevelDowngrade, user.ID, stored.Level, user.Level)
	}

	user.CreatedAt = stored.CreatedAt
	if user.Level > stored.Level {
		user.LastUpgraded = u.timeProvider.Now()
	} else {
		user.LastUpgraded = stored.LastUpgraded
	}

	if err := u.userRepo.Update(ctx, user); err != nil {
		u.logger.Error("Failed to update user", map[string]any{
			"userId": user.ID,
			"error":  err.Error(),
		})
		return err
	}

	return nil
}

// DeleteAll removes every user
func (u *UserUseCase) DeleteAll(ctx context.Context) error {
	if err := u.userRepo.DeleteAll(ctx); err != nil {
		u.logger.Error("Failed to delete users", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	u.logger.Info("All users deleted", nil)
	return nil
}

// GetCount returns the number of users
func (u *UserUseCase) GetCount(ctx context.Context) (int, error) {
	return u.userRepo.GetCount(ctx)
}
