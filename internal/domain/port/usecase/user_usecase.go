package usecase

import (
	"context"

	"github.com/amirhossein-jamali/user-leveling/internal/domain/entity"
)

// UpgradeResult summarizes a level upgrade run
type UpgradeResult struct {
	Checked  int            // Number of users examined
	Upgraded []UpgradedUser // Users whose level changed, in processing order
}

// UpgradedUser describes one level change
type UpgradedUser struct {
	UserID string       `json:"userId"`
	From   entity.Level `json:"from"`
	To     entity.Level `json:"to"`
}

// UserUseCase defines methods for user-related business operations
type UserUseCase interface {
	// Add stores a new user, defaulting its level to BASIC
	Add(ctx context.Context, user *entity.User) error

	// Get retrieves a user by ID
	Get(ctx context.Context, id string) (*entity.User, error)

	// GetAll retrieves every user
	GetAll(ctx context.Context) ([]*entity.User, error)

	// Update overwrites an existing user
	Update(ctx context.Context, user *entity.User) error

	// DeleteAll removes every user
	DeleteAll(ctx context.Context) error

	// GetCount returns the number of users
	GetCount(ctx context.Context) (int, error)

	// UpgradeLevels promotes every eligible user by one level and
	// notifies them by mail once the change is durable
	UpgradeLevels(ctx context.Context) (*UpgradeResult, error)
}
