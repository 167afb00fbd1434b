package persistence

import (
	"context"

	"github.com/amirhossein-jamali/user-leveling/internal/domain/entity"
)

// UserRepository defines the data access operations for users.
// Every method runs inside the transaction bound to ctx, if any.
type UserRepository interface {
	// Add inserts a new user
	//
	// Possible errors:
	// - ErrDuplicateUser: If a user with the same ID already exists
	// - ErrReadOnlyTransaction: If ctx is bound to a read-only transaction
	// - ErrDatabaseConnection: If database connection fails
	Add(ctx context.Context, user *entity.User) error

	// Get retrieves a user by ID
	//
	// Possible errors:
	// - ErrUserNotFound: If user with specified ID doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	Get(ctx context.Context, id string) (*entity.User, error)

	// GetForUpdate retrieves a user by ID and, where the database supports it,
	// locks the row until the transaction bound to ctx ends
	//
	// Possible errors:
	// - ErrUserNotFound: If user with specified ID doesn't exist
	// - ErrReadOnlyTransaction: If ctx is bound to a read-only transaction
	GetForUpdate(ctx context.Context, id string) (*entity.User, error)

	// GetAll retrieves every user ordered by ID
	GetAll(ctx context.Context) ([]*entity.User, error)

	// Update overwrites the mutable fields of an existing user
	//
	// Possible errors:
	// - ErrUserNotFound: If user doesn't exist
	// - ErrReadOnlyTransaction: If ctx is bound to a read-only transaction
	Update(ctx context.Context, user *entity.User) error

	// DeleteAll removes every user
	DeleteAll(ctx context.Context) error

	// GetCount returns the number of stored users
	GetCount(ctx context.Context) (int, error)
}
