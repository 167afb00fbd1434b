package repository

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/user-leveling/internal/domain/entity"
	errs "github.com/amirhossein-jamali/user-leveling/internal/domain/error"
	coreport "github.com/amirhossein-jamali/user-leveling/internal/domain/port/core"
	"github.com/amirhossein-jamali/user-leveling/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/user-leveling/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/user-leveling/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UserRepository implements UserRepository interface using GORM.
// Statements run in the transaction bound to the context when there is one.
type UserRepository struct {
	db          *gorm.DB
	logger      coreport.Logger
	errorMapper *database.ErrorMapper
}

var _ persistence.UserRepository = (*UserRepository)(nil)

// NewUserRepository creates a new UserRepository instance
func NewUserRepository(db *gorm.DB, logger coreport.Logger) *UserRepository {
	return &UserRepository{
		db:          db,
		logger:      logger,
		errorMapper: database.NewErrorMapper(),
	}
}

func (r *UserRepository) conn(ctx context.Context) *gorm.DB {
	return database.DBFromContext(ctx, r.db)
}

// writable refuses writes when ctx is bound to a read-only scope
func (r *UserRepository) writable(ctx context.Context, operation string) error {
	if err := database.CheckWritable(ctx); err != nil {
		r.logger.Warn("Write refused in read-only transaction", map[string]any{
			"operation": operation,
		})
		return err
	}
	return nil
}

// handleDatabaseError standardizes database error handling
func (r *UserRepository) handleDatabaseError(operation string, err error, userID string) error {
	mapped := r.errorMapper.MapUserNotFoundError(err)

	switch {
	case errs.IsUserNotFoundError(mapped):
		r.logger.Debug("User not found", map[string]any{
			"user_id":   userID,
			"operation": operation,
		})
	case errs.IsDuplicateUserError(mapped):
		r.logger.Warn("Duplicate user", map[string]any{
			"user_id":   userID,
			"operation": operation,
		})
	default:
		r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
	}

	return mapped
}

func toModel(user *entity.User) *model.User {
	return &model.User{
		ID:           user.ID,
		Name:         user.Name,
		Password:     user.Password,
		Level:        user.Level.Value(),
		Login:        user.Login,
		Recommend:    user.Recommend,
		Email:        user.Email,
		CreatedAt:    user.CreatedAt,
		LastUpgraded: user.LastUpgraded,
	}
}

// toEntity converts a stored row; rows with an unknown level are reported, not repaired
func (r *UserRepository) toEntity(userModel *model.User) (*entity.User, error) {
	level, err := entity.LevelOf(userModel.Level)
	if err != nil {
		r.logger.Error("Stored user has an invalid level", map[string]any{
			"user_id":    userModel.ID,
			"user_level": userModel.Level,
		})
		return nil, fmt.Errorf("%w: user %s: %v", errs.ErrInternalServer, userModel.ID, err)
	}

	return &entity.User{
		ID:           userModel.ID,
		Name:         userModel.Name,
		Password:     userModel.Password,
		Level:        level,
		Login:        userModel.Login,
		Recommend:    userModel.Recommend,
		Email:        userModel.Email,
		CreatedAt:    userModel.CreatedAt,
		LastUpgraded: userModel.LastUpgraded,
	}, nil
}

// Add inserts a new user
func (r *UserRepository) Add(ctx context.Context, user *entity.User) error {
	if err := r.writable(ctx, "add"); err != nil {
		return err
	}

	r.logger.Debug("Creating new user", map[string]any{
		"user_id":    user.ID,
		"user_level": user.Level.String(),
	})

	if err := r.conn(ctx).Create(toModel(user)).Error; err != nil {
		return r.handleDatabaseError("creating user", err, user.ID)
	}
	return nil
}

// Get retrieves a user by ID
func (r *UserRepository) Get(ctx context.Context, id string) (*entity.User, error) {
	var userModel model.User
	if err := r.conn(ctx).Where("id = ?", id).First(&userModel).Error; err != nil {
		return nil, r.handleDatabaseError("getting user", err, id)
	}

	return r.toEntity(&userModel)
}

// GetForUpdate retrieves a user by ID with a row lock on postgres. Sqlite
// holds a database-wide write lock instead, so the plain read is enough there.
func (r *UserRepository) GetForUpdate(ctx context.Context, id string) (*entity.User, error) {
	if err := r.writable(ctx, "lock"); err != nil {
		return nil, err
	}

	query := r.conn(ctx)
	if query.Dialector.Name() == database.DriverPostgres {
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var userModel model.User
	if err := query.Where("id = ?", id).First(&userModel).Error; err != nil {
		return nil, r.handleDatabaseError("locking user", err, id)
	}

	return r.toEntity(&userModel)
}

// GetAll retrieves every user ordered by ID
func (r *UserRepository) GetAll(ctx context.Context) ([]*entity.User, error) {
	var userModels []model.User
	if err := r.conn(ctx).Order("id").Find(&userModels).Error; err != nil {
		return nil, r.handleDatabaseError("listing users", err, "")
	}

	users := make([]*entity.User, 0, len(userModels))
	for i := range userModels {
		user, err := r.toEntity(&userModels[i])
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}

// Update overwrites the mutable fields of an existing user
func (r *UserRepository) Update(ctx context.Context, user *entity.User) error {
	if err := r.writable(ctx, "update"); err != nil {
		return err
	}

	result := r.conn(ctx).
		Model(&model.User{}).
		Where("id = ?", user.ID).
		Updates(map[string]any{
			"name":          user.Name,
			"password":      user.Password,
			"level":         user.Level.Value(),
			"login":         user.Login,
			"recommend":     user.Recommend,
			"email":         user.Email,
			"last_upgraded": user.LastUpgraded,
		})
	if result.Error != nil {
		return r.handleDatabaseError("updating user", result.Error, user.ID)
	}
	if result.RowsAffected == 0 {
		return errs.ErrUserNotFound
	}

	r.logger.Debug("User updated", map[string]any{
		"user_id":    user.ID,
		"user_level": user.Level.String(),
	})
	return nil
}

// DeleteAll removes every user
func (r *UserRepository) DeleteAll(ctx context.Context) error {
	if err := r.writable(ctx, "delete all"); err != nil {
		return err
	}

	result := r.conn(ctx).Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&model.User{})
	if result.Error != nil {
		return r.handleDatabaseError("deleting users", result.Error, "")
	}

	r.logger.Debug("Users deleted", map[string]any{
		"rows": result.RowsAffected,
	})
	return nil
}

// GetCount returns the number of stored users
func (r *UserRepository) GetCount(ctx context.Context) (int, error) {
	var count int64
	if err := r.conn(ctx).Model(&model.User{}).Count(&count).Error; err != nil {
		return 0, r.handleDatabaseError("counting users", err, "")
	}
	return int(count), nil
}
