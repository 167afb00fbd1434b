package user

import (
	"context"
	"testing"
	"time"

	"github.com/amirhossein-jamali/user-leveling/internal/domain/entity"
	errs "github.com/amirhossein-jamali/user-leveling/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUserUseCase_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("Found", func(t *testing.T) {
		uc, m := newUseCase(t)
		expected := &entity.User{ID: "1", Name: "hong", Level: entity.LevelBasic}
		m.repo.EXPECT().Get(mock.Anything, "1").Return(expected, nil).Once()

		user, err := uc.Get(ctx, "1")
		require.NoError(t, err)
		assert.Same(t, expected, user)
	})

	t.Run("Not found is not logged as an error", func(t *testing.T) {
		uc, m := newUseCase(t)
		m.repo.EXPECT().Get(mock.Anything, "2").Return(nil, errs.ErrUserNotFound).Once()

		user, err := uc.Get(ctx, "2")
		assert.ErrorIs(t, err, errs.ErrUserNotFound)
		assert.Nil(t, user)
	})

	t.Run("Database failure is logged", func(t *testing.T) {
		uc, m := newUseCase(t)
		m.repo.EXPECT().Get(mock.Anything, "3").Return(nil, errs.ErrDatabaseConnection).Once()
		m.logger.EXPECT().Error("Failed to get user", mock.Anything).Once()

		_, err := uc.Get(ctx, "3")
		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
	})

	t.Run("Empty ID", func(t *testing.T) {
		uc, _ := newUseCase(t)

		_, err := uc.Get(ctx, "")
		assert.Equal(t, errs.ErrInvalidUserID, err)
	})
}

func TestUserUseCase_Update(t *testing.T) {
	ctx := context.Background()
	created := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	upgraded := time.Date(2023, 6, 1, 12, 0, 0, 0, time.UTC)
	now := time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC)

	stored := func(level entity.Level) *entity.User {
		return &entity.User{ID: "1", Name: "hong", Level: level, CreatedAt: created, LastUpgraded: upgraded}
	}

	t.Run("Same level keeps the stamps", func(t *testing.T) {
		uc, m := newUseCase(t)
		user := &entity.User{ID: "1", Name: "renamed", Level: entity.LevelSilver, Login: 70}
		m.repo.EXPECT().GetForUpdate(mock.Anything, "1").Return(stored(entity.LevelSilver), nil).Once()
		m.repo.EXPECT().Update(mock.Anything, user).Return(nil).Once()

		require.NoError(t, uc.Update(ctx, user))
		assert.Equal(t, created, user.CreatedAt)
		assert.Equal(t, upgraded, user.LastUpgraded)
	})

	t.Run("Raised level is stamped", func(t *testing.T) {
		uc, m := newUseCase(t)
		user := &entity.User{ID: "1", Name: "hong", Level: entity.LevelGold}
		m.repo.EXPECT().GetForUpdate(mock.Anything, "1").Return(stored(entity.LevelSilver), nil).Once()
		m.time.EXPECT().Now().Return(now).Once()
		m.repo.EXPECT().Update(mock.Anything, user).Return(nil).Once()

		require.NoError(t, uc.Update(ctx, user))
		assert.Equal(t, created, user.CreatedAt)
		assert.Equal(t, now, user.LastUpgraded)
	})

	t.Run("Lower level is refused", func(t *testing.T) {
		uc, m := newUseCase(t)
		m.repo.EXPECT().GetForUpdate(mock.Anything, "1").Return(stored(entity.LevelGold), nil).Once()
		m.logger.EXPECT().Warn("Level downgrade refused", mock.MatchedBy(func(fields map[string]any) bool {
			return fields["from_level"] == "GOLD" && fields["to_level"] == "BASIC"
		})).Once()

		err := uc.Update(ctx, &entity.User{ID: "1", Name: "hong", Level: entity.LevelBasic})
		assert.ErrorIs(t, err, errs.ErrLevelDowngrade)
		m.repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("Invalid user", func(t *testing.T) {
		uc, _ := newUseCase(t)

		assert.ErrorIs(t, uc.Update(ctx, &entity.User{ID: "1", Name: "hong", Login: -1, Level: entity.LevelBasic}), errs.ErrInvalidUserData)
		assert.ErrorIs(t, uc.Update(ctx, nil), errs.ErrInvalidUserData)
	})

	t.Run("Missing user", func(t *testing.T) {
		uc, m := newUseCase(t)
		m.repo.EXPECT().GetForUpdate(mock.Anything, "9").Return(nil, errs.ErrUserNotFound).Once()

		assert.ErrorIs(t, uc.Update(ctx, &entity.User{ID: "9", Name: "ghost", Level: entity.LevelBasic}), errs.ErrUserNotFound)
	})

	t.Run("Write failure is logged", func(t *testing.T) {
		uc, m := newUseCase(t)
		m.repo.EXPECT().GetForUpdate(mock.Anything, "1").Return(stored(entity.LevelBasic), nil).Once()
		m.repo.EXPECT().Update(mock.Anything, mock.Anything).Return(errs.ErrDatabaseConnection).Once()
		m.logger.EXPECT().Error("Failed to update user", mock.Anything).Once()

		assert.ErrorIs(t, uc.Update(ctx, &entity.User{ID: "1", Name: "hong", Level: entity.LevelBasic}), errs.ErrDatabaseConnection)
	})
}

func TestUserUseCase_BulkOperations(t *testing.T) {
	ctx := context.Background()

	t.Run("GetAll", func(t *testing.T) {
		uc, m := newUseCase(t)
		users := []*entity.User{{ID: "1"}, {ID: "2"}}
		m.repo.EXPECT().GetAll(mock.Anything).Return(users, nil).Once()

		got, err := uc.GetAll(ctx)
		require.NoError(t, err)
		assert.Equal(t, users, got)
	})

	t.Run("GetCount", func(t *testing.T) {
		uc, m := newUseCase(t)
		m.repo.EXPECT().GetCount(mock.Anything).Return(4, nil).Once()

		count, err := uc.GetCount(ctx)
		require.NoError(t, err)
		assert.Equal(t, 4, count)
	})

	t.Run("DeleteAll", func(t *testing.T) {
		uc, m := newUseCase(t)
		m.repo.EXPECT().DeleteAll(mock.Anything).Return(nil).Once()

		assert.NoError(t, uc.DeleteAll(ctx))
	})

	t.Run("DeleteAll failure", func(t *testing.T) {
		uc, m := newUseCase(t)
		m.repo.EXPECT().DeleteAll(mock.Anything).Return(errs.ErrReadOnlyTransaction).Once()
		m.logger.EXPECT().Error("Failed to delete users", mock.Anything).Once()

		assert.ErrorIs(t, uc.DeleteAll(ctx), errs.ErrReadOnlyTransaction)
	})
}
