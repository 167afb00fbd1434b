package repository

import (
	"context"
	"testing"
	"time"

	"github.com/amirhossein-jamali/user-leveling/internal/domain/entity"
	errs "github.com/amirhossein-jamali/user-leveling/internal/domain/error"
	"github.com/amirhossein-jamali/user-leveling/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/user-leveling/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/user-leveling/internal/infrastructure/adapter/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRepository(t *testing.T) (*UserRepository, *database.TransactionManager, *database.TestDBManager) {
	t.Helper()

	testDB := database.NewTestDBManager(t, logger.NewNoopLogger())
	db := testDB.Connect(t)

	repo := NewUserRepository(db, testDB.Logger)
	tm := database.NewTransactionManager(db, testDB.Logger, testDB.TimeProvider)
	return repo, tm, testDB
}

func newUser(id string, level entity.Level, login, recommend int) *entity.User {
	created := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)
	return &entity.User{
		ID:           id,
		Name:         "user-" + id,
		Password:     "p" + id,
		Level:        level,
		Login:        login,
		Recommend:    recommend,
		Email:        id + "@example.com",
		CreatedAt:    created,
		LastUpgraded: created,
	}
}

func TestUserRepository_AddAndGet(t *testing.T) {
	ctx := context.Background()
	repo, _, _ := setupRepository(t)

	user := newUser("1", entity.LevelSilver, 55, 10)
	require.NoError(t, repo.Add(ctx, user))

	got, err := repo.Get(ctx, "1")
	require.NoError(t, err)

	assert.Equal(t, user.ID, got.ID)
	assert.Equal(t, user.Name, got.Name)
	assert.Equal(t, user.Password, got.Password)
	assert.Equal(t, entity.LevelSilver, got.Level)
	assert.Equal(t, 55, got.Login)
	assert.Equal(t, 10, got.Recommend)
	assert.Equal(t, user.Email, got.Email)
	assert.True(t, user.CreatedAt.Equal(got.CreatedAt))
	assert.True(t, user.LastUpgraded.Equal(got.LastUpgraded))
}

func TestUserRepository_Errors(t *testing.T) {
	ctx := context.Background()
	repo, _, _ := setupRepository(t)

	t.Run("Missing user", func(t *testing.T) {
		_, err := repo.Get(ctx, "missing")
		assert.ErrorIs(t, err, errs.ErrUserNotFound)
	})

	t.Run("Duplicate ID", func(t *testing.T) {
		require.NoError(t, repo.Add(ctx, newUser("dup", entity.LevelBasic, 0, 0)))

		err := repo.Add(ctx, newUser("dup", entity.LevelBasic, 0, 0))
		assert.ErrorIs(t, err, errs.ErrDuplicateUser)
	})

	t.Run("Update of a missing user", func(t *testing.T) {
		err := repo.Update(ctx, newUser("ghost", entity.LevelBasic, 0, 0))
		assert.ErrorIs(t, err, errs.ErrUserNotFound)
	})
}

func TestUserRepository_UpdateAndList(t *testing.T) {
	ctx := context.Background()
	repo, _, _ := setupRepository(t)

	for _, id := range []string{"3", "1", "2"} {
		require.NoError(t, repo.Add(ctx, newUser(id, entity.LevelBasic, 0, 0)))
	}

	user, err := repo.Get(ctx, "2")
	require.NoError(t, err)

	upgradedAt := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	user.Level = entity.LevelGold
	user.Login = 99
	user.LastUpgraded = upgradedAt
	require.NoError(t, repo.Update(ctx, user))

	users, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, users, 3)

	assert.Equal(t, []string{"1", "2", "3"}, []string{users[0].ID, users[1].ID, users[2].ID})
	assert.Equal(t, entity.LevelGold, users[1].Level)
	assert.Equal(t, 99, users[1].Login)
	assert.True(t, upgradedAt.Equal(users[1].LastUpgraded))
	assert.Equal(t, entity.LevelBasic, users[0].Level)
}

func TestUserRepository_GetForUpdate(t *testing.T) {
	ctx := context.Background()
	repo, tm, _ := setupRepository(t)
	require.NoError(t, repo.Add(ctx, newUser("1", entity.LevelGold, 100, 40)))

	t.Run("Reads the row inside a write transaction", func(t *testing.T) {
		status, err := tm.GetTransaction(ctx, persistence.DefaultDefinition().WithName("lock"))
		require.NoError(t, err)

		user, err := repo.GetForUpdate(status.Context(), "1")
		require.NoError(t, err)
		assert.Equal(t, entity.LevelGold, user.Level)

		_, err = repo.GetForUpdate(status.Context(), "missing")
		assert.ErrorIs(t, err, errs.ErrUserNotFound)

		require.NoError(t, tm.Commit(status))
	})

	t.Run("Refused in a read-only transaction", func(t *testing.T) {
		status, err := tm.GetTransaction(ctx, persistence.DefaultDefinition().WithName("lock").WithReadOnly(true))
		require.NoError(t, err)

		_, err = repo.GetForUpdate(status.Context(), "1")
		assert.ErrorIs(t, err, errs.ErrReadOnlyTransaction)

		require.NoError(t, tm.Rollback(status))
	})
}

func TestUserRepository_CountAndDeleteAll(t *testing.T) {
	ctx := context.Background()
	repo, _, _ := setupRepository(t)

	count, err := repo.GetCount(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	require.NoError(t, repo.Add(ctx, newUser("1", entity.LevelBasic, 0, 0)))
	require.NoError(t, repo.Add(ctx, newUser("2", entity.LevelBasic, 0, 0)))

	count, err = repo.GetCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	require.NoError(t, repo.DeleteAll(ctx))

	count, err = repo.GetCount(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestUserRepository_Transactions(t *testing.T) {
	ctx := context.Background()

	t.Run("Writes follow the bound transaction", func(t *testing.T) {
		repo, tm, testDB := setupRepository(t)

		status, err := tm.GetTransaction(ctx, persistence.DefaultDefinition())
		require.NoError(t, err)

		require.NoError(t, repo.Add(status.Context(), newUser("1", entity.LevelBasic, 0, 0)))

		count, err := repo.GetCount(status.Context())
		require.NoError(t, err)
		assert.Equal(t, 1, count)

		require.NoError(t, tm.Rollback(status))
		assert.Zero(t, testDB.CountUsers(t))
	})

	t.Run("Read-only scope refuses writes", func(t *testing.T) {
		repo, tm, testDB := setupRepository(t)
		require.NoError(t, repo.Add(ctx, newUser("1", entity.LevelBasic, 0, 0)))

		status, err := tm.GetTransaction(ctx, persistence.DefaultDefinition().WithReadOnly(true))
		require.NoError(t, err)

		_, err = repo.Get(status.Context(), "1")
		require.NoError(t, err)

		assert.ErrorIs(t, repo.Add(status.Context(), newUser("2", entity.LevelBasic, 0, 0)), errs.ErrReadOnlyTransaction)
		assert.ErrorIs(t, repo.Update(status.Context(), newUser("1", entity.LevelGold, 0, 0)), errs.ErrReadOnlyTransaction)
		assert.ErrorIs(t, repo.DeleteAll(status.Context()), errs.ErrReadOnlyTransaction)

		require.NoError(t, tm.Commit(status))
		assert.Equal(t, int64(1), testDB.CountUsers(t))
	})
}
