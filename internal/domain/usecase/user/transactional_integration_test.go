package user_test

import (
	"context"
	"sync"
	"testing"

	"github.com/amirhossein-jamali/user-leveling/internal/domain/entity"
	errs "github.com/amirhossein-jamali/user-leveling/internal/domain/error"
	"github.com/amirhossein-jamali/user-leveling/internal/domain/port/notification"
	"github.com/amirhossein-jamali/user-leveling/internal/domain/port/persistence"
	userUseCase "github.com/amirhossein-jamali/user-leveling/internal/domain/usecase/user"
	"github.com/amirhossein-jamali/user-leveling/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/user-leveling/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/user-leveling/internal/infrastructure/adapter/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failingRepository fails the update of one user to interrupt an upgrade run
type failingRepository struct {
	persistence.UserRepository
	failOn string
}

func (r *failingRepository) Update(ctx context.Context, user *entity.User) error {
	if user.ID == r.failOn {
		return errs.ErrDatabaseConnection
	}
	return r.UserRepository.Update(ctx, user)
}

// recordingMailSender keeps every mail it is asked to send
type recordingMailSender struct {
	mu   sync.Mutex
	sent []notification.Mail
}

func (s *recordingMailSender) Send(_ context.Context, mail notification.Mail) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = append(s.sent, mail)
	return nil
}

func (s *recordingMailSender) recipients() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	to := make([]string, 0, len(s.sent))
	for _, mail := range s.sent {
		to = append(to, mail.To)
	}
	return to
}

type levelingEnv struct {
	repo   persistence.UserRepository
	tm     *database.TransactionManager
	mail   *recordingMailSender
	testDB *database.TestDBManager
}

func newLevelingEnv(t *testing.T) *levelingEnv {
	t.Helper()

	noop := logger.NewNoopLogger()
	testDB := database.NewTestDBManager(t, noop)
	db := testDB.Connect(t)

	return &levelingEnv{
		repo:   repository.NewUserRepository(db, noop),
		tm:     database.NewTransactionManager(db, noop, testDB.TimeProvider),
		mail:   &recordingMailSender{},
		testDB: testDB,
	}
}

func (e *levelingEnv) service(repo persistence.UserRepository) *userUseCase.TransactionalUserUseCase {
	noop := logger.NewNoopLogger()
	policy := userUseCase.NewDefaultLevelUpgradePolicy(e.testDB.TimeProvider)
	target := userUseCase.NewUserUseCase(repo, policy, e.mail, e.testDB.TimeProvider, noop)
	return userUseCase.NewTransactionalUserUseCase(target, e.tm, noop)
}

func (e *levelingEnv) seed(t *testing.T, svc *userUseCase.TransactionalUserUseCase) {
	t.Helper()

	users := []*entity.User{
		{ID: "1", Name: "hong", Password: "1234", Level: entity.LevelBasic, Login: userUseCase.LogCountForSilver - 1, Email: "hong@example.com"},
		{ID: "2", Name: "hong1", Password: "1234", Level: entity.LevelBasic, Login: userUseCase.LogCountForSilver, Email: "hong1@example.com"},
		{ID: "3", Name: "hong12", Password: "1234", Level: entity.LevelSilver, Login: 60, Recommend: userUseCase.RecCountForGold - 1, Email: "hong12@example.com"},
		{ID: "4", Name: "hong22", Password: "1234", Level: entity.LevelSilver, Login: 60, Recommend: userUseCase.RecCountForGold, Email: "hong22@example.com"},
		{ID: "5", Name: "hong33", Password: "1234", Level: entity.LevelGold, Login: 100, Recommend: 100, Email: "hong33@example.com"},
	}
	require.NoError(t, svc.DeleteAll(context.Background()))
	for _, user := range users {
		require.NoError(t, svc.Add(context.Background(), user))
	}
}

func (e *levelingEnv) levelOf(t *testing.T, id string) entity.Level {
	t.Helper()

	user, err := e.repo.Get(context.Background(), id)
	require.NoError(t, err)
	return user.Level
}

func TestUpgradeLevels_CommitsAndMails(t *testing.T) {
	env := newLevelingEnv(t)
	svc := env.service(env.repo)
	env.seed(t, svc)

	result, err := svc.UpgradeLevels(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 5, result.Checked)
	assert.Len(t, result.Upgraded, 2)

	assert.Equal(t, entity.LevelBasic, env.levelOf(t, "1"))
	assert.Equal(t, entity.LevelSilver, env.levelOf(t, "2"))
	assert.Equal(t, entity.LevelSilver, env.levelOf(t, "3"))
	assert.Equal(t, entity.LevelGold, env.levelOf(t, "4"))
	assert.Equal(t, entity.LevelGold, env.levelOf(t, "5"))

	assert.Equal(t, []string{"hong1@example.com", "hong22@example.com"}, env.mail.recipients())
}

func TestUpgradeLevels_AllOrNothing(t *testing.T) {
	env := newLevelingEnv(t)
	env.seed(t, env.service(env.repo))

	svc := env.service(&failingRepository{UserRepository: env.repo, failOn: "4"})

	_, err := svc.UpgradeLevels(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrDatabaseConnection)

	assert.Equal(t, entity.LevelBasic, env.levelOf(t, "2"))
	assert.Equal(t, entity.LevelSilver, env.levelOf(t, "4"))
	assert.Empty(t, env.mail.recipients())
}

func TestUpgradeLevels_JoinsCallerTransaction(t *testing.T) {
	env := newLevelingEnv(t)
	svc := env.service(env.repo)
	env.seed(t, svc)

	outer, err := env.tm.GetTransaction(context.Background(), persistence.DefaultDefinition().WithName("caller"))
	require.NoError(t, err)

	_, err = svc.UpgradeLevels(outer.Context())
	require.NoError(t, err)
	assert.Empty(t, env.mail.recipients())

	require.NoError(t, env.tm.Rollback(outer))

	assert.Equal(t, entity.LevelBasic, env.levelOf(t, "2"))
	assert.Empty(t, env.mail.recipients())
}

func TestTransactionalUserUseCase_CRUD(t *testing.T) {
	env := newLevelingEnv(t)
	svc := env.service(env.repo)
	ctx := context.Background()

	require.NoError(t, svc.Add(ctx, &entity.User{ID: "a", Name: "alpha"}))
	err := svc.Add(ctx, &entity.User{ID: "a", Name: "again"})
	assert.ErrorIs(t, err, errs.ErrDuplicateUser)

	user, err := svc.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, entity.LevelBasic, user.Level)

	user.Login = 77
	require.NoError(t, svc.Update(ctx, user))

	users, err := svc.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, 77, users[0].Login)

	count, err := svc.GetCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	require.NoError(t, svc.DeleteAll(ctx))
	_, err = svc.Get(ctx, "a")
	assert.ErrorIs(t, err, errs.ErrUserNotFound)
}

func TestTransactionalUserUseCase_ProgrammaticBoundaries(t *testing.T) {
	ctx := context.Background()
	fixture := func() []*entity.User {
		return []*entity.User{
			{ID: "1", Name: "hong", Password: "1234", Login: userUseCase.LogCountForSilver - 1},
			{ID: "2", Name: "hong1", Password: "1234", Login: userUseCase.LogCountForSilver, Recommend: 10},
		}
	}

	t.Run("Writes inside a read-only transaction are refused", func(t *testing.T) {
		env := newLevelingEnv(t)
		svc := env.service(env.repo)
		env.seed(t, svc)

		status, err := env.tm.GetTransaction(ctx, persistence.DefaultDefinition().WithName("sync").WithReadOnly(true))
		require.NoError(t, err)

		assert.ErrorIs(t, svc.DeleteAll(status.Context()), errs.ErrReadOnlyTransaction)
		assert.ErrorIs(t, svc.Add(status.Context(), fixture()[0]), errs.ErrReadOnlyTransaction)

		assert.ErrorIs(t, env.tm.Commit(status), errs.ErrUnexpectedRollback)
		assert.Equal(t, int64(5), env.testDB.CountUsers(t))
	})

	t.Run("Rolled back batch restores the count", func(t *testing.T) {
		env := newLevelingEnv(t)
		svc := env.service(env.repo)

		status, err := env.tm.GetTransaction(ctx, persistence.DefaultDefinition().
			WithName("batch").
			WithPropagation(persistence.PropagationRequiresNew))
		require.NoError(t, err)

		require.NoError(t, svc.DeleteAll(status.Context()))
		for _, user := range fixture() {
			require.NoError(t, svc.Add(status.Context(), user))
		}
		count, err := svc.GetCount(status.Context())
		require.NoError(t, err)
		assert.Equal(t, 2, count)

		require.NoError(t, env.tm.Rollback(status))

		count, err = svc.GetCount(ctx)
		require.NoError(t, err)
		assert.Zero(t, count)
	})

	t.Run("Committed batch persists", func(t *testing.T) {
		env := newLevelingEnv(t)
		svc := env.service(env.repo)

		status, err := env.tm.GetTransaction(ctx, persistence.DefaultDefinition().WithName("batch"))
		require.NoError(t, err)
		for _, user := range fixture() {
			require.NoError(t, svc.Add(status.Context(), user))
		}
		require.NoError(t, env.tm.Commit(status))

		count, err := svc.GetCount(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, count)
	})

	t.Run("Completion hook sees the state after rollback", func(t *testing.T) {
		env := newLevelingEnv(t)
		svc := env.service(env.repo)

		status, err := env.tm.GetTransaction(ctx, persistence.DefaultDefinition().WithName("test"))
		require.NoError(t, err)

		countAfter := -1
		status.RegisterSynchronization(persistence.SynchronizationFunc(
			func(context.Context, persistence.CompletionStatus) {
				n, countErr := env.repo.GetCount(context.Background())
				require.NoError(t, countErr)
				countAfter = n
			},
		))

		require.NoError(t, svc.DeleteAll(status.Context()))
		for _, user := range fixture() {
			require.NoError(t, svc.Add(status.Context(), user))
		}
		count, err := svc.GetCount(status.Context())
		require.NoError(t, err)
		assert.Equal(t, 2, count)

		require.NoError(t, env.tm.Rollback(status))
		assert.Zero(t, countAfter)
	})
}

func TestTransactionalUserUseCase_UpdateNeverLowersLevel(t *testing.T) {
	ctx := context.Background()

	t.Run("GOLD to BASIC is refused", func(t *testing.T) {
		env := newLevelingEnv(t)
		svc := env.service(env.repo)
		env.seed(t, svc)

		user, err := svc.Get(ctx, "5")
		require.NoError(t, err)
		require.Equal(t, entity.LevelGold, user.Level)

		user.Level = entity.LevelBasic
		assert.ErrorIs(t, svc.Update(ctx, user), errs.ErrLevelDowngrade)
		assert.Equal(t, entity.LevelGold, env.levelOf(t, "5"))
	})

	t.Run("Stale copy cannot undo a promotion", func(t *testing.T) {
		env := newLevelingEnv(t)
		svc := env.service(env.repo)
		env.seed(t, svc)

		stale, err := svc.Get(ctx, "4")
		require.NoError(t, err)
		require.Equal(t, entity.LevelSilver, stale.Level)

		_, err = svc.UpgradeLevels(ctx)
		require.NoError(t, err)
		promoted, err := env.repo.Get(ctx, "4")
		require.NoError(t, err)
		require.Equal(t, entity.LevelGold, promoted.Level)

		stale.Recommend++
		assert.ErrorIs(t, svc.Update(ctx, stale), errs.ErrLevelDowngrade)

		after, err := env.repo.Get(ctx, "4")
		require.NoError(t, err)
		assert.Equal(t, entity.LevelGold, after.Level)
		assert.Equal(t, promoted.Recommend, after.Recommend)
	})

	t.Run("Raising the level stamps the upgrade time", func(t *testing.T) {
		env := newLevelingEnv(t)
		svc := env.service(env.repo)
		env.seed(t, svc)

		before, err := env.repo.Get(ctx, "1")
		require.NoError(t, err)

		user := before.Clone()
		user.Level = entity.LevelSilver
		require.NoError(t, svc.Update(ctx, user))

		after, err := env.repo.Get(ctx, "1")
		require.NoError(t, err)
		assert.Equal(t, entity.LevelSilver, after.Level)
		assert.True(t, after.CreatedAt.Equal(before.CreatedAt))
		assert.False(t, after.LastUpgraded.Before(before.LastUpgraded))
	})
}
