package entity

import (
	"testing"
	"time"

	errs "github.com/amirhossein-jamali/user-leveling/internal/domain/error"
	coremocks "github.com/amirhossein-jamali/user-leveling/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	fixedTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Valid user creation", func(t *testing.T) {
		user, err := NewUser("u1", "hong", "1234", LevelBasic, 49, 0, "hong@example.com", fixedTime, fixedTime)

		require.NoError(t, err)
		assert.Equal(t, "u1", user.ID)
		assert.Equal(t, "hong", user.Name)
		assert.Equal(t, LevelBasic, user.Level)
		assert.Equal(t, 49, user.Login)
		assert.Equal(t, 0, user.Recommend)
		assert.Equal(t, fixedTime, user.CreatedAt)
		assert.Equal(t, fixedTime, user.LastUpgraded)
	})

	t.Run("Empty ID should return error", func(t *testing.T) {
		user, err := NewUser(" ", "hong", "1234", LevelBasic, 0, 0, "", fixedTime, fixedTime)

		assert.Equal(t, errs.ErrInvalidUserID, err)
		assert.Nil(t, user)
	})

	t.Run("Invalid fields", func(t *testing.T) {
		testCases := []struct {
			name      string
			userName  string
			level     Level
			login     int
			recommend int
			expected  error
		}{
			{"empty name", "", LevelBasic, 0, 0, errs.ErrInvalidUserData},
			{"zero level", "hong", 0, 0, 0, errs.ErrInvalidLevel},
			{"unknown level", "hong", Level(7), 0, 0, errs.ErrInvalidLevel},
			{"negative login", "hong", LevelBasic, -1, 0, errs.ErrInvalidUserData},
			{"negative recommend", "hong", LevelSilver, 0, -1, errs.ErrInvalidUserData},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				user, err := NewUser("u1", tc.userName, "1234", tc.level, tc.login, tc.recommend, "", fixedTime, fixedTime)

				assert.ErrorIs(t, err, tc.expected)
				assert.Nil(t, user)
			})
		}
	})
}

func TestUser_UpgradeLevel(t *testing.T) {
	created := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	upgradedAt := created.Add(24 * time.Hour)

	t.Run("BASIC to SILVER", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(upgradedAt).Once()

		user := &User{ID: "u1", Name: "hong", Level: LevelBasic, LastUpgraded: created}
		require.NoError(t, user.UpgradeLevel(mockTime))

		assert.Equal(t, LevelSilver, user.Level)
		assert.Equal(t, upgradedAt, user.LastUpgraded)
	})

	t.Run("SILVER to GOLD", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(upgradedAt).Once()

		user := &User{ID: "u1", Name: "hong", Level: LevelSilver, LastUpgraded: created}
		require.NoError(t, user.UpgradeLevel(mockTime))

		assert.Equal(t, LevelGold, user.Level)
	})

	t.Run("GOLD cannot be upgraded", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)

		user := &User{ID: "u1", Name: "hong", Level: LevelGold, LastUpgraded: created}
		err := user.UpgradeLevel(mockTime)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrCannotUpgradeLevel)

		var upgradeErr *errs.UpgradeError
		require.ErrorAs(t, err, &upgradeErr)
		assert.Equal(t, "u1", upgradeErr.UserID)
		assert.Equal(t, "GOLD", upgradeErr.FromLevel)
		assert.Equal(t, LevelGold, user.Level)
		assert.Equal(t, created, user.LastUpgraded)
	})
}

func TestUser_Clone(t *testing.T) {
	user := &User{ID: "u1", Name: "hong", Level: LevelBasic, Login: 3}

	clone := user.Clone()
	clone.Login = 10
	clone.Level = LevelGold

	assert.Equal(t, 3, user.Login)
	assert.Equal(t, LevelBasic, user.Level)
	assert.Equal(t, "u1", clone.ID)
}
