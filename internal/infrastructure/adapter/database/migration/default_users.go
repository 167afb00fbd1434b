package migration

import (
	"context"

	"github.com/amirhossein-jamali/user-leveling/internal/domain/entity"
	userUseCase "github.com/amirhossein-jamali/user-leveling/internal/domain/usecase/user"
)

type defaultUser struct {
	id        string
	name      string
	password  string
	level     entity.Level
	login     int
	recommend int
	email     string
}

// Users seeded into an empty development database. The counters sit on both
// sides of the upgrade thresholds.
var defaultUsers = []defaultUser{
	{id: "1", name: "hong", password: "1234", level: entity.LevelBasic, login: userUseCase.LogCountForSilver - 1, recommend: 0, email: "hong@example.com"},
	{id: "2", name: "hong1", password: "1234", level: entity.LevelBasic, login: userUseCase.LogCountForSilver, recommend: 10, email: "hong1@example.com"},
	{id: "3", name: "hong12", password: "1234", level: entity.LevelSilver, login: 55, recommend: userUseCase.RecCountForGold, email: "hong12@example.com"},
	{id: "4", name: "hong22", password: "1234", level: entity.LevelGold, login: 60, recommend: userUseCase.RecCountForGold, email: "hong22@example.com"},
	{id: "5", name: "hong33", password: "1234", level: entity.LevelSilver, login: 60, recommend: userUseCase.RecCountForGold - 1, email: "hong33@example.com"},
}

// CreateDefaultUsers creates the default users that do not exist yet
func CreateDefaultUsers(ctx context.Context, userService *userUseCase.UserUseCase) error {
	for _, u := range defaultUsers {
		exists, err := userService.UserExists(ctx, u.id)
		if err != nil {
			return err
		}
		if exists {
			continue
		}

		user := &entity.User{
			ID:        u.id,
			Name:      u.name,
			Password:  u.password,
			Level:     u.level,
			Login:     u.login,
			Recommend: u.recommend,
			Email:     u.email,
		}
		if err := userService.Add(ctx, user); err != nil {
			return err
		}
	}

	return nil
}
