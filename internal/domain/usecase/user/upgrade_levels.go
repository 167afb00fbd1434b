package user

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/user-leveling/internal/domain/entity"
	errs "github.com/amirhossein-jamali/user-leveling/internal/domain/error"
	"github.com/amirhossein-jamali/user-leveling/internal/domain/port/notification"
	"github.com/amirhossein-jamali/user-leveling/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/user-leveling/internal/domain/port/usecase"
)

// UpgradeLevels promotes every eligible user by one level.
// The first failing update aborts the run; when ctx carries a transaction
// the caller is expected to roll it back.
func (u *UserUseCase) UpgradeLevels(ctx context.Context) (*usecase.UpgradeResult, error) {
	users, err := u.userRepo.GetAll(ctx)
	if err != nil {
		u.logger.Error("Failed to load users for level upgrade", map[string]any{
			"error": err.Error(),
		})
		return nil, err
	}

	result := &usecase.UpgradeResult{Checked: len(users)}

	for _, user := range users {
		if !u.policy.CanUpgrade(user) {
			continue
		}

		from := user.Level
		if err := u.upgradeLevel(ctx, user); err != nil {
			upgradeErr := &errs.UpgradeError{UserID: user.ID, FromLevel: from.String(), Err: err}
			u.logger.Error("Level upgrade aborted", upgradeErr.LogFields())
			return nil, upgradeErr
		}

		result.Upgraded = append(result.Upgraded, usecase.UpgradedUser{
			UserID: user.ID,
			From:   from,
			To:     user.Level,
		})
	}

	u.logger.Info("Level upgrade finished", map[string]any{
		"checked":  result.Checked,
		"upgraded": len(result.Upgraded),
	})

	return result, nil
}

func (u *UserUseCase) upgradeLevel(ctx context.Context, user *entity.User) error {
	if err := u.policy.Upgrade(user); err != nil {
		return err
	}
	if err := u.userRepo.Update(ctx, user); err != nil {
		return err
	}

	u.notifyUpgrade(ctx, user)
	return nil
}

// notifyUpgrade sends the upgrade notice once the surrounding transaction
// commits, or right away when there is no transaction scope
func (u *UserUseCase) notifyUpgrade(ctx context.Context, user *entity.User) {
	if user.Email == "" {
		return
	}

	mail := notification.Mail{
		To:      user.Email,
		From:    u.mailFrom,
		Subject: "Upgrade notice",
		Body:    fmt.Sprintf("Hello %s, your level has been upgraded to %s.", user.Name, user.Level),
	}

	registered := persistence.RegisterSynchronization(ctx, persistence.SynchronizationFunc(
		func(syncCtx context.Context, status persistence.CompletionStatus) {
			if status != persistence.CompletionCommitted {
				u.logger.Debug("Upgrade notice discarded", map[string]any{
					"userId": user.ID,
					"status": status.String(),
				})
				return
			}
			u.sendMail(syncCtx, mail)
		},
	))
	if !registered {
		u.sendMail(ctx, mail)
	}
}

func (u *UserUseCase) sendMail(ctx context.Context, mail notification.Mail) {
	if err := u.mailSender.Send(ctx, mail); err != nil {
		u.logger.Warn("Failed to send upgrade notice", map[string]any{
			"to":    mail.To,
			"error": err.Error(),
		})
	}
}
