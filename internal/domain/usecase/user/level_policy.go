package user

import (
	"fmt"

	"github.com/amirhossein-jamali/user-leveling/internal/domain/entity"
	errs "github.com/amirhossein-jamali/user-leveling/internal/domain/error"
	coreport "github.com/amirhossein-jamali/user-leveling/internal/domain/port/core"
)

// Default upgrade thresholds
const (
	// LogCountForSilver is the login count at which a BASIC user becomes SILVER
	LogCountForSilver = 50
	// RecCountForGold is the recommendation count at which a SILVER user becomes GOLD
	RecCountForGold = 30
)

// LevelUpgradePolicy decides whether and how a user moves up a level
type LevelUpgradePolicy interface {
	CanUpgrade(user *entity.User) bool
	Upgrade(user *entity.User) error
}

// ThresholdPolicy upgrades users whose counters reach fixed thresholds
type ThresholdPolicy struct {
	logCountForSilver int
	recCountForGold   int
	timeProvider      coreport.TimeProvider
}

// NewDefaultLevelUpgradePolicy returns the policy with the default thresholds
func NewDefaultLevelUpgradePolicy(timeProvider coreport.TimeProvider) *ThresholdPolicy {
	return &ThresholdPolicy{
		logCountForSilver: LogCountForSilver,
		recCountForGold:   RecCountForGold,
		timeProvider:      timeProvider,
	}
}

// NewThresholdPolicy returns a policy with custom thresholds
func NewThresholdPolicy(logCountForSilver, recCountForGold int, timeProvider coreport.TimeProvider) (*ThresholdPolicy, error) {
	if logCountForSilver <= 0 || recCountForGold <= 0 {
		return nil, fmt.Errorf("%w: thresholds must be positive (silver=%d, gold=%d)",
			errs.ErrInvalidRequest, logCountForSilver, recCountForGold)
	}

	return &ThresholdPolicy{
		logCountForSilver: logCountForSilver,
		recCountForGold:   recCountForGold,
		timeProvider:      timeProvider,
	}, nil
}

// CanUpgrade reports whether the user qualifies for the next level
func (p *ThresholdPolicy) CanUpgrade(user *entity.User) bool {
	switch user.Level {
	case entity.LevelBasic:
		return user.Login >= p.logCountForSilver
	case entity.LevelSilver:
		return user.Recommend >= p.recCountForGold
	default:
		return false
	}
}

// Upgrade moves the user to the next level
func (p *ThresholdPolicy) Upgrade(user *entity.User) error {
	return user.UpgradeLevel(p.timeProvider)
}
