package user

import (
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	coreport "github.com/amirhossein-jamali/user-leveling/internal/domain/port/core"
	"github.com/amirhossein-jamali/user-leveling/internal/domain/port/notification"
	"github.com/amirhossein-jamali/user-leveling/internal/domain/port/persistence"
)

// DefaultMailFrom is the sender address of level upgrade notices
const DefaultMailFrom = "noreply@user-leveling.local"

// UserUseCase implements the user business logic
type UserUseCase struct {
	userRepo     persistence.UserRepository
	policy       LevelUpgradePolicy
	mailSender   notification.MailSender
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	validate     *validator.Validate
	mailFrom     string
	newID        func() string
}

// Option customizes a UserUseCase
type Option func(*UserUseCase)

// WithMailFrom sets the sender address of upgrade notices
func WithMailFrom(from string) Option {
	return func(u *UserUseCase) {
		if from != "" {
			u.mailFrom = from
		}
	}
}

// WithIDGenerator replaces the generator used for users added without an ID
func WithIDGenerator(newID func() string) Option {
	return func(u *UserUseCase) {
		if newID != nil {
			u.newID = newID
		}
	}
}

// NewUserUseCase creates a new user use case instance
func NewUserUseCase(
	userRepo persistence.UserRepository,
	policy LevelUpgradePolicy,
	mailSender notification.MailSender,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	opts ...Option,
) *UserUseCase {
	u := &UserUseCase{
		userRepo:     userRepo,
		policy:       policy,
		mailSender:   mailSender,
		timeProvider: timeProvider,
		logger:       logger,
		validate:     validator.New(),
		mailFrom:     DefaultMailFrom,
		newID:        uuid.NewString,
	}

	for _, opt := range opts {
		opt(u)
	}

	return u
}
