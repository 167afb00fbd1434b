package entity

import (
	"fmt"
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/user-leveling/internal/domain/error"
	coreport "github.com/amirhossein-jamali/user-leveling/internal/domain/port/core"
)

// User represents a user graded by loyalty level
type User struct {
	ID           string    // Unique identifier for the user
	Name         string    // Display name
	Password     string    // Password as supplied by the client
	Level        Level     // Current loyalty tier
	Login        int       // Number of logins
	Recommend    int       // Number of recommendations received
	Email        string    // Address used for upgrade notices
	CreatedAt    time.Time // When the user was created
	LastUpgraded time.Time // When the level last changed
}

// NewUser creates a new user after validating its fields
func NewUser(
	id, name, password string,
	level Level,
	login, recommend int,
	email string,
	createdAt, lastUpgraded time.Time,
) (*User, error) {
	user := &User{
		ID:           id,
		Name:         name,
		Password:     password,
		Level:        level,
		Login:        login,
		Recommend:    recommend,
		Email:        email,
		CreatedAt:    createdAt,
		LastUpgraded: lastUpgraded,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks the user's invariants
func (u *User) Validate() error {
	if strings.TrimSpace(u.ID) == "" {
		return errs.ErrInvalidUserID
	}
	if strings.TrimSpace(u.Name) == "" {
		return fmt.Errorf("%w: name is required", errs.ErrInvalidUserData)
	}
	if !u.Level.IsValid() {
		return fmt.Errorf("%w: %d", errs.ErrInvalidLevel, int(u.Level))
	}
	if u.Login < 0 {
		return fmt.Errorf("%w: login count cannot be negative", errs.ErrInvalidUserData)
	}
	if u.Recommend < 0 {
		return fmt.Errorf("%w: recommend count cannot be negative", errs.ErrInvalidUserData)
	}
	return nil
}

// UpgradeLevel moves the user to the next level
func (u *User) UpgradeLevel(timeProvider coreport.TimeProvider) error {
	next, ok := u.Level.Next()
	if !ok {
		return errs.NewUpgradeError(u.ID, u.Level.String(), errs.ErrCannotUpgradeLevel)
	}

	u.Level = next
	u.LastUpgraded = timeProvider.Now()
	return nil
}

// Clone returns a copy of the user
func (u *User) Clone() *User {
	clone := *u
	return &clone
}
