package database

import (
	"context"
	"errors"
	"fmt"
	"strings"

	domainErr "github.com/amirhossein-jamali/user-leveling/internal/domain/error"
	"gorm.io/gorm"
)

// EntityType represents the type of entity for errors mapping
type EntityType string

const (
	// EntityTypeUser represents the user entity
	EntityTypeUser EntityType = "user"
)

// ErrorMapper maps database errors to domain errors
type ErrorMapper struct{}

// NewErrorMapper creates a new ErrorMapper
func NewErrorMapper() *ErrorMapper {
	return &ErrorMapper{}
}

// MapError maps a database error to a domain error.
// Domain errors pass through unchanged.
func (m *ErrorMapper) MapError(err error, operation string) error {
	if err == nil {
		return nil
	}

	if domainErr.ErrorCode(err) != domainErr.CodeInternalServer ||
		errors.Is(err, domainErr.ErrNotFound) ||
		errors.Is(err, domainErr.ErrInternalServer) {
		return err
	}

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return domainErr.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return domainErr.ErrDuplicateUser
	case errors.Is(err, gorm.ErrForeignKeyViolated), errors.Is(err, gorm.ErrCheckConstraintViolated):
		return domainErr.ErrConstraintViolation
	case errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%w: %s operation timed out", domainErr.ErrDatabaseConnection, operation)
	case errors.Is(err, context.Canceled):
		return fmt.Errorf("%w: %s operation canceled", domainErr.ErrDatabaseConnection, operation)
	}

	// Driver messages for postgres and sqlite
	errMsg := strings.ToLower(err.Error())

	switch {
	// Transaction and locking errors
	case strings.Contains(errMsg, "deadlock") ||
		strings.Contains(errMsg, "serialization") ||
		strings.Contains(errMsg, "lock timeout") ||
		strings.Contains(errMsg, "database is locked") ||
		strings.Contains(errMsg, "database table is locked"):
		return fmt.Errorf("%w: %s", domainErr.ErrTransactionConflict, operation)

	// Duplicate key errors
	case strings.Contains(errMsg, "duplicate key") ||
		strings.Contains(errMsg, "unique constraint"):
		return domainErr.ErrDuplicateUser

	// Constraint violations
	case strings.Contains(errMsg, "check constraint") ||
		strings.Contains(errMsg, "foreign key constraint") ||
		strings.Contains(errMsg, "not null constraint"):
		return domainErr.ErrConstraintViolation

	// Connection issues
	case strings.Contains(errMsg, "connection refused") ||
		strings.Contains(errMsg, "no connection") ||
		strings.Contains(errMsg, "connection reset") ||
		strings.Contains(errMsg, "database is closed") ||
		strings.Contains(errMsg, "unable to open database"):
		return domainErr.ErrDatabaseConnection

	// Timeout errors
	case strings.Contains(errMsg, "timeout") ||
		strings.Contains(errMsg, "deadline exceeded"):
		return fmt.Errorf("%w: %s operation timed out", domainErr.ErrDatabaseConnection, operation)

	default:
		return fmt.Errorf("%w: %s: %v", domainErr.ErrInternalServer, operation, err)
	}
}

// MapEntityNotFoundError maps database errors to specific entity not found errors
func (m *ErrorMapper) MapEntityNotFoundError(err error, entityType EntityType) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		switch entityType {
		case EntityTypeUser:
			return domainErr.ErrUserNotFound
		default:
			return domainErr.ErrNotFound
		}
	}

	return m.MapError(err, string(entityType))
}

// MapUserNotFoundError maps database errors to user not found errors
func (m *ErrorMapper) MapUserNotFoundError(err error) error {
	return m.MapEntityNotFoundError(err, EntityTypeUser)
}
