package database

import (
	"context"
	"errors"
	"testing"

	domainErr "github.com/amirhossein-jamali/user-leveling/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestErrorMapper_MapError(t *testing.T) {
	mapper := NewErrorMapper()

	testCases := []struct {
		name     string
		err      error
		expected error
	}{
		{"record not found", gorm.ErrRecordNotFound, domainErr.ErrNotFound},
		{"duplicated key", gorm.ErrDuplicatedKey, domainErr.ErrDuplicateUser},
		{"foreign key", gorm.ErrForeignKeyViolated, domainErr.ErrConstraintViolation},
		{"check constraint", gorm.ErrCheckConstraintViolated, domainErr.ErrConstraintViolation},
		{"deadline", context.DeadlineExceeded, domainErr.ErrDatabaseConnection},
		{"canceled", context.Canceled, domainErr.ErrDatabaseConnection},
		{"postgres deadlock", errors.New("ERROR: deadlock detected (SQLSTATE 40P01)"), domainErr.ErrTransactionConflict},
		{"postgres serialization", errors.New("could not serialize access due to concurrent update: serialization failure"), domainErr.ErrTransactionConflict},
		{"sqlite busy", errors.New("database is locked"), domainErr.ErrTransactionConflict},
		{"sqlite unique", errors.New("UNIQUE constraint failed: users.id"), domainErr.ErrDuplicateUser},
		{"not null", errors.New("NOT NULL constraint failed: users.name"), domainErr.ErrConstraintViolation},
		{"connection refused", errors.New("dial tcp 127.0.0.1:5432: connect: connection refused"), domainErr.ErrDatabaseConnection},
		{"unknown", errors.New("something odd"), domainErr.ErrInternalServer},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, mapper.MapError(tc.err, "test"), tc.expected)
		})
	}

	t.Run("nil stays nil", func(t *testing.T) {
		assert.NoError(t, mapper.MapError(nil, "test"))
	})

	t.Run("domain errors pass through", func(t *testing.T) {
		for _, err := range []error{domainErr.ErrUserNotFound, domainErr.ErrReadOnlyTransaction, domainErr.ErrNotFound, domainErr.ErrInternalServer} {
			assert.Same(t, err, mapper.MapError(err, "test"))
		}
	})
}

func TestErrorMapper_MapUserNotFoundError(t *testing.T) {
	mapper := NewErrorMapper()

	assert.Equal(t, domainErr.ErrUserNotFound, mapper.MapUserNotFoundError(gorm.ErrRecordNotFound))
	assert.Equal(t, domainErr.ErrNotFound, mapper.MapEntityNotFoundError(gorm.ErrRecordNotFound, EntityType("other")))
	assert.ErrorIs(t, mapper.MapUserNotFoundError(gorm.ErrDuplicatedKey), domainErr.ErrDuplicateUser)
	assert.NoError(t, mapper.MapUserNotFoundError(nil))
}
