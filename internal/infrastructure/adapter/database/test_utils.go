package database

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	coreport "github.com/amirhossein-jamali/user-leveling/internal/domain/port/core"
	"github.com/amirhossein-jamali/user-leveling/internal/infrastructure/adapter/database/migration"
	timeprovider "github.com/amirhossein-jamali/user-leveling/internal/infrastructure/adapter/time"
	"gorm.io/gorm"
)

// TestDBManager provides utilities for testing with a database
type TestDBManager struct {
	Manager      *Manager
	Config       *Config
	Logger       coreport.Logger
	TimeProvider coreport.TimeProvider
}

// NewTestDBManager creates a test database manager backed by a sqlite file
// in the test's temporary directory. The file lives as long as the test.
func NewTestDBManager(t *testing.T, logger coreport.Logger) *TestDBManager {
	t.Helper()

	timeProvider := timeprovider.NewRealTimeProvider()

	config := &Config{
		Driver:          DriverSQLite,
		Path:            filepath.Join(t.TempDir(), "user-leveling-test.db"),
		MaxOpenConns:    4,
		MaxIdleConns:    4,
		ConnMaxLifetime: 5 * time.Minute,
		ConnMaxIdleTime: 5 * time.Minute,
		QueryTimeout:    5 * time.Second,
		BusyTimeout:     5 * time.Second,
		LogLevel:        "silent",
		RetryAttempts:   1,
	}

	return &TestDBManager{
		Manager:      NewManager(config, logger, timeProvider, nil),
		Config:       config,
		Logger:       logger,
		TimeProvider: timeProvider,
	}
}

// Connect connects to the test database and migrates the schema.
// The connection is closed when the test finishes.
func (m *TestDBManager) Connect(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := m.Manager.Connect(context.Background())
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	t.Cleanup(func() { m.Close(t) })

	migrator := migration.NewMigrationManager(db, m.Logger, m.TimeProvider)
	if err := migrator.MigrateAll(context.Background()); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return db
}

// Close closes the test database connection
func (m *TestDBManager) Close(t *testing.T) {
	t.Helper()

	if err := m.Manager.Close(); err != nil {
		t.Logf("Warning: Failed to close test database connection: %v", err)
	}
}

// TruncateAllTables removes every user row
func (m *TestDBManager) TruncateAllTables(t *testing.T) {
	t.Helper()

	if err := m.Manager.DB().Exec("DELETE FROM users").Error; err != nil {
		t.Fatalf("Failed to truncate tables: %v", err)
	}
}

// CountUsers counts user rows outside of any transaction
func (m *TestDBManager) CountUsers(t *testing.T) int64 {
	t.Helper()

	var count int64
	if err := m.Manager.DB().Table("users").Count(&count).Error; err != nil {
		t.Fatalf("Failed to count users: %v", err)
	}
	return count
}
