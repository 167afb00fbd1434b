package migration

import (
	"context"
	"errors"
	"fmt"

	coreport "github.com/amirhossein-jamali/user-leveling/internal/domain/port/core"
	"github.com/amirhossein-jamali/user-leveling/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

const (
	// CurrentSchemaVersion represents the current database schema version
	CurrentSchemaVersion = "1.1.0"
)

// MigrationManager manages database migrations
type MigrationManager struct {
	db           *gorm.DB
	logger       coreport.Logger
	timeProvider coreport.TimeProvider
}

// NewMigrationManager creates a new migration manager
func NewMigrationManager(db *gorm.DB, logger coreport.Logger, timeProvider coreport.TimeProvider) *MigrationManager {
	return &MigrationManager{
		db:           db,
		logger:       logger,
		timeProvider: timeProvider,
	}
}

// MigrateAll brings the schema up to CurrentSchemaVersion
func (m *MigrationManager) MigrateAll(ctx context.Context) error {
	m.logger.Info("Starting database migrations", map[string]any{
		"target_version": CurrentSchemaVersion,
		"dialect":        m.db.Dialector.Name(),
	})

	db := m.db.WithContext(ctx)

	if err := db.AutoMigrate(&model.MigrationVersion{}); err != nil {
		m.logger.Error("Failed to create migration version table", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	currentVersion, err := m.GetCurrentVersion(ctx)
	if err != nil {
		m.logger.Error("Failed to check current schema version", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	if currentVersion == CurrentSchemaVersion {
		m.logger.Info("Database already at target version, skipping migration", map[string]any{
			"version": currentVersion,
		})
		return nil
	}

	m.logger.Info("Current database version", map[string]any{
		"version": currentVersion,
	})

	if err := db.AutoMigrate(&model.User{}); err != nil {
		m.logger.Error("Failed to auto-migrate models", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	if err := m.runVersionedMigrations(ctx, currentVersion); err != nil {
		m.logger.Error("Failed to run versioned migrations", map[string]any{
			"error":           err.Error(),
			"current_version": currentVersion,
			"target_version":  CurrentSchemaVersion,
		})
		return err
	}

	if err := m.setVersion(ctx, CurrentSchemaVersion, "Full schema migration"); err != nil {
		m.logger.Error("Failed to update schema version", map[string]any{
			"error":   err.Error(),
			"version": CurrentSchemaVersion,
		})
		return err
	}

	m.logger.Info("Database migrations completed successfully", map[string]any{
		"version": CurrentSchemaVersion,
	})
	return nil
}

// GetCurrentVersion gets the current migration version
func (m *MigrationManager) GetCurrentVersion(ctx context.Context) (string, error) {
	if ctx.Err() != nil {
		return "", ctx.Err()
	}

	var version model.MigrationVersion
	result := m.db.WithContext(ctx).Order("id desc").First(&version)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", result.Error
	}

	return version.Version, nil
}

// setVersion records a new migration version
func (m *MigrationManager) setVersion(ctx context.Context, version string, details string) error {
	migrationVersion := model.MigrationVersion{
		Version:   version,
		Dialect:   m.db.Dialector.Name(),
		AppliedAt: m.timeProvider.Now(),
		Details:   details,
	}

	return m.db.WithContext(ctx).Create(&migrationVersion).Error
}

// runVersionedMigrations runs migrations specific to version transitions
func (m *MigrationManager) runVersionedMigrations(ctx context.Context, currentVersion string) error {
	m.logger.Info("Running versioned migrations", map[string]any{
		"from": currentVersion,
		"to":   CurrentSchemaVersion,
	})

	switch currentVersion {
	case "":
		if err := m.migrateTo1_0_0(ctx); err != nil {
			return err
		}
		fallthrough
	case "1.0.0":
		if err := m.migrateFrom1_0_0To1_1_0(ctx); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown schema version %q", currentVersion)
	}

	return nil
}

// migrateTo1_0_0 creates the indexes the level upgrade scan relies on
func (m *MigrationManager) migrateTo1_0_0(ctx context.Context) error {
	m.logger.Info("Migrating to v1.0.0", nil)

	return m.db.WithContext(ctx).
		Exec("CREATE INDEX IF NOT EXISTS idx_users_level_counters ON users (level, login, recommend)").Error
}

// migrateFrom1_0_0To1_1_0 adds a case-insensitive email index used by notices
func (m *MigrationManager) migrateFrom1_0_0To1_1_0(ctx context.Context) error {
	m.logger.Info("Migrating from v1.0.0 to v1.1.0", nil)

	return m.db.WithContext(ctx).
		Exec("CREATE INDEX IF NOT EXISTS idx_users_email_lower ON users (lower(email))").Error
}
