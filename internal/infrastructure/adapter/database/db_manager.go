package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	coreport "github.com/amirhossein-jamali/user-leveling/internal/domain/port/core"
	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Manager manages database connections
type Manager struct {
	config            *Config
	db                *gorm.DB
	logger            coreport.Logger
	errorMapper       *ErrorMapper
	connectionMonitor *ConnectionPoolMonitor
	timeProvider      coreport.TimeProvider
	registerer        prometheus.Registerer
}

// NewManager creates a new database manager.
// Metrics are registered on registerer; nil disables pool metrics export.
func NewManager(
	config *Config,
	logger coreport.Logger,
	timeProvider coreport.TimeProvider,
	registerer prometheus.Registerer,
) *Manager {
	return &Manager{
		config:       config,
		logger:       logger,
		errorMapper:  NewErrorMapper(),
		timeProvider: timeProvider,
		registerer:   registerer,
	}
}

// Connect establishes a database connection, retrying transient failures
func (m *Manager) Connect(ctx context.Context) (*gorm.DB, error) {
	if err := m.config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid database configuration: %w", err)
	}

	m.logger.Info("Connecting to database", m.connectionFields())

	var gormDB *gorm.DB
	err := RetryOnTransientError(ctx, RetryConfigFrom(m.config), "connect", func() error {
		db, err := m.open()
		if err != nil {
			return err
		}

		sqlDB, err := db.DB()
		if err != nil {
			return fmt.Errorf("failed to get database connection: %w", err)
		}
		if err := sqlDB.PingContext(ctx); err != nil {
			_ = sqlDB.Close()
			return err
		}

		gormDB = db
		return nil
	}, m.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database after %d attempts: %w",
			max(m.config.RetryAttempts, 1), m.errorMapper.MapError(err, "connect"))
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database connection: %w", err)
	}

	sqlDB.SetMaxOpenConns(m.config.MaxOpenConns)
	sqlDB.SetMaxIdleConns(m.config.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(m.config.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(m.config.ConnMaxIdleTime)

	fields := m.connectionFields()
	fields["max_open_conns"] = m.config.MaxOpenConns
	fields["max_idle_conns"] = m.config.MaxIdleConns
	fields["query_timeout"] = m.config.QueryTimeout.String()
	m.logger.Info("Successfully connected to database", fields)

	m.db = gormDB
	m.connectionMonitor = NewConnectionPoolMonitor(m, m.logger, m.registerer)

	if err := m.connectionMonitor.Start(30 * time.Second); err != nil {
		m.logger.Warn("Failed to start connection pool monitoring", map[string]any{"error": err.Error()})
	}

	return m.db, nil
}

func (m *Manager) open() (*gorm.DB, error) {
	gormConfig := &gorm.Config{
		Logger: NewDatabaseLogger(m.logger, m.timeProvider, m.config.LogLevel, m.config.SlowThreshold),
		NowFunc: func() time.Time {
			return m.timeProvider.Now()
		},
		TranslateError: true,
	}

	switch m.config.Driver {
	case DriverPostgres:
		gormConfig.PrepareStmt = true
		return gorm.Open(postgres.Open(m.config.DSN()), gormConfig)
	case DriverSQLite:
		return gorm.Open(sqlite.Open(m.config.DSN()), gormConfig)
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", m.config.Driver)
	}
}

func (m *Manager) connectionFields() map[string]any {
	if m.config.Driver == DriverSQLite {
		return map[string]any{
			"driver": m.config.Driver,
			"path":   m.config.Path,
		}
	}
	return map[string]any{
		"driver": m.config.Driver,
		"host":   m.config.Host,
		"port":   m.config.Port,
		"name":   m.config.Database,
	}
}

// DB returns the GORM database instance
func (m *Manager) DB() *gorm.DB {
	return m.db
}

// Ping checks that the database answers within the query timeout
func (m *Manager) Ping(ctx context.Context) error {
	if m.db == nil {
		return errors.New("database is not connected")
	}

	sqlDB, err := m.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database connection: %w", err)
	}

	ctx, cancel := m.WithTimeout(ctx)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		return m.errorMapper.MapError(err, "ping")
	}
	return nil
}

// Close closes the database connection
func (m *Manager) Close() error {
	m.logger.Info("Closing database connection", nil)

	if m.connectionMonitor != nil {
		m.connectionMonitor.Stop()
	}
	if m.db == nil {
		return nil
	}

	sqlDB, err := m.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database connection: %w", err)
	}

	return sqlDB.Close()
}

// WithTimeout returns a context with timeout for database operations
func (m *Manager) WithTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return m.timeProvider.WithTimeout(ctx, m.config.QueryTimeout)
}

// NewTransactionManager creates a TransactionManager over the managed connection
func (m *Manager) NewTransactionManager(metrics *TransactionMetrics) *TransactionManager {
	return NewTransactionManager(m.db, m.logger, m.timeProvider,
		WithTransactionMetrics(metrics),
		WithBeginRetry(RetryConfigFrom(m.config)),
	)
}

// GetErrorMapper returns the error mapper
func (m *Manager) GetErrorMapper() *ErrorMapper {
	return m.errorMapper
}
