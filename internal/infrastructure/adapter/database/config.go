package database

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

// Supported drivers
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config represents database configuration
type Config struct {
	Driver          string        `mapstructure:"db_driver"`
	Host            string        `mapstructure:"db_host"`
	Port            int           `mapstructure:"db_port"`
	Username        string        `mapstructure:"db_username"`
	Password        string        `mapstructure:"db_password"`
	Database        string        `mapstructure:"db_name"`
	SSLMode         string        `mapstructure:"db_ssl_mode"`
	Path            string        `mapstructure:"db_path"` // sqlite file, ":memory:" is not supported
	MaxOpenConns    int           `mapstructure:"db_max_open_conns"`
	MaxIdleConns    int           `mapstructure:"db_max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"db_conn_max_lifetime"`
	ConnMaxIdleTime time.Duration `mapstructure:"db_conn_max_idle_time"`
	QueryTimeout    time.Duration `mapstructure:"db_query_timeout"`
	BusyTimeout     time.Duration `mapstructure:"db_busy_timeout"` // sqlite only
	LogLevel        string        `mapstructure:"db_log_level"`
	SlowThreshold   time.Duration `mapstructure:"db_slow_threshold"`
	RetryAttempts   int           `mapstructure:"db_retry_attempts"`
	RetryDelay      time.Duration `mapstructure:"db_retry_delay"`
}

// DefaultConfig returns a Config with default values.
// Credentials are never defaulted and must come from the environment or config files.
func DefaultConfig() *Config {
	return &Config{
		Driver:          configEnvOrDefault("UL_DB_DRIVER", DriverPostgres),
		Host:            configEnv("UL_DB_HOST"),
		Port:            configEnvAsInt("UL_DB_PORT", 5432),
		Username:        configEnv("UL_DB_USERNAME"),
		Password:        configEnv("UL_DB_PASSWORD"),
		Database:        configEnv("UL_DB_NAME"),
		SSLMode:         configEnvOrDefault("UL_DB_SSL_MODE", "disable"),
		Path:            configEnvOrDefault("UL_DB_PATH", "user-leveling.db"),
		MaxOpenConns:    configEnvAsInt("UL_DB_MAX_OPEN_CONNS", 25),
		MaxIdleConns:    configEnvAsInt("UL_DB_MAX_IDLE_CONNS", 25),
		ConnMaxLifetime: time.Duration(configEnvAsInt("UL_DB_CONN_MAX_LIFETIME_MINUTES", 5)) * time.Minute,
		ConnMaxIdleTime: time.Duration(configEnvAsInt("UL_DB_CONN_MAX_IDLE_TIME_MINUTES", 5)) * time.Minute,
		QueryTimeout:    time.Duration(configEnvAsInt("UL_DB_QUERY_TIMEOUT_SECONDS", 10)) * time.Second,
		BusyTimeout:     5 * time.Second,
		LogLevel:        configEnvOrDefault("UL_LOGGER_LEVEL", "info"),
		SlowThreshold:   200 * time.Millisecond,
		RetryAttempts:   configEnvAsInt("UL_DB_RETRY_ATTEMPTS", 3),
		RetryDelay:      time.Duration(configEnvAsInt("UL_DB_RETRY_DELAY_SECONDS", 1)) * time.Second,
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	switch c.Driver {
	case DriverPostgres:
		if err := c.validatePostgres(); err != nil {
			return err
		}
	case DriverSQLite:
		if c.Path == "" {
			return errors.New("sqlite database path is required")
		}
		if c.Path == ":memory:" {
			return errors.New("in-memory sqlite is not supported, every pooled connection would see its own database")
		}
	default:
		return fmt.Errorf("unsupported database driver: %s", c.Driver)
	}

	if c.MaxOpenConns <= 0 {
		return fmt.Errorf("max open connections must be positive, got: %d", c.MaxOpenConns)
	}
	if c.MaxIdleConns <= 0 {
		return fmt.Errorf("max idle connections must be positive, got: %d", c.MaxIdleConns)
	}
	if c.QueryTimeout <= 0 {
		return errors.New("query timeout must be positive")
	}
	if c.RetryAttempts < 0 {
		return fmt.Errorf("retry attempts must be non-negative, got: %d", c.RetryAttempts)
	}
	if c.RetryDelay < 0 {
		return fmt.Errorf("retry delay must be non-negative, got: %s", c.RetryDelay)
	}

	validLogLevels := map[string]bool{
		"silent": true,
		"debug":  true,
		"info":   true,
		"warn":   true,
		"error":  true,
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s", c.LogLevel)
	}

	return nil
}

func (c *Config) validatePostgres() error {
	if c.Host == "" {
		return errors.New("database host is required")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port number: %d", c.Port)
	}
	if c.Username == "" {
		return errors.New("database username is required")
	}
	if c.Password == "" {
		return errors.New("database password is required")
	}
	if c.Database == "" {
		return errors.New("database name is required")
	}

	validSSLModes := map[string]bool{
		"disable":     true,
		"require":     true,
		"verify-ca":   true,
		"verify-full": true,
		"prefer":      true,
	}
	if !validSSLModes[c.SSLMode] {
		return fmt.Errorf("invalid SSL mode: %s", c.SSLMode)
	}
	return nil
}

// DSN returns the connection string for the configured driver
func (c *Config) DSN() string {
	if c.Driver == DriverSQLite {
		busy := c.BusyTimeout
		if busy <= 0 {
			busy = 5 * time.Second
		}
		return fmt.Sprintf("file:%s?_journal_mode=WAL&_busy_timeout=%d&_foreign_keys=on",
			c.Path, busy.Milliseconds())
	}

	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.Username, c.Password, c.Database, c.SSLMode,
	)
}

// WithMaxOpenConnections returns a copy of the config with updated max open connections
func (c *Config) WithMaxOpenConnections(max int) *Config {
	newConfig := *c
	newConfig.MaxOpenConns = max
	return &newConfig
}

// WithQueryTimeout returns a copy of the config with updated query timeout
func (c *Config) WithQueryTimeout(timeout time.Duration) *Config {
	newConfig := *c
	newConfig.QueryTimeout = timeout
	return &newConfig
}

// configEnv gets a value from environment variables with no default
func configEnv(key string) string {
	return os.Getenv(key)
}

// configEnvOrDefault gets a value from environment variables with a default value
func configEnvOrDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// configEnvAsInt gets an integer value from environment variables with a default
func configEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
