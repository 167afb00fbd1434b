package database

import (
	"strconv"
	"time"

	"github.com/amirhossein-jamali/user-leveling/internal/infrastructure/config"
)

// ConfigFromAppConfig adapts the application configuration to database configuration.
// Values already set through UL_ environment variables win over the config file.
func ConfigFromAppConfig(conf *config.Config) *Config {
	dbConf := DefaultConfig()
	src := conf.Database

	if configEnv("UL_DB_DRIVER") == "" && src.Driver != "" {
		dbConf.Driver = src.Driver
	}
	if dbConf.Host == "" {
		dbConf.Host = src.Host
	}
	if configEnv("UL_DB_PORT") == "" {
		if port := ParsePort(src.Port); port > 0 {
			dbConf.Port = port
		}
	}
	if dbConf.Username == "" {
		dbConf.Username = src.Username
	}
	if dbConf.Password == "" {
		dbConf.Password = src.Password
	}
	if dbConf.Database == "" {
		dbConf.Database = src.Database
	}
	if configEnv("UL_DB_PATH") == "" && src.Path != "" {
		dbConf.Path = src.Path
	}

	if src.SSLMode != "" {
		dbConf.SSLMode = src.SSLMode
	}
	if src.MaxOpenConns > 0 {
		dbConf.MaxOpenConns = src.MaxOpenConns
	}
	if src.MaxIdleConns > 0 {
		dbConf.MaxIdleConns = src.MaxIdleConns
	}
	if src.ConnMaxLifetime > 0 {
		dbConf.ConnMaxLifetime = src.ConnMaxLifetime
	}
	if src.ConnMaxIdleTime > 0 {
		dbConf.ConnMaxIdleTime = src.ConnMaxIdleTime
	}
	if src.QueryTimeout > 0 {
		dbConf.QueryTimeout = src.QueryTimeout
	}
	if src.RetryAttempts >= 0 {
		dbConf.RetryAttempts = src.RetryAttempts
	}
	if src.RetryDelay > 0 {
		dbConf.RetryDelay = src.RetryDelay
	}
	if src.LogLevel != "" {
		dbConf.LogLevel = src.LogLevel
	}
	if src.SlowThresholdMs > 0 {
		dbConf.SlowThreshold = time.Duration(src.SlowThresholdMs) * time.Millisecond
	}

	return dbConf
}

// ParsePort converts a port string to an int, 0 when invalid
func ParsePort(port string) int {
	p, err := strconv.Atoi(port)
	if err != nil || p <= 0 || p > 65535 {
		return 0
	}
	return p
}
