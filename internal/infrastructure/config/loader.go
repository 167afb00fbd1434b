package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment constants
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// EnvPrefix prefixes every environment override, e.g. UL_DB_HOST
const EnvPrefix = "UL"

// ConfigPaths defines the paths to look for config files
var ConfigPaths = []string{
	"./configs",
	"../configs",
	"../../configs",
}

// DotEnvPaths defines the paths to look for .env files
var DotEnvPaths = []string{
	".env",
	"../.env",
	"../../.env",
	"./configs/.env",
	"../configs/.env",
}

// ErrNoDotEnv is returned when none of the .env search paths exist
var ErrNoDotEnv = errors.New("no .env file found in search paths")

// LoadConfig loads configuration for the environment named by UL_ENV
func LoadConfig() (*Config, error) {
	// A missing .env file is normal outside development
	if err := loadDotEnvFile(); err != nil && !errors.Is(err, ErrNoDotEnv) {
		return nil, err
	}

	return LoadConfigFrom(getEnvironment(), ConfigPaths...)
}

// LoadConfigFrom reads <env>.yaml from the first path containing it and
// applies defaults and UL_ environment overrides
func LoadConfigFrom(env string, paths ...string) (*Config, error) {
	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")

	for _, path := range paths {
		v.AddConfigPath(path)
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	processEnvOverrides(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	config.Environment = env
	processDurations(&config)

	return &config, nil
}

// loadDotEnvFile loads the first .env file found in DotEnvPaths
func loadDotEnvFile() error {
	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			return fmt.Errorf("could not load %s: %w", path, err)
		}
		return nil
	}
	return ErrNoDotEnv
}

// setDefaults sets default values for non-critical settings
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.readTimeout", 5)
	v.SetDefault("server.writeTimeout", 10)
	v.SetDefault("server.idleTimeout", 60)
	v.SetDefault("server.readHeaderTimeout", 2)
	v.SetDefault("server.shutdownTimeout", 10)

	// Database defaults
	v.SetDefault("database.driver", "postgres")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.sslMode", "disable")
	v.SetDefault("database.path", "user-leveling.db")
	v.SetDefault("database.maxOpenConns", 25)
	v.SetDefault("database.maxIdleConns", 25)
	v.SetDefault("database.connMaxLifetime", 5)
	v.SetDefault("database.connMaxIdleTime", 5)
	v.SetDefault("database.queryTimeout", 10)
	v.SetDefault("database.retryAttempts", 3)
	v.SetDefault("database.retryDelay", 1)
	v.SetDefault("database.logLevel", "warn")
	v.SetDefault("database.slowThresholdMs", 200)

	// Logger defaults
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "json")
	v.SetDefault("logger.output", "stdout")
	v.SetDefault("logger.maxSizeMb", 100)
	v.SetDefault("logger.maxBackups", 5)
	v.SetDefault("logger.maxAgeDays", 30)

	// Leveling defaults
	v.SetDefault("leveling.logCountForSilver", 50)
	v.SetDefault("leveling.recCountForGold", 30)
	v.SetDefault("leveling.mailFrom", "noreply@user-leveling.local")
	v.SetDefault("leveling.upgradeTimeout", 30)
	v.SetDefault("leveling.createDefaultUsers", false)

	// Metrics defaults
	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.path", "/metrics")
}

// getEnvironment determines the environment to use based on UL_ENV
func getEnvironment() string {
	env := os.Getenv(EnvPrefix + "_ENV")
	if env == "" {
		env = Development
	}
	return strings.ToLower(env)
}

// processEnvOverrides maps the documented flat variable names onto config keys.
// Nested keys are also reachable through AutomaticEnv, e.g. UL_DATABASE_HOST.
func processEnvOverrides(v *viper.Viper) {
	stringOverrides := map[string]string{
		"UL_DB_DRIVER":     "database.driver",
		"UL_DB_HOST":       "database.host",
		"UL_DB_PORT":       "database.port",
		"UL_DB_USERNAME":   "database.username",
		"UL_DB_PASSWORD":   "database.password",
		"UL_DB_NAME":       "database.database",
		"UL_DB_SSL_MODE":   "database.sslMode",
		"UL_DB_PATH":       "database.path",
		"UL_SERVER_HOST":   "server.host",
		"UL_LOGGER_LEVEL":  "logger.level",
		"UL_LOGGER_OUTPUT": "logger.output",
		"UL_MAIL_FROM":     "leveling.mailFrom",
	}
	for env, key := range stringOverrides {
		if value := os.Getenv(env); value != "" {
			v.Set(key, value)
		}
	}

	intOverrides := map[string]string{
		"UL_SERVER_PORT":                   "server.port",
		"UL_DB_MAX_OPEN_CONNS":             "database.maxOpenConns",
		"UL_DB_MAX_IDLE_CONNS":             "database.maxIdleConns",
		"UL_DB_CONN_MAX_LIFETIME_MINUTES":  "database.connMaxLifetime",
		"UL_DB_CONN_MAX_IDLE_TIME_MINUTES": "database.connMaxIdleTime",
		"UL_DB_QUERY_TIMEOUT_SECONDS":      "database.queryTimeout",
		"UL_DB_RETRY_ATTEMPTS":             "database.retryAttempts",
		"UL_DB_RETRY_DELAY_SECONDS":        "database.retryDelay",
		"UL_LOG_COUNT_FOR_SILVER":          "leveling.logCountForSilver",
		"UL_REC_COUNT_FOR_GOLD":            "leveling.recCountForGold",
	}
	for env, key := range intOverrides {
		if value, ok := getEnvInt(env); ok {
			v.Set(key, value)
		}
	}

	if seed := os.Getenv("UL_CREATE_DEFAULT_USERS"); seed != "" {
		if enabled, err := strconv.ParseBool(seed); err == nil {
			v.Set("leveling.createDefaultUsers", enabled)
		}
	}
}

// getEnvInt reads an integer environment variable; ok is false when unset or invalid
func getEnvInt(name string) (int, bool) {
	valStr := os.Getenv(name)
	if valStr == "" {
		return 0, false
	}

	val, err := strconv.Atoi(valStr)
	if err != nil {
		return 0, false
	}
	return val, true
}

// processDurations converts time.Duration fields from their raw values to actual durations
func processDurations(config *Config) {
	// Seconds
	config.Server.ReadTimeout = time.Duration(config.Server.ReadTimeout) * time.Second
	config.Server.WriteTimeout = time.Duration(config.Server.WriteTimeout) * time.Second
	config.Server.IdleTimeout = time.Duration(config.Server.IdleTimeout) * time.Second
	config.Server.ReadHeaderTimeout = time.Duration(config.Server.ReadHeaderTimeout) * time.Second
	config.Server.ShutdownTimeout = time.Duration(config.Server.ShutdownTimeout) * time.Second
	config.Database.QueryTimeout = time.Duration(config.Database.QueryTimeout) * time.Second
	config.Database.RetryDelay = time.Duration(config.Database.RetryDelay) * time.Second
	config.Leveling.UpgradeTimeout = time.Duration(config.Leveling.UpgradeTimeout) * time.Second

	// Minutes
	config.Database.ConnMaxLifetime = time.Duration(config.Database.ConnMaxLifetime) * time.Minute
	config.Database.ConnMaxIdleTime = time.Duration(config.Database.ConnMaxIdleTime) * time.Minute
}

// Validate checks the settings that have no safe default
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	if c.Leveling.LogCountForSilver <= 0 || c.Leveling.RecCountForGold <= 0 {
		return fmt.Errorf("level thresholds must be positive (silver=%d, gold=%d)",
			c.Leveling.LogCountForSilver, c.Leveling.RecCountForGold)
	}
	if c.Leveling.UpgradeTimeout < 0 {
		return fmt.Errorf("upgrade timeout must be non-negative, got: %s", c.Leveling.UpgradeTimeout)
	}
	return nil
}
