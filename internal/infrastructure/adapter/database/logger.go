package database

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	coreport "github.com/amirhossein-jamali/user-leveling/internal/domain/port/core"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DatabaseLogger is a custom GORM logger that uses our core logger
type DatabaseLogger struct {
	coreLogger    coreport.Logger
	logLevel      logger.LogLevel
	slowThreshold time.Duration
	timeProvider  coreport.TimeProvider
}

// NewDatabaseLogger creates a new database logger. A zero slowThreshold
// disables slow query warnings.
func NewDatabaseLogger(
	coreLogger coreport.Logger,
	timeProvider coreport.TimeProvider,
	level string,
	slowThreshold time.Duration,
) logger.Interface {
	return &DatabaseLogger{
		coreLogger:    coreLogger,
		logLevel:      parseGormLogLevel(level),
		slowThreshold: slowThreshold,
		timeProvider:  timeProvider,
	}
}

func parseGormLogLevel(level string) logger.LogLevel {
	switch strings.ToLower(level) {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "warn":
		return logger.Warn
	default:
		return logger.Info
	}
}

// LogMode sets the log level for the logger
func (l *DatabaseLogger) LogMode(level logger.LogLevel) logger.Interface {
	newLogger := *l
	newLogger.logLevel = level
	return &newLogger
}

// Info logs info messages
func (l *DatabaseLogger) Info(ctx context.Context, msg string, data ...any) {
	if l.logLevel >= logger.Info {
		l.coreLogger.Info(fmt.Sprintf(msg, data...), l.baseFields(ctx))
	}
}

// Warn logs warn messages
func (l *DatabaseLogger) Warn(ctx context.Context, msg string, data ...any) {
	if l.logLevel >= logger.Warn {
		l.coreLogger.Warn(fmt.Sprintf(msg, data...), l.baseFields(ctx))
	}
}

// Error logs error messages
func (l *DatabaseLogger) Error(ctx context.Context, msg string, data ...any) {
	if l.logLevel >= logger.Error {
		l.coreLogger.Error(fmt.Sprintf(msg, data...), l.baseFields(ctx))
	}
}

// Trace logs SQL operations
func (l *DatabaseLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.logLevel <= logger.Silent {
		return
	}

	var elapsed time.Duration
	if l.timeProvider != nil {
		elapsed = l.timeProvider.Since(begin)
	} else {
		elapsed = time.Since(begin)
	}

	sql, rows := fc()

	fields := l.baseFields(ctx)
	fields["elapsed"] = elapsed.String()
	fields["rows"] = rows
	fields["sql"] = sql

	if queryType := extractQueryType(sql); queryType != "" {
		fields["type"] = queryType
	}
	if tableName := extractTableName(sql); tableName != "" {
		fields["table"] = tableName
	}

	// Not-found lookups are an expected outcome, not an SQL failure
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		fields["error"] = err.Error()
	} else {
		err = nil
	}

	switch {
	case err != nil && l.logLevel >= logger.Error:
		l.coreLogger.Error("SQL Error", fields)
	case l.slowThreshold > 0 && elapsed > l.slowThreshold && l.logLevel >= logger.Warn:
		l.coreLogger.Warn("Slow SQL Query", fields)
	case l.logLevel >= logger.Info:
		l.coreLogger.Debug("SQL Query", fields)
	}
}

func (l *DatabaseLogger) baseFields(ctx context.Context) map[string]any {
	fields := map[string]any{"source": "database"}
	if requestID := coreport.RequestIDFromContext(ctx); requestID != "" {
		fields["request_id"] = requestID
	}
	return fields
}

// extractQueryType determines the type of SQL query
func extractQueryType(sql string) string {
	sqlUpper := strings.ToUpper(strings.TrimSpace(sql))

	for _, prefix := range []string{"SELECT", "INSERT", "UPDATE", "DELETE", "SAVEPOINT", "RELEASE", "ROLLBACK"} {
		if strings.HasPrefix(sqlUpper, prefix) {
			return prefix
		}
	}
	return ""
}

// extractTableName attempts to extract the table name from the SQL query
func extractTableName(sql string) string {
	sqlUpper := strings.ToUpper(strings.TrimSpace(sql))

	var fromIndex int
	switch {
	case strings.Contains(sqlUpper, " FROM "):
		fromIndex = strings.Index(sqlUpper, " FROM ") + 6
	case strings.Contains(sqlUpper, " INTO "):
		fromIndex = strings.Index(sqlUpper, " INTO ") + 6
	case strings.HasPrefix(sqlUpper, "UPDATE "):
		fromIndex = 7
	default:
		return ""
	}

	remainder := strings.TrimSpace(sqlUpper[fromIndex:])
	if spaceIndex := strings.IndexAny(remainder, " ("); spaceIndex != -1 {
		remainder = remainder[:spaceIndex]
	}
	return strings.Trim(remainder, "\"`")
}
