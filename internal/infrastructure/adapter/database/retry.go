package database

import (
	"context"
	"math/rand"
	"strings"
	"time"

	coreport "github.com/amirhossein-jamali/user-leveling/internal/domain/port/core"
)

// RetryConfig holds configuration for retry operations
type RetryConfig struct {
	MaxAttempts   int
	RetryInterval time.Duration
	MaxInterval   time.Duration
	JitterFactor  float64 // 0.0-1.0
}

// DefaultRetryConfig returns the default retry configuration
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts:   3,
		RetryInterval: 100 * time.Millisecond,
		MaxInterval:   2 * time.Second,
		JitterFactor:  0.2,
	}
}

// RetryConfigFrom builds a RetryConfig from the database configuration
func RetryConfigFrom(cfg *Config) RetryConfig {
	retry := DefaultRetryConfig()
	if cfg.RetryAttempts > 0 {
		retry.MaxAttempts = cfg.RetryAttempts
	}
	if cfg.RetryDelay > 0 {
		retry.RetryInterval = cfg.RetryDelay
		if retry.MaxInterval < cfg.RetryDelay {
			retry.MaxInterval = cfg.RetryDelay * 4
		}
	}
	return retry
}

// RetryOnTransientError runs operation until it succeeds, fails with a
// non-transient error or the attempts are exhausted
func RetryOnTransientError(
	ctx context.Context,
	config RetryConfig,
	operation string,
	fn func() error,
	logger coreport.Logger,
) error {
	attempts := max(config.MaxAttempts, 1)

	var err error
	for attempt := 0; attempt < attempts; attempt++ {
		err = fn()
		if err == nil {
			return nil
		}
		if !isTransientError(err) || attempt == attempts-1 {
			break
		}

		backoff := calculateBackoffWithJitter(attempt, config)
		logger.Warn("Transient database error, retrying operation", map[string]any{
			"operation":    operation,
			"attempt":      attempt + 1,
			"max_attempts": attempts,
			"error":        err.Error(),
			"retry_after":  backoff.String(),
		})

		timer := time.NewTimer(backoff)
		select {
		case <-timer.C:
		case <-ctx.Done():
			timer.Stop()
			logger.Warn("Retry operation canceled by context", map[string]any{
				"operation": operation,
				"attempts":  attempt + 1,
				"error":     ctx.Err().Error(),
			})
			return ctx.Err()
		}
	}

	logger.Error("Database operation failed", map[string]any{
		"operation":    operation,
		"max_attempts": attempts,
		"error":        err.Error(),
	})
	return err
}

// calculateBackoffWithJitter computes an exponential backoff capped at MaxInterval
func calculateBackoffWithJitter(attempt int, config RetryConfig) time.Duration {
	backoff := config.RetryInterval * (1 << uint(attempt))
	if config.MaxInterval > 0 && backoff > config.MaxInterval {
		backoff = config.MaxInterval
	}

	if config.JitterFactor > 0 {
		backoff += time.Duration(float64(backoff) * config.JitterFactor * rand.Float64())
	}
	return backoff
}

// isTransientError checks if an error is transient and can be retried
func isTransientError(err error) bool {
	if err == nil {
		return false
	}

	errMsg := strings.ToLower(err.Error())
	return strings.Contains(errMsg, "deadlock") ||
		strings.Contains(errMsg, "serialization") ||
		strings.Contains(errMsg, "connection reset") ||
		strings.Contains(errMsg, "connection refused") ||
		strings.Contains(errMsg, "too many connections") ||
		strings.Contains(errMsg, "server closed") ||
		strings.Contains(errMsg, "broken pipe") ||
		strings.Contains(errMsg, "database is locked") ||
		strings.Contains(errMsg, "the database system is starting up") ||
		strings.Contains(errMsg, "eof")
}
