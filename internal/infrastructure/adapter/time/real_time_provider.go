package time

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/user-leveling/internal/domain/port/core"
)

// RealTimeProvider implements the TimeProvider interface with the system clock
type RealTimeProvider struct{}

// NewRealTimeProvider creates a new real time provider
func NewRealTimeProvider() core.TimeProvider {
	return &RealTimeProvider{}
}

// Now returns the current time truncated to microseconds, the finest
// resolution both postgres and sqlite round-trip
func (p *RealTimeProvider) Now() time.Time {
	return time.Now().Truncate(time.Microsecond)
}

// Since returns the time elapsed since t
func (p *RealTimeProvider) Since(t time.Time) time.Duration {
	return time.Since(t)
}

// WithTimeout returns a context that will be canceled after the specified timeout
func (p *RealTimeProvider) WithTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, timeout)
}
