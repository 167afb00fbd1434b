package core

import (
	"context"
	"time"
)

// TimeProvider abstracts clock access so that timestamps on users and
// transaction timeouts can be controlled in tests
type TimeProvider interface {
	Now() time.Time
	Since(t time.Time) time.Duration
	WithTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc)
}
