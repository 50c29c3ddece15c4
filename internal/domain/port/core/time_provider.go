package core

import (
	"context"
	"time"
)

// TimeProvider abstracts time operations for the domain so that tests can
// pin transaction timestamps to fixed values.
type TimeProvider interface {
	Now() time.Time
	Since(t time.Time) time.Duration
	WithTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc)
}
