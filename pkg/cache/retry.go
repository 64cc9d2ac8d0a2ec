package cache

import (
	"context"
	"time"
)

// Connection checks made by NewRedisCache.
const (
	pingAttempts = 3
	pingDelay    = 200 * time.Millisecond
	pingTimeout  = 2 * time.Second
)

// retry calls fn up to attempts times, doubling delay after each failure.
// It returns nil on the first success, ctx.Err() if ctx is done while
// waiting, and otherwise the last error from fn.
func retry(ctx context.Context, attempts int, delay time.Duration, fn func() error) error {
	attempts = max(attempts, 1)
	var lastErr error

	for i := 0; i < attempts; i++ {
		if lastErr = fn(); lastErr == nil {
			return nil
		}
		if i < attempts-1 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
				delay *= 2
			}
		}
	}
	return lastErr
}
