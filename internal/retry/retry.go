package retry

import (
	"context"
	"time"
)

// Do runs fn up to attempts times, sleeping with exponential backoff between
// tries. The delay starts at base and doubles per attempt, capped at max.
// The last error is returned once the attempts are spent.
func Do(ctx context.Context, attempts int, base, max time.Duration, fn func() error) error {
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	delay := base
	for i := 0; i < attempts; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		lastErr = fn()
		if lastErr == nil {
			return nil
		}

		if i == attempts-1 {
			break
		}

		if delay > max {
			delay = max
		}
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return ctx.Err()
		}
		delay *= 2
	}
	return lastErr
}
