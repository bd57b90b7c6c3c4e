// Package retry re-runs fallible operations with a linearly increasing delay.
package retry

import (
	"context"
	"fmt"
	"time"
)

// DefaultBaseDelay is the delay before the second attempt; attempt n waits n*base.
const DefaultBaseDelay = time.Second

// Do calls fn up to attempts times. After the n-th failure it waits n*baseDelay
// before trying again. The last error is returned when every attempt fails, and
// the context error is returned if ctx is done while waiting.
func Do(ctx context.Context, attempts int, baseDelay time.Duration, fn func(ctx context.Context) error) error {
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if err := ctx.Err(); err != nil {
			if lastErr != nil {
				return fmt.Errorf("%w (last error: %v)", err, lastErr)
			}
			return err
		}

		lastErr = fn(ctx)
		if lastErr == nil {
			return nil
		}
		if attempt == attempts {
			break
		}

		timer := time.NewTimer(time.Duration(attempt) * baseDelay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return fmt.Errorf("%w (last error: %v)", ctx.Err(), lastErr)
		case <-timer.C:
		}
	}
	return lastErr
}

// Value is Do for operations that produce a result.
func Value[T any](ctx context.Context, attempts int, baseDelay time.Duration, fn func(ctx context.Context) (T, error)) (T, error) {
	var result T
	err := Do(ctx, attempts, baseDelay, func(ctx context.Context) error {
		v, err := fn(ctx)
		if err != nil {
			return err
		}
		result = v
		return nil
	})
	return result, err
}
