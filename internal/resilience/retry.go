// Package resilience retries flaky external steps such as package installation.
package resilience

import (
	"context"
	"errors"
	"time"
)

// RetryPolicy defines how often and how patiently an operation is retried.
type RetryPolicy struct {
	// MaxRetries is the number of retries after the first attempt.
	MaxRetries int

	// BaseDelay is the wait before the first retry. It doubles on every retry.
	BaseDelay time.Duration

	// MaxDelay caps the wait between attempts.
	MaxDelay time.Duration

	// Retryable reports whether an error is worth another attempt.
	// A nil Retryable retries every error except context errors.
	Retryable func(error) bool
}

// NoRetry runs the operation exactly once.
var NoRetry = RetryPolicy{}

// Retry calls fn until it succeeds, returns a non-retryable error, or the
// policy is exhausted. The error of the last attempt is returned.
func Retry(ctx context.Context, policy RetryPolicy, fn func(attempt int) error) error {
	var lastErr error

	for attempt := range policy.MaxRetries + 1 {
		if err := ctx.Err(); err != nil {
			return err
		}

		err := fn(attempt)
		if err == nil {
			return nil
		}
		lastErr = err

		if !policy.shouldRetry(err) || attempt == policy.MaxRetries {
			break
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(CalculateBackoff(attempt, policy.BaseDelay, policy.MaxDelay)):
		}
	}

	return lastErr
}

// CalculateBackoff returns baseDelay * 2^attempt, capped at maxDelay.
func CalculateBackoff(attempt int, baseDelay, maxDelay time.Duration) time.Duration {
	if baseDelay <= 0 {
		baseDelay = 500 * time.Millisecond
	}
	if maxDelay <= 0 {
		maxDelay = 10 * time.Second
	}

	delay := baseDelay
	for range attempt {
		delay *= 2
		if delay >= maxDelay {
			return maxDelay
		}
	}
	return min(delay, maxDelay)
}

func (p RetryPolicy) shouldRetry(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	if p.Retryable == nil {
		return true
	}
	return p.Retryable(err)
}
