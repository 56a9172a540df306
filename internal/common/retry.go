package common

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// RetryPolicy controls the shared retry decorator applied to external AI
// calls. Only failures matched by Retryable are retried; everything else
// propagates immediately to the caller's degradation policy.
type RetryPolicy struct {
	MaxAttempts     int
	InitialInterval time.Duration
	Multiplier      float64
	Retryable       func(error) bool
}

// DefaultRetryPolicy returns the standard policy for quota-limited calls:
// 3 attempts, 500ms initial interval, doubling between attempts.
func DefaultRetryPolicy(retryable func(error) bool) RetryPolicy {
	return RetryPolicy{
		MaxAttempts:     3,
		InitialInterval: 500 * time.Millisecond,
		Multiplier:      2,
		Retryable:       retryable,
	}
}

// Retry invokes fn under the policy. Non-retryable errors are returned on
// the first occurrence; retryable errors are returned once attempts are
// exhausted.
func Retry[T any](ctx context.Context, policy RetryPolicy, fn func(ctx context.Context) (T, error)) (T, error) {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = policy.InitialInterval
	b.Multiplier = policy.Multiplier
	b.RandomizationFactor = 0 // deterministic schedule

	maxAttempts := policy.MaxAttempts
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	operation := func() (T, error) {
		result, err := fn(ctx)
		if err != nil && (policy.Retryable == nil || !policy.Retryable(err)) {
			return result, backoff.Permanent(err)
		}
		return result, err
	}

	return backoff.RetryWithData(operation,
		backoff.WithContext(backoff.WithMaxRetries(b, uint64(maxAttempts-1)), ctx))
}
