package common

import (
	"context"
	"errors"
	"testing"
	"time"
)

var errQuota = errors.New("quota exhausted")

func fastPolicy(retryable func(error) bool) RetryPolicy {
	return RetryPolicy{
		MaxAttempts:     3,
		InitialInterval: time.Millisecond,
		Multiplier:      2,
		Retryable:       retryable,
	}
}

func TestRetry_NonRetryableFailsImmediately(t *testing.T) {
	calls := 0
	_, err := Retry(context.Background(), fastPolicy(func(error) bool { return false }),
		func(ctx context.Context) (string, error) {
			calls++
			return "", errors.New("bad request")
		})

	if err == nil {
		t.Fatal("expected error")
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1 (non-retryable must not retry)", calls)
	}
}

func TestRetry_RetryableExhaustsAttempts(t *testing.T) {
	calls := 0
	_, err := Retry(context.Background(), fastPolicy(func(err error) bool { return errors.Is(err, errQuota) }),
		func(ctx context.Context) (string, error) {
			calls++
			return "", errQuota
		})

	if !errors.Is(err, errQuota) {
		t.Fatalf("err = %v, want quota error", err)
	}
	if calls != 3 {
		t.Errorf("calls = %d, want 3", calls)
	}
}

func TestRetry_SucceedsAfterTransientFailure(t *testing.T) {
	calls := 0
	result, err := Retry(context.Background(), fastPolicy(func(err error) bool { return errors.Is(err, errQuota) }),
		func(ctx context.Context) (string, error) {
			calls++
			if calls < 2 {
				return "", errQuota
			}
			return "ok", nil
		})

	if err != nil {
		t.Fatalf("Retry returned error: %v", err)
	}
	if result != "ok" {
		t.Errorf("result = %q, want %q", result, "ok")
	}
	if calls != 2 {
		t.Errorf("calls = %d, want 2", calls)
	}
}

func TestRetry_SuccessFirstAttempt(t *testing.T) {
	calls := 0
	result, err := Retry(context.Background(), DefaultRetryPolicy(nil),
		func(ctx context.Context) (int, error) {
			calls++
			return 42, nil
		})

	if err != nil {
		t.Fatalf("Retry returned error: %v", err)
	}
	if result != 42 || calls != 1 {
		t.Errorf("result = %d calls = %d, want 42 and 1", result, calls)
	}
}
