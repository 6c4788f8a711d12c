package utils

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestWaitFor(t *testing.T) {
	original := sleep
	defer func() { sleep = original }()

	var slept time.Duration
	sleep = func(d time.Duration) { slept = d }

	if err := WaitFor(context.Background(), time.Second); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if slept != time.Second {
		t.Fatalf("expected to sleep 1s, slept %s", slept)
	}
}

func TestWaitForCancelled(t *testing.T) {
	original := sleep
	defer func() { sleep = original }()

	release := make(chan struct{})
	defer close(release)
	sleep = func(time.Duration) { <-release }

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := WaitFor(ctx, time.Hour); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestLinearBackoff(t *testing.T) {
	t.Parallel()

	tests := []struct {
		attempt int
		limit   time.Duration
		expect  time.Duration
	}{
		{attempt: 0, expect: 500 * time.Millisecond},
		{attempt: 1, expect: 500 * time.Millisecond},
		{attempt: 3, expect: 1500 * time.Millisecond},
		{attempt: 10, limit: 2 * time.Second, expect: 2 * time.Second},
	}

	for _, tt := range tests {
		if got := LinearBackoff(tt.attempt, 500*time.Millisecond, tt.limit); got != tt.expect {
			t.Fatalf("attempt %d: expected %s, got %s", tt.attempt, tt.expect, got)
		}
	}
}
