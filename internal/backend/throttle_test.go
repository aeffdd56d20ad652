package backend

import (
	"context"
	"testing"
	"time"
)

func TestThrottleEnforcesMinimumInterval(t *testing.T) {
	th := newThrottle(20 * time.Millisecond)
	ctx := context.Background()
	start := time.Now()
	th.wait(ctx)
	th.wait(ctx)
	th.wait(ctx)
	if elapsed := time.Since(start); elapsed < 40*time.Millisecond {
		t.Fatalf("three waits finished in %s, want >= 40ms", elapsed)
	}
}

func TestThrottleZeroIntervalNeverBlocks(t *testing.T) {
	th := newThrottle(0)
	done := make(chan struct{})
	go func() {
		for i := 0; i < 1000; i++ {
			th.wait(context.Background())
		}
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("zero-interval throttle blocked")
	}
}

func TestThrottleWaitReturnsOnCancel(t *testing.T) {
	th := newThrottle(time.Minute)
	th.wait(context.Background()) // use up the immediate first grant
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan bool, 1)
	go func() { done <- th.wait(ctx) }()
	cancel()
	select {
	case granted := <-done:
		if granted {
			t.Fatalf("a cancelled wait must not grant a cycle")
		}
	case <-time.After(time.Second):
		t.Fatalf("cancelled wait did not return")
	}
}
