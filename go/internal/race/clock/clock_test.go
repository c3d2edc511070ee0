package clock_test

import (
	"context"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/mcdev12/typerace/go/internal/race/clock"
)

func TestElapsedBeforeStart(t *testing.T) {
	fc := clockwork.NewFakeClock()
	rc := clock.New(fc)

	fc.Advance(5 * time.Second)
	if rc.Started() {
		t.Fatal("expected clock not started")
	}
	if got := rc.Elapsed(); got != 0 {
		t.Fatalf("expected 0 elapsed before start, got %v", got)
	}
}

func TestElapsedAfterStart(t *testing.T) {
	fc := clockwork.NewFakeClock()
	rc := clock.New(fc)

	start := rc.Start()
	fc.Advance(1500 * time.Millisecond)

	if got := rc.Elapsed(); got != 1.5 {
		t.Fatalf("expected 1.5s elapsed, got %v", got)
	}

	// A second Start must not move the origin.
	fc.Advance(time.Second)
	if again := rc.Start(); !again.Equal(start) {
		t.Fatalf("expected start %v to be kept, got %v", start, again)
	}
	if got := rc.Elapsed(); got != 2.5 {
		t.Fatalf("expected 2.5s elapsed, got %v", got)
	}
}

func TestTickerUsesInjectedClock(t *testing.T) {
	fc := clockwork.NewFakeClock()
	rc := clock.New(fc)

	ticker := rc.NewTicker(clock.ProgressTick)
	defer ticker.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := fc.BlockUntilContext(ctx, 1); err != nil {
		t.Fatalf("expected ticker to register with fake clock: %v", err)
	}

	fc.Advance(clock.ProgressTick)
	select {
	case <-ticker.Chan():
	case <-ctx.Done():
		t.Fatal("expected tick after advancing fake clock")
	}
}
