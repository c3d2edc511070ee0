// Package clock provides the race-relative time source.
package clock

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

const (
	// ProgressTick drives simulated participants and progress sampling.
	ProgressTick = 100 * time.Millisecond
	// DisplayTick drives countdowns and coarse display updates.
	DisplayTick = time.Second
)

// RaceClock reports seconds elapsed since the race started.
// Production code uses clockwork.NewRealClock(); tests use a FakeClock.
type RaceClock struct {
	clock clockwork.Clock

	mu      sync.RWMutex
	started time.Time
}

// New returns a RaceClock backed by c. A nil c uses the real clock.
func New(c clockwork.Clock) *RaceClock {
	if c == nil {
		c = clockwork.NewRealClock()
	}
	return &RaceClock{clock: c}
}

// Start records the start instant. Later calls are no-ops.
func (rc *RaceClock) Start() time.Time {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	if rc.started.IsZero() {
		rc.started = rc.clock.Now()
	}
	return rc.started
}

// Started reports whether Start has been called.
func (rc *RaceClock) Started() bool {
	rc.mu.RLock()
	defer rc.mu.RUnlock()
	return !rc.started.IsZero()
}

// StartedAt returns the start instant, zero before Start.
func (rc *RaceClock) StartedAt() time.Time {
	rc.mu.RLock()
	defer rc.mu.RUnlock()
	return rc.started
}

// Elapsed returns seconds since start, never negative and 0 before start.
func (rc *RaceClock) Elapsed() float64 {
	rc.mu.RLock()
	started := rc.started
	rc.mu.RUnlock()

	if started.IsZero() {
		return 0
	}
	d := rc.clock.Since(started)
	if d < 0 {
		return 0
	}
	return d.Seconds()
}

// Now returns the current time of the underlying clock.
func (rc *RaceClock) Now() time.Time {
	return rc.clock.Now()
}

// NewTicker returns a ticker on the underlying clock.
func (rc *RaceClock) NewTicker(d time.Duration) clockwork.Ticker {
	return rc.clock.NewTicker(d)
}

// NewTimer returns a timer on the underlying clock.
func (rc *RaceClock) NewTimer(d time.Duration) clockwork.Timer {
	return rc.clock.NewTimer(d)
}
