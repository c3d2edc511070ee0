package gateway

import (
	"github.com/jonboulle/clockwork"
	"golang.org/x/time/rate"
)

// messageLimiter limits inbound client messages per connection. Time comes
// from the gateway clock so tests can drive refills. A nil limiter allows
// everything.
type messageLimiter struct {
	clock   clockwork.Clock
	limiter *rate.Limiter
}

// newMessageLimiter returns nil when perSecond is not positive.
func newMessageLimiter(clock clockwork.Clock, perSecond float64, burst int) *messageLimiter {
	if perSecond <= 0 {
		return nil
	}
	if burst <= 0 {
		burst = 1
	}
	return &messageLimiter{
		clock:   clock,
		limiter: rate.NewLimiter(rate.Limit(perSecond), burst),
	}
}

// Allow takes one token if available.
func (l *messageLimiter) Allow() bool {
	if l == nil {
		return true
	}
	return l.limiter.AllowN(l.clock.Now(), 1)
}
