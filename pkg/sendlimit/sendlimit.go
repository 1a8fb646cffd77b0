// Package sendlimit provides an adaptive rate limiter for outbound sends.
// The rate grows slowly while sends succeed and halves when they fail, so a
// chatty channel backs off before the transport starts rejecting us.
//
// Example usage:
//
//	lim := sendlimit.New(5, 1, 20, 1, 0.5)
//	if err := lim.Wait(ctx); err != nil { return err }
//	_, err := session.ChannelMessageSend(channelID, content)
//	lim.Observe(err)
package sendlimit

import (
	"context"
	"sync"

	"golang.org/x/time/rate"
)

// Limiter manages a send rate that adjusts automatically based on the
// outcome of each send. Safe for concurrent use.
type Limiter struct {
	mu       sync.Mutex
	limiter  *rate.Limiter
	minLimit rate.Limit
	maxLimit rate.Limit
	stepUp   rate.Limit
	stepDown float64
}

// New creates a Limiter.
//
// Parameters:
//   - initial: starting sends per second
//   - min: minimum allowed rate
//   - max: maximum allowed rate
//   - stepUp: increment on success
//   - stepDown: multiplier applied on failure (e.g. 0.5 to halve)
func New(initial, min, max rate.Limit, stepUp rate.Limit, stepDown float64) *Limiter {
	if initial < 1 {
		initial = 1
	}
	if min < 1 {
		min = 1
	}
	burst := int(initial)
	if burst < 1 {
		burst = 1
	}
	return &Limiter{
		limiter:  rate.NewLimiter(initial, burst),
		minLimit: min,
		maxLimit: max,
		stepUp:   stepUp,
		stepDown: stepDown,
	}
}

// Wait blocks until a send slot is available or the context is canceled.
func (l *Limiter) Wait(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	return l.limiter.Wait(ctx)
}

// Observe adjusts the rate from the outcome of a send: nil raises it by
// stepUp, an error multiplies it by stepDown.
func (l *Limiter) Observe(err error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	limit := l.limiter.Limit()
	if err == nil {
		limit += l.stepUp
		if limit > l.maxLimit {
			limit = l.maxLimit
		}
	} else {
		limit = rate.Limit(float64(limit) * l.stepDown)
		if limit < l.minLimit {
			limit = l.minLimit
		}
	}
	l.limiter.SetLimit(limit)
}

// Limit reports the current sends-per-second rate.
func (l *Limiter) Limit() rate.Limit {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.limiter.Limit()
}
