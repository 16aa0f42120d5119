package providers

import (
	"context"
	"sync"
	"time"
)

// Throttle is a token bucket limiting outbound calls to one upstream source.
// It allows a burst of calls up front, with tokens refilling at a steady
// rate thereafter.
type Throttle struct {
	capacity   int       // Maximum tokens (burst capacity)
	refillRate float64   // Tokens per second
	tokens     float64   // Current tokens available
	lastRefill time.Time // Last time tokens were refilled
	mu         sync.Mutex
}

// NewThrottle creates a throttle with the given burst capacity and refill
// rate. A rate of zero or below disables throttling.
func NewThrottle(burst int, perSecond float64) *Throttle {
	if burst <= 0 {
		burst = 1
	}
	return &Throttle{
		capacity:   burst,
		refillRate: perSecond,
		tokens:     float64(burst), // Start with full bucket
		lastRefill: time.Now(),
	}
}

// Wait blocks until a call slot is available or the context ends. A nil or
// disabled throttle admits every call immediately.
func (t *Throttle) Wait(ctx context.Context) error {
	if t == nil || t.refillRate <= 0 {
		return nil
	}
	for {
		ok, wait := t.take()
		if ok {
			return nil
		}
		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}

// take consumes a token if one is available, otherwise reports how long
// until the next token refills.
func (t *Throttle) take() (bool, time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()

	// Refill tokens based on time elapsed
	now := time.Now()
	elapsed := now.Sub(t.lastRefill)
	t.tokens = min(float64(t.capacity), t.tokens+elapsed.Seconds()*t.refillRate)
	t.lastRefill = now

	if t.tokens >= 1.0 {
		t.tokens -= 1.0
		return true, 0
	}

	needed := 1.0 - t.tokens
	return false, time.Duration(needed / t.refillRate * float64(time.Second))
}
