package collect

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// Limiter throttles candidate processing. Acquire blocks until the next
// step is permitted or the context is done.
type Limiter interface {
	Acquire(ctx context.Context) error
}

// NopLimiter never blocks.
type NopLimiter struct{}

func (NopLimiter) Acquire(context.Context) error { return nil }

// RateLimiter spaces steps at a fixed interval using a token bucket of
// size one.
type RateLimiter struct {
	limiter *rate.Limiter
}

// NewRateLimiter permits one step per interval. A zero interval removes
// the limit.
func NewRateLimiter(interval time.Duration) *RateLimiter {
	return &RateLimiter{
		limiter: rate.NewLimiter(rate.Every(interval), 1),
	}
}

func (l *RateLimiter) Acquire(ctx context.Context) error {
	return l.limiter.Wait(ctx)
}
