// Package ratelimit throttles outgoing API calls per endpoint so a batch
// run stays inside the vendor's request quota.
package ratelimit

import (
	"context"
	"sync"

	"golang.org/x/time/rate"
)

// Config holds the shared limits applied to every endpoint.
type Config struct {
	RequestsPerSecond float64
	Burst             int
}

// DefaultConfig matches the Amadeus test-tier quota of ten transactions
// per second.
func DefaultConfig() Config {
	return Config{
		RequestsPerSecond: 10,
		Burst:             10,
	}
}

// EndpointLimiter rate-limits calls independently per API endpoint path.
type EndpointLimiter struct {
	limiters map[string]*rate.Limiter
	mu       sync.Mutex
	cfg      Config
}

// New creates an EndpointLimiter with the given limits.
func New(cfg Config) *EndpointLimiter {
	if cfg.RequestsPerSecond <= 0 {
		cfg = DefaultConfig()
	}
	return &EndpointLimiter{
		limiters: make(map[string]*rate.Limiter),
		cfg:      cfg,
	}
}

// Wait blocks until a request to the endpoint is allowed or the context
// ends.
func (l *EndpointLimiter) Wait(ctx context.Context, endpoint string) error {
	return l.limiter(endpoint).Wait(ctx)
}

func (l *EndpointLimiter) limiter(endpoint string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	limiter, ok := l.limiters[endpoint]
	if !ok {
		limiter = rate.NewLimiter(rate.Limit(l.cfg.RequestsPerSecond), l.cfg.Burst)
		l.limiters[endpoint] = limiter
	}
	return limiter
}
