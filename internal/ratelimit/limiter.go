package ratelimit

import (
	"log/slog"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Config holds rate limiter configuration
type Config struct {
	RequestsPerMin int
	Burst          int
}

// DefaultConfig returns default rate limiting configuration
func DefaultConfig() Config {
	return Config{
		RequestsPerMin: 120,
		Burst:          20,
	}
}

// Result represents the result of a rate limit check
type Result struct {
	Allowed    bool
	Limit      int
	RetryAfter time.Duration
}

// Limiter provides per-client in-memory token bucket rate limiting
type Limiter struct {
	config Config

	mu       sync.Mutex
	limiters map[string]*rate.Limiter
}

// NewLimiter creates a rate limiter keyed by client identifier
func NewLimiter(config Config) *Limiter {
	l := &Limiter{
		config:   config,
		limiters: make(map[string]*rate.Limiter),
	}

	go l.cleanup()

	return l
}

// Allow checks whether the given client may make a request now
func (l *Limiter) Allow(key string) Result {
	l.mu.Lock()
	limiter, exists := l.limiters[key]
	if !exists {
		rps := rate.Limit(float64(l.config.RequestsPerMin) / 60.0)
		burst := l.config.Burst
		if burst < 1 {
			burst = 1
		}
		limiter = rate.NewLimiter(rps, burst)
		l.limiters[key] = limiter
	}
	l.mu.Unlock()

	if limiter.Allow() {
		return Result{Allowed: true, Limit: l.config.RequestsPerMin}
	}

	return Result{
		Allowed:    false,
		Limit:      l.config.RequestsPerMin,
		RetryAfter: time.Minute,
	}
}

// cleanup periodically resets the limiter map when it grows too large.
// Per-key last-access tracking is not worth the bookkeeping at this scale.
func (l *Limiter) cleanup() {
	ticker := time.NewTicker(1 * time.Hour)
	defer ticker.Stop()

	for range ticker.C {
		l.mu.Lock()
		if len(l.limiters) > 1000 {
			slog.Info("Cleaning up rate limiters", "count", len(l.limiters))
			l.limiters = make(map[string]*rate.Limiter)
		}
		l.mu.Unlock()
	}
}
