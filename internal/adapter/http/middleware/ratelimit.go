package middleware

import (
	"sync"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"

	"github.com/trip-search/flight-trip-search/internal/adapter/http/response"
)

// RateLimitConfig holds token-bucket settings for the rate limiter.
type RateLimitConfig struct {
	// RequestsPerSecond is the sustained per-client rate
	RequestsPerSecond float64

	// BurstSize is the per-client burst allowance
	BurstSize int
}

// DefaultRateLimitConfig returns the default rate limiter settings.
func DefaultRateLimitConfig() RateLimitConfig {
	return RateLimitConfig{
		RequestsPerSecond: 10,
		BurstSize:         20,
	}
}

// clientLimiter hands out one token bucket per client IP.
type clientLimiter struct {
	limiters map[string]*rate.Limiter
	mu       sync.RWMutex
	config   RateLimitConfig
}

// get returns the limiter for a client, creating it on first sight.
func (cl *clientLimiter) get(client string) *rate.Limiter {
	cl.mu.RLock()
	limiter, exists := cl.limiters[client]
	cl.mu.RUnlock()

	if exists {
		return limiter
	}

	cl.mu.Lock()
	defer cl.mu.Unlock()

	if limiter, exists = cl.limiters[client]; exists {
		return limiter
	}

	limiter = rate.NewLimiter(rate.Limit(cl.config.RequestsPerSecond), cl.config.BurstSize)
	cl.limiters[client] = limiter
	return limiter
}

// RateLimit returns middleware that rejects clients exceeding the configured
// token-bucket rate with 429 Too Many Requests. Buckets are keyed by client
// IP.
func RateLimit(config RateLimitConfig) echo.MiddlewareFunc {
	cl := &clientLimiter{
		limiters: make(map[string]*rate.Limiter),
		config:   config,
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !cl.get(c.RealIP()).Allow() {
				return response.TooManyRequests(c)
			}
			return next(c)
		}
	}
}
