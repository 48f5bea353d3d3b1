package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// Setup registers all middleware on the Echo instance in the correct order.
// The order is important:
//  1. RequestID - first, to generate/propagate request ID for all subsequent logging
//  2. RequestLogger - second, logs all requests with request ID
//  3. Recover - third, catches panics and returns 500 (wraps handlers)
//  4. RateLimit - last, so rejected requests are still logged
//
// This function should be called before registering routes.
func Setup(e *echo.Echo, log zerolog.Logger, rateLimit RateLimitConfig) {
	e.Use(RequestID())
	e.Use(RequestLogger(log))
	e.Use(Recover(log))
	e.Use(RateLimit(rateLimit))
}
