// Package main is the entry point for the trip search HTTP server.
// It loads the flight dataset once at startup and serves searches over it.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/trip-search/flight-trip-search/internal/adapter/csvfile"
	triphttp "github.com/trip-search/flight-trip-search/internal/adapter/http"
	"github.com/trip-search/flight-trip-search/internal/adapter/http/middleware"
	"github.com/trip-search/flight-trip-search/internal/config"
	"github.com/trip-search/flight-trip-search/internal/infrastructure/logger"
	"github.com/trip-search/flight-trip-search/internal/usecase"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.MustLoad()

	log := logger.New(logger.Config{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		ServiceName: "trip-search",
	})

	flights, err := csvfile.NewReader(cfg.Dataset.Path).Read()
	if err != nil {
		log.Fatal().Err(err).Str("dataset", cfg.Dataset.Path).Msg("Failed to load dataset")
	}

	index := usecase.BuildIndex(flights)
	log.Info().
		Int("flights", index.Size()).
		Int("airports", index.Airports()).
		Str("dataset", cfg.Dataset.Path).
		Msg("Flight index built")

	searcher := usecase.NewTripSearcher(index, nil)
	handler := triphttp.NewTripHandler(searcher, triphttp.LayoverDefaults{
		Min: cfg.Search.MinLayover,
		Max: cfg.Search.MaxLayover,
	}, index.Size())

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	middleware.Setup(e, log.Logger, middleware.RateLimitConfig{
		RequestsPerSecond: cfg.Server.RateLimitRPS,
		BurstSize:         cfg.Server.RateLimitBurst,
	})
	triphttp.RegisterRoutes(e, handler)

	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	// Start server in a goroutine so we can wait for shutdown signals
	go func() {
		addr := fmt.Sprintf(":%d", cfg.Server.Port)
		log.Info().Str("addr", addr).Msg("Server starting")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Server shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Forced shutdown")
	}

	log.Info().Msg("Server stopped")
}
