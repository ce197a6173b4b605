// Package main is the entry point for the sailing route search service.
// It loads a static snapshot of the sailing network, builds the route
// planner once, and serves route queries over HTTP.
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
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/sailing-search/sailing-route-service/internal/adapter/feed"
	routehttp "github.com/sailing-search/sailing-route-service/internal/adapter/http"
	"github.com/sailing-search/sailing-route-service/internal/adapter/http/middleware"
	"github.com/sailing-search/sailing-route-service/internal/config"
	"github.com/sailing-search/sailing-route-service/internal/usecase"
)

const (
	shutdownTimeout = 10 * time.Second
)

func main() {
	cfg := config.MustLoad()

	setupLogger(cfg)

	log.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Str("snapshot", cfg.Data.SnapshotPath).
		Msg("Configuration loaded")

	planner, err := buildPlanner(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to build route planner")
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	middleware.Setup(e, log.Logger)

	handler := routehttp.NewRouteHandler(planner)
	routehttp.RegisterRoutes(e, handler)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		log.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	gracefulShutdown(e)
}

// buildPlanner loads the snapshot file and constructs the route planner.
func buildPlanner(cfg *config.Config) (*usecase.RoutePlanner, error) {
	snapshot, err := feed.Load(cfg.Data.SnapshotPath)
	if err != nil {
		return nil, err
	}

	log.Info().
		Int("sailings", len(snapshot.Sailings)).
		Int("rates", len(snapshot.Rates)).
		Int("exchange_rate_days", len(snapshot.ExchangeRates)).
		Msg("Snapshot loaded")

	return usecase.NewRoutePlanner(
		snapshot.Sailings,
		snapshot.Rates,
		snapshot.ExchangeRates,
		usecase.WithBaseCurrency(cfg.Engine.BaseCurrency),
		usecase.WithCurrencyScale(cfg.Engine.CurrencyScale),
		usecase.WithMaxPathLegs(cfg.Engine.MaxPathLegs),
	)
}

// setupLogger configures the global zerolog logger based on config.
func setupLogger(cfg *config.Config) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	if cfg.Logging.Format != "json" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})
	}

	switch cfg.Logging.Level {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

// gracefulShutdown handles graceful server shutdown on interrupt signals.
func gracefulShutdown(e *echo.Echo) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}

	log.Info().Msg("Server stopped")
}
