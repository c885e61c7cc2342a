package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/i474232898/telescope-weather/internal/api/http"
	"github.com/i474232898/telescope-weather/internal/config"
	"github.com/i474232898/telescope-weather/internal/logger"
	"github.com/i474232898/telescope-weather/internal/scheduler"
	"github.com/i474232898/telescope-weather/internal/weather"
)

func main() {
	// Load configuration.
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal(fmt.Errorf("failed to load config: %w", err))
	}
	if err := logger.SetLevel(cfg.LogLevel); err != nil {
		logger.Fatal(fmt.Errorf("failed to set log level: %w", err))
	}

	// Read-only registry shared by every request.
	registry := weather.DefaultRegistry()

	// The global math/rand/v2 source is safe for concurrent requests.
	sim := weather.NewSimulator(registry, weather.DefaultRand())
	service := weather.NewService(sim, cfg.Options())

	// Periodic conditions monitor (disabled unless MONITOR_INTERVAL is set).
	sched := scheduler.New(service, cfg.MonitorInterval)
	if err := sched.Start(); err != nil {
		logger.Fatal(fmt.Errorf("failed to start scheduler: %w", err))
	}
	defer sched.Stop()

	app := httpapi.NewApp(cfg.CORSOrigins)
	httpapi.RegisterRoutes(app, service, time.Now)

	go func() {
		logger.Infof("starting telescope weather service at %s", cfg.Addr())
		if err := app.Listen(cfg.Addr()); err != nil {
			logger.Error(fmt.Errorf("fiber server stopped: %w", err))
		}
	}()

	// Wait for termination signal
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		logger.Error(fmt.Errorf("error during shutdown: %w", err))
	}
}
