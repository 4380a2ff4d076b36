package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"community-support-platform/config"
	_ "community-support-platform/docs" // Swagger docs
	"community-support-platform/internal/httpserver"
	"community-support-platform/internal/metrics"
	"community-support-platform/pkg/generative"
	"community-support-platform/pkg/log"
)

// @title       Community Support Platform API
// @description Nonprofit dashboard backend: FAQ assistant with generative fallback, CSV analytics, and chart payloads.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Community Support Platform...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Metrics
	metrics.Init()

	// 4. Generative backend. The chain is loaded lazily on the first
	// unmatched question; when no provider is configured the assistant
	// answers with templates and the default message only.
	var backend generative.Backend
	if cfg.Generative.Enabled() {
		logger.Infof(ctx, "Generative backend configured (%d providers), loading deferred",
			len(cfg.Generative.Providers))
		backend = generative.NewLazy(func() (generative.Backend, error) {
			backends, err := generative.InitializeBackends(&cfg.Generative)
			if err != nil {
				return nil, err
			}
			return generative.NewManager(backends, &generative.Config{
				FallbackEnabled: cfg.Generative.FallbackEnabled,
				RetryAttempts:   cfg.Generative.RetryAttempts,
				RetryDelay:      cfg.Generative.RetryDelayDuration(),
				MaxTotalTimeout: cfg.Generative.MaxTotalTimeoutDuration(),
			}, logger), nil
		})
	} else {
		logger.Warn(ctx, "No generative provider configured, assistant runs in template-only mode")
		backend = generative.NewDisabled()
	}

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		AppConfig:   cfg,
		Backend:     backend,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
