package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	httpapi "github.com/i474232898/windwaves/internal/api/http"
	"github.com/i474232898/windwaves/internal/config"
	"github.com/i474232898/windwaves/internal/forecast"
	"github.com/i474232898/windwaves/internal/forecast/providers"
	"github.com/i474232898/windwaves/internal/logger"
	"github.com/i474232898/windwaves/internal/scheduler"
	"github.com/i474232898/windwaves/internal/store"
)

func main() {
	// Load configuration.
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal(err)
	}
	logger.SetLevel(cfg.LogLevel)

	// Shared HTTP client for outbound provider calls.
	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}

	// In-memory bundle cache with configured retention.
	memStore := store.NewMemoryStore(cfg.CacheMaxEntries, cfg.CacheTTL)

	service := forecast.NewService(cfg.Locations, memStore, forecast.Fetchers{
		Wave:        providers.NewGLERLProvider(httpClient),
		OpenWeather: providers.NewOpenWeatherProvider(httpClient, cfg.OpenWeatherAPIKey),
		OpenMeteo:   providers.NewOpenMeteoProvider(httpClient),
	})

	// Scheduler that keeps configured locations warm in the cache.
	sched := scheduler.New(cfg.Locations, cfg.RefreshInterval, service, memStore)
	if err := sched.Start(); err != nil {
		logger.Fatal(err)
	}
	defer sched.Stop()

	app := fiber.New(fiber.Config{
		AppName:               "windwaves",
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          30 * time.Second,
		ErrorHandler:          httpapi.ErrorHandler,
	})

	// Global middleware
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "${time} ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
	}))
	app.Use(recover.New())
	app.Use(cors.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":    "ok",
			"service":   "windwaves",
			"locations": len(cfg.Locations),
		})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	httpapi.RegisterRoutes(app, service, cfg.DefaultThreshold)

	if cfg.StaticDir != "" {
		app.Static("/", cfg.StaticDir)
	}

	go func() {
		logger.Infof("windwaves listening on port %s", cfg.Port)
		if err := app.Listen(":" + cfg.Port); err != nil {
			logger.Warnf("fiber server stopped: %v", err)
		}
	}()

	// Wait for termination signal
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		logger.Warnf("error during shutdown: %v", err)
	}
}
