package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	analyticsHttp "quiz-analytics-service/internal/analytics/adapters/http/fiber"
	analyticsRepoPg "quiz-analytics-service/internal/analytics/adapters/postgres"
	analyticsUsecase "quiz-analytics-service/internal/analytics/core/usecase"

	eventsHttp "quiz-analytics-service/internal/events/adapters/http/fiber"
	eventsRepoPg "quiz-analytics-service/internal/events/adapters/postgres"
	eventsUsecase "quiz-analytics-service/internal/events/core/usecase"

	resultsHttp "quiz-analytics-service/internal/results/adapters/http/fiber"
	resultsRepoPg "quiz-analytics-service/internal/results/adapters/postgres"
	resultsUsecase "quiz-analytics-service/internal/results/core/usecase"

	volumeHttp "quiz-analytics-service/internal/volume/adapters/http/fiber"
	volumeRepoPg "quiz-analytics-service/internal/volume/adapters/postgres"
	volumeUsecase "quiz-analytics-service/internal/volume/core/usecase"

	"quiz-analytics-service/internal/config"
	"quiz-analytics-service/internal/facade"
	"quiz-analytics-service/internal/httpcache"
	"quiz-analytics-service/internal/observability"
	"quiz-analytics-service/internal/platform/sqldb"
	"quiz-analytics-service/internal/platform/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	_ "github.com/lib/pq"
	fiberSwagger "github.com/swaggo/fiber-swagger"

	_ "quiz-analytics-service/docs"
)

// @title Quiz Analytics Service API
// @version 1.0
// @description Result resolution for quiz sessions and funnel, cohort and channel analytics.
// @BasePath /
func main() {
	// Config
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	// DB connection
	db, err := sqldb.Open(context.Background(), cfg.PostgresDSN, sqldb.PoolConfig{
		MaxOpenConns:    cfg.MaxOpenConns,
		MaxIdleConns:    cfg.MaxIdleConns,
		ConnMaxLifetime: cfg.ConnMaxLifetime,
	})
	if err != nil {
		logger.Error("failed to connect to postgres", slog.Any("error", err))
		os.Exit(1)
	}
	defer db.Close()

	sqlDB := sqldb.New(db)

	// Metrics
	reg := observability.NewRegistry()
	metrics := observability.New(reg)

	// Repositories
	eventRepository := eventsRepoPg.NewEventRepository(sqlDB)
	resultRepository := resultsRepoPg.NewResultRepository(sqlDB)
	eventStore := analyticsRepoPg.NewEventStoreRepository(sqlDB)
	volumeRepository := volumeRepoPg.NewVolumeRepository(sqlDB)

	// Usecases
	storeEventUC := eventsUsecase.NewStoreEventUseCase(eventRepository, metrics)
	resolveUC := resultsUsecase.NewResolveResultUseCase(resultRepository, logger, metrics)
	funnelUC := analyticsUsecase.NewGetFunnelUseCase(eventStore, metrics)
	cohortsUC := analyticsUsecase.NewGetCohortsUseCase(eventStore, metrics, nil)
	channelsUC := analyticsUsecase.NewGetChannelsUseCase(eventStore, metrics)
	volumeUC := volumeUsecase.NewGetVolumeUseCase(volumeRepository, metrics)

	analyticsFacade := facade.New(resolveUC, funnelUC, cohortsUC, channelsUC)
	validator := validation.New()

	// HTTP (Fiber) app + handlers
	app := fiber.New(fiber.Config{DisableStartupMessage: cfg.IsProduction()})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(observability.RequestLogger(logger))

	app.Get("/healthz", func(c *fiber.Ctx) error {
		if err := db.PingContext(c.UserContext()); err != nil {
			return c.SendStatus(fiber.StatusServiceUnavailable)
		}
		return c.SendStatus(fiber.StatusNoContent)
	})

	// events endpoints
	eventsHandler := eventsHttp.NewEventHandler(storeEventUC, validator, logger)
	app.Post("/events", eventsHandler.CreateEvent)
	app.Post("/events/bulk", eventsHandler.BulkCreateEvents)

	// result endpoints
	resultHandler := resultsHttp.NewResultHandler(resolveUC, validator, logger)
	app.Post("/tests/:testId/resolve", resultHandler.ResolveFacts)
	app.Get("/tests/:testId/sessions/:sessionId/result", resultHandler.ResolveSession)

	// analytics endpoints
	analyticsHandler := analyticsHttp.NewAnalyticsHandler(analyticsFacade, validator, logger)
	cache := httpcache.New(cfg.CacheSize, cfg.CacheTTL, metrics)

	analytics := app.Group("/analytics", cache.Handler())
	analytics.Get("/funnel", analyticsHandler.GetFunnel)
	analytics.Get("/cohorts", analyticsHandler.GetCohorts)
	analytics.Get("/channels/share", analyticsHandler.GetChannelShare)
	analytics.Get("/channels/conversion", analyticsHandler.GetChannelConversion)
	analytics.Get("/channels/devices", analyticsHandler.GetDevices)
	analytics.Get("/overview", analyticsHandler.GetOverview)

	volumeHandler := volumeHttp.NewVolumeHandler(volumeUC, validator, logger)
	analytics.Get("/volume", volumeHandler.GetVolume)

	// Prometheus
	app.Get("/internal/metrics", observability.MetricsHandler(reg))

	// Swagger
	app.Get("/docs/*", fiberSwagger.WrapHandler)

	// Graceful shutdown
	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			logger.Error("fiber stopped", slog.Any("error", err))
		}
	}()

	logger.Info("server started", slog.String("port", cfg.Port), slog.String("env", cfg.Env))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit

	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		logger.Error("fiber shutdown error", slog.Any("error", err))
	}

	logger.Info("server exiting")
}
