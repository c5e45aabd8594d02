package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/jewelry-store/internal/api/http"
	"github.com/spec-kit/jewelry-store/internal/api/http/handlers"
	"github.com/spec-kit/jewelry-store/internal/auth"
	"github.com/spec-kit/jewelry-store/internal/config"
	"github.com/spec-kit/jewelry-store/internal/events"
	"github.com/spec-kit/jewelry-store/internal/observability"
	"github.com/spec-kit/jewelry-store/internal/persistence"
	"github.com/spec-kit/jewelry-store/internal/repository"
	"github.com/spec-kit/jewelry-store/internal/service"
	"github.com/spec-kit/jewelry-store/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	adminRepo := repository.NewAdminRepository(pool)
	categoryRepo := repository.NewCategoryRepository(pool)
	orderRepo := repository.NewOrderRepository(pool)
	subscriberRepo := repository.NewSubscriberRepository(pool)

	dispatcher := events.NewInMemoryDispatcher()
	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)
	worker.StartNotificationWorker(notificationService)

	authService := service.NewAuthService(cfg.Auth, adminRepo, logger)
	catalogService := service.NewCatalogService(categoryRepo)
	orderService := service.NewOrderService(orderRepo, redis, dispatcher, logger, cfg.Cache.StatsTTL())
	newsletterService := service.NewNewsletterService(subscriberRepo, dispatcher)

	sessionGate := auth.NewSessionGate(authService.TokenManager())

	app := fiber.New()
	metrics := observability.NewMetrics()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:      handlers.NewHealthHandler(pg, redis),
		Pages:       handlers.NewPagesHandler(),
		AdminAuth:   handlers.NewAdminAuthHandler(authService),
		Categories:  handlers.NewCategoriesHandler(catalogService, sessionGate),
		AdminOrders: handlers.NewAdminOrdersHandler(orderService, sessionGate),
		Orders:      handlers.NewOrdersHandler(orderService),
		Newsletter:  handlers.NewNewsletterHandler(newsletterService),
		SessionGate: sessionGate,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
