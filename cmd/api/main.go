package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/sparksonic/portal/internal/api/http"
	"github.com/sparksonic/portal/internal/api/http/handlers"
	"github.com/sparksonic/portal/internal/auth"
	"github.com/sparksonic/portal/internal/config"
	"github.com/sparksonic/portal/internal/events"
	"github.com/sparksonic/portal/internal/observability"
	"github.com/sparksonic/portal/internal/persistence"
	"github.com/sparksonic/portal/internal/repository"
	"github.com/sparksonic/portal/internal/service"
	"github.com/sparksonic/portal/internal/worker"
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
	customerRepo := repository.NewCustomerRepository(pool)
	quoteRepo := repository.NewQuoteRepository(pool)
	ticketRepo := repository.NewTicketRepository(pool)
	contactRepo := repository.NewContactRepository(pool)
	projectRepo := repository.NewProjectRepository(pool)

	dispatcher := events.NewInMemoryDispatcher()
	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)
	worker.StartNotificationWorker(notificationService)

	authService := service.NewAuthService(*cfg, customerRepo, dispatcher)
	quoteService := service.NewQuoteService(quoteRepo, dispatcher)
	ticketService := service.NewTicketService(ticketRepo, dispatcher)
	contactService := service.NewContactService(contactRepo, dispatcher)
	reviewService := service.NewReviewService(cfg.Reviews, redis.Client, logger)
	projectService := service.NewProjectService(projectRepo)

	authMiddleware := auth.NewAuthMiddleware(authService.TokenManager(), customerRepo)
	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Auth:           handlers.NewAuthHandler(authService),
		Quotes:         handlers.NewQuotesHandler(quoteService),
		Tickets:        handlers.NewTicketsHandler(ticketService),
		Contact:        handlers.NewContactHandler(contactService),
		Site:           handlers.NewSiteHandler(reviewService, projectService),
		AuthMiddleware: authMiddleware,
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
