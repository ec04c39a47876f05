package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/studio-api/internal/api/http"
	"github.com/spec-kit/studio-api/internal/api/http/handlers"
	"github.com/spec-kit/studio-api/internal/auth"
	"github.com/spec-kit/studio-api/internal/config"
	"github.com/spec-kit/studio-api/internal/events"
	"github.com/spec-kit/studio-api/internal/media"
	"github.com/spec-kit/studio-api/internal/observability"
	"github.com/spec-kit/studio-api/internal/persistence"
	"github.com/spec-kit/studio-api/internal/repository"
	"github.com/spec-kit/studio-api/internal/service"
	"github.com/spec-kit/studio-api/internal/worker"
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

	if cfg.Postgres.RunMigrations && pg.PoolHandle() != nil {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	var limiter auth.LoginLimiter
	if redis.Ping(ctx) == nil {
		limiter = auth.NewRedisLoginLimiter(redis.Client, cfg.RateLimit, logger)
	} else {
		logger.Warn("redis unavailable; using in-process login limiter")
		limiter = auth.NewLocalLoginLimiter(cfg.RateLimit)
	}

	storage := media.NewCloudinaryStorage(cfg.Storage)
	mediaManager := media.NewManager(storage, logger)

	pool := pg.PoolHandle()
	contactRepo := repository.NewContactRepository(pool)
	portfolioRepo := repository.NewPortfolioRepository(pool)
	jobRepo := repository.NewJobRepository(pool)
	applicationRepo := repository.NewApplicationRepository(pool)
	teamRepo := repository.NewTeamRepository(pool)
	testimonialRepo := repository.NewTestimonialRepository(pool)
	clientRepo := repository.NewClientRepository(pool)

	dispatcher := events.NewInMemoryDispatcher()

	adminService, err := service.NewAdminService(cfg.Auth, limiter)
	if err != nil {
		logger.Fatal("failed to init admin service", zap.Error(err))
	}
	contactService := service.NewContactService(contactRepo, dispatcher)
	portfolioService := service.NewPortfolioService(portfolioRepo, mediaManager)
	jobService := service.NewJobService(jobRepo, applicationRepo)
	applicationService := service.NewApplicationService(applicationRepo, jobRepo, mediaManager, dispatcher)
	teamService := service.NewTeamService(teamRepo, mediaManager)
	testimonialService := service.NewTestimonialService(testimonialRepo)
	clientService := service.NewClientService(clientRepo, mediaManager)
	dashboardService := service.NewDashboardService(service.DashboardDependencies{
		ContactRepo:     contactRepo,
		ApplicationRepo: applicationRepo,
		PortfolioRepo:   portfolioRepo,
		JobRepo:         jobRepo,
		TeamRepo:        teamRepo,
		TestimonialRepo: testimonialRepo,
		ClientRepo:      clientRepo,
	})

	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Mail)
	worker.StartNotificationWorker(notificationService)

	authMiddleware := auth.NewMiddleware(adminService.TokenManager())
	metrics := observability.NewMetrics()

	app := fiber.New(fiber.Config{
		AppName:   cfg.App.Name,
		BodyLimit: media.MaxFileSize * 12,
	})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:       handlers.NewHealthHandler(cfg.App.Name, cfg.App.Env),
		Admin:        handlers.NewAdminHandler(adminService, dashboardService),
		Contact:      handlers.NewContactHandler(contactService),
		Portfolio:    handlers.NewPortfolioHandler(portfolioService),
		Jobs:         handlers.NewJobsHandler(jobService),
		Applications: handlers.NewApplicationsHandler(applicationService),
		Team:         handlers.NewTeamHandler(teamService),
		Testimonials: handlers.NewTestimonialsHandler(testimonialService),
		Clients:      handlers.NewClientsHandler(clientService),
		Auth:         authMiddleware,
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
