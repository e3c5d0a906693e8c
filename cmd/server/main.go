package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	httpAdapter "github.com/iho/finboard/internal/adapter/http"
	"github.com/iho/finboard/internal/adapter/http/handler"
	"github.com/iho/finboard/internal/adapter/http/middleware"
	postgresRepo "github.com/iho/finboard/internal/adapter/repository/postgres"
	redisRepo "github.com/iho/finboard/internal/adapter/repository/redis"
	"github.com/iho/finboard/internal/infrastructure/auth"
	"github.com/iho/finboard/internal/infrastructure/config"
	"github.com/iho/finboard/internal/infrastructure/logger"
	"github.com/iho/finboard/internal/infrastructure/postgres"
	"github.com/iho/finboard/internal/infrastructure/redis"
	"github.com/iho/finboard/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	appLogger := logger.New(logger.Config{
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
		Service: "finboard",
	})
	log.Logger = appLogger
	zerolog.DefaultContextLogger = &appLogger

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET must be set")
	}

	ctx := context.Background()

	// Connect to PostgreSQL
	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL, cfg.DatabaseMaxConns, cfg.DatabaseMinConns)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()
	log.Info().Msg("connected to postgres")

	if path := os.Getenv("MIGRATIONS_PATH"); path != "" {
		if err := postgres.RunMigrations(cfg.DatabaseURL, path); err != nil {
			log.Fatal().Err(err).Msg("failed to run migrations")
		}
	}

	// Connect to Redis
	redisClient, err := redis.NewClient(ctx, cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer redisClient.Close()
	log.Info().Msg("connected to redis")

	// Initialize repositories
	txManager := postgresRepo.NewTxManager(pool)
	retrier := postgresRepo.NewRetrier(appLogger)
	costRepo := postgresRepo.NewCostRepository(pool)
	revenueRepo := postgresRepo.NewRevenueRepository(pool)
	goalRepo := postgresRepo.NewGoalRepository(pool)
	entityRepo := postgresRepo.NewEntityRepository(pool)
	userRepo := postgresRepo.NewUserRepository(pool)
	reportCache := redisRepo.NewReportCache(redisClient)
	idempotencyStore := redisRepo.NewIdempotencyStore(redisClient)
	idGen := postgresRepo.NewULIDGenerator()

	// Initialize use cases
	costUC := usecase.NewCostUseCase(costRepo, entityRepo, reportCache, idGen)
	revenueUC := usecase.NewRevenueUseCase(revenueRepo, entityRepo, idGen)
	goalUC := usecase.NewGoalUseCase(goalRepo, entityRepo, idGen)
	entityUC := usecase.NewEntityUseCase(entityRepo, idGen)
	importUC := usecase.NewImportUseCase(txManager, costRepo, entityRepo, reportCache, idGen, retrier)
	reportUC := usecase.NewReportUseCase(costRepo, revenueRepo, goalRepo, entityRepo, reportCache)
	reportUC.SetCacheTTL(cfg.ReportCacheTTL)
	userUC := usecase.NewUserUseCase(userRepo, idGen)

	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTExpiration)

	rateLimiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	go func() {
		ticker := time.NewTicker(10 * time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				rateLimiter.Prune(time.Hour)
			}
		}
	}()

	// Create router
	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		CostHandler:      handler.NewCostHandler(costUC, importUC),
		RevenueHandler:   handler.NewRevenueHandler(revenueUC),
		GoalHandler:      handler.NewGoalHandler(goalUC),
		EntityHandler:    handler.NewEntityHandler(entityUC),
		ReportHandler:    handler.NewReportHandler(reportUC),
		AuthHandler:      handler.NewAuthHandler(userUC, jwtManager),
		HealthHandler:    handler.NewHealthHandler(pool, redisClient),
		JWTManager:       jwtManager,
		IdempotencyStore: idempotencyStore,
		IdempotencyTTL:   cfg.IdempotencyTTL,
		RateLimiter:      rateLimiter,
		Logger:           appLogger,
	})

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}
