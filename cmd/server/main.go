package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	httpAdapter "github.com/jcr/golibro/internal/adapter/http"
	"github.com/jcr/golibro/internal/adapter/http/handler"
	"github.com/jcr/golibro/internal/adapter/http/middleware"
	postgresRepo "github.com/jcr/golibro/internal/adapter/repository/postgres"
	redisRepo "github.com/jcr/golibro/internal/adapter/repository/redis"
	"github.com/jcr/golibro/internal/domain"
	"github.com/jcr/golibro/internal/infrastructure/config"
	"github.com/jcr/golibro/internal/infrastructure/logger"
	"github.com/jcr/golibro/internal/infrastructure/metrics"
	"github.com/jcr/golibro/internal/infrastructure/postgres"
	"github.com/jcr/golibro/internal/infrastructure/redis"
	"github.com/jcr/golibro/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	// Setup logger
	log.Logger = logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})

	ctx := context.Background()

	// Run migrations when asked to
	if cfg.MigrateOnStart {
		if err := postgres.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
			log.Fatal().Err(err).Msg("failed to run migrations")
		}
	}

	// Connect to PostgreSQL
	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL, cfg.DatabaseMaxConns, cfg.DatabaseMinConns)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()
	log.Info().Msg("connected to postgres")

	// Connect to Redis. The service runs without it, minus the summary
	// cache and idempotent replays.
	var (
		redisClient      = newRedisClient(ctx, cfg)
		summaryCache     usecase.Cache
		idempotencyStore usecase.IdempotencyStore
	)
	if redisClient != nil {
		defer redisClient.Close()
		summaryCache = redisRepo.NewCache(redisClient)
		idempotencyStore = redisRepo.NewIdempotencyStore(redisClient)
	}

	// Chart of accounts and posting rules
	registry := domain.DefaultRegistry()
	rules := usecase.Rules{
		Receivable: cfg.AccountReceivable,
		Revenue:    cfg.AccountRevenue,
		TaxPayable: cfg.AccountTaxPayable,
		Inventory:  cfg.AccountInventory,
		TaxCredit:  cfg.AccountTaxCredit,
		Payable:    cfg.AccountPayable,
	}

	// Initialize repositories
	txManager := postgresRepo.NewTxManager(pool)
	ledgerRepo := postgresRepo.NewLedgerRepository(pool)
	idGen := postgresRepo.NewULIDGenerator()
	retrier := postgresRepo.NewRetrier()

	// Initialize use cases
	m := metrics.New()
	journalUC := usecase.NewJournalUseCase(registry, txManager, ledgerRepo, idGen, retrier, summaryCache, m)
	postingUC := usecase.NewPostingUseCase(registry, txManager, ledgerRepo, idGen, retrier, summaryCache, m, rules)
	reportUC := usecase.NewReportUseCase(ledgerRepo, registry, summaryCache, m)
	ledgerUC := usecase.NewLedgerUseCase(ledgerRepo)

	// Create router
	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		JournalHandler:   handler.NewJournalHandler(journalUC, registry),
		PostingHandler:   handler.NewPostingHandler(postingUC, registry),
		ReportHandler:    handler.NewReportHandler(reportUC, registry),
		ChartHandler:     handler.NewChartHandler(registry),
		LedgerHandler:    handler.NewLedgerHandler(ledgerUC),
		HealthHandler:    handler.NewHealthHandler(pool, redisClient),
		IdempotencyStore: idempotencyStore,
		Metrics:          m,
		RateLimiter:      middleware.NewRateLimiter(50, 100),
		Logger:           &log.Logger,
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

func newRedisClient(ctx context.Context, cfg *config.Config) *goredis.Client {
	if cfg.RedisURL == "" {
		log.Info().Msg("redis disabled")
		return nil
	}

	client, err := redis.NewClient(ctx, cfg.RedisURL)
	if err != nil {
		log.Warn().Err(err).Msg("redis unavailable, continuing without cache")
		return nil
	}

	log.Info().Msg("connected to redis")
	return client
}
