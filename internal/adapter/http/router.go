package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/jcr/golibro/internal/adapter/http/handler"
	"github.com/jcr/golibro/internal/adapter/http/middleware"
	"github.com/jcr/golibro/internal/infrastructure/metrics"
	"github.com/jcr/golibro/internal/usecase"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	JournalHandler   *handler.JournalHandler
	PostingHandler   *handler.PostingHandler
	ReportHandler    *handler.ReportHandler
	ChartHandler     *handler.ChartHandler
	LedgerHandler    *handler.LedgerHandler
	HealthHandler    *handler.HealthHandler
	IdempotencyStore usecase.IdempotencyStore
	Metrics          *metrics.Metrics
	RateLimiter      *middleware.RateLimiter
	Logger           *zerolog.Logger
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	logger := zerolog.Nop()
	if cfg.Logger != nil {
		logger = *cfg.Logger
	}

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Recovery)

	if cfg.Logger != nil {
		r.Use(middleware.NewLoggingMiddleware(logger).Wrap)
	}

	if cfg.Metrics != nil {
		r.Use(middleware.NewMetricsMiddleware(cfg.Metrics).Wrap)
	}

	// Health and operational endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)
	r.Handle("/metrics", promhttp.Handler())

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		if cfg.RateLimiter != nil {
			r.Use(cfg.RateLimiter.Wrap)
		}

		// Idempotency middleware for mutating requests
		if cfg.IdempotencyStore != nil {
			idempotencyMiddleware := middleware.NewIdempotencyMiddleware(cfg.IdempotencyStore, cfg.Metrics, logger)
			r.Use(idempotencyMiddleware.Wrap)
		}

		// Manual journal postings
		r.Route("/journal", func(r chi.Router) {
			r.Post("/", cfg.JournalHandler.Create)
			r.Post("/validate", cfg.JournalHandler.Validate)
		})

		// Source documents
		r.Post("/sales", cfg.PostingHandler.CreateFromSale)
		r.Post("/purchases", cfg.PostingHandler.CreateFromPurchase)

		// Postings
		r.Route("/postings", func(r chi.Router) {
			r.Get("/{id}", cfg.PostingHandler.Get)
			r.Post("/{id}/reverse", cfg.PostingHandler.Reverse)
		})

		// Reports
		r.Get("/entries", cfg.ReportHandler.ListEntries)
		r.Get("/summary", cfg.ReportHandler.Summarize)
		r.Get("/chart", cfg.ChartHandler.List)
		r.Get("/ledger/consistency", cfg.LedgerHandler.CheckConsistency)
	})

	return r
}
