package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/iho/finboard/internal/adapter/http/handler"
	"github.com/iho/finboard/internal/adapter/http/middleware"
	"github.com/iho/finboard/internal/domain"
	"github.com/iho/finboard/internal/infrastructure/auth"
	"github.com/iho/finboard/internal/usecase"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	CostHandler      *handler.CostHandler
	RevenueHandler   *handler.RevenueHandler
	GoalHandler      *handler.GoalHandler
	EntityHandler    *handler.EntityHandler
	ReportHandler    *handler.ReportHandler
	AuthHandler      *handler.AuthHandler
	HealthHandler    *handler.HealthHandler
	JWTManager       *auth.JWTManager
	IdempotencyStore usecase.IdempotencyStore
	IdempotencyTTL   time.Duration
	RateLimiter      *middleware.RateLimiter
	Logger           zerolog.Logger
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewLoggingMiddleware(cfg.Logger).Wrap)
	r.Use(middleware.Recovery)
	r.Use(middleware.Metrics)
	if cfg.RateLimiter != nil {
		r.Use(cfg.RateLimiter.Limit)
	}

	// Health and metrics endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)
	r.Handle("/metrics", promhttp.Handler())

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/register", cfg.AuthHandler.Register)
		r.Post("/auth/login", cfg.AuthHandler.Login)

		// Authenticated routes
		r.Group(func(r chi.Router) {
			r.Use(middleware.AuthMiddleware(cfg.JWTManager))

			// Idempotency middleware for mutating requests
			if cfg.IdempotencyStore != nil {
				idempotencyMiddleware := middleware.NewIdempotencyMiddleware(cfg.IdempotencyStore, cfg.IdempotencyTTL)
				r.Use(idempotencyMiddleware.Wrap)
			}

			r.Get("/auth/me", cfg.AuthHandler.Me)

			// Writes require at least a member role, deletes an owner.
			// Use cases re-check against the record's actual owner.
			canWrite := middleware.RequireRole(domain.RoleMember)
			canDelete := middleware.RequireRole(domain.RoleOwner)

			r.With(canDelete).Put("/users/{id}/role", cfg.AuthHandler.UpdateRole)

			// Costs
			r.Route("/costs", func(r chi.Router) {
				r.With(canWrite).Post("/", cfg.CostHandler.Create)
				r.Get("/", cfg.CostHandler.List)
				r.With(canWrite).Post("/import", cfg.CostHandler.Import)
				r.Get("/{id}", cfg.CostHandler.Get)
				r.With(canWrite).Put("/{id}", cfg.CostHandler.Update)
				r.With(canDelete).Delete("/{id}", cfg.CostHandler.Delete)
				r.With(canWrite).Post("/{id}/deactivate", cfg.CostHandler.Deactivate)
			})

			// Revenues
			r.Route("/revenues", func(r chi.Router) {
				r.With(canWrite).Post("/", cfg.RevenueHandler.Create)
				r.Get("/", cfg.RevenueHandler.List)
				r.With(canDelete).Delete("/{id}", cfg.RevenueHandler.Delete)
			})

			// Goals
			r.Route("/goals", func(r chi.Router) {
				r.With(canWrite).Post("/", cfg.GoalHandler.Create)
				r.Get("/", cfg.GoalHandler.List)
				r.Get("/{id}", cfg.GoalHandler.Get)
				r.With(canWrite).Post("/{id}/savings", cfg.GoalHandler.AddSavings)
			})

			// Entities
			r.Route("/entities", func(r chi.Router) {
				r.With(canWrite).Post("/", cfg.EntityHandler.Create)
				r.Get("/", cfg.EntityHandler.List)
				r.Get("/{id}", cfg.EntityHandler.Get)
			})

			// Reports
			r.Route("/reports", func(r chi.Router) {
				r.Get("/accrued", cfg.ReportHandler.Accrued)
				r.Get("/summary", cfg.ReportHandler.Summary)
				r.Get("/goals", cfg.ReportHandler.Goals)
			})
		})
	})

	return r
}
