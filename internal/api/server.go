package api

import (
	"net/http"

	"github.com/charole/auto-ux-backend/internal/api/docs"
	"github.com/charole/auto-ux-backend/internal/api/middleware"
	uxapi "github.com/charole/auto-ux-backend/internal/api/ux"
	"github.com/charole/auto-ux-backend/internal/config"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

const swaggerSpecPath = "docs/swagger.yaml"

// SetupRouter creates and configures the HTTP router
func SetupRouter(
	cfg *config.Config,
	uxHandler *uxapi.Handler,
	gatherer prometheus.Gatherer,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	// Middleware stack
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.AllowedOrigins))
	r.Use(chimiddleware.Timeout(cfg.RequestTimeout))

	r.Get("/health", uxHandler.Health)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	// Swagger documentation endpoints
	docs.RegisterRoutes(r, swaggerSpecPath)

	uxapi.RegisterRoutes(r, uxHandler)

	return r
}
