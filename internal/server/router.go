package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/katalvlaran/knightpath/internal/metrics"
	"github.com/katalvlaran/knightpath/internal/service"
)

// Router creates and configures the HTTP router.
type Router struct {
	svc     *service.Service
	logger  *zap.Logger
	metrics *metrics.Collector
}

// NewRouter creates a new router. collector may be nil to disable /metrics.
func NewRouter(svc *service.Service, logger *zap.Logger, collector *metrics.Collector) *Router {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Router{svc: svc, logger: logger, metrics: collector}
}

// Setup configures all routes and middleware.
func (rt *Router) Setup() http.Handler {
	router := chi.NewRouter()

	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)
	router.Use(Logger(rt.logger))
	if rt.metrics != nil {
		router.Use(Metrics(rt.metrics))
		router.Method(http.MethodGet, "/metrics", rt.metrics.Handler())
	}

	h := &handler{svc: rt.svc, logger: rt.logger}
	router.Get("/health", h.health)
	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/path", h.path)
		r.Get("/reach", h.reach)
		r.Get("/squares/{square}/neighbors", h.neighbors)
	})

	return router
}
