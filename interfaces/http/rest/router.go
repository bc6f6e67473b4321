package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	querybus "bananalytics-backend/application/queries/bus"
	"bananalytics-backend/infrastructure/config"
	"bananalytics-backend/infrastructure/health"
	"bananalytics-backend/infrastructure/observability"
	"bananalytics-backend/interfaces/http/rest/handlers"
	"bananalytics-backend/interfaces/http/rest/middleware"
	"bananalytics-backend/pkg/ratelimit"
)

// Router creates and configures the HTTP router
type Router struct {
	cfg            *config.Config
	queryBus       *querybus.QueryBus
	collector      *observability.Collector
	healthRegistry *health.Registry
	apiLimiter     *ratelimit.Limiter
	logger         *zap.Logger
}

// NewRouter creates a new router instance
func NewRouter(
	cfg *config.Config,
	queryBus *querybus.QueryBus,
	collector *observability.Collector,
	healthRegistry *health.Registry,
	apiLimiter *ratelimit.Limiter,
	logger *zap.Logger,
) *Router {
	return &Router{
		cfg:            cfg,
		queryBus:       queryBus,
		collector:      collector,
		healthRegistry: healthRegistry,
		apiLimiter:     apiLimiter,
		logger:         logger,
	}
}

// Setup configures all routes and middleware
func (rt *Router) Setup() http.Handler {
	router := chi.NewRouter()

	// Global middleware. Tracing and metrics run inside the recoverer so
	// a panicking handler still ends its span and decrements the gauge.
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.Logger(rt.logger))
	router.Use(observability.TracingMiddleware(rt.cfg.ServiceName))
	router.Use(observability.MetricsMiddleware(rt.collector))

	// CORS configuration
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"http://localhost:4200"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID", "X-Trace-ID"},
		MaxAge:         300,
	}))

	// Health checks
	healthHandler := handlers.NewHealthHandler(rt.healthRegistry, rt.logger)
	router.Get("/health", healthHandler.Health)
	router.Get("/health/ready", healthHandler.Ready)
	router.Get("/health/live", healthHandler.Live)

	// Prometheus exposition for the pull-based collector
	router.Handle("/metrics", promhttp.HandlerFor(rt.collector.GetRegistry(), promhttp.HandlerOpts{}))

	// Weather forecast, rate-limited under policy "api"
	forecastHandler := handlers.NewForecastHandler(rt.queryBus, rt.collector, rt.logger)
	router.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit("api", rt.apiLimiter, rt.logger))
		r.Get("/weatherforecast", forecastHandler.GetForecast)
	})

	// Banana analytics and diagnostics
	router.Route("/api", func(r chi.Router) {
		analyticsHandler := handlers.NewAnalyticsHandler(rt.queryBus, rt.collector, rt.logger)
		r.Route("/analytics", func(r chi.Router) {
			r.Get("/summary", analyticsHandler.GetSummary)
			r.Get("/production", analyticsHandler.GetProduction)
			r.Get("/sales", analyticsHandler.GetSales)
			r.Get("/dashboard", handlers.NewDashboardHandler(rt.queryBus, rt.logger).GetDashboard)
		})

		diagnostics := handlers.NewDiagnosticsHandler(
			rt.cfg.ServiceName,
			rt.cfg.ServiceVersion,
			rt.cfg.Environment,
			rt.logger,
		)
		r.Get("/metrics/custom", diagnostics.CustomMetrics)
		r.Get("/trace/test", diagnostics.TraceTest)
		r.Get("/error/test", diagnostics.ErrorTest)
	})

	return router
}
