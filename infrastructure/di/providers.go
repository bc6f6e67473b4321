package di

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"bananalytics-backend/application/ports"
	"bananalytics-backend/application/queries"
	querybus "bananalytics-backend/application/queries/bus"
	queries_handlers "bananalytics-backend/application/queries/handlers"
	"bananalytics-backend/infrastructure/config"
	"bananalytics-backend/infrastructure/health"
	"bananalytics-backend/infrastructure/observability"
	"bananalytics-backend/infrastructure/persistence/mock"
	"bananalytics-backend/infrastructure/persistence/remote"
	"bananalytics-backend/pkg/ratelimit"
)

// Container holds all application dependencies
type Container struct {
	Config         *config.Config
	Logger         *zap.Logger
	Collector      *observability.Collector
	HealthRegistry *health.Registry
	QueryBus       *querybus.QueryBus
	APILimiter     *ratelimit.Limiter
}

// ProvideLogger creates a new logger instance
func ProvideLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

// ProvideCollector creates the Prometheus metrics collector
func ProvideCollector(cfg *config.Config) *observability.Collector {
	return observability.NewCollector(cfg.MetricsNamespace)
}

// ProvideForecastRepository creates the forecast data source. Forecasts
// are always mock; there is no remote weather backend.
func ProvideForecastRepository() ports.ForecastRepository {
	return mock.NewForecastRepository()
}

// DataSource bundles the analytics repository with its readiness probe so
// the health registry can observe the remote breaker state.
type DataSource struct {
	Analytics ports.AnalyticsRepository
	Ready     func() bool
}

// ProvideDataSource selects the analytics data source from configuration.
// Selecting the remote path without a configured backend URL fails here,
// deterministically, at startup.
func ProvideDataSource(cfg *config.Config, logger *zap.Logger) (*DataSource, error) {
	if cfg.DataSource == config.DataSourceRemote {
		repo, err := remote.NewAnalyticsRepository(cfg.AnalyticsBackendURL, logger)
		if err != nil {
			return nil, err
		}
		return &DataSource{Analytics: repo, Ready: repo.Ready}, nil
	}

	return &DataSource{
		Analytics: mock.NewAnalyticsRepository(),
		Ready:     func() bool { return true },
	}, nil
}

// ProvideHealthRegistry creates the health check registry
func ProvideHealthRegistry(cfg *config.Config, ds *DataSource) *health.Registry {
	registry := health.NewRegistry()
	registry.Register(health.NewSelfCheck())
	registry.Register(health.NewDataSourceCheck(cfg.DataSource, ds.Ready))
	registry.Register(health.NewTelemetryCheck(cfg.EnableTracing, cfg.OTLPEndpoint))
	return registry
}

// ProvideAPILimiter creates the rate limiter for policy "api"
func ProvideAPILimiter(cfg *config.Config) *ratelimit.Limiter {
	return ratelimit.NewLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
}

// QueryHandlerAdapter adapts specific query handlers to the generic interface
type QueryHandlerAdapter struct {
	handler func(context.Context, querybus.Query) (interface{}, error)
}

func (a *QueryHandlerAdapter) Handle(ctx context.Context, query querybus.Query) (interface{}, error) {
	return a.handler(ctx, query)
}

// ProvideQueryBus creates a query bus with registered handlers, each
// wrapped with the Prometheus-backed metrics middleware.
func ProvideQueryBus(
	forecastRepo ports.ForecastRepository,
	ds *DataSource,
	collector *observability.Collector,
	logger *zap.Logger,
) (*querybus.QueryBus, error) {
	queryBus := querybus.NewQueryBus()
	metrics := querybus.NewMetricsMiddleware(observability.NewQueryMetrics(collector))

	// Register GetForecastQuery handler
	forecastHandler := queries_handlers.NewGetForecastHandler(forecastRepo, logger)
	if err := queryBus.Register(queries.GetForecastQuery{}, metrics.Wrap(&QueryHandlerAdapter{
		handler: func(ctx context.Context, query querybus.Query) (interface{}, error) {
			forecastQuery, ok := query.(queries.GetForecastQuery)
			if !ok {
				return nil, fmt.Errorf("invalid query type")
			}
			return forecastHandler.Handle(ctx, forecastQuery)
		},
	})); err != nil {
		return nil, err
	}

	// Register GetAnalyticsSummaryQuery handler
	summaryHandler := queries_handlers.NewGetAnalyticsSummaryHandler(ds.Analytics, logger)
	if err := queryBus.Register(queries.GetAnalyticsSummaryQuery{}, metrics.Wrap(&QueryHandlerAdapter{
		handler: func(ctx context.Context, query querybus.Query) (interface{}, error) {
			summaryQuery, ok := query.(queries.GetAnalyticsSummaryQuery)
			if !ok {
				return nil, fmt.Errorf("invalid query type")
			}
			return summaryHandler.Handle(ctx, summaryQuery)
		},
	})); err != nil {
		return nil, err
	}

	// Register GetProductionByYearQuery handler
	productionHandler := queries_handlers.NewGetProductionHandler(ds.Analytics, logger)
	if err := queryBus.Register(queries.GetProductionByYearQuery{}, metrics.Wrap(&QueryHandlerAdapter{
		handler: func(ctx context.Context, query querybus.Query) (interface{}, error) {
			productionQuery, ok := query.(queries.GetProductionByYearQuery)
			if !ok {
				return nil, fmt.Errorf("invalid query type")
			}
			return productionHandler.Handle(ctx, productionQuery)
		},
	})); err != nil {
		return nil, err
	}

	// Register GetSalesByCountryQuery handler
	salesHandler := queries_handlers.NewGetSalesHandler(ds.Analytics, logger)
	if err := queryBus.Register(queries.GetSalesByCountryQuery{}, metrics.Wrap(&QueryHandlerAdapter{
		handler: func(ctx context.Context, query querybus.Query) (interface{}, error) {
			salesQuery, ok := query.(queries.GetSalesByCountryQuery)
			if !ok {
				return nil, fmt.Errorf("invalid query type")
			}
			return salesHandler.Handle(ctx, salesQuery)
		},
	})); err != nil {
		return nil, err
	}

	return queryBus, nil
}
