package ports

import (
	"context"

	"bananalytics-backend/domain/models"
)

// ForecastRepository is the port for weather forecast data.
// The mock implementation generates records in-memory; nothing is persisted.
type ForecastRepository interface {
	// GetForecast returns exactly days entries, dated tomorrow onwards.
	GetForecast(ctx context.Context, days int) ([]models.ForecastEntry, error)
}

// AnalyticsRepository is the port for banana production and sales data.
type AnalyticsRepository interface {
	// GetProduction returns one record per region/month pair for the year.
	GetProduction(ctx context.Context, year int) ([]models.ProductionRecord, error)

	// GetSales returns one record per destination country.
	GetSales(ctx context.Context) ([]models.SalesRecord, error)
}
