package mock

import (
	"context"
	"time"

	"bananalytics-backend/application/ports"
	"bananalytics-backend/domain/models"
)

// Latency bounds for the simulated in-memory "I/O". Kept small so the
// endpoints stay snappy while still producing non-trivial histograms.
const (
	minLatency = 5 * time.Millisecond
	maxLatency = 60 * time.Millisecond
)

// ForecastRepository is a pass-through shim over the forecast generator.
// No caching, no retry logic; it exists so the data source can be swapped.
type ForecastRepository struct{}

// NewForecastRepository creates the mock forecast repository.
func NewForecastRepository() *ForecastRepository {
	return &ForecastRepository{}
}

// GetForecast generates days fresh entries per call.
func (r *ForecastRepository) GetForecast(ctx context.Context, days int) ([]models.ForecastEntry, error) {
	if err := simulateLatency(ctx, minLatency, maxLatency); err != nil {
		return nil, err
	}
	return GenerateForecast(days), nil
}

// AnalyticsRepository is a pass-through shim over the analytics generators.
type AnalyticsRepository struct{}

// NewAnalyticsRepository creates the mock analytics repository.
func NewAnalyticsRepository() *AnalyticsRepository {
	return &AnalyticsRepository{}
}

// GetProduction generates a full regions x 12 months set per call.
func (r *AnalyticsRepository) GetProduction(ctx context.Context, year int) ([]models.ProductionRecord, error) {
	if err := simulateLatency(ctx, minLatency, maxLatency); err != nil {
		return nil, err
	}
	return GenerateProduction(year), nil
}

// GetSales generates one record per fixed country per call.
func (r *AnalyticsRepository) GetSales(ctx context.Context) ([]models.SalesRecord, error) {
	if err := simulateLatency(ctx, minLatency, maxLatency); err != nil {
		return nil, err
	}
	return GenerateSales(), nil
}

var (
	_ ports.ForecastRepository  = (*ForecastRepository)(nil)
	_ ports.AnalyticsRepository = (*AnalyticsRepository)(nil)
)
