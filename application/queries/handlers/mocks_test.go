package handlers

import (
	"context"

	"github.com/stretchr/testify/mock"

	"bananalytics-backend/domain/models"
)

// MockAnalyticsRepository is a testify mock of ports.AnalyticsRepository.
type MockAnalyticsRepository struct {
	mock.Mock
}

func (m *MockAnalyticsRepository) GetProduction(ctx context.Context, year int) ([]models.ProductionRecord, error) {
	args := m.Called(ctx, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ProductionRecord), args.Error(1)
}

func (m *MockAnalyticsRepository) GetSales(ctx context.Context) ([]models.SalesRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.SalesRecord), args.Error(1)
}

// MockForecastRepository is a testify mock of ports.ForecastRepository.
type MockForecastRepository struct {
	mock.Mock
}

func (m *MockForecastRepository) GetForecast(ctx context.Context, days int) ([]models.ForecastEntry, error) {
	args := m.Called(ctx, days)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ForecastEntry), args.Error(1)
}
