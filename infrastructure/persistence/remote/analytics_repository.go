package remote

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sony/gobreaker"
	"go.uber.org/zap"

	"bananalytics-backend/application/ports"
	"bananalytics-backend/domain/models"
	apperrors "bananalytics-backend/pkg/errors"
)

// AnalyticsRepository is the non-mock data path: it queries a real
// analytics backend over HTTP, with a circuit breaker in front so a
// misbehaving backend degrades readiness instead of hammering it.
type AnalyticsRepository struct {
	client  *resty.Client
	breaker *gobreaker.CircuitBreaker
	logger  *zap.Logger
}

// NewAnalyticsRepository creates the remote repository. A missing baseURL
// is a configuration error, not a runtime one: the caller selected the
// remote data path without providing a backend to talk to.
func NewAnalyticsRepository(baseURL string, logger *zap.Logger) (*AnalyticsRepository, error) {
	if baseURL == "" {
		return nil, apperrors.NewNotImplementedError("remote data source selected but no analytics backend is configured")
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(10 * time.Second)

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "analytics-backend",
		MaxRequests: 3,
		Interval:    60 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.Requests >= 5 && counts.TotalFailures*2 > counts.Requests
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.Warn("Circuit breaker state changed",
				zap.String("breaker", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
		},
	})

	return &AnalyticsRepository{
		client:  client,
		breaker: breaker,
		logger:  logger,
	}, nil
}

// Ready reports whether the breaker currently lets requests through.
func (r *AnalyticsRepository) Ready() bool {
	return r.breaker.State() != gobreaker.StateOpen
}

// GetProduction fetches production records from the backend.
func (r *AnalyticsRepository) GetProduction(ctx context.Context, year int) ([]models.ProductionRecord, error) {
	result, err := r.breaker.Execute(func() (interface{}, error) {
		var records []models.ProductionRecord
		resp, err := r.client.R().
			SetContext(ctx).
			SetQueryParam("year", fmt.Sprintf("%d", year)).
			SetResult(&records).
			Get("/production")
		if err != nil {
			return nil, err
		}
		if resp.IsError() {
			return nil, fmt.Errorf("analytics backend returned %s", resp.Status())
		}
		return records, nil
	})
	if err != nil {
		return nil, r.translate(err)
	}
	return result.([]models.ProductionRecord), nil
}

// GetSales fetches sales records from the backend.
func (r *AnalyticsRepository) GetSales(ctx context.Context) ([]models.SalesRecord, error) {
	result, err := r.breaker.Execute(func() (interface{}, error) {
		var records []models.SalesRecord
		resp, err := r.client.R().
			SetContext(ctx).
			SetResult(&records).
			Get("/sales")
		if err != nil {
			return nil, err
		}
		if resp.IsError() {
			return nil, fmt.Errorf("analytics backend returned %s", resp.Status())
		}
		return records, nil
	})
	if err != nil {
		return nil, r.translate(err)
	}
	return result.([]models.SalesRecord), nil
}

// translate maps breaker rejections to an unavailable error so the HTTP
// layer answers 503 instead of 500.
func (r *AnalyticsRepository) translate(err error) error {
	switch err {
	case gobreaker.ErrOpenState, gobreaker.ErrTooManyRequests:
		return apperrors.NewUnavailableError("analytics backend temporarily unavailable").WithCause(err)
	default:
		return err
	}
}

var _ ports.AnalyticsRepository = (*AnalyticsRepository)(nil)
