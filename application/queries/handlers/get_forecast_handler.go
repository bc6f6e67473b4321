package handlers

import (
	"context"
	"fmt"

	"bananalytics-backend/application/ports"
	"bananalytics-backend/application/queries"
	"bananalytics-backend/domain/models"

	"go.uber.org/zap"
)

// GetForecastHandler handles weather forecast queries
type GetForecastHandler struct {
	forecastRepo ports.ForecastRepository
	logger       *zap.Logger
}

// NewGetForecastHandler creates a new forecast handler
func NewGetForecastHandler(forecastRepo ports.ForecastRepository, logger *zap.Logger) *GetForecastHandler {
	return &GetForecastHandler{
		forecastRepo: forecastRepo,
		logger:       logger,
	}
}

// Handle executes the forecast query. It makes exactly one repository call
// and returns the result unmodified; any downstream fault propagates to
// the caller untouched.
func (h *GetForecastHandler) Handle(ctx context.Context, query queries.GetForecastQuery) ([]models.ForecastEntry, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query: %w", err)
	}

	h.logger.Debug("Handling forecast query", zap.Int("days", query.Days))

	entries, err := h.forecastRepo.GetForecast(ctx, query.Days)
	if err != nil {
		return nil, err
	}

	h.logger.Debug("Forecast generated", zap.Int("entries", len(entries)))
	return entries, nil
}
