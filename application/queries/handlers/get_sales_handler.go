package handlers

import (
	"context"

	"bananalytics-backend/application/ports"
	"bananalytics-backend/application/queries"
	"bananalytics-backend/domain/models"

	"go.uber.org/zap"
)

// GetSalesHandler handles sales-by-country queries
type GetSalesHandler struct {
	analyticsRepo ports.AnalyticsRepository
	logger        *zap.Logger
}

// NewGetSalesHandler creates a new sales handler
func NewGetSalesHandler(analyticsRepo ports.AnalyticsRepository, logger *zap.Logger) *GetSalesHandler {
	return &GetSalesHandler{
		analyticsRepo: analyticsRepo,
		logger:        logger,
	}
}

// Handle executes the sales query and returns the result unmodified.
func (h *GetSalesHandler) Handle(ctx context.Context, query queries.GetSalesByCountryQuery) ([]models.SalesRecord, error) {
	records, err := h.analyticsRepo.GetSales(ctx)
	if err != nil {
		return nil, err
	}

	h.logger.Debug("Sales records retrieved", zap.Int("records", len(records)))
	return records, nil
}
