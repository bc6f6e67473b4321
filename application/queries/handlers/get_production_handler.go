package handlers

import (
	"context"
	"fmt"
	"strings"

	"bananalytics-backend/application/ports"
	"bananalytics-backend/application/queries"
	"bananalytics-backend/domain/models"

	"go.uber.org/zap"
)

// GetProductionHandler handles production-by-year queries
type GetProductionHandler struct {
	analyticsRepo ports.AnalyticsRepository
	logger        *zap.Logger
}

// NewGetProductionHandler creates a new production handler
func NewGetProductionHandler(analyticsRepo ports.AnalyticsRepository, logger *zap.Logger) *GetProductionHandler {
	return &GetProductionHandler{
		analyticsRepo: analyticsRepo,
		logger:        logger,
	}
}

// Handle executes the production query, optionally filtering to one region.
func (h *GetProductionHandler) Handle(ctx context.Context, query queries.GetProductionByYearQuery) ([]models.ProductionRecord, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query: %w", err)
	}

	records, err := h.analyticsRepo.GetProduction(ctx, query.Year)
	if err != nil {
		return nil, err
	}

	if query.Region != "" {
		filtered := records[:0:0]
		for _, rec := range records {
			if strings.EqualFold(rec.Region, query.Region) {
				filtered = append(filtered, rec)
			}
		}
		records = filtered
	}

	h.logger.Debug("Production records retrieved",
		zap.Int("year", query.Year),
		zap.String("region", query.Region),
		zap.Int("records", len(records)),
	)

	return records, nil
}
