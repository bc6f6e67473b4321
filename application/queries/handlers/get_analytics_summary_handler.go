package handlers

import (
	"context"
	"fmt"
	"sort"

	"bananalytics-backend/application/ports"
	"bananalytics-backend/application/queries"
	"bananalytics-backend/domain/models"

	"go.uber.org/zap"
)

// GetAnalyticsSummaryHandler handles analytics summary queries
type GetAnalyticsSummaryHandler struct {
	analyticsRepo ports.AnalyticsRepository
	logger        *zap.Logger
}

// NewGetAnalyticsSummaryHandler creates a new analytics summary handler
func NewGetAnalyticsSummaryHandler(analyticsRepo ports.AnalyticsRepository, logger *zap.Logger) *GetAnalyticsSummaryHandler {
	return &GetAnalyticsSummaryHandler{
		analyticsRepo: analyticsRepo,
		logger:        logger,
	}
}

// Handle executes the analytics summary query. The summary is a pure
// reduction of the collections generated within this call: total tons and
// average quality are computed over the returned (top-N truncated)
// production list, while the top region and top variety are arg-maxes over
// the full pre-truncation generation.
func (h *GetAnalyticsSummaryHandler) Handle(ctx context.Context, query queries.GetAnalyticsSummaryQuery) (*queries.GetAnalyticsSummaryResult, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query: %w", err)
	}

	production, err := h.analyticsRepo.GetProduction(ctx, query.Year)
	if err != nil {
		return nil, err
	}

	sales, err := h.analyticsRepo.GetSales(ctx)
	if err != nil {
		return nil, err
	}

	topRegion := topProducingRegion(production)
	topVariety := topVariety(production)

	top := topNByTons(production, query.TopN)

	var totalTons, totalQuality float64
	for _, rec := range top {
		totalTons += rec.Tons
		totalQuality += rec.QualityScore
	}
	avgQuality := 0.0
	if len(top) > 0 {
		avgQuality = totalQuality / float64(len(top))
	}

	var revenue float64
	for _, s := range sales {
		revenue += s.TotalSales
	}

	result := &queries.GetAnalyticsSummaryResult{
		Summary: models.AnalyticsSummary{
			TotalProductionTons: totalTons,
			AverageQualityScore: avgQuality,
			TotalRevenue:        revenue,
			CountryCount:        len(sales),
			TopProducingRegion:  topRegion,
			TopVariety:          topVariety,
		},
		Production: top,
		Sales:      sales,
	}

	h.logger.Debug("Analytics summary computed",
		zap.Int("year", query.Year),
		zap.Int("productionRecords", len(top)),
		zap.Int("salesRecords", len(sales)),
		zap.String("topRegion", topRegion),
	)

	return result, nil
}

// topNByTons returns a copy of the n highest-tonnage records, ordered
// descending. The input slice is left untouched.
func topNByTons(records []models.ProductionRecord, n int) []models.ProductionRecord {
	sorted := make([]models.ProductionRecord, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Tons > sorted[j].Tons
	})
	if n > len(sorted) {
		n = len(sorted)
	}
	return sorted[:n]
}

// topProducingRegion groups tons by region over the full generation and
// returns the region with the maximum aggregate. Ties resolve to the
// region appearing first in the record order.
func topProducingRegion(records []models.ProductionRecord) string {
	totals := make(map[string]float64, 8)
	for _, rec := range records {
		totals[rec.Region] += rec.Tons
	}

	best := ""
	bestTotal := -1.0
	seen := make(map[string]bool, len(totals))
	for _, rec := range records {
		if seen[rec.Region] {
			continue
		}
		seen[rec.Region] = true
		if totals[rec.Region] > bestTotal {
			best = rec.Region
			bestTotal = totals[rec.Region]
		}
	}
	return best
}

// topVariety returns the most frequent variety across the full generation.
func topVariety(records []models.ProductionRecord) string {
	counts := make(map[string]int, 8)
	for _, rec := range records {
		counts[rec.Variety]++
	}

	best := ""
	bestCount := -1
	seen := make(map[string]bool, len(counts))
	for _, rec := range records {
		if seen[rec.Variety] {
			continue
		}
		seen[rec.Variety] = true
		if counts[rec.Variety] > bestCount {
			best = rec.Variety
			bestCount = counts[rec.Variety]
		}
	}
	return best
}
