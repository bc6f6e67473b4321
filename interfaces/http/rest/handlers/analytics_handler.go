package handlers

import (
	"net/http"
	"strconv"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"bananalytics-backend/application/queries"
	querybus "bananalytics-backend/application/queries/bus"
	"bananalytics-backend/domain/models"
	"bananalytics-backend/infrastructure/observability"
)

// defaultTopN bounds the production list returned with the summary.
const defaultTopN = 10

// AnalyticsHandler handles banana analytics HTTP requests
type AnalyticsHandler struct {
	queryBus  *querybus.QueryBus
	collector *observability.Collector
	logger    *zap.Logger
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(queryBus *querybus.QueryBus, collector *observability.Collector, logger *zap.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{
		queryBus:  queryBus,
		collector: collector,
		logger:    logger,
	}
}

// GetSummary handles GET /api/analytics/summary
func (h *AnalyticsHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	year := intParam(r, "year", time.Now().Year())
	topN := intParam(r, "top", defaultTopN)

	span := trace.SpanFromContext(r.Context())
	span.SetAttributes(
		attribute.Int("analytics.year", year),
		attribute.Int("analytics.top_n", topN),
	)
	span.AddEvent("computing_analytics_summary")

	result, err := h.queryBus.Ask(r.Context(), queries.GetAnalyticsSummaryQuery{Year: year, TopN: topN})
	if err != nil {
		h.logger.Error("Failed to get analytics summary", zap.Int("year", year), zap.Error(err))
		span.RecordError(err)
		respondQueryError(w, h.logger, err)
		return
	}

	summary := result.(*queries.GetAnalyticsSummaryResult)
	h.collector.RecordsGenerated.WithLabelValues("production").Add(float64(len(summary.Production)))
	h.collector.RecordsGenerated.WithLabelValues("sales").Add(float64(len(summary.Sales)))
	span.AddEvent("analytics_summary_computed", trace.WithAttributes(
		attribute.String("analytics.top_region", summary.Summary.TopProducingRegion),
		attribute.Int("analytics.countries", summary.Summary.CountryCount),
	))

	respondJSON(w, h.logger, http.StatusOK, summary)
}

// GetProduction handles GET /api/analytics/production
func (h *AnalyticsHandler) GetProduction(w http.ResponseWriter, r *http.Request) {
	year := intParam(r, "year", time.Now().Year())
	region := r.URL.Query().Get("region")

	span := trace.SpanFromContext(r.Context())
	span.SetAttributes(
		attribute.Int("analytics.year", year),
		attribute.String("analytics.region", region),
	)
	span.AddEvent("generating_production")

	result, err := h.queryBus.Ask(r.Context(), queries.GetProductionByYearQuery{Year: year, Region: region})
	if err != nil {
		h.logger.Error("Failed to get production",
			zap.Int("year", year),
			zap.String("region", region),
			zap.Error(err),
		)
		span.RecordError(err)
		respondQueryError(w, h.logger, err)
		return
	}

	records := result.([]models.ProductionRecord)
	h.collector.RecordsGenerated.WithLabelValues("production").Add(float64(len(records)))
	span.AddEvent("production_generated", trace.WithAttributes(attribute.Int("analytics.records", len(records))))

	respondJSON(w, h.logger, http.StatusOK, records)
}

// GetSales handles GET /api/analytics/sales
func (h *AnalyticsHandler) GetSales(w http.ResponseWriter, r *http.Request) {
	span := trace.SpanFromContext(r.Context())
	span.AddEvent("generating_sales")

	result, err := h.queryBus.Ask(r.Context(), queries.GetSalesByCountryQuery{})
	if err != nil {
		h.logger.Error("Failed to get sales", zap.Error(err))
		span.RecordError(err)
		respondQueryError(w, h.logger, err)
		return
	}

	records := result.([]models.SalesRecord)
	h.collector.RecordsGenerated.WithLabelValues("sales").Add(float64(len(records)))
	span.AddEvent("sales_generated", trace.WithAttributes(attribute.Int("analytics.records", len(records))))

	respondJSON(w, h.logger, http.StatusOK, records)
}

// intParam parses an integer query parameter with a default.
func intParam(r *http.Request, name string, defaultValue int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return defaultValue
	}
	if parsed, err := strconv.Atoi(raw); err == nil {
		return parsed
	}
	return defaultValue
}
