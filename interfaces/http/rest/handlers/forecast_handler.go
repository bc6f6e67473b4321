package handlers

import (
	"net/http"
	"strconv"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"bananalytics-backend/application/queries"
	querybus "bananalytics-backend/application/queries/bus"
	"bananalytics-backend/domain/models"
	"bananalytics-backend/infrastructure/observability"
)

// defaultForecastDays matches the classic demo: five days of weather.
const defaultForecastDays = 5

// ForecastHandler handles weather forecast HTTP requests
type ForecastHandler struct {
	queryBus  *querybus.QueryBus
	collector *observability.Collector
	logger    *zap.Logger
}

// NewForecastHandler creates a new forecast handler
func NewForecastHandler(queryBus *querybus.QueryBus, collector *observability.Collector, logger *zap.Logger) *ForecastHandler {
	return &ForecastHandler{
		queryBus:  queryBus,
		collector: collector,
		logger:    logger,
	}
}

// GetForecast handles GET /weatherforecast
func (h *ForecastHandler) GetForecast(w http.ResponseWriter, r *http.Request) {
	days := defaultForecastDays
	if raw := r.URL.Query().Get("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			respondError(w, h.logger, http.StatusBadRequest, "days must be an integer")
			return
		}
		days = parsed
	}

	span := trace.SpanFromContext(r.Context())
	span.SetAttributes(attribute.Int("forecast.days", days))
	span.AddEvent("generating_forecast")

	result, err := h.queryBus.Ask(r.Context(), queries.GetForecastQuery{Days: days})
	if err != nil {
		h.logger.Error("Failed to get forecast", zap.Int("days", days), zap.Error(err))
		span.RecordError(err)
		respondQueryError(w, h.logger, err)
		return
	}

	entries := result.([]models.ForecastEntry)
	h.collector.RecordsGenerated.WithLabelValues("forecast").Add(float64(len(entries)))
	span.AddEvent("forecast_generated", trace.WithAttributes(attribute.Int("forecast.entries", len(entries))))

	respondJSON(w, h.logger, http.StatusOK, entries)
}
