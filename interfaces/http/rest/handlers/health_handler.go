package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"bananalytics-backend/infrastructure/health"
)

// HealthHandler serves the health check endpoints. Every request re-runs
// the selected checks synchronously; nothing is cached between calls.
type HealthHandler struct {
	registry *health.Registry
	logger   *zap.Logger
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(registry *health.Registry, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{
		registry: registry,
		logger:   logger,
	}
}

// Health handles GET /health: all registered checks.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	h.respond(w, h.registry.Run(r.Context(), health.All))
}

// Ready handles GET /health/ready: checks tagged ready.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	h.respond(w, h.registry.Run(r.Context(), health.WithTag(health.TagReady)))
}

// Live handles GET /health/live. The None predicate excludes every check,
// so liveness reports Healthy regardless of dependency state.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	h.respond(w, h.registry.Run(r.Context(), health.None))
}

func (h *HealthHandler) respond(w http.ResponseWriter, report health.Report) {
	status := http.StatusOK
	if report.Status == health.StatusUnhealthy {
		status = http.StatusServiceUnavailable
	}
	respondJSON(w, h.logger, status, report)
}
