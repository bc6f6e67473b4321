package handlers

import (
	"math/rand/v2"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	apperrors "bananalytics-backend/pkg/errors"
)

// DiagnosticsHandler serves the telemetry exercise endpoints: a static
// service descriptor, a trace probe with an artificial delay, and a
// deliberate failure for verifying error telemetry end to end.
type DiagnosticsHandler struct {
	serviceName    string
	serviceVersion string
	environment    string
	logger         *zap.Logger
}

// NewDiagnosticsHandler creates a new diagnostics handler
func NewDiagnosticsHandler(serviceName, serviceVersion, environment string, logger *zap.Logger) *DiagnosticsHandler {
	return &DiagnosticsHandler{
		serviceName:    serviceName,
		serviceVersion: serviceVersion,
		environment:    environment,
		logger:         logger,
	}
}

// CustomMetrics handles GET /api/metrics/custom
func (h *DiagnosticsHandler) CustomMetrics(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, h.logger, http.StatusOK, map[string]string{
		"service":     h.serviceName,
		"version":     h.serviceVersion,
		"environment": h.environment,
	})
}

// TraceTest handles GET /api/trace/test. The artificial delay exists only
// so the resulting span has a visible duration; it is cancellable through
// the request context.
func (h *DiagnosticsHandler) TraceTest(w http.ResponseWriter, r *http.Request) {
	span := trace.SpanFromContext(r.Context())
	probeID := uuid.NewString()
	span.SetAttributes(attribute.String("trace_test.probe_id", probeID))
	span.AddEvent("trace_test_started")

	delay := time.Duration(50+rand.IntN(150)) * time.Millisecond
	select {
	case <-r.Context().Done():
		respondError(w, h.logger, http.StatusRequestTimeout, "request cancelled")
		return
	case <-time.After(delay):
	}

	span.AddEvent("trace_test_completed")

	spanCtx := span.SpanContext()
	respondJSON(w, h.logger, http.StatusOK, map[string]string{
		"message": "trace test completed",
		"probeId": probeID,
		"traceId": spanCtx.TraceID().String(),
		"spanId":  spanCtx.SpanID().String(),
	})
}

// ErrorTest handles GET /api/error/test. It always faults; the error is
// logged once with full context, recorded on the span, and translated to
// the standard error envelope.
func (h *DiagnosticsHandler) ErrorTest(w http.ResponseWriter, r *http.Request) {
	err := apperrors.NewInternalError("deliberate test failure")

	span := trace.SpanFromContext(r.Context())
	span.RecordError(err)

	h.logger.Error("Deliberate test failure triggered",
		zap.String("path", r.URL.Path),
		zap.Error(err),
	)

	respondError(w, h.logger, apperrors.HTTPStatusOf(err), err.Error())
}
