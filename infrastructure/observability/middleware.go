package observability

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

// TracingMiddleware adds distributed tracing to HTTP requests: trace
// context propagation, HTTP semantic attributes, and error status on 5xx.
func TracingMiddleware(serviceName string) func(http.Handler) http.Handler {
	tracer := otel.Tracer(serviceName)
	propagator := otel.GetTextMapPropagator()

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Extract trace context from incoming headers for distributed tracing
			ctx := propagator.Extract(r.Context(), propagation.HeaderCarrier(r.Header))

			// The route pattern is only known after routing, so the span
			// starts under the raw path and is renamed on the way out.
			ctx, span := tracer.Start(
				ctx,
				fmt.Sprintf("%s %s", r.Method, r.URL.Path),
				trace.WithSpanKind(trace.SpanKindServer),
				trace.WithAttributes(
					attribute.String("http.method", r.Method),
					attribute.String("http.url", r.URL.String()),
					attribute.String("http.target", r.URL.Path),
					attribute.String("http.host", r.Host),
					attribute.String("http.user_agent", r.UserAgent()),
					attribute.String("http.remote_addr", r.RemoteAddr),
				),
			)
			defer span.End()

			// Wrap response writer to capture status and size
			ww := &responseWriter{ResponseWriter: w, status: 200}

			// Propagate trace context in response headers
			propagator.Inject(ctx, propagation.HeaderCarrier(w.Header()))

			// Add trace ID to response for debugging
			if spanCtx := span.SpanContext(); spanCtx.HasTraceID() {
				w.Header().Set("X-Trace-ID", spanCtx.TraceID().String())
			}

			start := time.Now()
			next.ServeHTTP(ww, r.WithContext(ctx))
			duration := time.Since(start)

			if routePattern := chi.RouteContext(r.Context()).RoutePattern(); routePattern != "" {
				span.SetName(fmt.Sprintf("%s %s", r.Method, routePattern))
				span.SetAttributes(attribute.String("http.route", routePattern))
			}

			span.SetAttributes(
				attribute.Int("http.status_code", ww.status),
				attribute.Int64("http.response_size", ww.bytesWritten),
				attribute.Float64("http.duration_ms", float64(duration.Milliseconds())),
			)

			if ww.status >= 400 {
				span.SetStatus(codes.Error, http.StatusText(ww.status))
				span.RecordError(fmt.Errorf("HTTP %d: %s", ww.status, http.StatusText(ww.status)))
			} else {
				span.SetStatus(codes.Ok, "")
			}

			if duration > 5*time.Second {
				span.AddEvent("slow_request_warning",
					trace.WithAttributes(
						attribute.Float64("duration_seconds", duration.Seconds()),
					),
				)
			}
		})
	}
}

// MetricsMiddleware records the per-route request counter, the active
// request gauge, and the duration histogram. The gauge decrement is
// deferred so it runs on every exit path, including panics unwinding
// through the recoverer.
func MetricsMiddleware(collector *Collector) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			// All routes are static, so the raw path is a stable gauge key
			// even though the matched pattern is not known yet.
			collector.HTTPActiveRequests.WithLabelValues(r.URL.Path).Inc()
			defer collector.HTTPActiveRequests.WithLabelValues(r.URL.Path).Dec()

			ww := &responseWriter{ResponseWriter: w, status: 200}

			next.ServeHTTP(ww, r)

			routePattern := chi.RouteContext(r.Context()).RoutePattern()
			if routePattern == "" {
				routePattern = "unmatched"
			}

			duration := time.Since(start).Seconds()
			status := strconv.Itoa(ww.status)
			outcome := "success"
			if ww.status >= 400 {
				outcome = "error"
			}

			collector.HTTPRequests.WithLabelValues(
				r.Method,
				routePattern,
				status,
			).Inc()

			collector.HTTPDuration.WithLabelValues(
				r.Method,
				routePattern,
				outcome,
			).Observe(duration)
		})
	}
}

// responseWriter wraps http.ResponseWriter to capture response status and size
type responseWriter struct {
	http.ResponseWriter
	status        int
	bytesWritten  int64
	headerWritten bool
}

func (w *responseWriter) WriteHeader(status int) {
	if !w.headerWritten {
		w.status = status
		w.headerWritten = true
		w.ResponseWriter.WriteHeader(status)
	}
}

func (w *responseWriter) Write(b []byte) (int, error) {
	if !w.headerWritten {
		w.WriteHeader(http.StatusOK)
	}
	n, err := w.ResponseWriter.Write(b)
	w.bytesWritten += int64(n)
	return n, err
}
