package health

import "context"

// TagReady marks checks that gate readiness. Liveness uses no tags at all;
// it runs with the None predicate and therefore always reports Healthy.
const TagReady = "ready"

// NewSelfCheck reports the process itself. It can never fail; it exists so
// /health always has at least one entry.
func NewSelfCheck() Check {
	return NewCheck("self", nil, func(ctx context.Context) Result {
		return Result{Status: StatusHealthy, Description: "process is running"}
	})
}

// NewDataSourceCheck reports the configured analytics data source. Mock
// mode is always healthy. Remote mode degrades when the backend is not
// ready (missing URL or open circuit breaker); the service still serves
// mock-independent endpoints, so this is Degraded rather than Unhealthy.
func NewDataSourceCheck(mode string, remoteReady func() bool) Check {
	return NewCheck("data-source", []string{TagReady}, func(ctx context.Context) Result {
		if mode != "remote" {
			return Result{Status: StatusHealthy, Description: "mock data source"}
		}
		if remoteReady == nil || !remoteReady() {
			return Result{Status: StatusDegraded, Description: "remote analytics backend not ready"}
		}
		return Result{Status: StatusHealthy, Description: "remote analytics backend reachable"}
	})
}

// NewTelemetryCheck reports trace exporter configuration. A disabled
// exporter is healthy (telemetry is optional); enabled without an endpoint
// is a configuration mistake and reports Degraded.
func NewTelemetryCheck(tracingEnabled bool, endpoint string) Check {
	return NewCheck("telemetry", []string{TagReady}, func(ctx context.Context) Result {
		if !tracingEnabled {
			return Result{Status: StatusHealthy, Description: "tracing disabled"}
		}
		if endpoint == "" {
			return Result{Status: StatusDegraded, Description: "tracing enabled but no OTLP endpoint configured"}
		}
		return Result{Status: StatusHealthy, Description: "exporting to " + endpoint}
	})
}
