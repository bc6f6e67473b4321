package observability

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"bananalytics-backend/application/queries/bus"
)

var (
	// Global metrics instance for singleton pattern
	globalCollector *Collector
	collectorMutex  sync.Mutex
)

// Collector holds all Prometheus metrics for the application. The
// instruments are the only objects shared across concurrent requests;
// increment/observe operations are atomic, so no extra locking is needed.
type Collector struct {
	// Registry for this collector instance
	registry *prometheus.Registry

	// HTTP metrics
	HTTPRequests       *prometheus.CounterVec
	HTTPDuration       *prometheus.HistogramVec
	HTTPActiveRequests *prometheus.GaugeVec

	// Query bus metrics
	QueriesTotal  *prometheus.CounterVec
	QueryDuration *prometheus.HistogramVec

	// Generator metrics
	RecordsGenerated *prometheus.CounterVec
}

// NewCollector creates a new metrics collector with the given namespace
func NewCollector(namespace string) *Collector {
	// Use singleton pattern to avoid duplicate registration in tests
	collectorMutex.Lock()
	defer collectorMutex.Unlock()

	if globalCollector != nil {
		return globalCollector
	}

	registry := prometheus.NewRegistry()

	httpRequests := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	httpDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route", "outcome"},
	)

	httpActiveRequests := prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "http_active_requests",
			Help:      "Number of HTTP requests currently being handled",
		},
		[]string{"route"},
	)

	queriesTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "queries_total",
			Help:      "Total number of dispatched queries",
		},
		[]string{"query", "status"},
	)

	queryDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "query_duration_seconds",
			Help:      "Query handler duration in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"query"},
	)

	recordsGenerated := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "records_generated_total",
			Help:      "Total number of mock records generated, by kind",
		},
		[]string{"kind"},
	)

	registry.MustRegister(
		httpRequests,
		httpDuration,
		httpActiveRequests,
		queriesTotal,
		queryDuration,
		recordsGenerated,
	)

	globalCollector = &Collector{
		registry:           registry,
		HTTPRequests:       httpRequests,
		HTTPDuration:       httpDuration,
		HTTPActiveRequests: httpActiveRequests,
		QueriesTotal:       queriesTotal,
		QueryDuration:      queryDuration,
		RecordsGenerated:   recordsGenerated,
	}

	return globalCollector
}

// ResetForTesting resets the global collector for testing purposes
func ResetForTesting() {
	collectorMutex.Lock()
	defer collectorMutex.Unlock()
	globalCollector = nil
}

// GetRegistry returns the Prometheus registry for this collector
func (c *Collector) GetRegistry() *prometheus.Registry {
	return c.registry
}

// QueryMetrics adapts the Collector to the query bus metrics interface.
type QueryMetrics struct {
	collector *Collector
}

// NewQueryMetrics creates the query bus adapter over a collector.
func NewQueryMetrics(collector *Collector) *QueryMetrics {
	return &QueryMetrics{collector: collector}
}

// StartTimer starts a duration observation for the labeled query.
func (m *QueryMetrics) StartTimer(metric, label string) bus.Timer {
	start := time.Now()
	return timerFunc(func() {
		m.collector.QueryDuration.WithLabelValues(label).Observe(time.Since(start).Seconds())
	})
}

// Increment bumps the labeled query counter. The metric name selects the
// status label: "query_errors" records an error outcome, anything else a
// success.
func (m *QueryMetrics) Increment(metric, label string) {
	status := "success"
	if metric == "query_errors" {
		status = "error"
	}
	m.collector.QueriesTotal.WithLabelValues(label, status).Inc()
}

type timerFunc func()

func (f timerFunc) Stop() { f() }

var _ bus.Metrics = (*QueryMetrics)(nil)
