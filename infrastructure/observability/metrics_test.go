package observability

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCollector_Singleton(t *testing.T) {
	ResetForTesting()

	first := NewCollector("test")
	second := NewCollector("other")

	assert.Same(t, first, second)
}

func TestCollector_InstrumentsRegistered(t *testing.T) {
	ResetForTesting()
	collector := NewCollector("test")

	collector.HTTPRequests.WithLabelValues("GET", "/weatherforecast", "200").Inc()
	collector.RecordsGenerated.WithLabelValues("forecast").Add(5)

	families, err := collector.GetRegistry().Gather()
	require.NoError(t, err)

	names := make(map[string]bool)
	for _, mf := range families {
		names[mf.GetName()] = true
	}
	assert.True(t, names["test_http_requests_total"])
	assert.True(t, names["test_records_generated_total"])

	assert.Equal(t, 5.0, testutil.ToFloat64(collector.RecordsGenerated.WithLabelValues("forecast")))
}

func TestQueryMetrics_Increment(t *testing.T) {
	ResetForTesting()
	collector := NewCollector("test")
	metrics := NewQueryMetrics(collector)

	metrics.Increment("query_success", "GetForecastQuery")
	metrics.Increment("query_success", "GetForecastQuery")
	metrics.Increment("query_errors", "GetForecastQuery")

	assert.Equal(t, 2.0, testutil.ToFloat64(collector.QueriesTotal.WithLabelValues("GetForecastQuery", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(collector.QueriesTotal.WithLabelValues("GetForecastQuery", "error")))
}

func TestQueryMetrics_Timer(t *testing.T) {
	ResetForTesting()
	collector := NewCollector("test")
	metrics := NewQueryMetrics(collector)

	timer := metrics.StartTimer("query_duration", "GetSalesByCountryQuery")
	timer.Stop()

	count := testutil.CollectAndCount(collector.QueryDuration, "test_query_duration_seconds")
	assert.Equal(t, 1, count)
}
