package remote

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"bananalytics-backend/domain/models"
	apperrors "bananalytics-backend/pkg/errors"
)

func TestNewAnalyticsRepository_MissingURL(t *testing.T) {
	repo, err := NewAnalyticsRepository("", zap.NewNop())

	assert.Nil(t, repo)
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrorTypeNotImplemented, apperrors.TypeOf(err))
	assert.Equal(t, http.StatusNotImplemented, apperrors.HTTPStatusOf(err))
}

func TestAnalyticsRepository_GetProduction(t *testing.T) {
	records := []models.ProductionRecord{
		{Region: "Ecuador", Year: 2025, Month: 1, Tons: 4200, QualityScore: 4.1, Variety: "Cavendish", ExportPercentage: 55},
	}

	var gotYear string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/production", r.URL.Path)
		gotYear = r.URL.Query().Get("year")
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(records)
	}))
	defer server.Close()

	repo, err := NewAnalyticsRepository(server.URL, zap.NewNop())
	require.NoError(t, err)

	got, err := repo.GetProduction(context.Background(), 2025)

	require.NoError(t, err)
	assert.Equal(t, records, got)
	assert.Equal(t, "2025", gotYear)
	assert.True(t, repo.Ready())
}

func TestAnalyticsRepository_GetSales(t *testing.T) {
	records := []models.SalesRecord{
		{Country: "Germany", TotalSales: 60_000, Units: 30_000, AveragePrice: 2.0, MarketShare: 12},
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/sales", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(records)
	}))
	defer server.Close()

	repo, err := NewAnalyticsRepository(server.URL, zap.NewNop())
	require.NoError(t, err)

	got, err := repo.GetSales(context.Background())

	require.NoError(t, err)
	assert.Equal(t, records, got)
}

func TestAnalyticsRepository_BackendError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	repo, err := NewAnalyticsRepository(server.URL, zap.NewNop())
	require.NoError(t, err)

	got, err := repo.GetSales(context.Background())

	assert.Error(t, err)
	assert.Nil(t, got)
}

func TestAnalyticsRepository_BreakerOpensAfterFailures(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer server.Close()

	repo, err := NewAnalyticsRepository(server.URL, zap.NewNop())
	require.NoError(t, err)

	// Five consecutive failures trip the breaker.
	for i := 0; i < 5; i++ {
		_, err := repo.GetSales(context.Background())
		require.Error(t, err)
	}

	assert.False(t, repo.Ready())

	_, err = repo.GetSales(context.Background())
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrorTypeUnavailable, apperrors.TypeOf(err))
	assert.Equal(t, http.StatusServiceUnavailable, apperrors.HTTPStatusOf(err))
}
