package di

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bananalytics-backend/application/queries"
	"bananalytics-backend/infrastructure/config"
	"bananalytics-backend/infrastructure/observability"
)

func testConfig() *config.Config {
	return &config.Config{
		ServerAddress:    ":8080",
		Environment:      "development",
		ServiceName:      "bananalytics",
		ServiceVersion:   "1.0.0",
		DataSource:       config.DataSourceMock,
		MetricsNamespace: "test",
		RateLimitRPS:     10,
		RateLimitBurst:   20,
	}
}

func TestInitializeContainer(t *testing.T) {
	observability.ResetForTesting()

	container, err := InitializeContainer(testConfig())

	require.NoError(t, err)
	require.NotNil(t, container)
	assert.NotNil(t, container.Logger)
	assert.NotNil(t, container.Collector)
	assert.NotNil(t, container.HealthRegistry)
	assert.NotNil(t, container.QueryBus)
	assert.NotNil(t, container.APILimiter)
}

func TestInitializeContainer_AllQueriesRegistered(t *testing.T) {
	observability.ResetForTesting()

	container, err := InitializeContainer(testConfig())
	require.NoError(t, err)

	ctx := context.Background()

	_, err = container.QueryBus.Ask(ctx, queries.GetForecastQuery{Days: 1})
	assert.NoError(t, err)

	_, err = container.QueryBus.Ask(ctx, queries.GetAnalyticsSummaryQuery{Year: 2025, TopN: 5})
	assert.NoError(t, err)

	_, err = container.QueryBus.Ask(ctx, queries.GetProductionByYearQuery{Year: 2025})
	assert.NoError(t, err)

	_, err = container.QueryBus.Ask(ctx, queries.GetSalesByCountryQuery{})
	assert.NoError(t, err)
}

func TestProvideDataSource_RemoteWithoutURL(t *testing.T) {
	cfg := testConfig()
	cfg.DataSource = config.DataSourceRemote

	container, err := InitializeContainer(cfg)

	assert.Error(t, err)
	assert.Nil(t, container)
}
