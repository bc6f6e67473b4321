package handlers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"bananalytics-backend/application/queries"
)

func TestGetProductionHandler_Handle_NoFilter(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockRepo := new(MockAnalyticsRepository)
	mockRepo.On("GetProduction", ctx, 2025).Return(productionFixture(), nil)

	handler := NewGetProductionHandler(mockRepo, zap.NewNop())

	// Act
	records, err := handler.Handle(ctx, queries.GetProductionByYearQuery{Year: 2025})

	// Assert
	require.NoError(t, err)
	assert.Len(t, records, 4)
	mockRepo.AssertExpectations(t)
}

func TestGetProductionHandler_Handle_RegionFilterCaseInsensitive(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockRepo := new(MockAnalyticsRepository)
	mockRepo.On("GetProduction", ctx, 2025).Return(productionFixture(), nil)

	handler := NewGetProductionHandler(mockRepo, zap.NewNop())

	// Act
	records, err := handler.Handle(ctx, queries.GetProductionByYearQuery{Year: 2025, Region: "ecuador"})

	// Assert
	require.NoError(t, err)
	require.Len(t, records, 2)
	for _, rec := range records {
		assert.Equal(t, "Ecuador", rec.Region)
	}
}

func TestGetProductionHandler_Handle_UnknownRegion(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockRepo := new(MockAnalyticsRepository)
	mockRepo.On("GetProduction", ctx, 2025).Return(productionFixture(), nil)

	handler := NewGetProductionHandler(mockRepo, zap.NewNop())

	// Act
	records, err := handler.Handle(ctx, queries.GetProductionByYearQuery{Year: 2025, Region: "Atlantis"})

	// Assert
	require.NoError(t, err)
	assert.Empty(t, records)
}
