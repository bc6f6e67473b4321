package bus

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubQuery struct {
	validateErr error
}

func (q stubQuery) Validate() error { return q.validateErr }

type otherQuery struct{}

func (q otherQuery) Validate() error { return nil }

func TestQueryBus_Ask_DispatchesToHandler(t *testing.T) {
	// Arrange
	bus := NewQueryBus()
	called := false
	handler := QueryHandlerFunc(func(ctx context.Context, query Query) (interface{}, error) {
		called = true
		return "result", nil
	})
	require.NoError(t, bus.Register(stubQuery{}, handler))

	// Act
	result, err := bus.Ask(context.Background(), stubQuery{})

	// Assert
	require.NoError(t, err)
	assert.True(t, called)
	assert.Equal(t, "result", result)
}

func TestQueryBus_Ask_ValidationShortCircuits(t *testing.T) {
	// Arrange
	bus := NewQueryBus()
	called := false
	handler := QueryHandlerFunc(func(ctx context.Context, query Query) (interface{}, error) {
		called = true
		return nil, nil
	})
	require.NoError(t, bus.Register(stubQuery{}, handler))

	validateErr := errors.New("days out of range")

	// Act
	result, err := bus.Ask(context.Background(), stubQuery{validateErr: validateErr})

	// Assert
	assert.ErrorIs(t, err, validateErr)
	assert.Nil(t, result)
	assert.False(t, called, "handler must not run for an invalid query")
}

func TestQueryBus_Ask_UnknownQuery(t *testing.T) {
	bus := NewQueryBus()

	result, err := bus.Ask(context.Background(), otherQuery{})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no handler registered")
	assert.Nil(t, result)
}

func TestQueryBus_Register_Duplicate(t *testing.T) {
	bus := NewQueryBus()
	handler := QueryHandlerFunc(func(ctx context.Context, query Query) (interface{}, error) {
		return nil, nil
	})

	require.NoError(t, bus.Register(stubQuery{}, handler))
	err := bus.Register(stubQuery{}, handler)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")
}

type recordingMetrics struct {
	increments map[string][]string
	timers     []string
	stops      int
}

func newRecordingMetrics() *recordingMetrics {
	return &recordingMetrics{increments: make(map[string][]string)}
}

func (m *recordingMetrics) StartTimer(metric, label string) Timer {
	m.timers = append(m.timers, metric+"/"+label)
	return timerFunc(func() { m.stops++ })
}

func (m *recordingMetrics) Increment(metric, label string) {
	m.increments[metric] = append(m.increments[metric], label)
}

type timerFunc func()

func (f timerFunc) Stop() { f() }

func TestMetricsMiddleware_Wrap_Success(t *testing.T) {
	// Arrange
	metrics := newRecordingMetrics()
	mw := NewMetricsMiddleware(metrics)
	handler := mw.Wrap(QueryHandlerFunc(func(ctx context.Context, query Query) (interface{}, error) {
		return 42, nil
	}))

	// Act
	result, err := handler.Handle(context.Background(), stubQuery{})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 42, result)
	assert.Equal(t, []string{"stubQuery"}, metrics.increments["query_success"])
	assert.Empty(t, metrics.increments["query_errors"])
	assert.Equal(t, 1, metrics.stops)
}

func TestMetricsMiddleware_Wrap_Error(t *testing.T) {
	// Arrange
	metrics := newRecordingMetrics()
	mw := NewMetricsMiddleware(metrics)
	handlerErr := errors.New("downstream failure")
	handler := mw.Wrap(QueryHandlerFunc(func(ctx context.Context, query Query) (interface{}, error) {
		return nil, handlerErr
	}))

	// Act
	result, err := handler.Handle(context.Background(), stubQuery{})

	// Assert
	assert.ErrorIs(t, err, handlerErr)
	assert.Nil(t, result)
	assert.Equal(t, []string{"stubQuery"}, metrics.increments["query_errors"])
	assert.Empty(t, metrics.increments["query_success"])
	assert.Equal(t, 1, metrics.stops)
}
