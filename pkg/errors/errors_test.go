package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstructors(t *testing.T) {
	tests := []struct {
		name    string
		err     *AppError
		errType ErrorType
		status  int
	}{
		{"validation", NewValidationError("bad input"), ErrorTypeValidation, http.StatusBadRequest},
		{"not found", NewNotFoundError("missing"), ErrorTypeNotFound, http.StatusNotFound},
		{"internal", NewInternalError("boom"), ErrorTypeInternal, http.StatusInternalServerError},
		{"rate limit", NewRateLimitError("slow down"), ErrorTypeRateLimit, http.StatusTooManyRequests},
		{"unavailable", NewUnavailableError("breaker open"), ErrorTypeUnavailable, http.StatusServiceUnavailable},
		{"not implemented", NewNotImplementedError("no backend"), ErrorTypeNotImplemented, http.StatusNotImplemented},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.errType, tt.err.Type)
			assert.Equal(t, tt.status, tt.err.HTTPStatus)
			assert.Equal(t, tt.status, HTTPStatusOf(tt.err))
			assert.Equal(t, tt.errType, TypeOf(tt.err))
		})
	}
}

func TestAppError_WithCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewUnavailableError("backend down").WithCause(cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "connection refused")
	assert.Contains(t, err.Error(), "UNAVAILABLE")
}

func TestHTTPStatusOf_WrappedError(t *testing.T) {
	err := fmt.Errorf("query failed: %w", NewNotImplementedError("no backend"))

	assert.Equal(t, http.StatusNotImplemented, HTTPStatusOf(err))
	assert.Equal(t, ErrorTypeNotImplemented, TypeOf(err))
}

func TestHTTPStatusOf_PlainError(t *testing.T) {
	err := errors.New("something broke")

	assert.Equal(t, http.StatusInternalServerError, HTTPStatusOf(err))
	assert.Equal(t, ErrorTypeInternal, TypeOf(err))
}
