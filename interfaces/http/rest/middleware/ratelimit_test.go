package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"bananalytics-backend/pkg/ratelimit"
)

func TestRateLimit_AllowsThenRejects(t *testing.T) {
	limiter := ratelimit.NewLimiter(1, 2)
	handler := RateLimit("api", limiter, zap.NewNop())(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))

	send := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/weatherforecast", nil)
		req.RemoteAddr = "10.0.0.1:51234"
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec
	}

	assert.Equal(t, http.StatusOK, send().Code)
	assert.Equal(t, http.StatusOK, send().Code)

	rec := send()
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "1", rec.Header().Get("Retry-After"))
	assert.JSONEq(t, `{"error":true,"message":"rate limit exceeded","code":429}`, rec.Body.String())
}

func TestRateLimit_PerClientBuckets(t *testing.T) {
	limiter := ratelimit.NewLimiter(1, 1)
	handler := RateLimit("api", limiter, zap.NewNop())(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))

	send := func(addr string) int {
		req := httptest.NewRequest(http.MethodGet, "/weatherforecast", nil)
		req.RemoteAddr = addr
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, send("10.0.0.1:1000"))
	assert.Equal(t, http.StatusTooManyRequests, send("10.0.0.1:1001"), "same host, different port shares the bucket")
	assert.Equal(t, http.StatusOK, send("10.0.0.2:1000"))
}
