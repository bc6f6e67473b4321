package middleware

import (
	"net"
	"net/http"

	"go.uber.org/zap"

	"bananalytics-backend/pkg/ratelimit"
)

// RateLimit enforces a per-client-IP limit under a named policy. Rejected
// requests get 429 with a Retry-After hint; nothing else about the request
// is inspected.
func RateLimit(policy string, limiter *ratelimit.Limiter, logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := clientIP(r)

			if !limiter.Allow(key) {
				logger.Warn("Request rate limited",
					zap.String("policy", policy),
					zap.String("client", key),
					zap.String("path", r.URL.Path),
				)
				w.Header().Set("Retry-After", "1")
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				w.Write([]byte(`{"error":true,"message":"rate limit exceeded","code":429}`))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// clientIP prefers the RealIP middleware's rewrite of RemoteAddr and falls
// back to the raw address when it has no port.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
