package middlewares

//go:generate mockgen -source=ratelimit.go -destination=ratelimit_mock.go -package=middlewares

import (
	"context"
	"net"
	"net/http"
	"strconv"

	"github.com/kebabmane/toDo/internal/logger"
	"github.com/kebabmane/toDo/internal/metrics"
)

// Limiter counts requests of a client within the current window.
type Limiter interface {
	Hit(ctx context.Context, clientKey string) (int64, error)
}

// RateLimitMiddleware rejects clients exceeding limit requests per window with 429.
// OPTIONS requests are exempt, and requests pass through when the limiter fails.
func RateLimitMiddleware(limiter Limiter, limit int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}

			client := clientKey(r)
			count, err := limiter.Hit(r.Context(), client)
			if err != nil {
				logger.Log.Warnw("rate limiter unavailable, allowing request", "client", client, "error", err)
				next.ServeHTTP(w, r)
				return
			}

			remaining := limit - count
			if remaining < 0 {
				remaining = 0
			}
			w.Header().Set("X-RateLimit-Limit", strconv.FormatInt(limit, 10))
			w.Header().Set("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))

			if count > limit {
				metrics.RecordRateLimitDrop()
				logger.Log.Warnw("rate limit exceeded", "client", client, "count", count)
				writeError(w, http.StatusTooManyRequests, "Too many requests")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
