package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/time/rate"

	"github.com/atlasbanco/website/internal/logger"
	"github.com/atlasbanco/website/internal/metrics"
)

const healthPath = "/health"

// RequestLogger writes one slog record per request. Health probes are skipped.
func RequestLogger(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == healthPath {
				next.ServeHTTP(w, r)
				return
			}

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			defer func() {
				status := ww.Status()
				if status == 0 {
					status = http.StatusOK
				}

				attrs := []any{
					slog.String("method", r.Method),
					slog.String("uri", r.RequestURI),
					slog.Int("status", status),
					slog.Duration("latency", time.Since(start)),
					slog.Int("bytes", ww.BytesWritten()),
					slog.String("request_id", middleware.GetReqID(r.Context())),
				}
				if status >= http.StatusInternalServerError {
					log.Error("request failed", attrs...)
				} else {
					log.Info("request", attrs...)
				}
			}()

			next.ServeHTTP(ww, r)
		})
	}
}

// RateLimit rejects requests with 429 once the shared token bucket is empty.
func RateLimit(limiter *rate.Limiter, m *metrics.Metrics, log *slog.Logger) func(http.Handler) http.Handler {
	log = log.With(logger.Scope("ratelimit"))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == healthPath || limiter.Allow() {
				next.ServeHTTP(w, r)
				return
			}

			m.RateLimited.Inc()
			log.Debug("request rate limited",
				slog.String("uri", r.RequestURI),
				slog.String("remote_addr", r.RemoteAddr),
			)

			w.Header().Set("Retry-After", "1")
			http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
		})
	}
}
