// Package metrics records Prometheus metrics for intercepted requests.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	interceptedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mockapi_requests_total",
			Help: "Total number of intercepted requests",
		},
		[]string{"method", "path", "status"},
	)

	interceptedDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "mockapi_request_duration_seconds",
			Help:    "In-memory handling duration in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		},
		[]string{"method", "path"},
	)
)

// responseWriter wraps http.ResponseWriter to capture the status code.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// Middleware records a counter and duration sample per handled request.
// Paths are reduced to the chi route pattern when one matched, so the
// repeated-segment and fallback routes don't explode label cardinality.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrapped := &responseWriter{w, http.StatusOK}
		next.ServeHTTP(wrapped, r)

		path := r.URL.Path
		if routeCtx := chi.RouteContext(r.Context()); routeCtx != nil {
			if pattern := routeCtx.RoutePattern(); pattern != "" {
				path = pattern
			}
		}

		interceptedTotal.WithLabelValues(r.Method, path, strconv.Itoa(wrapped.statusCode)).Inc()
		interceptedDuration.WithLabelValues(r.Method, path).Observe(time.Since(start).Seconds())
	})
}
