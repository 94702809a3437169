package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/heartmarshall/fastslide-backend/internal/metrics"
)

// Metrics records request count and latency per route pattern. It must wrap
// the ServeMux directly: the mux writes the matched pattern into the request
// it is handed, and the label is read back from there.
func Metrics() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(sw, r)

			route := r.Pattern
			if route == "" {
				route = "unmatched"
			}
			metrics.RequestsTotal.WithLabelValues(r.Method, route, strconv.Itoa(sw.status)).Inc()
			metrics.RequestDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
		})
	}
}
