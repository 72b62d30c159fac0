package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

const unknownRoute = "unknown"

// withMetrics records the status and latency of every request, labelled by
// the matched chi route pattern so that /users/{id} is one series.
func (h *Handler) withMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		h.metrics.RecordRequest(routePattern(r), rw.status, time.Since(start))
	})
}

func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return unknownRoute
}
