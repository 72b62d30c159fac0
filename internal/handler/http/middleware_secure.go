package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-user-service/internal/logger"
	"github.com/go-chi/httprate"
	"github.com/unrolled/secure"
)

// withSecureHeaders sets the standard hardening headers on every response.
func (h *Handler) withSecureHeaders(next http.Handler) http.Handler {
	return secure.New(secure.Options{
		FrameDeny:             true,
		ContentTypeNosniff:    true,
		BrowserXssFilter:      true,
		ReferrerPolicy:        "no-referrer",
		ContentSecurityPolicy: "default-src 'none'",
	}).Handler(next)
}

// withRateLimit limits requests per client IP to rateLimit a minute.
// A zero limit disables it.
func (h *Handler) withRateLimit(next http.Handler) http.Handler {
	if h.rateLimit <= 0 {
		return next
	}

	return httprate.Limit(h.rateLimit, time.Minute,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			logger.FromRequest(r).Warn().Str("remote_addr", r.RemoteAddr).Msg("rate limit exceeded")
			writeMessage(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
		}),
	)(next)
}
