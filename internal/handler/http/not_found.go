package http

import (
	"net/http"

	"github.com/MKhiriev/go-user-service/internal/logger"
)

// notFound answers unknown paths and, registered as the MethodNotAllowed
// handler, known paths with an unsupported method. Both get 404 so that the
// existence of a route is not revealed.
func notFound(w http.ResponseWriter, r *http.Request) {
	logger.FromRequest(r).Debug().Str("method", r.Method).Str("path", r.URL.Path).Msg("no route")
	writeMessage(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
}
