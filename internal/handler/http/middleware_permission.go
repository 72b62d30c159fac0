package http

import (
	"net/http"

	"github.com/MKhiriev/go-user-service/internal/app"
	"github.com/MKhiriev/go-user-service/internal/logger"
	"github.com/MKhiriev/go-user-service/internal/utils"
)

// permission lets through only callers that are active users. It must run
// after auth.
func (h *Handler) permission(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		callerID, ok := utils.GetUserIDFromContext(r.Context())
		if !ok {
			log.Error().Msg("no user ID in context")
			writeMessage(w, app.MsgAccessDenied, http.StatusForbidden)
			return
		}

		active, err := h.services.UserService.IsActiveUser(r.Context(), callerID)
		if err != nil {
			log.Err(err).Int64("caller_id", callerID).Msg("permission check failed")
			_, _ = utils.WriteInternalError(w)
			return
		}
		if !active {
			log.Warn().Int64("caller_id", callerID).Msg("caller is not an active user")
			writeMessage(w, app.MsgAccessDenied, http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}
