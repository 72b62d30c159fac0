package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-user-service/internal/app"
	"github.com/MKhiriev/go-user-service/internal/service"
)

type errorResponse struct {
	status  int
	message string
}

var authErrorMap = map[error]errorResponse{
	service.ErrInvalidDataProvided:     {http.StatusBadRequest, app.MsgInvalidDataProvided},
	service.ErrWrongCredentials:        {http.StatusUnauthorized, app.MsgInvalidLoginPassword},
	service.ErrTokenIsExpiredOrInvalid: {http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid},
}

// responseFromError maps an auth service error to the response sent to the
// client. Unknown errors become a 500.
func responseFromError(err error) errorResponse {
	for target, resp := range authErrorMap {
		if errors.Is(err, target) {
			return resp
		}
	}
	return errorResponse{http.StatusInternalServerError, app.MsgInternalServerError}
}
