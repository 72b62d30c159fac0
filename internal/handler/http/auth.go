package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-user-service/internal/app"
	"github.com/MKhiriev/go-user-service/internal/logger"
	"github.com/MKhiriev/go-user-service/internal/utils"
	"github.com/MKhiriev/go-user-service/models"
)

// login exchanges credentials for a JWT. The token is returned both in the
// body and in the Authorization response header.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeMessage(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	token, err := h.services.AuthService.Login(r.Context(), credentials)
	if err != nil {
		resp := responseFromError(err)
		if resp.status == http.StatusInternalServerError {
			log.Err(err).Msg("unexpected error occurred during user login")
			_, _ = utils.WriteInternalError(w)
			return
		}
		log.Warn().Err(err).Str("email", credentials.Email).Msg("login rejected")
		writeMessage(w, resp.message, resp.status)
		return
	}

	log.Debug().Int64("id", token.UserID).Msg("user successfully logged in")

	w.Header().Set("Authorization", fmt.Sprintf("%s %s", bearerScheme, token.SignedString))
	if _, err = utils.WriteJSON(w, token, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing response")
	}
}
