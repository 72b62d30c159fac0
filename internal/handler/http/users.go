package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/MKhiriev/go-user-service/internal/app"
	"github.com/MKhiriev/go-user-service/internal/logger"
	"github.com/MKhiriev/go-user-service/internal/utils"
	"github.com/MKhiriev/go-user-service/models"
)

// loginTimeLayouts are the accepted formats of loginAfter and loginBefore.
var loginTimeLayouts = []string{time.RFC3339, time.DateOnly}

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var request models.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeMessage(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	result, err := h.services.UserService.CreateUser(r.Context(), request)
	h.writeResult(w, r, result, err)
}

func (h *Handler) getUserByID(w http.ResponseWriter, r *http.Request) {
	id, _ := utils.GetTargetUserIDFromContext(r.Context())

	result, err := h.services.UserService.GetUserByID(r.Context(), id)
	h.writeResult(w, r, result, err)
}

func (h *Handler) getAllUsers(w http.ResponseWriter, r *http.Request) {
	result, err := h.services.UserService.GetAllUsers(r.Context())
	h.writeResult(w, r, result, err)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	id, _ := utils.GetTargetUserIDFromContext(r.Context())

	var update models.UserUpdate
	// an empty body is an update with no fields
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil && !errors.Is(err, io.EOF) {
		log.Err(err).Msg("Invalid JSON was passed")
		writeMessage(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	result, err := h.services.UserService.UpdateUser(r.Context(), id, update)
	h.writeResult(w, r, result, err)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	id, _ := utils.GetTargetUserIDFromContext(r.Context())

	result, err := h.services.UserService.DeleteUser(r.Context(), id)
	h.writeResult(w, r, result, err)
}

func (h *Handler) findUsers(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	filter, err := parseUserFilter(r.URL.Query())
	if err != nil {
		log.Err(err).Msg("invalid user search query")
		writeMessage(w, app.MsgInvalidLoginWindow, http.StatusBadRequest)
		return
	}

	result, err := h.services.UserService.FindUsers(r.Context(), filter)
	h.writeResult(w, r, result, err)
}

func (h *Handler) bulkCreateUsers(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var users []models.BulkUserInput
	if err := json.NewDecoder(r.Body).Decode(&users); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeMessage(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	result, err := h.services.UserService.BulkCreateUsers(r.Context(), users)
	if summary, ok := result.Message.(models.BulkCreateSummary); ok && err == nil {
		h.metrics.RecordBulkCreate(summary.SuccessCount, summary.FailureCount)
	}
	h.writeResult(w, r, result, err)
}

// writeResult answers with the service result, or with a generic 500 when the
// service reported a fault.
func (h *Handler) writeResult(w http.ResponseWriter, r *http.Request, result models.Result, err error) {
	log := logger.FromRequest(r)

	if err != nil {
		log.Err(err).Str("uri", r.RequestURI).Msg("unexpected error occurred")
		_, _ = utils.WriteInternalError(w)
		return
	}

	if _, err = utils.WriteJSON(w, result.Message, result.Code); err != nil {
		log.Err(err).Msg("error writing response")
	}
}

// writeMessage answers with a JSON string body, the same shape the service
// results use for messages.
func writeMessage(w http.ResponseWriter, message string, statusCode int) {
	_, _ = utils.WriteJSON(w, message, statusCode)
}

// parseUserFilter builds a search filter from the query string. Empty
// parameters are not applied. Any non-empty active other than "true" means
// inactive users.
func parseUserFilter(query url.Values) (models.UserFilter, error) {
	var filter models.UserFilter

	if v := query.Get("active"); v != "" {
		active := v == "true"
		filter.Active = &active
	}
	if v := query.Get("name"); v != "" {
		filter.Name = &v
	}

	var err error
	if filter.LoginAfter, err = parseLoginTime(query.Get("loginAfter")); err != nil {
		return models.UserFilter{}, fmt.Errorf("loginAfter: %w", err)
	}
	if filter.LoginBefore, err = parseLoginTime(query.Get("loginBefore")); err != nil {
		return models.UserFilter{}, fmt.Errorf("loginBefore: %w", err)
	}

	return filter, nil
}

func parseLoginTime(v string) (*time.Time, error) {
	if v == "" {
		return nil, nil
	}
	for _, layout := range loginTimeLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrInvalidLoginTime, v)
}
