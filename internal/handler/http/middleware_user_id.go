// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-user-service/internal/app"
	"github.com/MKhiriev/go-user-service/internal/logger"
	"github.com/MKhiriev/go-user-service/internal/utils"
	"github.com/go-chi/chi/v5"
)

const digits = "0123456789"

// numericID rejects requests whose {id} path parameter is not a positive
// base-10 integer and stores the parsed value under
// [utils.TargetUserIDCtxKey].
func (h *Handler) numericID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := chi.URLParam(r, "id")

		id, ok := parseUserID(raw)
		if !ok {
			logger.FromRequest(r).Debug().Str("id", raw).Msg("invalid id")
			writeMessage(w, app.MsgInvalidID, http.StatusBadRequest)
			return
		}

		ctx := context.WithValue(r.Context(), utils.TargetUserIDCtxKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// userExists answers 404 when no user, active or soft-deleted, has the
// requested ID. It must run after numericID.
func (h *Handler) userExists(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		id, ok := utils.GetTargetUserIDFromContext(r.Context())
		if !ok {
			writeMessage(w, app.MsgInvalidID, http.StatusBadRequest)
			return
		}

		exists, err := h.services.UserService.UserExists(r.Context(), id)
		if err != nil {
			log.Err(err).Int64("id", id).Msg("user existence check failed")
			_, _ = utils.WriteInternalError(w)
			return
		}
		if !exists {
			writeMessage(w, app.MsgUserNotFound, http.StatusNotFound)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func parseUserID(raw string) (int64, bool) {
	if raw == "" || strings.TrimLeft(raw, digits) != "" {
		return 0, false
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}

	return id, true
}
