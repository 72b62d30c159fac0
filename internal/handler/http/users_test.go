// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-user-service/internal/app"
	"github.com/MKhiriev/go-user-service/internal/utils"
	"github.com/MKhiriev/go-user-service/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requestWithTargetID(method, body string, id int64) *http.Request {
	req := httptest.NewRequest(method, "/users/x", strings.NewReader(body))
	req = injectNopLogger(req)
	return req.WithContext(context.WithValue(req.Context(), utils.TargetUserIDCtxKey, id))
}

func TestCreateUser_PassesRequestAndWritesResult(t *testing.T) {
	users := &mockUserService{
		createUserFn: func(_ context.Context, r models.CreateUserRequest) (models.Result, error) {
			assert.Equal(t, models.CreateUserRequest{
				Name: "A", Email: "a@x.com", Password: "p", PasswordSecond: "q", Cellphone: "1",
			}, r)
			return models.BadRequest(app.MsgPasswordsDoNotMatch), nil
		},
	}
	h := newTestHandler(users, nil)

	req := injectNopLogger(httptest.NewRequest(http.MethodPost, "/users/create", strings.NewReader(
		`{"name":"A","email":"a@x.com","password":"p","password_second":"q","cellphone":"1"}`)))
	rr := httptest.NewRecorder()
	h.createUser(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `"Passwords do not match"`, rr.Body.String())
}

func TestCreateUser_InvalidJSON(t *testing.T) {
	users := &mockUserService{
		createUserFn: func(context.Context, models.CreateUserRequest) (models.Result, error) {
			t.Fatal("service must not be called")
			return models.Result{}, nil
		},
	}
	h := newTestHandler(users, nil)

	rr := httptest.NewRecorder()
	h.createUser(rr, injectNopLogger(httptest.NewRequest(http.MethodPost, "/users/create", strings.NewReader("{"))))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestCreateUser_Fault(t *testing.T) {
	users := &mockUserService{
		createUserFn: func(context.Context, models.CreateUserRequest) (models.Result, error) {
			return models.Result{}, errors.New("db down")
		},
	}
	h := newTestHandler(users, nil)

	rr := httptest.NewRecorder()
	h.createUser(rr, injectNopLogger(httptest.NewRequest(http.MethodPost, "/users/create", strings.NewReader("{}"))))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.JSONEq(t, `{"message":"Internal server error"}`, rr.Body.String())
}

func TestGetUserByID_SerializesUser(t *testing.T) {
	created := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	users := &mockUserService{
		getUserByIDFn: func(_ context.Context, id int64) (models.Result, error) {
			return models.OK(models.User{ID: id, Name: "A", Email: "a@x.com", Password: "secret-hash", Status: true, CreatedAt: created, UpdatedAt: created}), nil
		},
	}
	h := newTestHandler(users, nil)

	rr := httptest.NewRecorder()
	h.getUserByID(rr, requestWithTargetID(http.MethodGet, "", 7))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"id":7`)
	assert.NotContains(t, rr.Body.String(), "secret-hash")
}

func TestUpdateUser_DecodesPartialBody(t *testing.T) {
	users := &mockUserService{
		updateUserFn: func(_ context.Context, id int64, u models.UserUpdate) (models.Result, error) {
			assert.Equal(t, int64(3), id)
			require.NotNil(t, u.Cellphone)
			assert.Equal(t, "555", *u.Cellphone)
			assert.Nil(t, u.Name)
			assert.Nil(t, u.Password)
			return models.OK(app.MsgUserUpdated), nil
		},
	}
	h := newTestHandler(users, nil)

	rr := httptest.NewRecorder()
	h.updateUser(rr, requestWithTargetID(http.MethodPut, `{"cellphone":"555","email":"ignored@x.com"}`, 3))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `"User updated successfully"`, rr.Body.String())
}

func TestUpdateUser_EmptyBody(t *testing.T) {
	users := &mockUserService{
		updateUserFn: func(_ context.Context, id int64, u models.UserUpdate) (models.Result, error) {
			assert.Equal(t, int64(3), id)
			assert.Equal(t, models.UserUpdate{}, u)
			return models.OK(app.MsgUserUpdated), nil
		},
	}

	rr := httptest.NewRecorder()
	newTestHandler(users, nil).updateUser(rr, requestWithTargetID(http.MethodPut, "", 3))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `"User updated successfully"`, rr.Body.String())
}

func TestUpdateUser_InvalidJSON(t *testing.T) {
	rr := httptest.NewRecorder()
	newTestHandler(nil, nil).updateUser(rr, requestWithTargetID(http.MethodPut, `[`, 3))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestDeleteUser_NotFound(t *testing.T) {
	users := &mockUserService{
		deleteUserFn: func(_ context.Context, id int64) (models.Result, error) {
			return models.NotFound(app.MsgUserNotFound), nil
		},
	}

	rr := httptest.NewRecorder()
	newTestHandler(users, nil).deleteUser(rr, requestWithTargetID(http.MethodDelete, "", 3))

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `"User not found"`, rr.Body.String())
}

func TestFindUsers_InvalidLoginWindow(t *testing.T) {
	users := &mockUserService{
		findUsersFn: func(context.Context, models.UserFilter) (models.Result, error) {
			t.Fatal("service must not be called")
			return models.Result{}, nil
		},
	}

	rr := httptest.NewRecorder()
	req := injectNopLogger(httptest.NewRequest(http.MethodGet, "/users/findUsers?loginAfter=yesterday", nil))
	newTestHandler(users, nil).findUsers(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestBulkCreateUsers_RecordsMetrics(t *testing.T) {
	summary := models.BulkCreateSummary{
		SuccessCount: 1,
		FailureCount: 1,
		Results: []models.BulkUserResult{
			{Success: true, User: models.BulkUserEcho{Email: "a@x.com"}},
			{Success: false, User: models.BulkUserEcho{Email: "b@x.com"}, Error: app.MsgUserAlreadyExists},
		},
	}
	users := &mockUserService{
		bulkCreateUsersFn: func(_ context.Context, in []models.BulkUserInput) (models.Result, error) {
			assert.Len(t, in, 2)
			return models.OK(summary), nil
		},
	}
	h := newTestHandler(users, nil)
	rec := &recordingMetrics{}
	h.metrics = rec

	rr := httptest.NewRecorder()
	req := injectNopLogger(httptest.NewRequest(http.MethodPost, "/users/bulkCreate",
		strings.NewReader(`[{"email":"a@x.com"},{"email":"b@x.com"}]`)))
	h.bulkCreateUsers(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"contador_exito":1`)
	assert.Contains(t, rr.Body.String(), `"contador_fallo":1`)
	assert.Equal(t, [2]int{1, 1}, rec.bulk)
}

func TestBulkCreateUsers_NotAnArray(t *testing.T) {
	rr := httptest.NewRecorder()
	req := injectNopLogger(httptest.NewRequest(http.MethodPost, "/users/bulkCreate", strings.NewReader(`{"email":"a@x.com"}`)))
	newTestHandler(nil, nil).bulkCreateUsers(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestParseUserFilter(t *testing.T) {
	day := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)
	instant := time.Date(2024, 2, 1, 12, 30, 0, 0, time.UTC)

	tests := []struct {
		name    string
		query   string
		want    models.UserFilter
		wantErr bool
	}{
		{name: "empty", query: "", want: models.UserFilter{}},
		{name: "active true", query: "active=true", want: models.UserFilter{Active: ptr(true)}},
		{name: "active false", query: "active=false", want: models.UserFilter{Active: ptr(false)}},
		{name: "active anything else is false", query: "active=yes", want: models.UserFilter{Active: ptr(false)}},
		{name: "empty active is ignored", query: "active=", want: models.UserFilter{}},
		{name: "name", query: "name=an", want: models.UserFilter{Name: ptr("an")}},
		{name: "date only", query: "loginAfter=2024-01-31", want: models.UserFilter{LoginAfter: &day}},
		{name: "rfc3339", query: "loginBefore=2024-02-01T12:30:00Z", want: models.UserFilter{LoginBefore: &instant}},
		{name: "bad loginAfter", query: "loginAfter=31.01.2024", wantErr: true},
		{name: "bad loginBefore", query: "loginBefore=soon", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, err := url.ParseQuery(tt.query)
			require.NoError(t, err)

			got, err := parseUserFilter(values)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidLoginTime)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func ptr[T any](v T) *T { return &v }

type recordingMetrics struct {
	requests int
	bulk     [2]int
}

func (r *recordingMetrics) RecordRequest(string, int, time.Duration) { r.requests++ }

func (r *recordingMetrics) RecordBulkCreate(succeeded, failed int) {
	r.bulk[0] += succeeded
	r.bulk[1] += failed
}

func TestGetAllUsers_WritesList(t *testing.T) {
	users := &mockUserService{
		getAllUsersFn: func(context.Context) (models.Result, error) {
			return models.OK([]models.User{{ID: 1, Name: "A"}, {ID: 2, Name: "B"}}), nil
		},
	}
	h := newTestHandler(users, nil)

	rr := httptest.NewRecorder()
	h.getAllUsers(rr, injectNopLogger(httptest.NewRequest(http.MethodGet, "/users/getAllUsers", nil)))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"id":1`)
	assert.Contains(t, rr.Body.String(), `"id":2`)
}

func TestFindUsers_PassesFilter(t *testing.T) {
	users := &mockUserService{
		findUsersFn: func(_ context.Context, f models.UserFilter) (models.Result, error) {
			require.NotNil(t, f.Active)
			assert.False(t, *f.Active)
			require.NotNil(t, f.Name)
			assert.Equal(t, "an", *f.Name)
			require.NotNil(t, f.LoginBefore)
			assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), *f.LoginBefore)
			assert.Nil(t, f.LoginAfter)
			return models.OK([]models.User{}), nil
		},
	}
	h := newTestHandler(users, nil)

	rr := httptest.NewRecorder()
	h.findUsers(rr, injectNopLogger(httptest.NewRequest(http.MethodGet,
		"/users/findUsers?active=no&name=an&loginBefore=2024-03-01", nil)))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())
}
