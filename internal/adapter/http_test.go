// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-user-service/internal/config"
	"github.com/MKhiriev/go-user-service/internal/logger"
	"github.com/MKhiriev/go-user-service/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAdapter(t *testing.T, serverURL string) *httpUserAdapter {
	t.Helper()
	a, err := NewHTTPUserAdapter(&config.ClientConfig{
		HTTPAddress:    serverURL,
		RequestTimeout: 5 * time.Second,
	}, logger.Nop())
	require.NoError(t, err)
	return a.(*httpUserAdapter)
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "bare host port", raw: "localhost:8080", want: "http://localhost:8080"},
		{name: "scheme kept", raw: "https://users.example.com/", want: "https://users.example.com"},
		{name: "surrounding spaces", raw: "  http://127.0.0.1:9000  ", want: "http://127.0.0.1:9000"},
		{name: "empty", raw: "   ", wantErr: true},
		{name: "no host", raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewHTTPUserAdapter_KeepsConfiguredToken(t *testing.T) {
	a, err := NewHTTPUserAdapter(&config.ClientConfig{
		HTTPAddress:    "localhost:8080",
		RequestTimeout: time.Second,
		Token:          " abc ",
	}, logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, "abc", a.Token())
}

func TestNewHTTPUserAdapter_EmptyAddress(t *testing.T) {
	_, err := NewHTTPUserAdapter(&config.ClientConfig{RequestTimeout: time.Second}, logger.Nop())
	assert.ErrorIs(t, err, ErrEmptyAddress)
}

func TestLogin(t *testing.T) {
	expires := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	t.Run("token from body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/users/login", r.URL.Path)

			var creds models.Credentials
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
			assert.Equal(t, models.Credentials{Email: "ana@example.com", Password: "secret"}, creds)

			writeJSON(t, w, http.StatusOK, models.Token{SignedString: "jwt-token", ExpiresAt: expires})
		}))
		defer srv.Close()

		a := newTestAdapter(t, srv.URL)
		token, err := a.Login(context.Background(), models.Credentials{Email: "ana@example.com", Password: "secret"})
		require.NoError(t, err)
		assert.Equal(t, "jwt-token", token.SignedString)
		assert.True(t, expires.Equal(token.ExpiresAt))
		assert.Equal(t, "jwt-token", a.Token())
	})

	t.Run("token from header", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Authorization", "Bearer header-token")
			writeJSON(t, w, http.StatusOK, map[string]string{})
		}))
		defer srv.Close()

		a := newTestAdapter(t, srv.URL)
		token, err := a.Login(context.Background(), models.Credentials{})
		require.NoError(t, err)
		assert.Equal(t, "header-token", token.SignedString)
	})

	t.Run("wrong credentials", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(t, w, http.StatusUnauthorized, "invalid login/password")
		}))
		defer srv.Close()

		a := newTestAdapter(t, srv.URL)
		_, err := a.Login(context.Background(), models.Credentials{})
		require.ErrorIs(t, err, ErrUnauthorized)
		assert.Contains(t, err.Error(), "invalid login/password")
		assert.Empty(t, a.Token())
	})

	t.Run("no token at all", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(t, w, http.StatusOK, map[string]string{})
		}))
		defer srv.Close()

		_, err := newTestAdapter(t, srv.URL).Login(context.Background(), models.Credentials{})
		require.Error(t, err)
	})
}

func TestCreateUser(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/users/create", r.URL.Path)
			assert.Empty(t, r.Header.Get("Authorization"))
			writeJSON(t, w, http.StatusOK, "User created successfully with ID: 7")
		}))
		defer srv.Close()

		a := newTestAdapter(t, srv.URL)
		a.SetToken("ignored")
		msg, err := a.CreateUser(context.Background(), models.CreateUserRequest{Name: "Ana"})
		require.NoError(t, err)
		assert.Equal(t, "User created successfully with ID: 7", msg)
	})

	t.Run("already exists", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(t, w, http.StatusBadRequest, "User already exists")
		}))
		defer srv.Close()

		_, err := newTestAdapter(t, srv.URL).CreateUser(context.Background(), models.CreateUserRequest{})
		require.ErrorIs(t, err, ErrBadRequest)
		assert.Contains(t, err.Error(), "User already exists")
	})
}

func TestGetUser(t *testing.T) {
	t.Run("active user with bearer token", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/users/5", r.URL.Path)
			assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
			writeJSON(t, w, http.StatusOK, models.User{ID: 5, Name: "Ana", Status: true})
		}))
		defer srv.Close()

		a := newTestAdapter(t, srv.URL)
		a.SetToken("tok")
		user, err := a.GetUser(context.Background(), 5)
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, int64(5), user.ID)
		assert.Equal(t, "Ana", user.Name)
	})

	t.Run("soft deleted user is null", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte("null"))
		}))
		defer srv.Close()

		user, err := newTestAdapter(t, srv.URL).GetUser(context.Background(), 5)
		require.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("missing user", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(t, w, http.StatusNotFound, "User not found")
		}))
		defer srv.Close()

		_, err := newTestAdapter(t, srv.URL).GetUser(context.Background(), 5)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestGetAllUsers(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/getAllUsers", r.URL.Path)
		writeJSON(t, w, http.StatusOK, []models.User{{ID: 1}, {ID: 2}})
	}))
	defer srv.Close()

	users, err := newTestAdapter(t, srv.URL).GetAllUsers(context.Background())
	require.NoError(t, err)
	assert.Len(t, users, 2)
}

func TestGetAllUsers_RetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) == 1 {
			writeJSON(t, w, http.StatusInternalServerError, map[string]string{"message": "Internal server error"})
			return
		}
		writeJSON(t, w, http.StatusOK, []models.User{})
	}))
	defer srv.Close()

	users, err := newTestAdapter(t, srv.URL).GetAllUsers(context.Background())
	require.NoError(t, err)
	assert.Empty(t, users)
	assert.Equal(t, int32(2), calls.Load())
}

func TestFindUsers_QueryParameters(t *testing.T) {
	after := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	active := true
	name := "an"

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "true", q.Get("active"))
		assert.Equal(t, "an", q.Get("name"))
		assert.Equal(t, "2024-01-01T00:00:00Z", q.Get("loginAfter"))
		assert.False(t, q.Has("loginBefore"))
		writeJSON(t, w, http.StatusOK, []models.User{{ID: 3}})
	}))
	defer srv.Close()

	users, err := newTestAdapter(t, srv.URL).FindUsers(context.Background(), models.UserFilter{
		Active:     &active,
		Name:       &name,
		LoginAfter: &after,
	})
	require.NoError(t, err)
	assert.Equal(t, []models.User{{ID: 3}}, users)
}

func TestUpdateUser(t *testing.T) {
	cellphone := "555"

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/users/9", r.URL.Path)

		var body map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]any{"cellphone": "555"}, body)

		writeJSON(t, w, http.StatusOK, "User updated successfully")
	}))
	defer srv.Close()

	msg, err := newTestAdapter(t, srv.URL).UpdateUser(context.Background(), 9, models.UserUpdate{Cellphone: &cellphone})
	require.NoError(t, err)
	assert.Equal(t, "User updated successfully", msg)
}

func TestDeleteUser(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    any
		wantMsg string
		wantErr error
	}{
		{name: "deleted", status: http.StatusOK, body: "User deleted successfully", wantMsg: "User deleted successfully"},
		{name: "already deleted", status: http.StatusNotFound, body: "User not found", wantErr: ErrNotFound},
		{name: "inactive caller", status: http.StatusForbidden, body: "access denied", wantErr: ErrForbidden},
		{name: "rate limited", status: http.StatusTooManyRequests, body: "Too Many Requests", wantErr: ErrTooManyRequests},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodDelete, r.Method)
				writeJSON(t, w, tt.status, tt.body)
			}))
			defer srv.Close()

			msg, err := newTestAdapter(t, srv.URL).DeleteUser(context.Background(), 4)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantMsg, msg)
		})
	}
}

func TestBulkCreateUsers(t *testing.T) {
	summary := models.BulkCreateSummary{
		SuccessCount: 1,
		FailureCount: 1,
		Results: []models.BulkUserResult{
			{Success: true, User: models.BulkUserEcho{Email: "a@example.com"}},
			{Success: false, User: models.BulkUserEcho{Email: "b@example.com"}, Error: "User already exists"},
		},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/bulkCreate", r.URL.Path)

		var body []models.BulkUserInput
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Len(t, body, 2)

		writeJSON(t, w, http.StatusOK, summary)
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).BulkCreateUsers(context.Background(), []models.BulkUserInput{
		{Email: "a@example.com"},
		{Email: "b@example.com"},
	})
	require.NoError(t, err)
	assert.Equal(t, summary, got)
}
