package client

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/MKhiriev/go-user-service/internal/adapter"
	"github.com/MKhiriev/go-user-service/internal/logger"
	"github.com/MKhiriev/go-user-service/internal/mock"
	"github.com/MKhiriev/go-user-service/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestApp(t *testing.T, args ...string) (*App, *mock.MockUserServiceAdapter, *bytes.Buffer) {
	t.Helper()
	ctrl := gomock.NewController(t)
	users := mock.NewMockUserServiceAdapter(ctrl)
	var out bytes.Buffer
	return NewApp(users, args, &out, logger.Nop()), users, &out
}

func ptr[T any](v T) *T { return &v }

func TestRun_NoCommand(t *testing.T) {
	app, _, _ := newTestApp(t)
	assert.ErrorIs(t, app.Run(context.Background()), ErrNoCommand)
}

func TestRun_UnknownCommand(t *testing.T) {
	app, _, _ := newTestApp(t, "purge")
	err := app.Run(context.Background())
	require.ErrorIs(t, err, ErrUnknownCommand)
	assert.Contains(t, err.Error(), "bulk")
}

func TestRun_Login(t *testing.T) {
	app, users, out := newTestApp(t, "login", "-email", "ana@example.com", "-password", "secret")
	users.EXPECT().
		Login(gomock.Any(), models.Credentials{Email: "ana@example.com", Password: "secret"}).
		Return(models.Token{SignedString: "jwt"}, nil)

	require.NoError(t, app.Run(context.Background()))
	assert.Contains(t, out.String(), `"token": "jwt"`)
}

func TestRun_Create(t *testing.T) {
	app, users, out := newTestApp(t, "create",
		"-name", "Ana", "-email", "ana@example.com",
		"-password", "p", "-password-second", "p", "-cellphone", "555")
	users.EXPECT().
		CreateUser(gomock.Any(), models.CreateUserRequest{
			Name: "Ana", Email: "ana@example.com", Password: "p", PasswordSecond: "p", Cellphone: "555",
		}).
		Return("User created successfully with ID: 1", nil)

	require.NoError(t, app.Run(context.Background()))
	assert.Equal(t, "\"User created successfully with ID: 1\"\n", out.String())
}

func TestRun_GetAndDelete(t *testing.T) {
	t.Run("get", func(t *testing.T) {
		app, users, out := newTestApp(t, "get", "5")
		users.EXPECT().GetUser(gomock.Any(), int64(5)).Return(nil, nil)

		require.NoError(t, app.Run(context.Background()))
		assert.Equal(t, "null\n", out.String())
	})

	t.Run("delete error is wrapped with the command", func(t *testing.T) {
		app, users, _ := newTestApp(t, "delete", "5")
		users.EXPECT().DeleteUser(gomock.Any(), int64(5)).Return("", adapter.ErrNotFound)

		err := app.Run(context.Background())
		require.ErrorIs(t, err, adapter.ErrNotFound)
		assert.Contains(t, err.Error(), "delete:")
	})

	t.Run("missing id", func(t *testing.T) {
		app, _, _ := newTestApp(t, "get")
		assert.ErrorIs(t, app.Run(context.Background()), ErrMissingArgs)
	})

	t.Run("non numeric id", func(t *testing.T) {
		app, _, _ := newTestApp(t, "delete", "abc")
		assert.Error(t, app.Run(context.Background()))
	})
}

func TestRun_List(t *testing.T) {
	app, users, out := newTestApp(t, "list")
	users.EXPECT().GetAllUsers(gomock.Any()).Return([]models.User{{ID: 1, Name: "Ana"}}, nil)

	require.NoError(t, app.Run(context.Background()))
	assert.Contains(t, out.String(), `"name": "Ana"`)
}

func TestRun_Find(t *testing.T) {
	after := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		args []string
		want models.UserFilter
	}{
		{name: "no criteria", args: []string{"find"}, want: models.UserFilter{}},
		{name: "bare active flag", args: []string{"find", "-active"}, want: models.UserFilter{Active: ptr(true)}},
		{name: "inactive", args: []string{"find", "-active=false"}, want: models.UserFilter{Active: ptr(false)}},
		{
			name: "name and window",
			args: []string{"find", "-name", "an", "-login-after", "2024-01-01T00:00:00Z"},
			want: models.UserFilter{Name: ptr("an"), LoginAfter: &after},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, users, _ := newTestApp(t, tt.args...)
			users.EXPECT().FindUsers(gomock.Any(), tt.want).Return([]models.User{}, nil)

			require.NoError(t, app.Run(context.Background()))
		})
	}

	t.Run("bad time", func(t *testing.T) {
		app, _, _ := newTestApp(t, "find", "-login-before", "yesterday")
		assert.Error(t, app.Run(context.Background()))
	})
}

func TestRun_Update(t *testing.T) {
	app, users, _ := newTestApp(t, "update", "-cellphone", "555", "9")
	users.EXPECT().
		UpdateUser(gomock.Any(), int64(9), models.UserUpdate{Cellphone: ptr("555")}).
		Return("User updated successfully", nil)

	require.NoError(t, app.Run(context.Background()))
}

func TestRun_Bulk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"name":"Ana","email":"ana@example.com","password":"p"}]`), 0o600))

	app, users, out := newTestApp(t, "bulk", "-file", path)
	users.EXPECT().
		BulkCreateUsers(gomock.Any(), []models.BulkUserInput{{Name: "Ana", Email: "ana@example.com", Password: "p"}}).
		Return(models.BulkCreateSummary{SuccessCount: 1}, nil)

	require.NoError(t, app.Run(context.Background()))
	assert.Contains(t, out.String(), `"contador_exito": 1`)
}

func TestRun_BulkBadFile(t *testing.T) {
	app, _, _ := newTestApp(t, "bulk", "-file", filepath.Join(t.TempDir(), "missing.json"))
	err := app.Run(context.Background())
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrUnknownCommand))
}
