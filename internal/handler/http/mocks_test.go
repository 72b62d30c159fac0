package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-user-service/internal/config"
	"github.com/MKhiriev/go-user-service/internal/logger"
	"github.com/MKhiriev/go-user-service/internal/service"
	"github.com/MKhiriev/go-user-service/models"
	"github.com/prometheus/client_golang/prometheus"
)

// ─────────────────────────────────────────────
// Mock: service.UserService
// ─────────────────────────────────────────────

type mockUserService struct {
	createUserFn      func(ctx context.Context, request models.CreateUserRequest) (models.Result, error)
	getUserByIDFn     func(ctx context.Context, id int64) (models.Result, error)
	getAllUsersFn     func(ctx context.Context) (models.Result, error)
	updateUserFn      func(ctx context.Context, id int64, update models.UserUpdate) (models.Result, error)
	deleteUserFn      func(ctx context.Context, id int64) (models.Result, error)
	findUsersFn       func(ctx context.Context, filter models.UserFilter) (models.Result, error)
	bulkCreateUsersFn func(ctx context.Context, users []models.BulkUserInput) (models.Result, error)
	userExistsFn      func(ctx context.Context, id int64) (bool, error)
	isActiveUserFn    func(ctx context.Context, id int64) (bool, error)
}

func (m *mockUserService) CreateUser(ctx context.Context, request models.CreateUserRequest) (models.Result, error) {
	if m.createUserFn != nil {
		return m.createUserFn(ctx, request)
	}
	return models.OK(nil), nil
}

func (m *mockUserService) GetUserByID(ctx context.Context, id int64) (models.Result, error) {
	if m.getUserByIDFn != nil {
		return m.getUserByIDFn(ctx, id)
	}
	return models.OK(nil), nil
}

func (m *mockUserService) GetAllUsers(ctx context.Context) (models.Result, error) {
	if m.getAllUsersFn != nil {
		return m.getAllUsersFn(ctx)
	}
	return models.OK([]models.User{}), nil
}

func (m *mockUserService) UpdateUser(ctx context.Context, id int64, update models.UserUpdate) (models.Result, error) {
	if m.updateUserFn != nil {
		return m.updateUserFn(ctx, id, update)
	}
	return models.OK(nil), nil
}

func (m *mockUserService) DeleteUser(ctx context.Context, id int64) (models.Result, error) {
	if m.deleteUserFn != nil {
		return m.deleteUserFn(ctx, id)
	}
	return models.OK(nil), nil
}

func (m *mockUserService) FindUsers(ctx context.Context, filter models.UserFilter) (models.Result, error) {
	if m.findUsersFn != nil {
		return m.findUsersFn(ctx, filter)
	}
	return models.OK([]models.User{}), nil
}

func (m *mockUserService) BulkCreateUsers(ctx context.Context, users []models.BulkUserInput) (models.Result, error) {
	if m.bulkCreateUsersFn != nil {
		return m.bulkCreateUsersFn(ctx, users)
	}
	return models.OK(models.BulkCreateSummary{}), nil
}

func (m *mockUserService) UserExists(ctx context.Context, id int64) (bool, error) {
	if m.userExistsFn != nil {
		return m.userExistsFn(ctx, id)
	}
	return true, nil
}

func (m *mockUserService) IsActiveUser(ctx context.Context, id int64) (bool, error) {
	if m.isActiveUserFn != nil {
		return m.isActiveUserFn(ctx, id)
	}
	return true, nil
}

// ─────────────────────────────────────────────
// Mock: service.AuthService
// ─────────────────────────────────────────────

type mockAuthService struct {
	loginFn      func(ctx context.Context, credentials models.Credentials) (models.Token, error)
	parseTokenFn func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) Login(ctx context.Context, credentials models.Credentials) (models.Token, error) {
	if m.loginFn != nil {
		return m.loginFn(ctx, credentials)
	}
	return models.Token{SignedString: "signed", UserID: 1}, nil
}

func (m *mockAuthService) CreateToken(_ context.Context, user models.User) (models.Token, error) {
	return models.Token{SignedString: "signed", UserID: user.ID}, nil
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if m.parseTokenFn != nil {
		return m.parseTokenFn(ctx, tokenString)
	}
	return models.Token{UserID: 1}, nil
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func newTestHandler(users *mockUserService, auth *mockAuthService) *Handler {
	return newTestHandlerWithConfig(users, auth, config.Server{})
}

func newTestHandlerWithConfig(users *mockUserService, auth *mockAuthService, cfg config.Server) *Handler {
	if users == nil {
		users = &mockUserService{}
	}
	if auth == nil {
		auth = &mockAuthService{}
	}
	services := &service.Services{UserService: users, AuthService: auth}
	return NewHandler(services, cfg, prometheus.NewRegistry(), logger.Nop())
}

// injectNopLogger puts a nop logger into the request context.
func injectNopLogger(r *http.Request) *http.Request {
	nop := logger.Nop()
	return r.WithContext(nop.Logger.WithContext(r.Context()))
}
