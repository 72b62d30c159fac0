package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-user-service/internal/config"
	"github.com/MKhiriev/go-user-service/internal/logger"
	"github.com/MKhiriev/go-user-service/internal/utils"
	"github.com/MKhiriev/go-user-service/models"
	"github.com/go-resty/resty/v2"
)

const bearerPrefix = "Bearer "

type httpUserAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPUserAdapter builds the REST implementation of [UserServiceAdapter].
// A bare "host:port" address is treated as plain HTTP.
func NewHTTPUserAdapter(cfg *config.ClientConfig, logger *logger.Logger) (UserServiceAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	a := &httpUserAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}
	a.SetToken(cfg.Token)

	return a, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpUserAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpUserAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Login posts credentials to POST /users/login. The token is taken from the
// response body and, if absent there, from the Authorization header.
func (h *httpUserAdapter) Login(ctx context.Context, credentials models.Credentials) (models.Token, error) {
	var token models.Token

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(credentials).
		SetResult(&token).
		Post("/users/login")
	if err != nil {
		return models.Token{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Token{}, err
	}

	if token.SignedString == "" {
		token.SignedString = strings.TrimSpace(strings.TrimPrefix(resp.Header().Get("Authorization"), bearerPrefix))
	}
	if token.SignedString == "" {
		return models.Token{}, fmt.Errorf("login response carries no token")
	}

	h.SetToken(token.SignedString)
	h.logger.Debug().Time("expires_at", token.ExpiresAt).Msg("logged in")

	return token, nil
}

// CreateUser posts the request to the public POST /users/create endpoint.
func (h *httpUserAdapter) CreateUser(ctx context.Context, request models.CreateUserRequest) (string, error) {
	var message string

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(request).
		SetResult(&message).
		Post("/users/create")
	if err != nil {
		return "", fmt.Errorf("create user request: %w", err)
	}

	return message, mapHTTPError(resp)
}

func (h *httpUserAdapter) GetUser(ctx context.Context, id int64) (*models.User, error) {
	var user *models.User

	resp, err := h.authedRequest(ctx).
		SetResult(&user).
		Get(userPath(id))
	if err != nil {
		return nil, fmt.Errorf("get user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return user, nil
}

func (h *httpUserAdapter) GetAllUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User

	resp, err := h.authedRequest(ctx).
		SetResult(&users).
		Get("/users/getAllUsers")
	if err != nil {
		return nil, fmt.Errorf("get all users request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return users, nil
}

// FindUsers translates filter into the query parameters of
// GET /users/findUsers. Unset criteria are not sent.
func (h *httpUserAdapter) FindUsers(ctx context.Context, filter models.UserFilter) ([]models.User, error) {
	var users []models.User

	resp, err := h.authedRequest(ctx).
		SetQueryParamsFromValues(filterQuery(filter)).
		SetResult(&users).
		Get("/users/findUsers")
	if err != nil {
		return nil, fmt.Errorf("find users request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return users, nil
}

func filterQuery(filter models.UserFilter) url.Values {
	query := url.Values{}
	if filter.Active != nil {
		query.Set("active", strconv.FormatBool(*filter.Active))
	}
	if filter.Name != nil {
		query.Set("name", *filter.Name)
	}
	if filter.LoginAfter != nil {
		query.Set("loginAfter", filter.LoginAfter.Format(time.RFC3339))
	}
	if filter.LoginBefore != nil {
		query.Set("loginBefore", filter.LoginBefore.Format(time.RFC3339))
	}
	return query
}

func (h *httpUserAdapter) UpdateUser(ctx context.Context, id int64, update models.UserUpdate) (string, error) {
	var message string

	resp, err := h.authedRequest(ctx).
		SetBody(update).
		SetResult(&message).
		Put(userPath(id))
	if err != nil {
		return "", fmt.Errorf("update user request: %w", err)
	}

	return message, mapHTTPError(resp)
}

func (h *httpUserAdapter) DeleteUser(ctx context.Context, id int64) (string, error) {
	var message string

	resp, err := h.authedRequest(ctx).
		SetResult(&message).
		Delete(userPath(id))
	if err != nil {
		return "", fmt.Errorf("delete user request: %w", err)
	}

	return message, mapHTTPError(resp)
}

func (h *httpUserAdapter) BulkCreateUsers(ctx context.Context, users []models.BulkUserInput) (models.BulkCreateSummary, error) {
	var summary models.BulkCreateSummary

	resp, err := h.authedRequest(ctx).
		SetBody(users).
		SetResult(&summary).
		Post("/users/bulkCreate")
	if err != nil {
		return models.BulkCreateSummary{}, fmt.Errorf("bulk create request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.BulkCreateSummary{}, err
	}

	return summary, nil
}

func (h *httpUserAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

func userPath(id int64) string {
	return "/users/" + strconv.FormatInt(id, 10)
}
