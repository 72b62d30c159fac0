// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the outbound client of the user service REST API.
//
// [UserServiceAdapter] hides request construction, bearer token handling and
// the mapping of HTTP status codes to the sentinel errors declared in
// errors.go, so callers can branch with [errors.Is] (e.g. [ErrNotFound] for
// 404, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-user-service/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/user_service_adapter_mock.go -package=mock

// UserServiceAdapter is the client side of the users API.
type UserServiceAdapter interface {
	// SetToken stores the bearer token attached to every protected request.
	SetToken(token string)

	// Token returns the stored bearer token, or an empty string.
	Token() string

	// Login exchanges credentials for a token and stores it via SetToken.
	Login(ctx context.Context, credentials models.Credentials) (models.Token, error)

	// CreateUser registers a new user and returns the server message.
	CreateUser(ctx context.Context, request models.CreateUserRequest) (string, error)

	// GetUser fetches an active user. A soft-deleted user yields (nil, nil).
	GetUser(ctx context.Context, id int64) (*models.User, error)

	GetAllUsers(ctx context.Context) ([]models.User, error)

	FindUsers(ctx context.Context, filter models.UserFilter) ([]models.User, error)

	UpdateUser(ctx context.Context, id int64, update models.UserUpdate) (string, error)

	DeleteUser(ctx context.Context, id int64) (string, error)

	BulkCreateUsers(ctx context.Context, users []models.BulkUserInput) (models.BulkCreateSummary, error)
}
