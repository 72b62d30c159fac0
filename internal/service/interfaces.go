package service

import (
	"context"

	"github.com/MKhiriev/go-user-service/models"
)

// UserService implements the user operations of the REST API.
//
// Every operation reports expected outcomes (bad input, duplicates, missing
// users) through the returned [models.Result]. A non-nil error means an
// unexpected fault the caller must answer with a generic 500.
type UserService interface {
	CreateUser(ctx context.Context, request models.CreateUserRequest) (models.Result, error)
	GetUserByID(ctx context.Context, id int64) (models.Result, error)
	GetAllUsers(ctx context.Context) (models.Result, error)
	UpdateUser(ctx context.Context, id int64, update models.UserUpdate) (models.Result, error)
	DeleteUser(ctx context.Context, id int64) (models.Result, error)
	FindUsers(ctx context.Context, filter models.UserFilter) (models.Result, error)
	BulkCreateUsers(ctx context.Context, users []models.BulkUserInput) (models.Result, error)

	// UserExists reports whether a user with the ID exists in any status.
	UserExists(ctx context.Context, id int64) (bool, error)
	// IsActiveUser reports whether an active user with the ID exists.
	IsActiveUser(ctx context.Context, id int64) (bool, error)
}

type AuthService interface {
	Login(ctx context.Context, credentials models.Credentials) (models.Token, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}
