package store

import (
	"context"

	"github.com/MKhiriev/go-user-service/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts in the "users" table.
//
// Reads named "Active" only see rows with status = true. Writes that target
// an existing user are single conditional statements and report
// [ErrUserNotFound] when no active row matched.
type UserRepository interface {
	// CreateUser inserts user with status = true and returns it with the
	// server-assigned ID and timestamps.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	// FindUserByEmail returns the user with exactly this email, active or not.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	// GetActiveUserByID returns the active user with the given ID.
	GetActiveUserByID(ctx context.Context, id int64) (models.User, error)
	// UserExists reports whether a row with the given ID exists in any status.
	UserExists(ctx context.Context, id int64) (bool, error)
	// GetActiveUsers returns every active user ordered by ID.
	GetActiveUsers(ctx context.Context) ([]models.User, error)
	// FindUsers returns the users matching every criterion of filter.
	FindUsers(ctx context.Context, filter models.UserFilter) ([]models.User, error)
	// UpdateActiveUser applies the non-nil fields of update to the active user.
	// A non-nil Password must already be hashed.
	UpdateActiveUser(ctx context.Context, id int64, update models.UserUpdate) error
	// SoftDeleteUser flips the status of the active user to false.
	SoftDeleteUser(ctx context.Context, id int64) error
}

// SessionRepository records user logins in the "sessions" table.
type SessionRepository interface {
	CreateSession(ctx context.Context, userID int64) (models.Session, error)
}
