package models

import "time"

// User is a persisted user account.
//
// Status is the soft-delete flag: true marks an active row, false a tombstone
// that is kept in the table but hidden from the regular read operations.
// Password always holds a one-way hash and is never serialized.
type User struct {
	// ID is the surrogate key assigned by the database.
	ID int64 `json:"id"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// Email identifies the user. It is unique across active and inactive rows.
	Email string `json:"email"`

	// Password stores the bcrypt hash of the user's password.
	Password string `json:"-"`

	// Cellphone is a free-form phone number.
	Cellphone string `json:"cellphone"`

	// Status reports whether the user is active (true) or soft-deleted (false).
	Status bool `json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateUserRequest is the body of POST /users/create.
type CreateUserRequest struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Password       string `json:"password"`
	PasswordSecond string `json:"password_second"`
	Cellphone      string `json:"cellphone"`
}

// UserUpdate describes a partial update of a user.
// Only non-nil fields are written; nil fields keep the stored value.
type UserUpdate struct {
	Name      *string `json:"name,omitempty"`
	Password  *string `json:"password,omitempty"`
	Cellphone *string `json:"cellphone,omitempty"`
}

// UserFilter holds the optional criteria of a user search. Criteria are
// combined with AND; nil criteria are not applied at all.
type UserFilter struct {
	// Active matches the user status exactly.
	Active *bool

	// Name matches users whose name contains the value, ignoring case.
	Name *string

	// LoginAfter keeps users with at least one session created at or after it.
	LoginAfter *time.Time

	// LoginBefore keeps users with at least one session created at or before it.
	LoginBefore *time.Time
}

// HasLoginWindow reports whether the filter constrains session timestamps.
func (f UserFilter) HasLoginWindow() bool {
	return f.LoginAfter != nil || f.LoginBefore != nil
}
