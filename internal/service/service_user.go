// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-user-service/internal/app"
	"github.com/MKhiriev/go-user-service/internal/config"
	"github.com/MKhiriev/go-user-service/internal/crypto"
	"github.com/MKhiriev/go-user-service/internal/logger"
	"github.com/MKhiriev/go-user-service/internal/store"
	"github.com/MKhiriev/go-user-service/models"
	"golang.org/x/sync/errgroup"
)

// userService is the concrete implementation of UserService.
type userService struct {
	// userRepository is the data-access layer for user rows.
	userRepository store.UserRepository

	// hasher turns plain-text passwords into the stored hashes.
	hasher crypto.PasswordHasher

	// bulkConcurrency caps the goroutines of one bulk create.
	// Zero or less means one goroutine per element.
	bulkConcurrency int

	logger *logger.Logger
}

// NewUserService constructs a UserService over the given repository.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewUserService(userRepository store.UserRepository, hasher crypto.PasswordHasher,
	cfg config.Workers, logger *logger.Logger) UserService {
	return &userService{
		userRepository:  userRepository,
		hasher:          hasher,
		bulkConcurrency: cfg.BulkCreateConcurrency,
		logger:          logger,
	}
}

// CreateUser registers a new active user.
//
// The password confirmation is checked first. The email must not belong to
// any user, active or soft-deleted. Field contents are stored as given.
func (u *userService) CreateUser(ctx context.Context, request models.CreateUserRequest) (models.Result, error) {
	log := logger.FromContext(ctx).With().Str("func", "userService.CreateUser").Logger()

	if request.Password != request.PasswordSecond {
		return models.BadRequest(app.MsgPasswordsDoNotMatch), nil
	}

	_, err := u.userRepository.FindUserByEmail(ctx, request.Email)
	switch {
	case err == nil:
		return models.BadRequest(app.MsgUserAlreadyExists), nil
	case !errors.Is(err, store.ErrUserNotFound):
		log.Err(err).Str("email", request.Email).Msg("user search by email failed")
		return models.Result{}, fmt.Errorf("user search by email failed: %w", err)
	}

	created, err := u.insertUser(ctx, request.Name, request.Email, request.Password, request.Cellphone)
	if errors.Is(err, store.ErrEmailAlreadyExists) {
		return models.BadRequest(app.MsgUserAlreadyExists), nil
	}
	if err != nil {
		log.Err(err).Str("email", request.Email).Msg("user creation ended with error")
		return models.Result{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Int64("id", created.ID).Msg("user created")
	return models.OK(fmt.Sprintf(app.MsgUserCreated, created.ID)), nil
}

// GetUserByID returns the active user with the ID. A missing or
// soft-deleted user yields a 200 with a null payload, never a 404.
func (u *userService) GetUserByID(ctx context.Context, id int64) (models.Result, error) {
	user, err := u.userRepository.GetActiveUserByID(ctx, id)
	if errors.Is(err, store.ErrUserNotFound) {
		return models.OK(nil), nil
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "userService.GetUserByID").Int64("id", id).Msg("user lookup failed")
		return models.Result{}, fmt.Errorf("user lookup failed: %w", err)
	}

	return models.OK(user), nil
}

func (u *userService) GetAllUsers(ctx context.Context) (models.Result, error) {
	users, err := u.userRepository.GetActiveUsers(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "userService.GetAllUsers").Msg("listing active users failed")
		return models.Result{}, fmt.Errorf("listing active users failed: %w", err)
	}

	return models.OK(users), nil
}

// UpdateUser writes the set fields of update to the active user. An empty
// password counts as not provided; a non-empty one is re-hashed. Email is not
// part of [models.UserUpdate] and can never change.
func (u *userService) UpdateUser(ctx context.Context, id int64, update models.UserUpdate) (models.Result, error) {
	log := logger.FromContext(ctx).With().Str("func", "userService.UpdateUser").Int64("id", id).Logger()

	if update.Password != nil && *update.Password == "" {
		update.Password = nil
	}
	if update.Password != nil {
		hash, err := u.hasher.Hash(*update.Password)
		if err != nil {
			log.Err(err).Msg("password hashing failed")
			return models.Result{}, fmt.Errorf("password hashing failed: %w", err)
		}
		update.Password = &hash
	}

	err := u.userRepository.UpdateActiveUser(ctx, id, update)
	if errors.Is(err, store.ErrUserNotFound) {
		return models.NotFound(app.MsgUserNotFound), nil
	}
	if err != nil {
		log.Err(err).Msg("user update failed")
		return models.Result{}, fmt.Errorf("user update failed: %w", err)
	}

	return models.OK(app.MsgUserUpdated), nil
}

// DeleteUser soft-deletes the active user. Deleting an already deleted user
// is a 404.
func (u *userService) DeleteUser(ctx context.Context, id int64) (models.Result, error) {
	err := u.userRepository.SoftDeleteUser(ctx, id)
	if errors.Is(err, store.ErrUserNotFound) {
		return models.NotFound(app.MsgUserNotFound), nil
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "userService.DeleteUser").Int64("id", id).Msg("user deletion failed")
		return models.Result{}, fmt.Errorf("user deletion failed: %w", err)
	}

	return models.OK(app.MsgUserDeleted), nil
}

// FindUsers returns users of any status matching filter.
func (u *userService) FindUsers(ctx context.Context, filter models.UserFilter) (models.Result, error) {
	users, err := u.userRepository.FindUsers(ctx, filter)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "userService.FindUsers").Msg("user search failed")
		return models.Result{}, fmt.Errorf("user search failed: %w", err)
	}

	return models.OK(users), nil
}

// BulkCreateUsers creates every element independently and concurrently.
// Failures stay inside their own result entry; the outcome is always a 200
// with a [models.BulkCreateSummary] whose results follow the input order.
func (u *userService) BulkCreateUsers(ctx context.Context, users []models.BulkUserInput) (models.Result, error) {
	results := make([]models.BulkUserResult, len(users))

	var g errgroup.Group
	if u.bulkConcurrency > 0 {
		g.SetLimit(u.bulkConcurrency)
	}

	for i, user := range users {
		g.Go(func() error {
			results[i] = u.createBulkUser(ctx, user)
			return nil
		})
	}
	// element errors are kept in results
	_ = g.Wait()

	summary := models.BulkCreateSummary{Results: results}
	for _, r := range results {
		if r.Success {
			summary.SuccessCount++
		} else {
			summary.FailureCount++
		}
	}

	logger.FromContext(ctx).Info().
		Str("func", "userService.BulkCreateUsers").
		Int("succeeded", summary.SuccessCount).
		Int("failed", summary.FailureCount).
		Msg("bulk create finished")

	return models.OK(summary), nil
}

func (u *userService) UserExists(ctx context.Context, id int64) (bool, error) {
	exists, err := u.userRepository.UserExists(ctx, id)
	if err != nil {
		return false, fmt.Errorf("user existence check failed: %w", err)
	}
	return exists, nil
}

func (u *userService) IsActiveUser(ctx context.Context, id int64) (bool, error) {
	_, err := u.userRepository.GetActiveUserByID(ctx, id)
	if errors.Is(err, store.ErrUserNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("active user check failed: %w", err)
	}
	return true, nil
}

func (u *userService) createBulkUser(ctx context.Context, input models.BulkUserInput) models.BulkUserResult {
	result := models.BulkUserResult{User: input.Echo()}

	_, err := u.insertUser(ctx, input.Name, input.Email, input.Password, input.Cellphone)
	switch {
	case err == nil:
		result.Success = true
	case errors.Is(err, store.ErrEmailAlreadyExists):
		result.Error = app.MsgUserAlreadyExists
	default:
		logger.FromContext(ctx).Err(err).
			Str("func", "userService.createBulkUser").
			Str("email", input.Email).
			Msg("bulk element creation failed")
		result.Error = app.MsgUserCreationFailed
	}

	return result
}

// insertUser hashes password and stores a new active user.
func (u *userService) insertUser(ctx context.Context, name, email, password, cellphone string) (models.User, error) {
	hash, err := u.hasher.Hash(password)
	if err != nil {
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	return u.userRepository.CreateUser(ctx, models.User{
		Name:      name,
		Email:     email,
		Password:  hash,
		Cellphone: cellphone,
		Status:    true,
	})
}
