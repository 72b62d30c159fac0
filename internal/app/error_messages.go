// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// user service, its HTTP handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// Keeping them in one place ensures consistent wording throughout the API.
package app

const (
	// MsgInternalServerError is the body of every 500 response.
	MsgInternalServerError = "Internal server error"

	// MsgInvalidDataProvided is returned when the request body or query
	// cannot be decoded.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgPasswordsDoNotMatch is returned by user creation when password and
	// password_second differ.
	MsgPasswordsDoNotMatch = "Passwords do not match"

	// MsgUserAlreadyExists is returned by user creation when the email is
	// already taken by an active or a soft-deleted user.
	MsgUserAlreadyExists = "User already exists"

	// MsgUserCreated is formatted with the new user ID.
	MsgUserCreated = "User created successfully with ID: %d"

	MsgUserUpdated = "User updated successfully"
	MsgUserDeleted = "User deleted successfully"

	// MsgUserNotFound is returned when no (active) user matches the
	// requested ID.
	MsgUserNotFound = "User not found"

	// MsgInvalidID is returned when the {id} path parameter is not a
	// positive integer.
	MsgInvalidID = "Invalid id"

	// MsgInvalidLoginPassword is returned when the supplied email/password
	// combination does not match any active user.
	MsgInvalidLoginPassword = "invalid login/password"

	// MsgTokenIsExpiredOrInvalid is returned when a JWT bearer token is
	// either expired or cannot be verified (e.g. wrong signature).
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgUnauthorized is returned when the Authorization header is missing
	// or malformed.
	MsgUnauthorized = "unauthorized"

	// MsgAccessDenied is returned when the authenticated caller is not an
	// active user.
	MsgAccessDenied = "access denied"

	// MsgInvalidLoginWindow is returned when loginAfter or loginBefore is not
	// a valid date.
	MsgInvalidLoginWindow = "invalid loginAfter/loginBefore value"
)

// MsgUserCreationFailed is reported for a bulk create element that failed
// for a reason other than bad input or a taken email.
const MsgUserCreationFailed = "failed to create user"
