// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks the shape of incoming user payloads before the
// service layer touches storage.
//
// Failures are reported as *[ValidationError], which lists every offending
// JSON field and matches [ErrInvalidInput] with errors.Is. Values of types
// the validator does not know are rejected with [ErrUnsupportedType].
package validators

import "context"

// Validator validates a payload. When field names are passed only those
// struct fields are checked.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
