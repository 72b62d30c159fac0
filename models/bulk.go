// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// BulkUserInput is a single element of a POST /users/bulkCreate body.
type BulkUserInput struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Cellphone string `json:"cellphone"`
}

// Echo returns the element as it is reported back to the caller.
// The plain-text password is deliberately left out.
func (b BulkUserInput) Echo() BulkUserEcho {
	return BulkUserEcho{
		Name:      b.Name,
		Email:     b.Email,
		Cellphone: b.Cellphone,
	}
}

// BulkUserEcho is the caller's input echoed in a bulk result entry.
type BulkUserEcho struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Cellphone string `json:"cellphone"`
}

// BulkUserResult is the outcome of one element of a bulk create.
type BulkUserResult struct {
	Success bool         `json:"success"`
	User    BulkUserEcho `json:"user"`
	Error   string       `json:"error,omitempty"`
}

// BulkCreateSummary is returned by a bulk create. Results keep the order of
// the input elements.
type BulkCreateSummary struct {
	SuccessCount int              `json:"contador_exito"`
	FailureCount int              `json:"contador_fallo"`
	Results      []BulkUserResult `json:"results"`
}
