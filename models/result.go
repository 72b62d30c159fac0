// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "net/http"

// Result is the envelope returned by every user service operation.
//
// Code carries the HTTP status the transport layer must answer with and
// Message the value serialized into the response body. Expected business
// outcomes (validation failures, duplicates, missing users) are reported
// through Result; unexpected faults are returned as errors instead.
type Result struct {
	Code    int
	Message any
}

// OK builds a 200 Result around message.
func OK(message any) Result {
	return Result{Code: http.StatusOK, Message: message}
}

// BadRequest builds a 400 Result around message.
func BadRequest(message any) Result {
	return Result{Code: http.StatusBadRequest, Message: message}
}

// NotFound builds a 404 Result around message.
func NotFound(message any) Result {
	return Result{Code: http.StatusNotFound, Message: message}
}
