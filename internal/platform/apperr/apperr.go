// Copyright (c) 2026 WebBooks. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package apperr defines the error type every WebBooks layer returns to HTTP.

Services and repositories never pick status codes themselves. They return an
[AppError] built by one of the constructors below, and respond.Error turns it
into the `{error, code, details}` envelope.

Codes:

	NOT_FOUND            404  missing author, book, copy, page of a listing
	VALIDATION_ERROR     400  bad input, unknown foreign key
	UNAUTHORIZED         401  no or bad bearer token
	FORBIDDEN            403  role too low, self-demotion
	METHOD_NOT_ALLOWED   405  wrong verb on a fixed route such as /create
	CONFLICT             409  taken username or email
	TOO_MANY_REQUESTS    429  per-client rate limit
	INTERNAL_ERROR       500  anything unexpected; the cause is only logged
*/
package apperr

import (
	"errors"
	"net/http"
)

// # Codes

const (
	CodeNotFound         = "NOT_FOUND"
	CodeValidation       = "VALIDATION_ERROR"
	CodeUnauthorized     = "UNAUTHORIZED"
	CodeForbidden        = "FORBIDDEN"
	CodeMethodNotAllowed = "METHOD_NOT_ALLOWED"
	CodeConflict         = "CONFLICT"
	CodeTooManyRequests  = "TOO_MANY_REQUESTS"
	CodeInternal         = "INTERNAL_ERROR"
)

// AppError is the canonical error type for the WebBooks API.
//
// Cause is kept for server-side logging and is never serialized.
type AppError struct {
	Code       string       `json:"code"`
	Message    string       `json:"error"`
	HTTPStatus int          `json:"-"`
	Cause      error        `json:"-"`
	Details    []FieldError `json:"details,omitempty"`
}

// FieldError names one rejected input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error returns the client-safe message.
func (e *AppError) Error() string { return e.Message }

// Unwrap exposes the cause to [errors.Is] and [errors.As].
func (e *AppError) Unwrap() error { return e.Cause }

func newError(code string, status int, message string) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: status}
}

// # Client Errors (4xx)

// NotFound reports a missing record of the named kind.
//
//	apperr.NotFound("Author") // "Author not found"
func NotFound(resource string) *AppError {
	return newError(CodeNotFound, http.StatusNotFound, resource+" not found")
}

// ValidationError reports rejected input with optional per-field details.
func ValidationError(msg string, details ...FieldError) *AppError {
	err := newError(CodeValidation, http.StatusBadRequest, msg)
	err.Details = details
	return err
}

func Unauthorized(msg string) *AppError {
	return newError(CodeUnauthorized, http.StatusUnauthorized, msg)
}

func Forbidden(msg string) *AppError {
	return newError(CodeForbidden, http.StatusForbidden, msg)
}

// MethodNotAllowed reports a verb the route does not accept.
func MethodNotAllowed(method string) *AppError {
	return newError(CodeMethodNotAllowed, http.StatusMethodNotAllowed, "Method "+method+" is not allowed here")
}

func Conflict(msg string) *AppError {
	return newError(CodeConflict, http.StatusConflict, msg)
}

func TooManyRequests() *AppError {
	return newError(CodeTooManyRequests, http.StatusTooManyRequests, "Rate limit exceeded")
}

// # Server Errors (5xx)

// Internal wraps an unexpected failure behind a generic message.
func Internal(cause error) *AppError {
	err := newError(CodeInternal, http.StatusInternalServerError, "An unexpected error occurred")
	err.Cause = cause
	return err
}

// # Helpers

// IsAppError reports whether err's chain holds an [*AppError].
func IsAppError(err error) bool {
	return As(err) != nil
}

// As extracts the [*AppError] from err's chain, or nil.
func As(err error) *AppError {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae
	}
	return nil
}

// HasCode reports whether err carries an [*AppError] with the given code.
func HasCode(err error, code string) bool {
	ae := As(err)
	return ae != nil && ae.Code == code
}
