// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package apperr defines the centralized error taxonomy for StudyHub.

It bridges low-level storage and credential errors and the HTTP responses
rendered by the respond package.

Architecture:

  - AppError: a struct carrying a machine-readable Kind and a client-safe message.
  - Mapping: every Kind maps to exactly one HTTP status code.

Every error that leaves the service layer should be an [AppError]. Anything else
is treated as [KindInternal] when rendered.
*/
package apperr

import (
	"errors"
	"net/http"
)

// Kind classifies an [AppError] for the error responder.
type Kind string

const (
	KindUnauthenticated Kind = "UNAUTHENTICATED"
	KindUnauthorized    Kind = "UNAUTHORIZED"
	KindInvalidInput    Kind = "INVALID_INPUT"
	KindNotFound        Kind = "NOT_FOUND"
	KindRateLimited     Kind = "RATE_LIMITED"
	KindUpstream        Kind = "UPSTREAM"
	KindInternal        Kind = "INTERNAL"
)

// AppError is the canonical error type for the StudyHub API.
//
// # Security
//
// The Cause field is for server-side logging only and is never sent to clients.
// Credential failures in particular never reveal which check rejected them.
type AppError struct {
	// Kind is the machine-readable classification.
	Kind Kind
	// Message is a human-readable description safe to return to the client.
	Message string
	// HTTPStatus is the HTTP response status code.
	HTTPStatus int
	// Cause is the underlying error, used for server-side logging only.
	Cause error
	// Details holds per-field validation errors for [KindInvalidInput].
	Details []FieldError
}

// FieldError represents a single field-level validation failure.
type FieldError struct {
	// Field is the name of the body, query or path field that failed.
	Field string `json:"field"`
	// Message is the human-readable description of the failure.
	Message string `json:"message"`
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

// Unwrap allows [errors.Is] and [errors.As] to traverse the cause chain.
func (e *AppError) Unwrap() error { return e.Cause }

// # Client Errors (4xx)

// Unauthenticated creates a 401 [AppError]. The cause is kept for logs only.
func Unauthenticated(cause error) *AppError {
	return &AppError{
		Kind:       KindUnauthenticated,
		Message:    "Not authenticated",
		HTTPStatus: http.StatusUnauthorized,
		Cause:      cause,
	}
}

// Unauthorized creates a 403 [AppError] for an authenticated caller lacking the role.
func Unauthorized(cause error) *AppError {
	return &AppError{
		Kind:       KindUnauthorized,
		Message:    "Not authorized",
		HTTPStatus: http.StatusForbidden,
		Cause:      cause,
	}
}

// InvalidInput creates a 400 [AppError] carrying every field violation found.
func InvalidInput(details ...FieldError) *AppError {
	return &AppError{
		Kind:       KindInvalidInput,
		Message:    "Invalid input",
		HTTPStatus: http.StatusBadRequest,
		Details:    details,
	}
}

// NotFound creates a 404 [AppError].
func NotFound() *AppError {
	return &AppError{
		Kind:       KindNotFound,
		Message:    "Not found",
		HTTPStatus: http.StatusNotFound,
	}
}

// RateLimited creates a 429 [AppError].
func RateLimited() *AppError {
	return &AppError{
		Kind:       KindRateLimited,
		Message:    "Too many requests",
		HTTPStatus: http.StatusTooManyRequests,
	}
}

// # Server Errors (5xx)

// Upstream creates a 500 [AppError] for a failing storage collaborator.
func Upstream(cause error) *AppError {
	return &AppError{
		Kind:       KindUpstream,
		Message:    "Internal error",
		HTTPStatus: http.StatusInternalServerError,
		Cause:      cause,
	}
}

// Internal creates a 500 [AppError] wrapping an unexpected server-side error.
func Internal(cause error) *AppError {
	return &AppError{
		Kind:       KindInternal,
		Message:    "Internal error",
		HTTPStatus: http.StatusInternalServerError,
		Cause:      cause,
	}
}

// # Helpers

// As extracts the [*AppError] from err's chain. It returns nil if not found.
func As(err error) *AppError {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae
	}
	return nil
}

// IsKind reports whether err carries an [*AppError] of the given kind.
func IsKind(err error, kind Kind) bool {
	ae := As(err)
	return ae != nil && ae.Kind == kind
}
