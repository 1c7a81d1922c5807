// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package rest

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrNextCalledTwice is returned when a middleware invokes its next
	// stage more than once for the same request.
	ErrNextCalledTwice = errors.New("next called more than once")

	// ErrPanic wraps a value recovered from a panicking stage.
	ErrPanic = errors.New("panic recovered")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is present but has no token after the scheme.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrNoDTO is returned by [RequireDTO] when a handler runs without the
	// body gate of its route.
	ErrNoDTO = errors.New("no validated request body")
)

// ErrorType is the machine-readable class of an error response.
type ErrorType string

const (
	ErrorTypeValidation     ErrorType = "VALIDATION_ERROR"
	ErrorTypeAuthentication ErrorType = "AUTHENTICATION_ERROR"
	ErrorTypeNotFound       ErrorType = "NOT_FOUND_ERROR"
	ErrorTypeCommon         ErrorType = "COMMON_ERROR"
	ErrorTypeUnknown        ErrorType = "UNKNOWN_ERROR"
)

// ErrorTypeFromStatus classifies an HTTP status code.
func ErrorTypeFromStatus(status int) ErrorType {
	switch {
	case status == http.StatusBadRequest:
		return ErrorTypeValidation
	case status == http.StatusUnauthorized:
		return ErrorTypeAuthentication
	case status == http.StatusNotFound:
		return ErrorTypeNotFound
	case status >= 400 && status < 500:
		return ErrorTypeCommon
	default:
		return ErrorTypeUnknown
	}
}

// ValidationErrorField describes every violated rule of one input property.
type ValidationErrorField struct {
	Property string   `json:"property"`
	Value    any      `json:"value"`
	Messages []string `json:"messages"`
}

// HTTPError is an error that already knows the response it should produce.
type HTTPError struct {
	// StatusCode is the HTTP status of the response.
	StatusCode int

	// Message is sent to the client.
	Message string

	// Detail names where the error was raised. It is logged, never sent.
	Detail string

	// Fields lists invalid properties of a validation error.
	Fields []ValidationErrorField

	// Err is the underlying cause, if any.
	Err error
}

// NewHTTPError creates an [HTTPError] with the given status.
func NewHTTPError(statusCode int, message, detail string) *HTTPError {
	return &HTTPError{StatusCode: statusCode, Message: message, Detail: detail}
}

// NewValidationError creates a 400 [HTTPError] listing invalid properties.
func NewValidationError(message, detail string, fields ...ValidationErrorField) *HTTPError {
	return &HTTPError{StatusCode: http.StatusBadRequest, Message: message, Detail: detail, Fields: fields}
}

// NewUnauthorizedError creates a 401 [HTTPError].
func NewUnauthorizedError(message, detail string) *HTTPError {
	return NewHTTPError(http.StatusUnauthorized, message, detail)
}

// NewNotFoundError creates a 404 [HTTPError].
func NewNotFoundError(message, detail string) *HTTPError {
	return NewHTTPError(http.StatusNotFound, message, detail)
}

// NewForbiddenError creates a 403 [HTTPError].
func NewForbiddenError(message, detail string) *HTTPError {
	return NewHTTPError(http.StatusForbidden, message, detail)
}

// WithCause returns a copy of e that wraps err.
func (e *HTTPError) WithCause(err error) *HTTPError {
	c := *e
	c.Err = err
	return &c
}

// Type classifies e by its status code.
func (e *HTTPError) Type() ErrorType {
	return ErrorTypeFromStatus(e.StatusCode)
}

func (e *HTTPError) Error() string {
	msg := e.Message
	if e.Detail != "" {
		msg = fmt.Sprintf("[%s] %s", e.Detail, e.Message)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *HTTPError) Unwrap() error {
	return e.Err
}
