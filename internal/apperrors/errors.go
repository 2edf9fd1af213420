// Package apperrors defines the error taxonomy shared by the domain
// services and mapped to HTTP status codes at the handler boundary.
package apperrors

import (
	"errors"
	"net/http"
)

// ValidationError reports bad or conflicting input (missing required field,
// duplicate email/CPF). Maps to 400.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// AuthenticationError reports a failed credential or token check. The
// message is intentionally generic. Maps to 401.
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string { return e.Message }

// AuthorizationError reports a role or ownership check failure. Maps to 403.
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string { return e.Message }

// NotFoundError reports an absent entity. Maps to 404.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

func NewValidation(msg string) error     { return &ValidationError{Message: msg} }
func NewAuthentication(msg string) error { return &AuthenticationError{Message: msg} }
func NewAuthorization(msg string) error  { return &AuthorizationError{Message: msg} }
func NewNotFound(msg string) error       { return &NotFoundError{Message: msg} }

// Status returns the HTTP status code for a service error, or 500 for
// anything outside the taxonomy.
func Status(err error) int {
	var (
		validation *ValidationError
		authn      *AuthenticationError
		authz      *AuthorizationError
		notFound   *NotFoundError
	)
	switch {
	case errors.As(err, &validation):
		return http.StatusBadRequest
	case errors.As(err, &authn):
		return http.StatusUnauthorized
	case errors.As(err, &authz):
		return http.StatusForbidden
	case errors.As(err, &notFound):
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}
