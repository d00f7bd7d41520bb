// Package errors defines the error taxonomy returned to API clients.
package errors

import (
	stderrors "errors"
	"net/http"
)

// Kind classifies an APIError.
type Kind string

const (
	KindValidation Kind = "validation"
	KindConflict   Kind = "conflict"
	KindAuth       Kind = "auth"
	KindNotFound   Kind = "not_found"
	KindInternal   Kind = "internal"
)

// APIError is an error with a public message and an HTTP status.
type APIError struct {
	Kind     Kind
	HTTPCode int
	Message  string
	cause    error
}

func (e *APIError) Error() string {
	if e.cause != nil {
		return e.Message + ": " + e.cause.Error()
	}
	return e.Message
}

func (e *APIError) Unwrap() error {
	return e.cause
}

// As returns the APIError in err's chain, if any.
func As(err error) (*APIError, bool) {
	var apiErr *APIError
	if stderrors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

func newErr(kind Kind, code int, message string) *APIError {
	return &APIError{Kind: kind, HTTPCode: code, Message: message}
}

func NewErrValidation(message string) *APIError {
	return newErr(KindValidation, http.StatusBadRequest, message)
}

func NewErrInvalidRequestBody(cause error) *APIError {
	e := newErr(KindValidation, http.StatusBadRequest, "Invalid request body")
	e.cause = cause
	return e
}

func NewErrCredentialsRequired() *APIError {
	return NewErrValidation("Email and password are required")
}

func NewErrInvalidEmailFormat() *APIError {
	return NewErrValidation("Invalid email format")
}

func NewErrPasswordsRequired() *APIError {
	return NewErrValidation("Current and new password are required")
}

func NewErrPasswordTooLong() *APIError {
	return NewErrValidation("Password must be at most 72 bytes")
}

func NewErrTitleRequired() *APIError {
	return NewErrValidation("Title is required")
}

func NewErrInvalidTodoID(raw string) *APIError {
	e := newErr(KindValidation, http.StatusBadRequest, "Invalid todo id")
	e.cause = stderrors.New("cannot parse " + raw)
	return e
}

// NewErrEmailIsTaken is a 400, not a 409; existing clients match on it.
func NewErrEmailIsTaken() *APIError {
	return newErr(KindConflict, http.StatusBadRequest, "User already exists")
}

func NewErrInvalidCredentials() *APIError {
	return newErr(KindAuth, http.StatusUnauthorized, "Invalid email or password")
}

func NewErrInvalidCurrentPassword() *APIError {
	return newErr(KindAuth, http.StatusUnauthorized, "Invalid current password")
}

func NewErrInvalidPassword() *APIError {
	return newErr(KindAuth, http.StatusUnauthorized, "Invalid password")
}

func NewErrMissingAuthorizationToken() *APIError {
	return newErr(KindAuth, http.StatusUnauthorized, "Authentication required")
}

func NewErrInvalidAuthorizationToken() *APIError {
	return newErr(KindAuth, http.StatusForbidden, "Invalid token")
}

func NewErrAccountGone() *APIError {
	return newErr(KindAuth, http.StatusUnauthorized, "User no longer exists")
}

func NewErrUserNotFound() *APIError {
	return newErr(KindNotFound, http.StatusNotFound, "User not found")
}

func NewErrTodoNotFound() *APIError {
	return newErr(KindNotFound, http.StatusNotFound, "Todo not found")
}

// NewErrInternalServerError hides cause behind a generic message.
func NewErrInternalServerError(cause error) *APIError {
	e := newErr(KindInternal, http.StatusInternalServerError, "Internal server error")
	e.cause = cause
	return e
}
