package adapter

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	ErrValidation          = errors.New("validation failed")
	ErrAlreadyExists       = errors.New("resource already exists")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrNotFound            = errors.New("resource not found")
	ErrInternalServerError = errors.New("internal server error")

	// ErrNoRefreshToken is returned by Refresh before a successful Login.
	ErrNoRefreshToken = errors.New("no refresh token, login first")
)

// ResponseError is a non-2xx answer of the server.
type ResponseError struct {
	StatusCode int

	// Errors is the raw "errors" field of the response: a message string or
	// a map of field messages.
	Errors json.RawMessage

	kind error
}

func (e *ResponseError) Error() string {
	if e.kind == nil {
		return fmt.Sprintf("http %d: %s", e.StatusCode, e.Errors)
	}
	return fmt.Sprintf("%s (http %d): %s", e.kind, e.StatusCode, e.Errors)
}

func (e *ResponseError) Unwrap() error {
	return e.kind
}

// Message returns the error message, or "" when the server answered with
// field messages.
func (e *ResponseError) Message() string {
	var msg string
	if err := json.Unmarshal(e.Errors, &msg); err != nil {
		return ""
	}
	return msg
}

// Fields returns the per-field messages of a validation failure.
func (e *ResponseError) Fields() map[string][]string {
	var fields map[string][]string
	if err := json.Unmarshal(e.Errors, &fields); err != nil {
		return nil
	}
	return fields
}
