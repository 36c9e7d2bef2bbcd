package service

import "errors"

// Domain error kinds. The HTTP layer maps each of them to a fixed
// status/message pair; validation failures travel as *validators.ValidationError.
var (
	ErrResourceAlreadyExists = errors.New("resource already exists")
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrResourceNotFound      = errors.New("resource not found")
	ErrNotAuthorized         = errors.New("not authorized")
)

var (
	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrVersionIsNotSpecified   = errors.New("app version is not specified")
	ErrUnknownBlacklistBackend = errors.New("unknown blacklist backend")
)
