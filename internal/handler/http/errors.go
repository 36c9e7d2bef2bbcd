// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the authentication middleware when parsing the
// "Authorization" HTTP header. They are always wrapped together with
// service.ErrNotAuthorized, so the client sees a 401.
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is present but is not of the "Bearer <token>" form.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrNoTokenInContext is returned by handlers behind the auth middleware
	// when no parsed token was stored in the request context.
	ErrNoTokenInContext = errors.New("no token in request context")

	// ErrInvalidID is returned for path ids that do not fit int64.
	ErrInvalidID = errors.New("invalid id in path")
)
