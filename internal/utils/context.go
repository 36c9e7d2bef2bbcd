// Package utils holds small helpers shared by the server and the client:
// request context values, JSON envelope writers, bearer parsing, JWT claims,
// the resty client factory and trace ids.
package utils

import (
	"context"

	"github.com/MKhiriev/clinical-records/models"
)

// contextKey keeps the keys of this package apart from string keys of others.
type contextKey string

func (c contextKey) String() string {
	return string(c)
}

// TokenCtxKey holds the token parsed by the auth middleware. Handlers read
// the caller's doctor id from it; logout and self-deletion revoke it.
var TokenCtxKey = contextKey("token")

// GetTokenFromContext retrieves the token stored by the auth middleware.
func GetTokenFromContext(ctx context.Context) (models.Token, bool) {
	token, ok := ctx.Value(TokenCtxKey).(models.Token)
	return token, ok
}

// WithToken returns a copy of ctx carrying token.
func WithToken(ctx context.Context, token models.Token) context.Context {
	return context.WithValue(ctx, TokenCtxKey, token)
}
