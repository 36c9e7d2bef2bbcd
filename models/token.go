package models

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenType distinguishes short-lived access tokens from refresh tokens.
type TokenType string

const (
	AccessToken  TokenType = "access"
	RefreshToken TokenType = "refresh"
)

// Claims is the JWT claim set issued by the service.
//
// The standard "jti" claim identifies the token for revocation (logout), the
// "sub" claim carries the doctor ID and "type" tells access and refresh tokens
// apart.
type Claims struct {
	jwt.RegisteredClaims

	Type TokenType `json:"type"`
}

// Token wraps a JWT token with convenience accessors for authentication flows.
//
// It embeds [jwt.Token] for low-level token operations (signing, parsing).
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be transmitted in HTTP headers.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// DoctorID is the owner identifier extracted from the "sub" claim.
	DoctorID int64 `json:"-"`

	// ID is the value of the "jti" claim.
	ID string `json:"-"`

	// Type is the value of the "type" claim.
	Type TokenType `json:"-"`

	// ExpiresAt is the value of the "exp" claim.
	ExpiresAt time.Time `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}

// GetDoctorID parses the "sub" claim of the given claim set as a base-10 int64.
func (c *Claims) GetDoctorID() (int64, error) {
	doctorID, err := strconv.ParseInt(c.Subject, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting subject of token to int64: %w", err)
	}

	return doctorID, nil
}

// TokenPair is returned by POST /login and POST /refresh.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token,omitempty"`
}

// RevokedToken is an entry of the token blacklist.
type RevokedToken struct {
	// JTI is the revoked token identifier.
	JTI string

	// ExpiresAt is when the token would have expired on its own. After that
	// moment the entry can be purged.
	ExpiresAt time.Time
}
