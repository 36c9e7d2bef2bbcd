package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/clinical-records/internal/logger"
	"github.com/MKhiriev/clinical-records/internal/service"
	"github.com/MKhiriev/clinical-records/internal/utils"
	"github.com/MKhiriev/clinical-records/models"
)

// auth returns a middleware that lets through only requests carrying a valid,
// non-revoked bearer token of the given type.
//
// On success the parsed token and the doctor ID are stored in the request
// context (see [utils.WithToken]). Every rejection is answered by writeError
// with the "no access" 401 payload.
func (h *Handler) auth(tokenType models.TokenType) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString, err := getTokenFromAuthHeader(r.Header.Get("Authorization"))
			if err != nil {
				h.writeError(w, r, fmt.Errorf("%w: %w", service.ErrNotAuthorized, err))
				return
			}

			token, err := h.services.AuthService.ParseToken(r.Context(), tokenString, tokenType)
			if err != nil {
				h.writeError(w, r, err)
				return
			}

			logger.FromRequest(r).Debug().Int64("doctor_id", token.DoctorID).Str("jti", token.ID).Msg("request authenticated")

			next.ServeHTTP(w, r.WithContext(utils.WithToken(r.Context(), token)))
		})
	}
}

// getTokenFromAuthHeader extracts the token from an
// "Authorization: Bearer <token>" header value.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	if authHeader == "" {
		return "", ErrEmptyAuthorizationHeader
	}

	tokenString, err := utils.ParseBearerToken(authHeader)
	if err != nil {
		return "", ErrInvalidAuthorizationHeader
	}

	return tokenString, nil
}
