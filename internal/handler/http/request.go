package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/clinical-records/internal/service"
	"github.com/MKhiriev/clinical-records/internal/utils"
	"github.com/MKhiriev/clinical-records/internal/validators"
	"github.com/MKhiriev/clinical-records/models"
	"github.com/go-chi/chi/v5"
)

// load decodes the request body into dst and validates it.
func (h *Handler) load(r *http.Request, dst any) error {
	return validators.Load(r.Context(), h.validator, r.Body, dst)
}

// pathID returns the {id} route parameter. The route pattern only admits
// positive integers, so a failure here means the value overflows int64.
func pathID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %w %q", service.ErrResourceNotFound, ErrInvalidID, raw)
	}

	return id, nil
}

// callerToken returns the token stored by the auth middleware.
func callerToken(r *http.Request) (models.Token, error) {
	token, ok := utils.GetTokenFromContext(r.Context())
	if !ok {
		return models.Token{}, fmt.Errorf("%w: %w", service.ErrNotAuthorized, ErrNoTokenInContext)
	}

	return token, nil
}
