package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/clinical-records/internal/app"
	"github.com/MKhiriev/clinical-records/internal/logger"
	"github.com/MKhiriev/clinical-records/internal/service"
	"github.com/MKhiriev/clinical-records/internal/utils"
	"github.com/MKhiriev/clinical-records/internal/validators"
)

type errorResponse struct {
	status  int
	message string
}

// errorResponses holds the fixed payload of every domain error kind.
// Validation failures are handled separately since they carry field messages.
var errorResponses = map[error]errorResponse{
	service.ErrResourceAlreadyExists: {http.StatusBadRequest, app.MsgResourceAlreadyExists},
	service.ErrInvalidCredentials:    {http.StatusUnauthorized, app.MsgInvalidCredentials},
	service.ErrResourceNotFound:      {http.StatusNotFound, app.MsgResourceNotFound},
	service.ErrNotAuthorized:         {http.StatusUnauthorized, app.MsgNotAuthorized},
}

// writeError is the single place where errors become HTTP responses.
// Anything it cannot classify is a 500.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	var validationErr *validators.ValidationError
	if errors.As(err, &validationErr) {
		log.Info().Strs("fields", validationErr.Fields()).Msg("validation failed")
		utils.WriteErrors(w, validationErr.Messages, http.StatusBadRequest)
		return
	}

	for target, response := range errorResponses {
		if errors.Is(err, target) {
			log.Info().Err(err).Int("status", response.status).Msg("request rejected")
			utils.WriteErrors(w, response.message, response.status)
			return
		}
	}

	log.Err(err).Msg("unexpected error")
	utils.WriteErrors(w, app.MsgInternalServerError, http.StatusInternalServerError)
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteErrors(w, app.MsgResourceNotFound, http.StatusNotFound)
}
