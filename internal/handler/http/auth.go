package http

import (
	"net/http"

	"github.com/MKhiriev/clinical-records/internal/app"
	"github.com/MKhiriev/clinical-records/internal/logger"
	"github.com/MKhiriev/clinical-records/internal/utils"
	"github.com/MKhiriev/clinical-records/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var registration models.DoctorRegistration
	if err := h.load(r, &registration); err != nil {
		h.writeError(w, r, err)
		return
	}

	doctor, err := h.services.AuthService.RegisterDoctor(r.Context(), registration)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Int64("doctor_id", doctor.ID).Msg("doctor registered")
	utils.WriteData(w, doctor, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var credentials models.Credentials
	if err := h.load(r, &credentials); err != nil {
		h.writeError(w, r, err)
		return
	}

	tokens, err := h.services.AuthService.Login(r.Context(), credentials)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteData(w, tokens, http.StatusOK)
}

// logout revokes the token the request was authenticated with.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	token, err := callerToken(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if err = h.services.AuthService.Logout(r.Context(), token); err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteMessage(w, app.MsgLoggedOut, http.StatusOK)
}

// refresh issues a new access token; the route accepts only refresh tokens.
func (h *Handler) refresh(w http.ResponseWriter, r *http.Request) {
	token, err := callerToken(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	tokens, err := h.services.AuthService.Refresh(r.Context(), token)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteData(w, tokens, http.StatusOK)
}
