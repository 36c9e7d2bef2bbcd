package http

import (
	"net/http"

	"github.com/MKhiriev/clinical-records/internal/app"
	"github.com/MKhiriev/clinical-records/internal/utils"
	"github.com/MKhiriev/clinical-records/models"
)

func (h *Handler) getDoctor(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	doctor, err := h.services.DoctorService.GetDoctor(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteData(w, doctor, http.StatusOK)
}

func (h *Handler) updateDoctor(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	token, err := callerToken(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	var update models.DoctorUpdate
	if err = h.load(r, &update); err != nil {
		h.writeError(w, r, err)
		return
	}

	doctor, err := h.services.DoctorService.UpdateDoctor(r.Context(), token.DoctorID, id, update)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteData(w, doctor, http.StatusOK)
}

// deleteDoctor removes the caller's account and revokes the caller's token.
func (h *Handler) deleteDoctor(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	token, err := callerToken(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if err = h.services.DoctorService.DeleteDoctor(r.Context(), token, id); err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteMessage(w, app.MsgDoctorDeleted, http.StatusOK)
}
