package http

import (
	"net/http"

	"github.com/MKhiriev/clinical-records/internal/app"
	"github.com/MKhiriev/clinical-records/internal/utils"
	"github.com/MKhiriev/clinical-records/models"
)

func (h *Handler) createPatient(w http.ResponseWriter, r *http.Request) {
	token, err := callerToken(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	var input models.PatientInput
	if err = h.load(r, &input); err != nil {
		h.writeError(w, r, err)
		return
	}

	patient, err := h.services.PatientService.CreatePatient(r.Context(), token.DoctorID, input)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteData(w, patient, http.StatusCreated)
}

func (h *Handler) getPatient(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	patient, err := h.services.PatientService.GetPatient(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteData(w, patient, http.StatusOK)
}

func (h *Handler) updatePatient(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	var update models.PatientUpdate
	if err = h.load(r, &update); err != nil {
		h.writeError(w, r, err)
		return
	}

	patient, err := h.services.PatientService.UpdatePatient(r.Context(), id, update)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteData(w, patient, http.StatusOK)
}

func (h *Handler) deletePatient(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if err = h.services.PatientService.DeletePatient(r.Context(), id); err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteMessage(w, app.MsgPatientDeleted, http.StatusOK)
}
