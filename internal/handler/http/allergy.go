package http

import (
	"net/http"

	"github.com/MKhiriev/clinical-records/internal/app"
	"github.com/MKhiriev/clinical-records/internal/utils"
	"github.com/MKhiriev/clinical-records/models"
)

func (h *Handler) createAllergy(w http.ResponseWriter, r *http.Request) {
	var input models.AllergyInput
	if err := h.load(r, &input); err != nil {
		h.writeError(w, r, err)
		return
	}

	allergy, err := h.services.AllergyService.CreateAllergy(r.Context(), input)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteData(w, allergy, http.StatusCreated)
}

func (h *Handler) getAllergy(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	allergy, err := h.services.AllergyService.GetAllergy(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteData(w, allergy, http.StatusOK)
}

func (h *Handler) deleteAllergy(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if err = h.services.AllergyService.DeleteAllergy(r.Context(), id); err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteMessage(w, app.MsgAllergyDeleted, http.StatusOK)
}
