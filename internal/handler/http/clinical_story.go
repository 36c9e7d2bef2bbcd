package http

import (
	"net/http"

	"github.com/MKhiriev/clinical-records/internal/app"
	"github.com/MKhiriev/clinical-records/internal/utils"
	"github.com/MKhiriev/clinical-records/models"
)

func (h *Handler) createClinicalStory(w http.ResponseWriter, r *http.Request) {
	token, err := callerToken(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	var input models.ClinicalStoryInput
	if err = h.load(r, &input); err != nil {
		h.writeError(w, r, err)
		return
	}

	story, err := h.services.ClinicalStoryService.CreateClinicalStory(r.Context(), token.DoctorID, input)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteData(w, story, http.StatusCreated)
}

func (h *Handler) getClinicalStory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	story, err := h.services.ClinicalStoryService.GetClinicalStory(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteData(w, story, http.StatusOK)
}

func (h *Handler) updateClinicalStory(w http.ResponseWriter, r *http.Request) {
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

	var update models.ClinicalStoryUpdate
	if err = h.load(r, &update); err != nil {
		h.writeError(w, r, err)
		return
	}

	story, err := h.services.ClinicalStoryService.UpdateClinicalStory(r.Context(), token.DoctorID, id, update)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteData(w, story, http.StatusOK)
}

func (h *Handler) deleteClinicalStory(w http.ResponseWriter, r *http.Request) {
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

	if err = h.services.ClinicalStoryService.DeleteClinicalStory(r.Context(), token.DoctorID, id); err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteMessage(w, app.MsgClinicalStoryDeleted, http.StatusOK)
}
