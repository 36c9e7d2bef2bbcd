package http

import (
	"net/http"

	"github.com/MKhiriev/clinical-records/models"
	"github.com/go-chi/chi/v5"
)

// idParam matches positive integer ids. Anything else is an unknown route.
// Values overflowing int64 are rejected by pathID with the same 404.
const idParam = "/{id:[1-9][0-9]*}"

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, h.withMetrics, withGZip, h.withRecovery)

	// unknown routes and unsupported methods look the same to the client
	router.NotFound(h.notFound)
	router.MethodNotAllowed(h.notFound)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/register", h.register)
		r.Post("/login", h.login)
		r.Get("/version", h.getServerVersion)
		r.Method(http.MethodGet, "/metrics", h.metricsHandler())
	})

	// routes accepting a refresh token
	router.Group(func(r chi.Router) {
		r.Use(h.auth(models.RefreshToken))
		r.Post("/refresh", h.refresh)
	})

	// routes accepting an access token
	router.Group(func(r chi.Router) {
		r.Use(h.auth(models.AccessToken))

		r.Post("/logout", h.logout)

		r.Get("/doctors"+idParam, h.getDoctor)
		r.Put("/doctors"+idParam, h.updateDoctor)
		r.Delete("/doctors"+idParam, h.deleteDoctor)

		r.Post("/pacients", h.createPatient)
		r.Get("/pacients"+idParam, h.getPatient)
		r.Put("/pacients"+idParam, h.updatePatient)
		r.Delete("/pacients"+idParam, h.deletePatient)

		r.Post("/clinical_stories", h.createClinicalStory)
		r.Get("/clinical_stories"+idParam, h.getClinicalStory)
		r.Put("/clinical_stories"+idParam, h.updateClinicalStory)
		r.Delete("/clinical_stories"+idParam, h.deleteClinicalStory)

		r.Post("/allergies", h.createAllergy)
		r.Get("/allergies"+idParam, h.getAllergy)
		r.Delete("/allergies"+idParam, h.deleteAllergy)
	})

	return router
}
