package http

import (
	"github.com/MKhiriev/clinical-records/internal/logger"
	"github.com/MKhiriev/clinical-records/internal/service"
	"github.com/MKhiriev/clinical-records/internal/validators"
)

type Handler struct {
	services *service.Services

	// validator checks decoded request bodies against their schema tags.
	validator validators.Validator

	metrics *httpMetrics

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:  services,
		validator: validators.NewSchemaValidator(),
		metrics:   newHTTPMetrics(),
		logger:    logger,
	}
}
