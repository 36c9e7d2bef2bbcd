package handler

import (
	"github.com/MKhiriev/clinical-records/internal/config"
	"github.com/MKhiriev/clinical-records/internal/handler/http"
	"github.com/MKhiriev/clinical-records/internal/logger"
	"github.com/MKhiriev/clinical-records/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHTTPAddress
	}

	return &Handlers{HTTP: http.NewHandler(services, logger)}, nil
}
