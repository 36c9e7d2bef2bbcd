package service

import (
	"github.com/MKhiriev/clinical-records/internal/config"
	"github.com/MKhiriev/clinical-records/internal/logger"
	"github.com/MKhiriev/clinical-records/internal/store"
)

type Services struct {
	AuthService          AuthService
	DoctorService        DoctorService
	PatientService       PatientService
	ClinicalStoryService ClinicalStoryService
	AllergyService       AllergyService
	AppInfoService       AppInfoService

	// Blacklist is exposed for the purge worker.
	Blacklist Blacklist
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	blacklist, err := NewBlacklist(cfg.App, storages.RevokedTokenRepository, logger)
	if err != nil {
		return nil, err
	}

	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AuthService:          NewAuthService(storages.DoctorRepository, blacklist, cfg.App, logger),
		DoctorService:        NewDoctorService(storages.DoctorRepository, blacklist, cfg.App, logger),
		PatientService:       NewPatientService(storages.PatientRepository, logger),
		ClinicalStoryService: NewClinicalStoryService(storages.ClinicalStoryRepository, logger),
		AllergyService:       NewAllergyService(storages.AllergyRepository, logger),
		AppInfoService:       appInfoService,
		Blacklist:            blacklist,
	}, nil
}
